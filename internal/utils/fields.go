package utils

// Structured log field names shared across packages.
const (
	FieldComponent  = "component"
	FieldHost       = "host"
	FieldPort       = "port"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldURL        = "url"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldSlotID     = "slot_id"
	FieldSlotNumber = "slot_number"
	FieldLocation   = "location"
	FieldRowCount   = "row_count"
	FieldErrorCount = "error_count"
	FieldEnv        = "env"
)
