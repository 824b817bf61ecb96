package server

const (
	APIPrefix      = "/api/v1"
	HealthEndpoint = "/health"
	SlotsPath      = "/slots"
	BulkSlotsPath  = "/slots/bulk"
)

const (
	StatusHealthy = "healthy"
)

const (
	MessageValidationFailed   = "One or more slots failed validation"
	MessageInvalidRequestBody = "Invalid request body"
	MessageBatchEmpty         = "Batch must contain at least one slot"
	MessageInvalidToken       = "Invalid token"
	MessageRateLimited        = "Rate limit exceeded. Try again later."
)

const (
	ErrorCodeInvalidRequestBody = "invalid_request_body"
	ErrorCodeValidationFailed   = "validation_failed"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeConflict           = "conflict"
	ErrorCodeRateLimited        = "rate_limited"
)

const (
	SlotNotFoundMessageFmt  = "Slot %s not found"
	DuplicateSlotMessageFmt = "Slot %s already exists at %s"
)

const (
	messageSizeInvalid        = "Slot size must be one of SMALL, MEDIUM, LARGE"
	messageVehicleTypeInvalid = "Vehicle type must be one of CAR, MOTORCYCLE, TRUCK"
)
