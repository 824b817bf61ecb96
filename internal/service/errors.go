package service

import "errors"

var (
	// ErrValidationFailed means the submission was not sent; the per-field
	// messages are available from the workflow's Errors method.
	ErrValidationFailed = errors.New("form has validation errors")
	// ErrSubmitInFlight means a previous submission still holds the loading flag.
	ErrSubmitInFlight = errors.New("a submission is already in progress")
	// ErrWorkflowClosed is returned once the workflow has been torn down.
	ErrWorkflowClosed = errors.New("workflow has been torn down")
	ErrRowOutOfRange  = errors.New("row index out of range")
	ErrUnknownField   = errors.New("unknown slot field")
	ErrInvalidFee     = errors.New("fee per hour is not a number")
)
