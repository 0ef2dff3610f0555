package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	ErrConfigInvalid      = "CONFIG_INVALID"
	ErrConfigWriteError   = "CONFIG_WRITE_ERROR"
	ErrFileReadError      = "FILE_READ_ERROR"
	ErrInvalidInput       = "INVALID_INPUT"
	ErrMissingArgument    = "MISSING_ARGUMENT"
	ErrUnrecognizedPhrase = "UNRECOGNIZED_PHRASE"
	ErrInternal           = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnUnrecognized = "UNRECOGNIZED_PHRASE"
	WarnEmptyInput   = "EMPTY_INPUT"
)
