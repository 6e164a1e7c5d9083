package errors

// Code represents an error code
type Code string

const (
	CodeUnknown          Code = "UNKNOWN"           // Unknown error occurred
	CodeInternalError    Code = "INTERNAL_ERROR"    // Internal system error
	CodeValidationFailed Code = "VALIDATION_FAILED" // Input validation failed
	CodeMissingParameter Code = "MISSING_PARAMETER" // Required parameter missing
	CodeInvalidParameter Code = "INVALID_PARAMETER" // Invalid parameter provided
	CodeNetworkError     Code = "NETWORK_ERROR"     // Network error
	CodeTimeoutError     Code = "TIMEOUT_ERROR"     // Timeout error
	CodeIoError          Code = "IO_ERROR"          // Input/output operation failed
	CodeNotFound         Code = "NOT_FOUND"         // Not found
	CodeAlreadyExists    Code = "ALREADY_EXISTS"    // Already exists
	CodeEmptyCompletion  Code = "EMPTY_COMPLETION"  // Model returned no usable content
	CodeNotConfigured    Code = "NOT_CONFIGURED"    // Required client or setting missing
)
