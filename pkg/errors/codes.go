package errors

// Error codes for categorizing errors.
const (
	// CodeNotFound indicates a key or resource was not found.
	CodeNotFound = "NOT_FOUND"

	// CodeValidation indicates input validation failed.
	CodeValidation = "VALIDATION_ERROR"

	// CodeInternal indicates internal errors.
	CodeInternal = "INTERNAL"
)
