package analyses

// ValidationError rejects a request before the pipeline runs. It is terminal:
// no partial result accompanies it.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeInternal   = "internal_error"
)
