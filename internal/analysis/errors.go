package analysis

import "fmt"

// InputError reports a required text field that was empty or whitespace-only
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s is required: %s", e.Field, e.Message)
}

func requireText(field, text, message string) error {
	if isBlank(text) {
		return &InputError{Field: field, Message: message}
	}
	return nil
}
