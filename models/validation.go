package models

import "strings"

// FieldError describes a single failed rule for one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every triggered FieldError across fields,
// in field evaluation order. A nil or empty value means the input is valid.
type ValidationErrors []FieldError

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, fe := range v {
		messages = append(messages, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// ForField returns the messages recorded for field.
func (v ValidationErrors) ForField(field string) []string {
	var messages []string
	for _, fe := range v {
		if fe.Field == field {
			messages = append(messages, fe.Message)
		}
	}
	return messages
}

// Has reports whether any error was recorded for field.
func (v ValidationErrors) Has(field string) bool {
	return len(v.ForField(field)) > 0
}
