package models

import "errors"

// ErrPersonalDetailsExists is returned when a second personal-details row is
// created; exactly one may exist.
var ErrPersonalDetailsExists = errors.New("personal details already exist")

// ValidationError is a field-level rejection raised before anything is
// persisted. Controllers surface these as 400s with the offending field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// IsValidation reports whether err is a field-level validation error and
// returns it if so.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
