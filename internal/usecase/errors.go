package usecase

import (
	"errors"
	"fmt"
)

// ValidationError is a local input failure caught before any backend call.
// Msg is safe to show to the user as is.
type ValidationError struct {
	Field  string
	Msg    string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Msg != "" && e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation failed"
}

// AsValidation unwraps err into a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var target *ValidationError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
