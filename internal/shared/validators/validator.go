package validators

import (
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/encoding/htmlindex"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance with the project specific tags registered.
//
//   - charset: value is a character set label known to golang.org/x/text (e.g. "utf-8", "latin1")
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation("charset", isCharset)
	return v
}

func isCharset(fl validator.FieldLevel) bool {
	_, err := htmlindex.Get(fl.Field().String())
	return err == nil
}
