package loader

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"booklib/internal/book"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields under their yaml names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	validate.RegisterValidation("isbn", validateISBN)
}

// validateISBN delegates the structural rule to the domain validator,
// so the shape check and the factory cannot disagree.
func validateISBN(fl validator.FieldLevel) bool {
	_, err := book.ISBN("isbn", fl.Field().String())
	return err == nil
}

// ValidationError describes one rejected field of a record.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRecord shape-checks a record, returning one entry per
// failing field, or nil when the record is well-formed.
func ValidateRecord(r Record) []ValidationError {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var out []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		param := err.Param()

		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "isbn":
			message = fmt.Sprintf("%s must strip to 10 or 13 characters", field)
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", field, param)
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "lte":
			message = fmt.Sprintf("%s must be at most %s", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		out = append(out, ValidationError{
			Field:   field,
			Message: message,
		})
	}

	return out
}
