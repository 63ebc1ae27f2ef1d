package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/varunkasnia/LLM-Internship-Frontend/pkg/errors"
)

const (
	MsgEmployeeFieldsRequired = "All fields are required."
	MsgEmployeeIDRequired     = "Employee ID is required."
	MsgAddEmployeeFailed      = "Failed to add employee."
	MsgMarkAttendanceFailed   = "Failed to mark attendance."
	MsgDeleteFailed           = "Failed to delete."
)

var formValidator = newFormValidator()

// newFormValidator reports fields by their form names.
func newFormValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateForm checks the validate tags of a normalized form. Any failure
// becomes a ValidationError carrying message and the offending fields.
func validateForm(form any, message string) error {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperrors.NewValidationError(message)
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field())
	}
	return apperrors.NewValidationError(message, fields...)
}
