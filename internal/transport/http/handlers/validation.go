package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/deptboard/board-service/internal/domain"
)

// domainValidationError converts the first validator failure into the
// domain taxonomy so clients see one consistent error shape.
func domainValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.ErrInvalidJSON(err)
	}

	fe := verrs[0]
	field := jsonFieldName(fe.Field())
	if fe.Tag() == "required" {
		return domain.ErrMissingField(field)
	}
	return domain.ErrInvalidField(field, fe.Tag())
}

// struct fields are exported Go names; clients know the camelCase JSON keys
func jsonFieldName(goName string) string {
	if goName == "" {
		return goName
	}
	return strings.ToLower(goName[:1]) + goName[1:]
}
