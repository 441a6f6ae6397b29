package workspace

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"mdworkspace/internal/config"
	"mdworkspace/internal/domain"
)

// pathRules apply to every filesystem path accepted from the editor
var pathRules = []validation.Rule{
	validation.Required,
	validation.Length(1, config.MaxPathLength),
	validation.By(noNULByte),
}

func noNULByte(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsRune(s, 0) {
		return errors.New("must not contain NUL bytes")
	}
	return nil
}

// toValidationError converts ozzo validation errors into the domain type
func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if errors.As(err, &errs) {
		return &domain.ValidationError{Message: errs.Error()}
	}
	return &domain.ValidationError{Message: fmt.Sprintf("invalid request: %v", err)}
}
