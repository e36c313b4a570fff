package shared

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FormValidator runs the tag-based pass shared by all form structs. Struct
// fields are declared in rule-precedence order; validator reports failures
// in field order, so the first entry is the rule that wins.
var FormValidator = validator.New(validator.WithRequiredStructEnabled())

// FirstReason converts the first tag failure into a user-facing
// ValidationError. Messages are looked up by "Field.tag", then by "Field".
func FirstReason(err error, messages map[string]string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		if msg, ok := messages[f.StructField()+"."+f.Tag()]; ok {
			return NewValidationError(msg)
		}
		if msg, ok := messages[f.StructField()]; ok {
			return NewValidationError(msg)
		}
		return NewValidationError(fmt.Sprintf("%s is invalid", f.StructField()))
	}
	return NewValidationError("invalid input")
}
