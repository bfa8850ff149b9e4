package validate

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"mycolab/pkg/apperr"
)

var V = validator.New()

// Struct runs the `validate` tags on v and reports failures as
// apperr.ErrValidation listing field:tag pairs.
func Struct(v any) error {
	err := V.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field())+":"+fe.Tag())
		}
		return apperr.Invalid("%s", strings.Join(fields, ", "))
	}
	return apperr.Invalid("%v", err)
}
