package country

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	atlaserrors "github.com/alexisbeaulieu97/atlas/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	alpha3Pattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// report dataset keys rather than Go field names
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("alpha3", func(fl validator.FieldLevel) bool {
			return alpha3Pattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks every record and returns a DatasetError listing all of the
// malformed ones, or nil when the dataset is well formed.
func Validate(source string, records []Record) error {
	v := validatorInstance()

	var problems []atlaserrors.RecordError
	for i := range records {
		err := v.Struct(records[i])
		if err == nil {
			continue
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			problems = append(problems, atlaserrors.RecordError{
				Index:   i,
				Name:    records[i].Name,
				Field:   "record",
				Message: err.Error(),
			})
			continue
		}

		for _, fe := range fieldErrs {
			problems = append(problems, atlaserrors.RecordError{
				Index:   i,
				Name:    records[i].Name,
				Field:   fe.Field(),
				Message: describeFieldError(fe),
			})
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return atlaserrors.NewDatasetError(source, problems)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "alpha3":
		return fmt.Sprintf("%q is not a three-letter upper-case code", fe.Value())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
