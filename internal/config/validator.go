package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	atlaserrors "github.com/alexisbeaulieu97/atlas/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	datasetExtensions = map[string]struct{}{".json": {}, ".yaml": {}, ".yml": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("dataset_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			if strings.TrimSpace(path) == "" || strings.Contains(path, "\x00") {
				return false
			}
			_, ok := datasetExtensions[strings.ToLower(filepath.Ext(path))]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return atlaserrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// convertValidationError normalizes validator errors into atlas validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlFieldName(ve)
		return atlaserrors.NewValidationError(field, describe(ve), err)
	}

	return atlaserrors.NewValidationError("config", err.Error(), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%q must be one of: %s", fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "dataset_path":
		return fmt.Sprintf("%q must be a .json, .yaml or .yml file", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func yamlFieldName(fe validator.FieldError) string {
	switch fe.StructField() {
	case "LogLevel":
		return "log_level"
	case "LogFile":
		return "log_file"
	default:
		return strings.ToLower(fe.StructField())
	}
}
