package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/conneroisu/expressor/internal/errors"
	"github.com/conneroisu/expressor/internal/validation"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateConfig checks struct constraints and the repository URL.
func validateConfig(config *Config) error {
	if err := validate.Struct(config); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return errors.NewConfigError(errors.ErrCodeConfigInvalid,
				"invalid configuration: "+strings.Join(msgs, "; "), nil)
		}
		return errors.NewConfigError(errors.ErrCodeConfigInvalid, "invalid configuration", err)
	}

	if err := validation.ValidateURL(config.Bootstrap.Repository); err != nil {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid, "invalid bootstrap.repository", err)
	}

	return nil
}
