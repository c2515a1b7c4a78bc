package pavlog

import (
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

const levelValidationTag = "loglevel"

var (
	validate    *validator.Validate
	validateErr error
	once        sync.Once
)

// newValidator returns a validator that understands the loglevel tag.
func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(levelValidationTag, func(fl validator.FieldLevel) bool {
		return IsValidLevel(fl.Field().String())
	}); err != nil {
		return nil, err
	}
	return v, nil
}

func validateConfig(cfg *Config) error {
	const op errors.Op = "pavlog.validateConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	once.Do(func() {
		validate, validateErr = newValidator()
	})
	if validateErr != nil {
		return errors.New(op).Err(validateErr).Msg(errMsgValidator)
	}

	if err := validate.Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	return nil
}
