package runlog

import (
	"path/filepath"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *Config) error {
	const op errors.Op = "runlog.validateConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	if filepath.IsAbs(cfg.RelLogFileDir) {
		return errors.New(op).Msg(errMsgLogDirNotRel)
	}

	if _, err := parseLevel(cfg.Level); err != nil {
		return errors.New(op).Err(err).Msg(errMsgInvalidLevel)
	}

	return nil
}
