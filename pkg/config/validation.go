package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the configuration against the struct-level validation
// tags and the database-specific rules.
func Validate(cfg *Config) error {
	validate := validator.New()

	if err := validate.Struct(cfg); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range errs {
				return fmt.Errorf("invalid value for %s: failed %q constraint",
					fieldErr.Namespace(), fieldErr.Tag())
			}
		}
		return err
	}

	// The store carries its own validation (it is also constructed outside
	// of a full Config, e.g. in tests).
	if err := cfg.Database.Validate(); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}

	return nil
}
