package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Registration.validate(); err != nil {
		return fmt.Errorf("registration: %w", err)
	}

	return nil
}

func (r RegistrationConfig) validate() error {
	if r.EntriesPerIndividualEvent <= 0 {
		return fmt.Errorf("entries_per_individual_event must be > 0 (got %d)", r.EntriesPerIndividualEvent)
	}
	if r.EntriesPerRelayEvent <= 0 {
		return fmt.Errorf("entries_per_relay_event must be > 0 (got %d)", r.EntriesPerRelayEvent)
	}
	return nil
}
