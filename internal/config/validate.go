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

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Dict.SearchDefaultLimit <= 0 {
		return fmt.Errorf("dictionary.search_default_limit must be > 0 (got %d)", c.Dict.SearchDefaultLimit)
	}
	if c.Dict.SearchMaxLimit < c.Dict.SearchDefaultLimit {
		return fmt.Errorf("dictionary.search_max_limit must be >= search_default_limit (got %d < %d)",
			c.Dict.SearchMaxLimit, c.Dict.SearchDefaultLimit)
	}
	if c.Dict.BulkImportMaxRows <= 0 {
		return fmt.Errorf("dictionary.bulk_import_max_rows must be > 0 (got %d)", c.Dict.BulkImportMaxRows)
	}

	if c.Server.SearchRateLimit <= 0 {
		return fmt.Errorf("server.search_rate_limit must be > 0 (got %d)", c.Server.SearchRateLimit)
	}

	return nil
}
