package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	// env-required is satisfied by a set-but-empty variable.
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn must not be empty")
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Journal.DefaultPageSize <= 0 {
		return fmt.Errorf("journal.default_page_size must be > 0 (got %d)", c.Journal.DefaultPageSize)
	}
	if c.Journal.MaxPageSize < c.Journal.DefaultPageSize {
		return fmt.Errorf("journal.max_page_size must be >= default_page_size (got %d < %d)",
			c.Journal.MaxPageSize, c.Journal.DefaultPageSize)
	}

	if c.Analytics.TopLimit <= 0 {
		return fmt.Errorf("analytics.top_limit must be > 0 (got %d)", c.Analytics.TopLimit)
	}
	if c.Analytics.TimeSeriesDays <= 0 {
		return fmt.Errorf("analytics.time_series_days must be > 0 (got %d)", c.Analytics.TimeSeriesDays)
	}
	if c.Analytics.TrailingMonths <= 0 || c.Analytics.TrailingMonths > 12 {
		return fmt.Errorf("analytics.trailing_months must be in [1, 12] (got %d)", c.Analytics.TrailingMonths)
	}

	return nil
}
