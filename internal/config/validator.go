package config

import "fmt"

// MinKeyLength is the shortest API or admin key that does not draw a warning
const MinKeyLength = 16

// placeholderValues are the sample values shipped in .env.example
var placeholderValues = map[string]bool{
	"change-me":     true,
	"change-me-too": true,
	"postgres":      true,
}

// Warnings reports settings that are accepted but unsafe outside local
// development. Load has already rejected anything invalid.
func (c *Config) Warnings() []string {
	var warnings []string

	for _, key := range []struct{ name, value string }{
		{"API_KEY", c.APIKey},
		{"ADMIN_KEY", c.AdminKey},
	} {
		switch {
		case placeholderValues[key.value]:
			warnings = append(warnings, fmt.Sprintf("%s still uses the example value; generate one with: openssl rand -hex 32", key.name))
		case len(key.value) < MinKeyLength:
			warnings = append(warnings, fmt.Sprintf("%s is shorter than %d characters", key.name, MinKeyLength))
		}
	}

	if c.Environment != EnvironmentProduction {
		return warnings
	}
	if c.DBDriver == DriverPostgres && placeholderValues[c.DBPassword] {
		warnings = append(warnings, "DB_PASSWORD uses the default value in production")
	}
	if c.DBDriver == DriverSQLite {
		warnings = append(warnings, "DB_DRIVER=sqlite in production serializes all writes through one file")
	}
	return warnings
}
