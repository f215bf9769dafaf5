package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps a raw value, including the short aliases "dev", "stage" and "prod",
// to a known environment. Anything else is Development.
func Parse(raw string) Environment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// IsProduction reports whether e is production.
func (e Environment) IsProduction() bool { return e == Production }

// IsStaging reports whether e is staging.
func (e Environment) IsStaging() bool { return e == Staging }

// IsDevelopment reports whether e is development.
func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) String() string { return string(e) }
