package environment

import (
	"errors"
	"fmt"
	"strings"
)

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

// ErrUnknownEnvironment is returned by Parse for names that match no environment.
var ErrUnknownEnvironment = errors.New("environment: unknown environment")

// Parse resolves a name or its short alias (dev, stage, prod), case-insensitively.
// An empty string resolves to Development.
func Parse(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dev", string(Development):
		return Development, nil
	case "stage", string(Staging):
		return Staging, nil
	case "prod", string(Production):
		return Production, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
}

func (e Environment) String() string {
	return string(e)
}

func (e Environment) IsProduction() bool  { return e == Production }
func (e Environment) IsStaging() bool     { return e == Staging }
func (e Environment) IsDevelopment() bool { return e == Development }

// UnmarshalText lets Environment be used directly as an env-tagged config field.
func (e *Environment) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
