package terminus

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// An Environment is a different context in which a terminus app operates.
type Environment string

const (
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Review      Environment = "REVIEW"
	Staging     Environment = "STAGING"
	Testing     Environment = "TESTING"
)

func (e Environment) String() string { return string(e) }

func (e Environment) Valid() error {
	switch e {
	case Development, Production, Review, Staging, Testing:
		return nil
	default:
		return ErrNotValid
	}
}

func (e Environment) IsDevelopment() bool {
	return e == Development
}

func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) IsTesting() bool {
	return e == Testing
}

// EnvVarOr reads the environment variable key with parse,
// returning def when key is unset or parse fails.
func EnvVarOr[T any](key string, def T, parse func(string) (T, error)) T {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return def
	}

	v, err := parse(val)
	if err != nil {
		return def
	}

	return v
}

// EnvVarOrBool reads key as "true" or "false", in any case.
func EnvVarOrBool(key string, def bool) bool {
	return EnvVarOr(key, def, func(val string) (bool, error) {
		switch strings.ToLower(val) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}

		return false, fmt.Errorf("%w: %q is not a bool", ErrNotValid, val)
	})
}

// EnvVarOrDuration reads key as a [time.Duration].
func EnvVarOrDuration(key string, def time.Duration) time.Duration {
	return EnvVarOr(key, def, time.ParseDuration)
}

// EnvVarOrEnv reads key as an [Environment], ignoring case.
func EnvVarOrEnv(key string, def Environment) Environment {
	return EnvVarOr(key, def, func(val string) (Environment, error) {
		env := Environment(strings.ToUpper(val))
		return env, env.Valid()
	})
}

// EnvVarOrInt reads key as an int.
func EnvVarOrInt(key string, def int) int {
	return EnvVarOr(key, def, strconv.Atoi)
}

// EnvVarOrString reads key as is.
func EnvVarOrString(key, def string) string {
	return EnvVarOr(key, def, func(val string) (string, error) { return val, nil })
}
