// Package config loads runtime settings for the creational demo CLI.
//
// Values come from, in increasing priority: built-in defaults, environment
// variables prefixed with CREATIONAL_, and command-line flags bound to the
// returned viper instance.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every key when reading the environment,
// e.g. CREATIONAL_LOG_LEVEL.
const EnvPrefix = "CREATIONAL"

// Keys understood by Load. Flags should be bound under these names.
const (
	KeyLogLevel     = "log_level"
	KeyLibraryDelay = "library_delay"
	KeyAccessors    = "accessors"
)

const (
	defaultLogLevel     = "info"
	defaultLibraryDelay = "3s"
	defaultAccessors    = 8
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved configuration.
type Config struct {
	// LogLevel is the minimum level written by the CLI logger.
	LogLevel zapcore.Level

	// LibraryDelay is how long the expensive Library construction blocks.
	LibraryDelay time.Duration

	// Accessors is how many goroutines race for each singleton.
	Accessors int
}

// New returns a viper instance with defaults registered and environment
// lookup enabled.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyLibraryDelay, defaultLibraryDelay)
	v.SetDefault(KeyAccessors, defaultAccessors)
	return v
}

// Load resolves and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	level, err := zapcore.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, invalid(KeyLogLevel, err)
	}

	delay, err := time.ParseDuration(v.GetString(KeyLibraryDelay))
	if err != nil {
		return Config{}, invalid(KeyLibraryDelay, err)
	}
	if delay < 0 {
		return Config{}, invalid(KeyLibraryDelay, fmt.Errorf("must be >= 0, got %s", delay))
	}

	accessors, err := strconv.Atoi(v.GetString(KeyAccessors))
	if err != nil {
		return Config{}, invalid(KeyAccessors, err)
	}
	if accessors < 1 {
		return Config{}, invalid(KeyAccessors, fmt.Errorf("must be >= 1, got %d", accessors))
	}

	return Config{
		LogLevel:     level,
		LibraryDelay: delay,
		Accessors:    accessors,
	}, nil
}

func invalid(key string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
}
