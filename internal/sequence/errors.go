package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPool means an item needs more characters than its pool holds.
	ErrInsufficientPool = errors.New("insufficient character pool")
	// ErrInvalidConfiguration means a configuration is structurally malformed.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// PoolError reports a character pool too small for the requested output.
type PoolError struct {
	Required  int
	Available int
}

func (e *PoolError) Error() string {
	if e.Available == 0 {
		return fmt.Sprintf("%s: pool is empty, %d characters requested", ErrInsufficientPool, e.Required)
	}
	return fmt.Sprintf("%s: %d distinct characters requested, pool has %d", ErrInsufficientPool, e.Required, e.Available)
}

// Unwrap lets errors.Is match ErrInsufficientPool.
func (e *PoolError) Unwrap() error {
	return ErrInsufficientPool
}

// ConfigError reports a malformed configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfiguration.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
