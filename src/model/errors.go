package model

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested change-set (or a referenced file
// version) does not exist on the remote host.
var ErrNotFound = errors.New("change-set not found")

// ConfigError indicates required external configuration is missing or
// invalid. It is surfaced to the caller and never retried.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}
