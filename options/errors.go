// SPDX-License-Identifier: MIT

package options

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "options: ...". Call sites wrap the
// sentinel with the offending key and value; callers match with errors.Is.
var (
	// ErrInvalidConfiguration is returned when a configuration value cannot be
	// converted into the numeric type of its field, or when a configuration
	// document cannot be decoded at all.
	ErrInvalidConfiguration = errors.New("options: invalid configuration")
)

// fieldErrorf wraps ErrInvalidConfiguration with the key and offending value.
func fieldErrorf(key string, v any, reason string) error {
	return fmt.Errorf("%s=%v (%T): %s: %w", key, v, v, reason, ErrInvalidConfiguration)
}
