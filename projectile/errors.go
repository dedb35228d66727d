// SPDX-License-Identifier: MIT

package projectile

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("projectile: invalid config")

// configErrorf tags ErrInvalidConfig with the offending key.
func configErrorf(key, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", key, ErrInvalidConfig, fmt.Sprintf(format, args...))
}
