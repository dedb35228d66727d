// SPDX-License-Identifier: MIT

package color

import "errors"

// ErrUnknownColor is returned by Named for a name outside the SVG 1.1 palette.
var ErrUnknownColor = errors.New("color: unknown color name")
