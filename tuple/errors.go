// SPDX-License-Identifier: MIT

package tuple

import "errors"

// ErrZeroMagnitude is returned by Normalize when the tuple has zero length
// and therefore no direction.
var ErrZeroMagnitude = errors.New("tuple: zero magnitude")
