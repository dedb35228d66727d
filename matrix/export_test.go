// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported symbols to the external matrix_test package.
// Compiled only with `go test`, so it never widens the production API.

var (
	// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
	ExportedNewDenseWithPolicy = newDenseWithPolicy
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
)

// PolicyOf reports the numeric policy carried by m.
func PolicyOf(m *Dense) bool { return m.validateNaNInf }
