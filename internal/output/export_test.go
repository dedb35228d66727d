package output

import "os"

// SetTerminal forces the terminal check for tests and returns a restore func.
func SetTerminal(v bool) (restore func()) {
	prev := isTerminal
	isTerminal = func(*os.File) bool { return v }

	return func() { isTerminal = prev }
}
