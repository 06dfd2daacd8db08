// Package callsite lives under a dotted import path so tests can observe
// how the runtime names its functions.
package callsite

// Invoke calls f from a frame that belongs to this package.
//
//go:noinline
func Invoke(f func()) {
	f()
}
