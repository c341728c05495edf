//go:build !debug

package allocator

// debugCheckInvariants is a no-op outside debug builds.
func (a *Allocator) debugCheckInvariants(operation string) {}
