package allocator

import "unsafe"

// Global is the process-wide default allocator. It is nil until
// Initialize succeeds and nil again after Teardown; calling any of the
// package-level functions outside that window is a contract violation.
var Global *Allocator

// Initialize constructs the process-wide allocator with the given
// region size and placement policy. It aborts the process (via panic,
// see errors.go) if region acquisition fails, matching the source
// allocator's fatal-on-init-failure contract; callers that need a
// recoverable failure path should use New directly instead of the
// global wrapper.
func Initialize(size uintptr, policy Policy, opts ...Option) {
	a, err := New(size, policy, opts...)
	if err != nil {
		panic(err)
	}

	Global = a
}

// Teardown releases the global allocator's region and clears Global.
func Teardown() {
	if Global == nil {
		return
	}

	_ = Global.Close()
	Global = nil
}

func requireGlobal(operation string) *Allocator {
	if Global == nil {
		panic(operation + ": global allocator is not initialized")
	}

	return Global
}

func Allocate(n uintptr) unsafe.Pointer {
	return requireGlobal("allocate").Allocate(n)
}

func Callocate(count, elemSize uintptr) unsafe.Pointer {
	return requireGlobal("callocate").Callocate(count, elemSize)
}

func Deallocate(ptr unsafe.Pointer) {
	requireGlobal("deallocate").Deallocate(ptr)
}

func Compact(before, after []unsafe.Pointer) int {
	return requireGlobal("compact").Compact(before, after)
}

func AvailableMemory() uintptr {
	return requireGlobal("available_memory").AvailableMemory()
}
