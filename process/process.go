// Package process defines the types and interfaces for inspecting and
// modifying the memory of another process.
package process

import "errors"

// Not-found conditions. These are ordinary outcomes: the target's address
// space changes between calls, so callers are expected to retry or branch.
var (
	// ErrProcessNotFound is returned when no running process has the requested name.
	ErrProcessNotFound = errors.New("process not found")

	// ErrModuleNotFound is returned when the memory map holds no region for the
	// requested module, or no executable region that can be scanned.
	ErrModuleNotFound = errors.New("module not found")

	// ErrPatternNotFound is returned when a signature does not occur in the searched range.
	ErrPatternNotFound = errors.New("pattern not found")
)

// Transfer failures.
var (
	// ErrReadFailed is returned when fewer bytes than requested could be read.
	// No partial buffer is ever returned with it.
	ErrReadFailed = errors.New("read process memory failed")

	// ErrWriteFailed is returned when the copy primitive rejected a write.
	ErrWriteFailed = errors.New("write process memory failed")

	// ErrPartialWrite is returned when only part of the data reached the
	// target. The target is left in an unknown state.
	ErrPartialWrite = errors.New("partial write to process memory")
)

// ErrInvalidSignature is returned for a malformed signature string. It is a
// programming error of the caller.
var ErrInvalidSignature = errors.New("invalid signature")
