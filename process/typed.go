package process

import (
	"fmt"
	"unsafe"
)

// Read is a helper to read a single value of type T from memory.
// T must be a plain-old-data type; it is filled byte for byte.
func Read[T any](mem MemoryAccessor, addr ProcessMemoryAddress) (T, error) {
	var t T
	size := ProcessMemorySize(unsafe.Sizeof(t))
	if size == 0 {
		return t, nil
	}

	data, err := mem.ReadMemory(addr, size)
	if err != nil {
		return t, err
	}

	copyTo(&t, data)
	return t, nil
}

// ReadPath reads a value of type T at the end of a pointer path.
// It starts at base, adds the first offset, reads a pointer, adds the next
// offset, reads a pointer, etc. The last offset is added to the final
// pointer and T is read from there. With no offsets T is read from base.
// Pointers are 8 bytes.
func ReadPath[T any](mem MemoryAccessor, base ProcessMemoryAddress, offsets ...ProcessMemorySize) (T, error) {
	var zero T
	currentAddr := base

	for i := 0; i < len(offsets)-1; i++ {
		ptrAddr := currentAddr + ProcessMemoryAddress(offsets[i])

		ptrVal, err := Read[uint64](mem, ptrAddr)
		if err != nil {
			return zero, fmt.Errorf("failed to read pointer at offset %d (addr %s): %w", i, ptrAddr.ToString(), err)
		}

		if ptrVal == 0 {
			return zero, fmt.Errorf("pointer at offset %d (addr %s) is null", i, ptrAddr.ToString())
		}

		currentAddr = ProcessMemoryAddress(ptrVal)
	}

	if len(offsets) > 0 {
		currentAddr += ProcessMemoryAddress(offsets[len(offsets)-1])
	}

	val, err := Read[T](mem, currentAddr)
	if err != nil {
		return zero, fmt.Errorf("failed to read final value at %s: %w", currentAddr.ToString(), err)
	}

	return val, nil
}

// Write is a helper to write a single value of type T to memory
func Write[T any](mem MemoryAccessor, addr ProcessMemoryAddress, value T) error {
	size := int(unsafe.Sizeof(value))
	if size == 0 {
		return nil
	}

	src := unsafe.Slice((*byte)(unsafe.Pointer(&value)), size)
	data := make([]byte, size)
	copy(data, src)

	if err := mem.WriteMemory(addr, data); err != nil {
		return fmt.Errorf("write %T at %s: %w", value, addr.ToString(), err)
	}
	return nil
}

// copyTo copies bytes to *T
func copyTo[T any](dst *T, src []byte) {
	size := int(unsafe.Sizeof(*dst))
	if len(src) < size {
		return // Should not happen if ReadMemory succeeded with correct size
	}

	// Create a byte slice view of dst
	dstBytes := unsafe.Slice((*byte)(unsafe.Pointer(dst)), size)
	copy(dstBytes, src)
}
