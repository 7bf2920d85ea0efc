package process

import (
	"procmem/process/memory_map"
)

// MemoryAccessor is the byte-level read/write surface of an attached process
type MemoryAccessor interface {
	// ReadMemory reads exactly size bytes at addr or fails
	ReadMemory(addr ProcessMemoryAddress, size ProcessMemorySize) ([]byte, error)

	// WriteMemory writes all of data at addr or fails
	WriteMemory(addr ProcessMemoryAddress, data []byte) error
}

// Process is the interface that defines operations for interacting with a system process
type Process interface {
	// GetPID returns the process ID
	GetPID() ProcessID

	// MemoryRegions reads the current memory map of the process
	MemoryRegions() ([]memory_map.MemoryRegion, error)

	MemoryAccessor

	// Module lookups
	ModuleLocator

	// Signature scanning
	MemoryScanner
}

// ModuleLocator resolves loaded modules from the memory map
type ModuleLocator interface {
	// ModuleBaseAddress returns the start of the first region whose name ends with name
	ModuleBaseAddress(name string) (ProcessMemoryAddress, error)

	// ModuleExecutableRange returns the executable region following the first
	// region whose name contains name
	ModuleExecutableRange(name string) (MemoryRange, error)
}

// MemoryScanner defines operations for searching patterns in process memory
type MemoryScanner interface {
	// PatternScan compiles signature and searches the executable range of module
	PatternScan(module string, signature string) (ProcessMemoryAddress, error)

	// ScanRange searches a single contiguous range for the first occurrence of aob
	ScanRange(r MemoryRange, aob AOB) (ProcessMemoryAddress, error)
}
