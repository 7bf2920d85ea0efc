//go:build linux

package process_linux

import (
	"fmt"

	"procmem/process"
	"procmem/process/memory_map"
)

// ModuleBaseAddress returns the start address of the first mapped region
// whose name ends with name
func (p *LinuxProcess) ModuleBaseAddress(name string) (process.ProcessMemoryAddress, error) {
	regions, err := p.MemoryRegions()
	if err != nil {
		return 0, err
	}

	base, ok := memory_map.ModuleBaseAddress(regions, name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", process.ErrModuleNotFound, name)
	}

	return process.ProcessMemoryAddress(base), nil
}

// ModuleExecutableRange returns the bounds of the executable region that
// follows the first region whose name contains name
func (p *LinuxProcess) ModuleExecutableRange(name string) (process.MemoryRange, error) {
	regions, err := p.MemoryRegions()
	if err != nil {
		return process.MemoryRange{}, err
	}

	region, ok := memory_map.ModuleExecutableRegion(regions, name)
	if !ok {
		return process.MemoryRange{}, fmt.Errorf("%w: no scannable executable region for %q", process.ErrModuleNotFound, name)
	}

	return process.MemoryRange{
		Start: process.ProcessMemoryAddress(region.Start),
		End:   process.ProcessMemoryAddress(region.End),
	}, nil
}
