//go:build linux

package process_linux

import (
	"fmt"

	"procmem/process"
)

// PatternScan compiles signature and returns the address of its first
// occurrence in the executable range of module.
//
// A malformed signature fails with process.ErrInvalidSignature before the
// target is touched.
func (p *LinuxProcess) PatternScan(module string, signature string) (process.ProcessMemoryAddress, error) {
	aob, err := process.ParseAOB(signature)
	if err != nil {
		return 0, err
	}

	r, err := p.ModuleExecutableRange(module)
	if err != nil {
		return 0, err
	}

	addr, err := p.ScanRange(r, aob)
	if err != nil {
		return 0, fmt.Errorf("scan %s: %w", module, err)
	}

	return addr, nil
}

// ScanRange reads r in a single transfer and searches it for aob
func (p *LinuxProcess) ScanRange(r process.MemoryRange, aob process.AOB) (process.ProcessMemoryAddress, error) {
	if !aob.IsValid() {
		return 0, fmt.Errorf("%w: mask length (%d) doesn't match pattern length (%d)",
			process.ErrInvalidSignature, len(aob.Mask), len(aob.Pattern))
	}

	p.log.Debugln("Scanning", r.ToString(), "for", aob.String())

	data, err := p.ReadMemory(r.Start, r.Size())
	if err != nil {
		return 0, err
	}

	addr, ok := process.ScanBuffer(data, r.Start, aob)
	if !ok {
		return 0, process.ErrPatternNotFound
	}

	p.log.Debugln("Found match at", addr.ToString())
	return addr, nil
}
