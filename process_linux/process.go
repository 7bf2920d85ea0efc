//go:build linux

package process_linux

import (
	"fmt"

	"procmem/process"
	"procmem/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// LinuxProcess implements the process.Process interface for Linux systems.
//
// The PID is fixed at construction. If the target exits, every operation
// fails; there is nothing to release.
type LinuxProcess struct {
	pid process.ProcessID
	log *logger.Logger
	mm  memory_map.MemoryMap
	vm  vmTransfer
}

var _ process.Process = (*LinuxProcess)(nil)

// Open attaches to the first running process named name
func Open(name string, opts ...Option) (*LinuxProcess, error) {
	o := newOptions(opts)

	pid, err := o.finder.FindProcessByName(name)
	if err != nil {
		return nil, fmt.Errorf("open process %q: %w", name, err)
	}

	return newProcess(pid, o), nil
}

// NewWithPID attaches to the process with the given PID
func NewWithPID(pid process.ProcessID, opts ...Option) (*LinuxProcess, error) {
	if !procExists(pid) {
		return nil, fmt.Errorf("%w: pid %d", process.ErrProcessNotFound, pid)
	}

	return newProcess(pid, newOptions(opts)), nil
}

func newProcess(pid process.ProcessID, o *options) *LinuxProcess {
	p := &LinuxProcess{
		pid: pid,
		log: o.log,
		mm:  o.mm,
		vm:  o.vm,
	}

	if p.log == nil {
		p.log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", pid)))
	}

	p.log.Infoln("Process opened")

	return p
}

// GetPID returns the process ID
func (p *LinuxProcess) GetPID() process.ProcessID {
	return p.pid
}

// MemoryRegions reads the memory map of the process. The map is never
// cached: each call reflects the address space at that moment.
func (p *LinuxProcess) MemoryRegions() ([]memory_map.MemoryRegion, error) {
	regions, err := p.mm.ReadMemoryMap(int(p.pid))
	if err != nil {
		return nil, fmt.Errorf("failed to read memory map: %w", err)
	}

	p.log.Debugln("Read memory map with", len(regions), "regions")
	return regions, nil
}
