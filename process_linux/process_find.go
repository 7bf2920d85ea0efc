//go:build linux

package process_linux

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"procmem/process"

	gopsprocess "github.com/shirou/gopsutil/v3/process"
)

// LinuxProcessFinder implements the process.ProcessFinder interface
type LinuxProcessFinder struct{}

// NewProcessFinder creates a new LinuxProcessFinder
func NewProcessFinder() process.ProcessFinder {
	return &LinuxProcessFinder{}
}

// FindProcessByName returns the first process whose name (the Name field of
// /proc/[pid]/status) equals name. The match is exact and case-sensitive.
func (f *LinuxProcessFinder) FindProcessByName(name string) (process.ProcessID, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty name", process.ErrProcessNotFound)
	}

	procs, err := gopsprocess.Processes()
	if err != nil {
		return 0, fmt.Errorf("failed to list processes: %w", err)
	}

	for _, p := range procs {
		procName, err := p.Name()
		if err != nil {
			// Process may have terminated while we were reading
			continue
		}

		if procName == name {
			return process.ProcessID(p.Pid), nil
		}
	}

	return 0, fmt.Errorf("%w: no process found with name '%s'", process.ErrProcessNotFound, name)
}

// FindProcess finds a process by name and returns its PID
func FindProcess(name string) (process.ProcessID, error) {
	return NewProcessFinder().FindProcessByName(name)
}

func procExists(pid process.ProcessID) bool {
	if pid <= 0 {
		return false
	}

	// Fast path: stat /proc/<pid>
	_, err := os.Stat(filepath.Join("/proc", strconv.Itoa(int(pid))))
	if err == nil {
		return true
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	// For transient errors (permission, EIO): fall back to kill 0
	return syscall.Kill(int(pid), 0) == nil
}
