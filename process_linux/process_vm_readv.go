//go:build linux

package process_linux

import (
	"fmt"

	"procmem/process"

	"golang.org/x/sys/unix"
)

// vmTransfer is the cross-process copy primitive. Both directions report the
// number of bytes actually moved.
type vmTransfer interface {
	readv(pid process.ProcessID, localBuf []byte, remoteAddr process.ProcessMemoryAddress) (int, error)
	writev(pid process.ProcessID, localBuf []byte, remoteAddr process.ProcessMemoryAddress) (int, error)
}

// processVM implements vmTransfer with process_vm_readv and process_vm_writev
type processVM struct{}

// readv uses the process_vm_readv syscall to read memory from another process
func (processVM) readv(pid process.ProcessID, localBuf []byte, remoteAddr process.ProcessMemoryAddress) (int, error) {
	// Create iovec for local buffer
	localIov := unix.Iovec{Base: &localBuf[0]}
	localIov.SetLen(len(localBuf))

	// Create iovec for remote buffer
	remoteIov := unix.RemoteIovec{
		Base: uintptr(remoteAddr),
		Len:  len(localBuf),
	}

	n, err := unix.ProcessVMReadv(int(pid), []unix.Iovec{localIov}, []unix.RemoteIovec{remoteIov}, 0)
	if err != nil {
		return 0, fmt.Errorf("process_vm_readv: %w", err)
	}

	return n, nil
}

// ReadMemory reads memory from the process at the specified address.
// A zero size succeeds with an empty buffer regardless of addr.
func (p *LinuxProcess) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, size)

	n, err := p.vm.readv(p.pid, buf, addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s at %s: %w", process.ErrReadFailed, size.ToString(), addr.ToString(), err)
	}

	// Check if we read the expected number of bytes
	if n != len(buf) {
		return nil, fmt.Errorf("%w: partial read of %d of %d bytes at %s", process.ErrReadFailed, n, size, addr.ToString())
	}

	return buf, nil
}
