//go:build linux

package process_linux

import (
	"fmt"

	"procmem/process"

	"golang.org/x/sys/unix"
)

// writev uses the process_vm_writev syscall to write memory to another process
func (processVM) writev(pid process.ProcessID, localBuf []byte, remoteAddr process.ProcessMemoryAddress) (int, error) {
	localIov := unix.Iovec{Base: &localBuf[0]}
	localIov.SetLen(len(localBuf))

	remoteIov := unix.RemoteIovec{
		Base: uintptr(remoteAddr),
		Len:  len(localBuf),
	}

	n, err := unix.ProcessVMWritev(int(pid), []unix.Iovec{localIov}, []unix.RemoteIovec{remoteIov}, 0)
	if err != nil {
		return 0, fmt.Errorf("process_vm_writev: %w", err)
	}

	return n, nil
}

// WriteMemory writes data to the process memory at the specified address.
// A write that moves fewer bytes than len(data) is a hard failure: the
// target has been modified and is in an unknown state.
func (p *LinuxProcess) WriteMemory(addr process.ProcessMemoryAddress, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	// Create a copy of the data to avoid potential modification during the write
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	written, err := p.vm.writev(p.pid, dataCopy, addr)
	if err != nil {
		return fmt.Errorf("%w: %d bytes at %s: %w", process.ErrWriteFailed, len(data), addr.ToString(), err)
	}

	if written != len(data) {
		p.log.Warn("Partial write at ", addr.ToString(), ": ", written, " of ", len(data), " bytes")
		return fmt.Errorf("%w: only wrote %d of %d bytes at %s", process.ErrPartialWrite, written, len(data), addr.ToString())
	}

	return nil
}
