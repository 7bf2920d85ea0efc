//go:build linux

package process_linux

import (
	"procmem/process"
	"procmem/process/memory_map"

	"github.com/Moonlight-Companies/gologger/logger"
)

type options struct {
	finder process.ProcessFinder
	mm     memory_map.MemoryMap
	log    *logger.Logger
	vm     vmTransfer
}

// Option is a function that configures a LinuxProcess
type Option func(*options)

// WithFinder replaces the process discovery used by Open
func WithFinder(finder process.ProcessFinder) Option {
	return func(o *options) {
		o.finder = finder
	}
}

// WithMemoryMap replaces the source of memory map regions
func WithMemoryMap(mm memory_map.MemoryMap) Option {
	return func(o *options) {
		o.mm = mm
	}
}

// WithLogger replaces the per-process logger
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func withTransfer(vm vmTransfer) Option {
	return func(o *options) {
		o.vm = vm
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		finder: NewProcessFinder(),
		mm:     memory_map.NewLinuxMemoryMap(),
		vm:     processVM{},
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}
