package memory_map

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Permissions is the decoded permission column of a maps line (e.g. "r-xp")
type Permissions struct {
	Read    bool
	Write   bool
	Execute bool
	Shared  bool // 's' instead of 'p'
}

// ParsePermissions decodes a permission string such as "rw-p"
func ParsePermissions(perms string) Permissions {
	return Permissions{
		Read:    len(perms) > 0 && perms[0] == 'r',
		Write:   len(perms) > 1 && perms[1] == 'w',
		Execute: len(perms) > 2 && perms[2] == 'x',
		Shared:  len(perms) > 3 && perms[3] == 's',
	}
}

// MemoryRegion represents one mapped region of a process's address space
type MemoryRegion struct {
	Start  uint64 // The starting address of the memory region
	End    uint64 // One past the last address of the memory region
	Perms  string // Raw permissions (e.g., "r-xp" for read, execute, private)
	Offset uint64 // Offset into the backing file
	Device string // Backing device as "major:minor"
	Inode  uint64 // Backing object identifier, 0 for anonymous mappings
	Name   string // Path or pseudo-name such as [heap], may be empty
}

// Size returns the size of the memory region in bytes
func (r MemoryRegion) Size() uint64 {
	return r.End - r.Start
}

// Permissions returns the decoded permission flags
func (r MemoryRegion) Permissions() Permissions {
	return ParsePermissions(r.Perms)
}

func (r MemoryRegion) IsReadable() bool {
	return r.Permissions().Read
}

func (r MemoryRegion) IsWritable() bool {
	return r.Permissions().Write
}

func (r MemoryRegion) IsExecutable() bool {
	return r.Permissions().Execute
}

// IsAnonymous reports whether the region is not backed by a file
func (r MemoryRegion) IsAnonymous() bool {
	return r.Inode == 0
}

// String returns a string representation of the memory region
func (r MemoryRegion) String() string {
	return fmt.Sprintf("%x-%x %s %08x %s %d %s", r.Start, r.End, r.Perms, r.Offset, r.Device, r.Inode, r.Name)
}

// MemoryMap defines the interface for reading a process's memory map
type MemoryMap interface {
	// ReadMemoryMap reads and parses the memory map for a process.
	// Every call reflects the address space at the time of the call.
	ReadMemoryMap(pid int) ([]MemoryRegion, error)
}

// ParseMemoryMap parses the /proc/[pid]/maps text format.
//
// Each line is "start-end perms offset dev inode [name]". Lines that do not
// follow this layout are skipped. Regions keep the order of the input.
func ParseMemoryMap(r io.Reader) ([]MemoryRegion, error) {
	var regions []MemoryRegion

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		region, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		regions = append(regions, region)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return regions, nil
}

func parseLine(line string) (MemoryRegion, bool) {
	var fields [5]string
	rest := line
	for i := range fields {
		rest = strings.TrimLeft(rest, " \t")
		end := strings.IndexAny(rest, " \t")
		if end < 0 {
			end = len(rest)
		}
		fields[i] = rest[:end]
		rest = rest[end:]
	}
	if fields[4] == "" {
		return MemoryRegion{}, false
	}

	// Parse address range (e.g., "00400000-0040b000")
	addrRange := strings.SplitN(fields[0], "-", 2)
	if len(addrRange) != 2 {
		return MemoryRegion{}, false
	}

	start, err := strconv.ParseUint(addrRange[0], 16, 64)
	if err != nil {
		return MemoryRegion{}, false
	}

	end, err := strconv.ParseUint(addrRange[1], 16, 64)
	if err != nil || end <= start {
		return MemoryRegion{}, false
	}

	offset, err := strconv.ParseUint(fields[2], 16, 64)
	if err != nil {
		return MemoryRegion{}, false
	}

	inode, err := strconv.ParseUint(fields[4], 10, 64)
	if err != nil {
		return MemoryRegion{}, false
	}

	return MemoryRegion{
		Start:  start,
		End:    end,
		Perms:  fields[1],
		Offset: offset,
		Device: fields[3],
		Inode:  inode,
		Name:   strings.TrimSpace(rest),
	}, true
}
