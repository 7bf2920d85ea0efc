package process

import (
	"fmt"
	"strconv"
	"strings"
)

// ProcessMemoryAddress represents a memory address within a process.
// It is never converted to a Go pointer; the accessor hands it to the
// cross-process copy primitive as a plain integer.
type ProcessMemoryAddress uint64

func (pma ProcessMemoryAddress) ToString() string {
	return fmt.Sprintf("0x%X", uint64(pma))
}

// ProcessMemorySize represents a size of memory region
type ProcessMemorySize uint

func (pms ProcessMemorySize) ToString() string {
	return fmt.Sprintf("%d bytes", uint(pms))
}

// MemoryRange is a half-open [Start, End) span of the target's address space
type MemoryRange struct {
	Start ProcessMemoryAddress
	End   ProcessMemoryAddress
}

// Size returns the length of the range, zero for an inverted range
func (r MemoryRange) Size() ProcessMemorySize {
	if r.End <= r.Start {
		return 0
	}
	return ProcessMemorySize(r.End - r.Start)
}

func (r MemoryRange) ToString() string {
	return fmt.Sprintf("%s-%s", r.Start.ToString(), r.End.ToString())
}

// AOB (Array of Bytes) represents a pattern to search for in memory
type AOB struct {
	Pattern []byte // The byte pattern to search for
	Mask    []byte // 0xFF means exact match and 0x00 means wildcard
}

// IsValid checks if the AOB pattern is valid
func (aob AOB) IsValid() bool {
	return len(aob.Pattern) > 0 && len(aob.Pattern) == len(aob.Mask)
}

// Len returns the number of match units in the pattern
func (aob AOB) Len() int {
	return len(aob.Pattern)
}

func NewAOB(pattern, mask []byte) (AOB, error) {
	if len(pattern) != len(mask) {
		return AOB{}, fmt.Errorf("%w: pattern and mask must be of the same length", ErrInvalidSignature)
	}
	if len(pattern) == 0 {
		return AOB{}, fmt.Errorf("%w: empty pattern", ErrInvalidSignature)
	}
	return AOB{Pattern: pattern, Mask: mask}, nil
}

// ParseAOB compiles a signature such as "48 8B ?? 00" into an AOB.
//
// Spaces are skipped. A token of one or two '?' characters is a single
// wildcard, anything else must be exactly two hex digits.
func ParseAOB(signature string) (AOB, error) {
	var aob AOB

	for i := 0; i < len(signature); {
		switch signature[i] {
		case ' ':
			i++
			continue
		case '?':
			aob.Pattern = append(aob.Pattern, 0)
			aob.Mask = append(aob.Mask, 0x00)
			if i+1 < len(signature) && signature[i+1] == '?' {
				i += 2
			} else {
				i++
			}
			continue
		}

		if i+2 > len(signature) {
			return AOB{}, fmt.Errorf("%w: truncated byte %q at position %d", ErrInvalidSignature, signature[i:], i)
		}

		token := signature[i : i+2]
		val, err := strconv.ParseUint(token, 16, 8)
		if err != nil {
			return AOB{}, fmt.Errorf("%w: invalid hex byte %q at position %d", ErrInvalidSignature, token, i)
		}

		aob.Pattern = append(aob.Pattern, byte(val))
		aob.Mask = append(aob.Mask, 0xFF)
		i += 2
	}

	if len(aob.Pattern) == 0 {
		return AOB{}, fmt.Errorf("%w: empty signature", ErrInvalidSignature)
	}

	return aob, nil
}

// MustParseAOB is ParseAOB for signatures known at compile time
func MustParseAOB(signature string) AOB {
	aob, err := ParseAOB(signature)
	if err != nil {
		panic(err)
	}
	return aob
}

// String renders the pattern in signature syntax
func (aob AOB) String() string {
	var sb strings.Builder
	for i, b := range aob.Pattern {
		if i > 0 {
			sb.WriteString(" ")
		}
		if i < len(aob.Mask) && aob.Mask[i] == 0 {
			sb.WriteString("??")
		} else {
			fmt.Fprintf(&sb, "%02X", b)
		}
	}
	return sb.String()
}

// Find returns the offset of the leftmost match of the pattern in data
func (aob AOB) Find(data []byte) (int, bool) {
	if !aob.IsValid() {
		return -1, false
	}

	// Signed bound: a pattern longer than data leaves no candidate offset
	last := len(data) - len(aob.Pattern)
	if last < 0 {
		return -1, false
	}

	for i := 0; i <= last; i++ {
		if aob.matchAt(data, i) {
			return i, true
		}
	}

	return -1, false
}

func (aob AOB) matchAt(data []byte, i int) bool {
	for j := 0; j < len(aob.Pattern); j++ {
		// Apply the mask: if mask byte is 0, skip this byte (wildcard)
		if aob.Mask[j] == 0 {
			continue
		}

		if data[i+j]&aob.Mask[j] != aob.Pattern[j]&aob.Mask[j] {
			return false
		}
	}
	return true
}

// ScanBuffer searches data, which was read from base, for the pattern and
// returns the absolute address of the first match
func ScanBuffer(data []byte, base ProcessMemoryAddress, aob AOB) (ProcessMemoryAddress, bool) {
	offset, ok := aob.Find(data)
	if !ok {
		return 0, false
	}
	return base + ProcessMemoryAddress(offset), true
}
