package process

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatMemory is a MemoryAccessor over a byte slice mapped at base
type flatMemory struct {
	base ProcessMemoryAddress
	data []byte
}

func (m *flatMemory) bounds(addr ProcessMemoryAddress, size int) (int, bool) {
	if addr < m.base {
		return 0, false
	}
	off := int(addr - m.base)
	return off, off+size <= len(m.data)
}

func (m *flatMemory) ReadMemory(addr ProcessMemoryAddress, size ProcessMemorySize) ([]byte, error) {
	off, ok := m.bounds(addr, int(size))
	if !ok {
		return nil, ErrReadFailed
	}
	out := make([]byte, size)
	copy(out, m.data[off:])
	return out, nil
}

func (m *flatMemory) WriteMemory(addr ProcessMemoryAddress, data []byte) error {
	off, ok := m.bounds(addr, len(data))
	if !ok {
		return ErrWriteFailed
	}
	copy(m.data[off:], data)
	return nil
}

func TestReadWrite_Typed(t *testing.T) {
	mem := &flatMemory{base: 0x1000, data: make([]byte, 64)}

	require.NoError(t, Write[uint32](mem, 0x1004, 0xDEADBEEF))
	assert.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, mem.data[4:8])

	v, err := Read[uint32](mem, 0x1004)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), v)

	type vec3 struct{ X, Y, Z float32 }
	require.NoError(t, Write(mem, 0x1010, vec3{1, 2, 3}))

	got, err := Read[vec3](mem, 0x1010)
	require.NoError(t, err)
	assert.Equal(t, vec3{1, 2, 3}, got)
}

func TestReadWrite_Failures(t *testing.T) {
	mem := &flatMemory{base: 0x1000, data: make([]byte, 4)}

	_, err := Read[uint64](mem, 0x1000)
	assert.True(t, errors.Is(err, ErrReadFailed))

	err = Write[uint64](mem, 0x1000, 1)
	assert.ErrorIs(t, err, ErrWriteFailed)
}

func TestRead_ZeroSized(t *testing.T) {
	mem := &flatMemory{}

	_, err := Read[struct{}](mem, 0)
	assert.NoError(t, err)
	assert.NoError(t, Write(mem, 0, struct{}{}))
}

func TestReadPath(t *testing.T) {
	mem := &flatMemory{base: 0x1000, data: make([]byte, 64)}

	// 0x1000 -> [+8] 0x1020 -> [+0x10] 0x1010, value at 0x1010+4
	require.NoError(t, Write[uint64](mem, 0x1008, 0x1020))
	require.NoError(t, Write[uint64](mem, 0x1030, 0x1010))
	require.NoError(t, Write[int32](mem, 0x1014, -7))

	v, err := ReadPath[int32](mem, 0x1000, 8, 0x10, 4)
	require.NoError(t, err)
	assert.Equal(t, int32(-7), v)

	direct, err := ReadPath[uint64](mem, 0x1008)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1020), direct)
}

func TestReadPath_NullPointer(t *testing.T) {
	mem := &flatMemory{base: 0x1000, data: make([]byte, 32)}

	_, err := ReadPath[uint32](mem, 0x1000, 0, 4)
	assert.ErrorContains(t, err, "null")
}
