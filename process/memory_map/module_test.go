package memory_map

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) []MemoryRegion {
	t.Helper()
	regions, err := ParseMemoryMap(strings.NewReader(text))
	require.NoError(t, err)
	return regions
}

func TestModuleBaseAddress_FirstSuffixMatch(t *testing.T) {
	regions := mustParse(t, `
10000-11000 r--p 00000000 08:02 11 /opt/a/libgame.so
11000-12000 r-xp 00001000 08:02 11 /opt/a/libgame.so
20000-21000 r--p 00000000 08:02 12 /opt/b/libgame.so
`)

	base, ok := ModuleBaseAddress(regions, "libgame.so")
	require.True(t, ok)
	assert.Equal(t, uint64(0x10000), base)
}

func TestModuleBaseAddress_SuffixNotSubstring(t *testing.T) {
	regions := mustParse(t, `
10000-11000 r--p 00000000 08:02 11 /opt/libgame.so.1
20000-21000 r--p 00000000 08:02 12 /opt/libgame.so
`)

	base, ok := ModuleBaseAddress(regions, "libgame.so")
	require.True(t, ok)
	assert.Equal(t, uint64(0x20000), base)
}

func TestModuleBaseAddress_NotFound(t *testing.T) {
	regions := mustParse(t, sampleMaps)

	_, ok := ModuleBaseAddress(regions, "libmissing.so")
	assert.False(t, ok)

	_, ok = ModuleBaseAddress(regions, "")
	assert.False(t, ok)

	_, ok = ModuleBaseAddress(nil, "target")
	assert.False(t, ok)
}

func TestModuleExecutableRegion_AnonymousSegments(t *testing.T) {
	regions := mustParse(t, `
1000-2000 r--p 00000000 00:00 0 [anon:game.exe]
2000-3000 rw-p 00000000 00:00 0
3000-5000 r-xp 00000000 00:00 0
5000-6000 r-xp 00000000 00:00 0
`)

	region, ok := ModuleExecutableRegion(regions, "game.exe")
	require.True(t, ok)
	assert.Equal(t, uint64(0x3000), region.Start)
	assert.Equal(t, uint64(0x5000), region.End)
}

func TestModuleExecutableRegion_SkipsMatchingRegionItself(t *testing.T) {
	regions := mustParse(t, `
1000-2000 r-xp 00000000 00:00 0 [anon:game.exe]
2000-3000 r-xp 00000000 00:00 0
`)

	region, ok := ModuleExecutableRegion(regions, "game.exe")
	require.True(t, ok)
	assert.Equal(t, uint64(0x2000), region.Start)
}

func TestModuleExecutableRegion_BackedMatchAborts(t *testing.T) {
	regions := mustParse(t, `
1000-2000 r--p 00000000 08:02 77 /usr/lib/libgame.so
2000-3000 r-xp 00000000 00:00 0
`)

	_, ok := ModuleExecutableRegion(regions, "libgame.so")
	assert.False(t, ok)
}

func TestModuleExecutableRegion_BackedFollowerAborts(t *testing.T) {
	regions := mustParse(t, `
1000-2000 r--p 00000000 00:00 0 [anon:game.exe]
2000-3000 r--p 00000000 08:02 77 /usr/lib/libother.so
3000-4000 r-xp 00000000 00:00 0
`)

	_, ok := ModuleExecutableRegion(regions, "game.exe")
	assert.False(t, ok)
}

func TestModuleExecutableRegion_NoExecutableFollower(t *testing.T) {
	regions := mustParse(t, `
1000-2000 r--p 00000000 00:00 0 [anon:game.exe]
2000-3000 rw-p 00000000 00:00 0
`)

	_, ok := ModuleExecutableRegion(regions, "game.exe")
	assert.False(t, ok)

	_, ok = ModuleExecutableRegion(regions, "other.exe")
	assert.False(t, ok)

	_, ok = ModuleExecutableRegion(regions, "")
	assert.False(t, ok)
}

func TestModuleExecutableRegion_ContainsMatch(t *testing.T) {
	regions := mustParse(t, `
1000-2000 r--p 00000000 00:00 0 [anon:game.exe:segment]
2000-3000 r-xp 00000000 00:00 0
`)

	_, ok := ModuleExecutableRegion(regions, "game")
	assert.True(t, ok)
}
