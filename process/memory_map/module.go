package memory_map

import "strings"

// ModuleBaseAddress returns the start address of the first region whose
// name ends with name. Loaders expose full paths, callers usually search by
// file name, so this is a suffix match.
func ModuleBaseAddress(regions []MemoryRegion, name string) (uint64, bool) {
	if name == "" {
		return 0, false
	}

	for _, region := range regions {
		if strings.HasSuffix(region.Name, name) {
			return region.Start, true
		}
	}
	return 0, false
}

// ModuleExecutableRegion returns the first executable region following the
// first region whose name contains name. The following regions are the
// module's other segments and may carry any name.
//
// Only anonymous regions are tolerated once the module has been found: a
// nonzero inode on the matching region or on any region walked after it
// ends the search with no result, even if an executable region follows.
func ModuleExecutableRegion(regions []MemoryRegion, name string) (MemoryRegion, bool) {
	if name == "" {
		return MemoryRegion{}, false
	}

	for i, region := range regions {
		if !strings.Contains(region.Name, name) {
			continue
		}

		if !region.IsAnonymous() {
			return MemoryRegion{}, false
		}

		for _, next := range regions[i+1:] {
			if !next.IsAnonymous() {
				return MemoryRegion{}, false
			}
			if next.IsExecutable() {
				return next, true
			}
		}
		return MemoryRegion{}, false
	}

	return MemoryRegion{}, false
}
