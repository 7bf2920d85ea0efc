package process

// ProcessFinder discovers running processes
type ProcessFinder interface {
	// FindProcessByName returns the PID of a process whose name equals name
	// (exact match), or ErrProcessNotFound
	FindProcessByName(name string) (ProcessID, error)
}
