//go:build linux

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"procmem/hexdump"
	"procmem/process"
	"procmem/process_linux"
)

func main() {
	nameFlag := flag.String("name", "", "Name of the process to attach to")
	moduleFlag := flag.String("module", "", "Module to scan")
	sigFlag := flag.String("sig", "", "Signature to scan for (e.g., '48 8B ?? 00')")
	contextFlag := flag.Uint("context", 16, "Bytes of context to dump around a match")
	flag.Parse()

	if *nameFlag == "" || *moduleFlag == "" {
		fmt.Println("Error: --name and --module are required")
		flag.Usage()
		os.Exit(1)
	}

	// Compile first so a bad signature never touches the target
	var aob process.AOB
	if *sigFlag != "" {
		var err error
		aob, err = process.ParseAOB(*sigFlag)
		if err != nil {
			fmt.Printf("Error parsing signature: %v\n", err)
			os.Exit(1)
		}
	}

	proc, err := process_linux.Open(*nameFlag)
	if err != nil {
		fmt.Printf("Error attaching to process %s: %v\n", *nameFlag, err)
		os.Exit(1)
	}

	fmt.Printf("Attached to process %s (pid %d)\n", *nameFlag, proc.GetPID())

	if base, err := proc.ModuleBaseAddress(*moduleFlag); err == nil {
		fmt.Printf("Module %s base: %s\n", *moduleFlag, base.ToString())
	} else {
		fmt.Printf("Module %s base: %v\n", *moduleFlag, err)
	}

	r, err := proc.ModuleExecutableRange(*moduleFlag)
	if err != nil {
		fmt.Printf("Error resolving executable range: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Executable range: %s (%s)\n", r.ToString(), r.Size().ToString())

	if *sigFlag == "" {
		return
	}

	fmt.Printf("Scanning for pattern: %s\n", aob.String())

	match, err := proc.ScanRange(r, aob)
	if errors.Is(err, process.ErrPatternNotFound) {
		fmt.Println("Pattern not found")
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Error scanning memory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Match at %s\n", match.ToString())

	// Dump the match with context, clamped to the executable range
	start := r.Start
	if match-r.Start > process.ProcessMemoryAddress(*contextFlag) {
		start = match - process.ProcessMemoryAddress(*contextFlag)
	}
	end := match + process.ProcessMemoryAddress(aob.Len()) + process.ProcessMemoryAddress(*contextFlag)
	if end > r.End {
		end = r.End
	}

	data, err := proc.ReadMemory(start, process.MemoryRange{Start: start, End: end}.Size())
	if err != nil {
		fmt.Printf("Error reading context: %v\n", err)
		return
	}

	fmt.Print(hexdump.DumpMatch(data, uint64(start), uint64(match), aob.Len()))
}
