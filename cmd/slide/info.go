package main

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"
)

// runInfo reports the platform features that affect how the branchless
// activations and the float32 dot product compile.
func runInfo(w io.Writer) error {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())

	switch runtime.GOARCH {
	case "amd64":
		fmt.Fprintf(w, "  HasSSE41:    %v\n", cpu.X86.HasSSE41)
		fmt.Fprintf(w, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasFMA:      %v\n", cpu.X86.HasFMA)
		fmt.Fprintf(w, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	case "arm64":
		fmt.Fprintf(w, "  HasASIMD:    %v\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasFP:       %v\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  HasSVE:      %v\n", cpu.ARM64.HasSVE)
	}
	fmt.Fprintln(w, "kernel products are rounded before accumulation; results do not depend on FMA")
	return nil
}
