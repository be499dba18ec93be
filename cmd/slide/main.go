// Package main provides the slide CLI.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("slide: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		usage(w)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(w, "slide %s\n", version)
		return nil
	case "run":
		return runCycles(args[1:], w)
	case "act":
		return runAct(args[1:], w)
	case "info":
		return runInfo(w)
	case "help", "-h", "--help":
		usage(w)
		return nil
	default:
		usage(w)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "slide %s - in-place sliding-window forward/backward kernel\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run        Run forward, normalize and backward over one buffer")
	fmt.Fprintln(w, "  act        Tabulate an activation function and its derivative")
	fmt.Fprintln(w, "  info       Show platform and CPU features")
	fmt.Fprintln(w, "  version    Show version")
}
