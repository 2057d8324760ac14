package main

import (
	"fmt"
	"os"

	"github.com/funvibe/funffi/pkg/cli"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command>\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  check <file.yaml>   validate the callback signatures in a manifest")
	fmt.Fprintln(os.Stderr, "  types               list the registered native types")
}

func handleCheck() bool {
	if len(os.Args) < 2 || os.Args[1] != "check" {
		return false
	}
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s check <file.yaml>\n", os.Args[0])
		os.Exit(1)
	}
	os.Exit(cli.NewRunner(os.Stdout).Check(os.Args[2]))
	return true
}

func handleTypes() bool {
	if len(os.Args) < 2 || os.Args[1] != "types" {
		return false
	}
	os.Exit(cli.NewRunner(os.Stdout).Types())
	return true
}

func main() {
	if len(os.Args) < 2 || os.Args[1] == "-help" || os.Args[1] == "--help" || os.Args[1] == "help" {
		usage()
		if len(os.Args) < 2 {
			os.Exit(1)
		}
		return
	}

	if handleCheck() {
		return
	}
	if handleTypes() {
		return
	}

	fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
	usage()
	os.Exit(1)
}
