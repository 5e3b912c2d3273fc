// Command jsontag adds json tags to struct field lines of a Go source file and
// prints the result to the standard output.
//
// Usage:
//
//	jsontag [--config file] [--key json] [--loglevel warn] [file]
//
// The file defaults to types.go in the working directory.
package main

import (
	"github.com/sirkon/jsontag/internal/cli"
)

func main() {
	cli.Execute()
}
