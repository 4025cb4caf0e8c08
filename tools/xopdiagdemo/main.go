// xopdiagdemo shows how a host application wires xopdiag: it reads a
// level from the command line, calls SetLevel, and logs descriptions
// of a few simulated platform objects.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
