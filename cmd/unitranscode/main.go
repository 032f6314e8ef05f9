// Command unitranscode is a demonstration CLI for the zlutf streaming
// Unicode transcoder (spec.md §1's "external collaborator" driving the
// core library from the outside, not a part of it).
package main

import (
	"fmt"
	"os"

	"github.com/zyl910/zlutf/cmd/unitranscode/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "unitranscode:", err)
		os.Exit(1)
	}
}
