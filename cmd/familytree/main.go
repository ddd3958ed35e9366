// familytree — an expandable family tree in the terminal.
//
// Usage:
//
//	familytree [command] [flags]
//
// Commands:
//
//	view      Run the interactive tree (default)
//	render    Print the tree once, with chosen nodes expanded
//	import    Validate a payload and store it in SQLite
//	list      List stored trees
//	delete    Remove a stored tree
//	check     Validate a payload without storing it
//	version   Print version information
package main

import (
	"fmt"
	"os"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
