package main

import (
	"fmt"
	"os"

	"lspwire/src/cli"
)

// runMain executes the main application logic and returns the exit code
func runMain() int {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		return 1
	}
	return 0
}

func main() {
	exitCode := runMain()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
