// Package main provides the curio CLI, the front end that drives the
// collection inventory core. It plays the role the desktop windows played in
// the original application: gather input, call the core, render the result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
