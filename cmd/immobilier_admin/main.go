// Package main is the maintenance CLI for the Immobilier backend.
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd(&app{})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
