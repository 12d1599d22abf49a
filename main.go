// Package main is the entry point for the namelint CLI.
package main

import "namelint.dev/pkg/namelint/cmd"

func main() {
	cmd.Execute()
}
