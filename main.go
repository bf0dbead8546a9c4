// Package main is the entry point for the Inventa CLI application.
package main

import (
	"inventa/cli/cmd"
)

func main() {
	cmd.Execute()
}
