// Package main is the entry point for the minigrep CLI.
package main

import "minigrep.dev/pkg/minigrep/cmd"

func main() {
	cmd.Execute()
}
