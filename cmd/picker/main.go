// Package main is the entry point for the picker CLI.
package main

import "github.com/morrisclay/picker-cli/internal/cli"

func main() {
	cli.Execute()
}
