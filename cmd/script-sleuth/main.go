// Package main is the entry point for the script-sleuth CLI
package main

import (
	"github.com/scriptsleuth/script-sleuth/internal/cli"
)

func main() {
	cli.Execute()
}
