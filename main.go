// main is the entry point for the smellscan CLI.
package main

import (
	"github.com/smellscan/smellscan/cmd"
	"github.com/smellscan/smellscan/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
