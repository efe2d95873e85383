package main

import (
	"os"

	"github.com/vishalpa8/wealthwisegrow-sub000/cmd/wealthcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
