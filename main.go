package main

import (
	"os"

	"github.com/typetone/typetone/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
