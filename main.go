package main

import (
	"os"

	"github.com/birmacher/empathetic-code-reviewer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
