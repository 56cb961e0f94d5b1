package main

import (
	"os"

	"github.com/conneroisu/expressor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
