package main

import (
	"os"

	"github.com/AnyUserName/icoforge-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
