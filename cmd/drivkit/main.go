package main

import (
	"os"

	"github.com/raveheart1/drivkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
