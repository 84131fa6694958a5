package main

import (
	"os"

	"github.com/rtighilt/MARS/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
