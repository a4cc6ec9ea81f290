package main

import (
	"os"

	"github.com/3leaps/relcheck/internal/cli"
)

func init() {
	cli.Version = version
}

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
