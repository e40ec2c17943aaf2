package main

import (
	"os"

	"github.com/cidroy-tech/create-adonis-starter/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.Report(os.Stderr, err)
		os.Exit(1)
	}
}
