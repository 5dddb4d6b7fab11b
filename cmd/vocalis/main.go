package main

import (
	"os"

	"github.com/vocalis-labs/vocalis/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
