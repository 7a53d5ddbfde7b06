package main

import (
	"os"

	"github.com/rustyeddy/brokerhub/cmd/brokerhub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
