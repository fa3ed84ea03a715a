package main

import (
	"os"

	"github.com/damedic/dnf-toolbox-go/cmd/dnf/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
