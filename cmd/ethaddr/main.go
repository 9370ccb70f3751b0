package main

import (
	"os"

	"github.com/dwdwow/ethaddr-go/cmd/ethaddr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
