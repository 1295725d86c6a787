package main

import (
	"os"

	"github.com/radix-num/radix/cmd/radix/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
