package main

import (
	"os"

	"github.com/linerhc/linerhc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
