package main

import (
	"os"

	"github.com/ndanilin/homepage/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
