// tinctconv - colour conversion from the command line
//
// tinctconv converts colours between HSL, RGB, hexadecimal and CSS string
// forms, one value at a time or in batches.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/tinctconv/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
