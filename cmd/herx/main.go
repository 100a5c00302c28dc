// herx - Herxheimer BPM calculator
//
// herx evaluates the Herxheimer BPM formula from a frequency and three
// hex colours.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/herx/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
