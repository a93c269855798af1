// Copyright 2025 Rollupcost Users
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/dotandev/rollupcost/internal/cmd"
)

// Build-time variables injected via -ldflags.
var (
	version = "dev"
)

func main() {
	if version != "" {
		cmd.Version = version
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
