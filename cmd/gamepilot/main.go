// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

// Command gamepilot scores a game library export from the command line.
package main

import (
	"os"

	"github.com/tomtom215/gamepilot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
