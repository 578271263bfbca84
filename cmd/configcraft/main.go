// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the configcraft CLI.
package main

import (
	"os"

	"github.com/configcraft/configcraft/cmd/configcraft/app"
	"github.com/configcraft/configcraft/pkg/logger"
)

func main() {
	// Initialize the logger
	logger.Initialize()

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
