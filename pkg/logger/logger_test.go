// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingletonReplacement(t *testing.T) { //nolint:paralleltest // swaps the singleton
	original := Get()
	defer Set(original)

	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, nil)))

	Infow("hello", "key", "value")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "key=value")

	buf.Reset()
	Warnf("count is %d", 3)
	assert.Contains(t, buf.String(), "count is 3")
}

func TestDefaultLoggerSkipsDebug(t *testing.T) { //nolint:paralleltest // swaps the singleton
	original := Get()
	defer Set(original)

	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	Debug("hidden")
	assert.Empty(t, buf.String())
}
