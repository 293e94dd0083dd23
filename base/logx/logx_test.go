// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	lg := slog.New(NewHandlerOutput(out, &slog.HandlerOptions{Level: slog.LevelInfo}))

	lg.Debug("hidden")
	assert.Equal(t, "", buf.String())

	lg.Info("created object", "name", "A", "kind", "Box")
	assert.Equal(t, "INFO created object name=A kind=Box\n", buf.String())

	buf.Reset()
	lg.With("scene", "main").WithGroup("body").Warn("not found", "name", "B")
	assert.Equal(t, "WARN not found scene=main body.name=B\n", buf.String())
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}
