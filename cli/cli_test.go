// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logConfig struct {
	Verbose bool `flag:"v,verbose" desc:"verbose output"`
}

type testConfig struct {
	Name  string  `default:"run" desc:"the name"`
	Steps int     `default:"60" desc:"number of steps"`
	Rate  float64 `default:"30" flag:"r,rate" desc:"the rate"`
	Log   logConfig

	hidden int
}

func TestSetFromDefaults(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	assert.Equal(t, "run", cfg.Name)
	assert.Equal(t, 60, cfg.Steps)
	assert.Equal(t, 30.0, cfg.Rate)
	assert.False(t, cfg.Log.Verbose)
}

func TestAddFlags(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, AddFlags(fs, cfg))
	require.NoError(t, fs.Parse([]string{"-name", "other", "-r", "12.5", "-v", "arg"}))
	assert.Equal(t, "other", cfg.Name)
	assert.Equal(t, 60, cfg.Steps)
	assert.Equal(t, 12.5, cfg.Rate)
	assert.True(t, cfg.Log.Verbose)
	assert.Equal(t, []string{"arg"}, fs.Args())

	require.NoError(t, fs.Parse([]string{"-rate=2", "-steps", "7"}))
	assert.Equal(t, 2.0, cfg.Rate)
	assert.Equal(t, 7, cfg.Steps)

	var b bytes.Buffer
	fs.SetOutput(&b)
	assert.Error(t, fs.Parse([]string{"-steps", "many"}))
	fs.PrintDefaults()
	assert.Contains(t, b.String(), "number of steps")
	assert.Contains(t, b.String(), "(default 60)")

	assert.Error(t, AddFlags(fs, testConfig{}))
	assert.Nil(t, fs.Lookup("hidden"))
}
