// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/xyzsim/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadyOrder(t *testing.T) {
	release := make(chan struct{})
	r := NewReady(func(ctx context.Context) (*Sim, error) {
		<-release
		return New(nil), nil
	})
	var order []string
	res := r.Run(func(s *Sim) {
		order = append(order, "create")
		s.Create("A", Box)
	})
	assert.Equal(t, Pending, res.Status)
	var got Result[bool]
	q := Query(r, func(s *Sim) bool {
		order = append(order, "query")
		return s.Has("A")
	}, func(res Result[bool]) { got = res })
	assert.Equal(t, Pending, q.Status)
	assert.Equal(t, Pending, r.Poll())
	assert.Nil(t, r.Sim())
	assert.Empty(t, order)

	close(release)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, r.Wait(ctx))
	assert.Equal(t, Done, r.Status())
	assert.Equal(t, []string{"create", "query"}, order)
	assert.Equal(t, Done, got.Status)
	assert.True(t, got.Value)

	q = Query(r, func(s *Sim) bool { return s.Has("A") }, nil)
	assert.Equal(t, Done, q.Status)
	assert.True(t, q.Value)
	res = r.Run(func(s *Sim) { s.Delete("A") })
	assert.Equal(t, Done, res.Status)
	assert.False(t, r.Sim().Has("A"))
}

func TestReadyFailure(t *testing.T) {
	errInit := errors.New("no engine")
	r := NewReady(func(ctx context.Context) (*Sim, error) {
		return nil, errInit
	})
	ran := false
	var got Result[int]
	res := r.Run(func(s *Sim) { ran = true })
	assert.Equal(t, Pending, res.Status)
	Query(r, func(s *Sim) int { return 1 }, func(res Result[int]) { got = res })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := r.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInit)
	assert.False(t, ran)
	assert.Equal(t, Failed, got.Status)
	assert.ErrorIs(t, got.Err, errInit)

	res = r.Run(func(s *Sim) { ran = true })
	assert.Equal(t, Failed, res.Status)
	assert.ErrorIs(t, res.Err, errInit)
	assert.False(t, ran)
	assert.Equal(t, Failed, r.Poll())
}

func TestReadyNilSim(t *testing.T) {
	r := NewReady(func(ctx context.Context) (*Sim, error) { return nil, nil })
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.Error(t, r.Wait(ctx))
	assert.Equal(t, Failed, r.Status())
}

func TestReadyWaitCanceled(t *testing.T) {
	r := NewReady(func(ctx context.Context) (*Sim, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Wait(ctx), context.Canceled)
}

func TestDefaultInit(t *testing.T) {
	sm, err := DefaultInit("")(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float32(60), sm.Settings.Render.FOV)

	fn := filepath.Join(t.TempDir(), "settings.toml")
	st := settings.New()
	st.Render.Width = 64
	st.Physics.MaxSubSteps = 4
	require.NoError(t, st.Save(fn))
	sm, err = DefaultInit(fn)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 64, sm.Scene.Width)
	assert.Equal(t, 4, sm.Settings.Physics.MaxSubSteps)

	_, err = DefaultInit(filepath.Join(t.TempDir(), "none.toml"))(context.Background())
	assert.Error(t, err)
}
