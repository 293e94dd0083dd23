// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"image"
)

// RenderScheduler coalesces render requests: any number of requests
// between two paints produce a single frame. It has no timers of its
// own; the host is told when a paint is needed through Schedule.
type RenderScheduler struct {

	// Schedule is called by the first request after each paint, so that
	// the host can arrange for Paint to be called, e.g., on its next frame.
	Schedule func()

	// Render renders a frame.
	Render func() *image.RGBA

	// pending is whether a paint has been requested.
	pending bool

	// frames is the number of frames rendered.
	frames int
}

// Request requests a paint.
func (rs *RenderScheduler) Request() {
	if rs.pending {
		return
	}
	rs.pending = true
	if rs.Schedule != nil {
		rs.Schedule()
	}
}

// Pending returns whether a paint has been requested since the last one.
func (rs *RenderScheduler) Pending() bool {
	return rs.pending
}

// Paint renders a frame if one has been requested, returning
// whether it did.
func (rs *RenderScheduler) Paint() bool {
	if !rs.pending {
		return false
	}
	rs.pending = false
	if rs.Render != nil {
		rs.Render()
	}
	rs.frames++
	return true
}

// Frames returns the number of frames painted.
func (rs *RenderScheduler) Frames() int {
	return rs.frames
}

// Frame returns a copy of the most recently painted frame,
// or nil if none has been painted.
func (s *Sim) Frame() *image.RGBA {
	return s.Scene.ImageCopy()
}

// Costume returns the most recently painted frame resized to the
// given size, for display as a sprite costume by the host.
func (s *Sim) Costume(width, height int) image.Image {
	return s.Scene.Costume(width, height)
}
