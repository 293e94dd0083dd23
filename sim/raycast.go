// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"cogentcore.org/xyzsim/math32"
)

// LookingAt returns the name of the nearest visible mesh object hit by
// a ray from the position of the given object along its forward axis,
// or "" if there is none. Hits closer than the near distance or farther
// than the far distance of the render settings are ignored.
func (s *Sim) LookingAt(name string) string {
	nd := s.node(name)
	if nd == nil {
		return ""
	}
	ray := math32.NewRay(s.Scene.WorldPos(nd.ID), s.Scene.WorldForward(nd.ID))
	rs := &s.Settings.Render
	hits := s.Scene.RayIntersect(*ray, nd.ID, rs.Near, rs.Far)
	if len(hits) == 0 {
		return ""
	}
	return hits[0].Node.Name
}
