// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"strings"

	"cogentcore.org/xyzsim/xyz"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Kinds are the kinds of objects in a simulation.
type Kinds int32

const (
	Box Kinds = iota
	Sphere
	Cone
	Cylinder
	Torus
	Light
	Camera
	KindsN
)

var kindNames = [...]string{"Box", "Sphere", "Cone", "Cylinder", "Torus", "Light", "Camera"}

// kindTypes are the names used for the kinds in scene files.
var kindTypes = [...]string{"Cube", "Sphere", "Cone", "Cylinder", "Donut", "Light", "Camera"}

func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// Type returns the name of the kind used in scene files.
func (k Kinds) Type() string {
	if k < 0 || k >= KindsN {
		return k.String()
	}
	return kindTypes[k]
}

// KindFromString returns the kind for the given scene file type
// or kind name, ignoring case.
func KindFromString(s string) (Kinds, error) {
	for k := Box; k < KindsN; k++ {
		if strings.EqualFold(s, kindTypes[k]) || strings.EqualFold(s, kindNames[k]) {
			return k, nil
		}
	}
	if sug := suggestType(s); sug != "" {
		return KindsN, fmt.Errorf("sim.KindFromString: unknown object type %q (did you mean %q?)", s, sug)
	}
	return KindsN, fmt.Errorf("sim.KindFromString: unknown object type %q", s)
}

// suggestType returns the scene file type most similar to s,
// or "" if none is close.
func suggestType(s string) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", 0.6
	for _, t := range kindTypes {
		if v := strutil.Similarity(s, t, lev); v >= bestSim {
			best, bestSim = t, v
		}
	}
	return best
}

// IsMesh returns whether the kind is a solid mesh, which can have
// physics and be hit by rays.
func (k Kinds) IsMesh() bool {
	return k >= Box && k <= Torus
}

// Shape returns the scene mesh shape of a mesh kind.
func (k Kinds) Shape() xyz.Shapes {
	switch k {
	case Sphere:
		return xyz.Sphere
	case Cone:
		return xyz.Cone
	case Cylinder:
		return xyz.Cylinder
	case Torus:
		return xyz.Torus
	}
	return xyz.Box
}

// Axes are the local axes of an object used for relative motion.
type Axes int32

const (
	// Forward is the -Z axis.
	Forward Axes = iota

	// Side is the +X axis.
	Side

	// Up is the +Y axis.
	Up
)

// Vector returns the local unit vector of the axis.
func (a Axes) Vector() (x, y, z float32) {
	switch a {
	case Side:
		return 1, 0, 0
	case Up:
		return 0, 1, 0
	}
	return 0, 0, -1
}

func (a Axes) String() string {
	switch a {
	case Forward:
		return "Forward"
	case Side:
		return "Side"
	case Up:
		return "Up"
	}
	return fmt.Sprintf("Axes(%d)", int32(a))
}
