// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/xyzsim/math32"
)

// LightBase has the core properties of a light.
type LightBase struct {

	// On is whether the light is turned on.
	On bool

	// Lumens is the brightness/intensity/strength of the light in normalized 0-1 units.
	// It is just multiplied by the color, and is convenient for easily modulating overall brightness.
	Lumens float32 `min:"0" step:"0.1"`

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

// Set sets the lumens and color, turning the light on if lumens > 0.
func (lb *LightBase) Set(lumens float32, clr color.RGBA) {
	lb.Lumens = lumens
	lb.Color = clr
	lb.On = lumens > 0
}

// Level returns the effective light level: lumens when on, else 0.
func (lb *LightBase) Level() float32 {
	if !lb.On {
		return 0
	}
	return lb.Lumens
}

// NewLight adds a new point light node to the scene,
// with given name, standard color, and lumens (0-1 normalized).
func (sc *Scene) NewLight(name string, lumens float32, clr LightColors) *Node {
	nd := sc.newNode(name, LightNode)
	nd.Light.Set(lumens, LightColorMap[clr])
	return nd
}

// SetAmbient sets the ambient light of the scene.
func (sc *Scene) SetAmbient(lumens float32, clr color.RGBA) {
	sc.Ambient.Set(lumens, clr)
}

// LightLevel returns the total light level at the given world position:
// the ambient level plus each visible point light attenuated with distance,
// using linear and quadratic decay factors.
func (sc *Scene) LightLevel(pos math32.Vector3) float32 {
	lvl := sc.Ambient.Level()
	for _, nd := range sc.Nodes() {
		if nd.Type != LightNode || !nd.Visible {
			continue
		}
		d := sc.WorldPos(nd.ID).DistanceTo(pos)
		lvl += nd.Light.Level() / (1 + LightLinDecay*d + LightQuadDecay*d*d)
	}
	return lvl
}

// Point light distance decay factors.
const (
	LightLinDecay  = 0.1
	LightQuadDecay = 0.01
)

/////////////////////////////////////////////////////////////////////////\
//  Standard Light Colors

// http://planetpixelemporium.com/tutorialpages/light.html

// LightColors are standard light colors for different light sources
type LightColors int32

const (
	DirectSun LightColors = iota
	CarbonArc
	Halogen
	Tungsten100W
	Tungsten40W
	Candle
	Overcast
	FluorWarm
	FluorStd
	FluorCool
	FluorFull
	FluorGrow
	MercuryVapor
	SodiumVapor
	MetalHalide
)

// LightColorMap provides a map of named light colors
var LightColorMap = map[LightColors]color.RGBA{
	DirectSun:    {255, 255, 255, 255},
	CarbonArc:    {255, 250, 244, 255},
	Halogen:      {255, 241, 224, 255},
	Tungsten100W: {255, 214, 170, 255},
	Tungsten40W:  {255, 197, 143, 255},
	Candle:       {255, 147, 41, 255},
	Overcast:     {201, 226, 255, 255},
	FluorWarm:    {255, 244, 229, 255},
	FluorStd:     {244, 255, 250, 255},
	FluorCool:    {212, 235, 255, 255},
	FluorFull:    {255, 244, 242, 255},
	FluorGrow:    {255, 239, 247, 255},
	MercuryVapor: {216, 247, 255, 255},
	SodiumVapor:  {255, 209, 178, 255},
	MetalHalide:  {242, 252, 255, 255},
}
