// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"image/color"
	"slices"

	"cogentcore.org/xyzsim/base/iox/imagex"
	"cogentcore.org/xyzsim/colors"
	"cogentcore.org/xyzsim/math32"
	"github.com/anthonynsimon/bild/adjust"
	"golang.org/x/image/draw"
)

// DefaultCameraPos is the position of the default camera,
// used when no camera node is active.
var DefaultCameraPos = math32.Vec3(0, 0, 10)

// CameraMatrix returns the world matrix of the active camera.
func (sc *Scene) CameraMatrix() *math32.Matrix4 {
	if sc.Node(sc.Camera) != nil {
		pos, quat, _ := sc.WorldMatrix(sc.Camera).Decompose()
		return math32.NewTransform(pos, quat, math32.Vector3Scalar(1))
	}
	return math32.NewTransform(DefaultCameraPos, math32.NewQuatIdentity(), math32.Vector3Scalar(1))
}

// ViewMatrix returns the view matrix of the active camera, which
// transforms world coordinates into camera-centered coordinates.
func (sc *Scene) ViewMatrix() *math32.Matrix4 {
	return sc.CameraMatrix().Inverse()
}

// focal returns the focal length in pixels for the current FOV and height.
func (sc *Scene) focal() float32 {
	half := math32.DegToRad(sc.FOV) / 2
	return (float32(sc.Height) / 2) * math32.Cos(half) / math32.Sin(half)
}

// Project projects the given camera-space point into frame pixel
// coordinates, returning false if it is not in front of the near plane.
func (sc *Scene) Project(vp math32.Vector3) (x, y float32, ok bool) {
	if -vp.Z < sc.Near {
		return 0, 0, false
	}
	f := sc.focal()
	x = float32(sc.Width)/2 + f*vp.X/-vp.Z
	y = float32(sc.Height)/2 - f*vp.Y/-vp.Z
	return x, y, true
}

// drawItem is a solid ready to draw, in frame coordinates.
type drawItem struct {
	node  *Node
	rect  image.Rectangle
	depth float32
	level float32
}

// Render renders the scene into a new frame image, which is
// kept as the current frame and returned.
// Solids are drawn back to front as their projected outlines,
// shaded by the light level at their center.
func (sc *Scene) Render() *image.RGBA {
	sc.RenderMu.Lock()
	defer sc.RenderMu.Unlock()

	bounds := image.Rect(0, 0, sc.Width, sc.Height)
	frame := image.NewRGBA(bounds)
	draw.Draw(frame, bounds, image.NewUniform(sc.Background), image.Point{}, draw.Src)

	view := sc.ViewMatrix()
	var items []drawItem
	for _, nd := range sc.Nodes() {
		if !nd.IsSolid() || !nd.Visible || nd.Mesh == nil {
			continue
		}
		if it, ok := sc.project(nd, view, bounds); ok {
			items = append(items, it)
		}
	}
	slices.SortStableFunc(items, func(a, b drawItem) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})
	for _, it := range items {
		sc.drawSolid(frame, it)
	}
	sc.frame = frame
	return frame
}

// project returns the frame rectangle and depth of the given solid.
func (sc *Scene) project(nd *Node, view *math32.Matrix4, bounds image.Rectangle) (drawItem, bool) {
	mv := view.Mul(sc.WorldMatrix(nd.ID))
	bb := nd.Mesh.BBox
	minX, minY := math32.Infinity, math32.Infinity
	maxX, maxY := -math32.Infinity, -math32.Infinity
	for i := 0; i < 8; i++ {
		c := bb.Min
		if i&1 != 0 {
			c.X = bb.Max.X
		}
		if i&2 != 0 {
			c.Y = bb.Max.Y
		}
		if i&4 != 0 {
			c.Z = bb.Max.Z
		}
		x, y, ok := sc.Project(c.MulMatrix4(mv))
		if !ok {
			return drawItem{}, false
		}
		minX, minY = math32.Min(minX, x), math32.Min(minY, y)
		maxX, maxY = math32.Max(maxX, x), math32.Max(maxY, y)
	}
	center := bb.Center().MulMatrix4(mv)
	if -center.Z > sc.Far {
		return drawItem{}, false
	}
	r := image.Rect(int(math32.Floor(minX)), int(math32.Floor(minY)), int(math32.Floor(maxX))+1, int(math32.Floor(maxY))+1)
	if r.Intersect(bounds).Empty() {
		return drawItem{}, false
	}
	lvl := sc.LightLevel(sc.WorldPos(nd.ID))
	return drawItem{node: nd, rect: r, depth: -center.Z, level: lvl}, true
}

// drawSolid draws one solid into the frame.
func (sc *Scene) drawSolid(frame *image.RGBA, it drawItem) {
	mt := it.node.Material
	if mt == nil {
		mt = sc.DefaultMaterial()
	}
	factor := math32.Clamp(it.level*mt.Bright, 0, 2)
	mask := &shapeMask{shape: it.node.Mesh.Shape, rect: it.rect}
	if mt.Texture != nil && mt.Texture.RGBA != nil {
		tex := image.NewRGBA(image.Rect(0, 0, it.rect.Dx(), it.rect.Dy()))
		draw.ApproxBiLinear.Scale(tex, tex.Bounds(), mt.Texture.RGBA, mt.Texture.RGBA.Bounds(), draw.Src, nil)
		lit := adjust.Brightness(tex, float64(math32.Clamp(factor-1, -1, 1)))
		draw.DrawMask(frame, it.rect, lit, image.Point{}, mask, it.rect.Min, draw.Over)
		return
	}
	clr := colors.Scale(mt.Color, factor)
	clr.R = max(clr.R, mt.Emissive.R)
	clr.G = max(clr.G, mt.Emissive.G)
	clr.B = max(clr.B, mt.Emissive.B)
	draw.DrawMask(frame, it.rect, image.NewUniform(clr), image.Point{}, mask, it.rect.Min, draw.Over)
}

// Image returns the most recently rendered frame, or nil if none.
// The image is replaced, not modified, by later renders.
func (sc *Scene) Image() *image.RGBA {
	sc.RenderMu.Lock()
	defer sc.RenderMu.Unlock()
	return sc.frame
}

// ImageCopy returns a copy of the most recently rendered frame, or nil.
func (sc *Scene) ImageCopy() *image.RGBA {
	img := sc.Image()
	if img == nil {
		return nil
	}
	return imagex.CloneAsRGBA(img)
}

// Costume returns the most recently rendered frame resized to the
// given size, for use as a sprite image; nil if there is no frame.
func (sc *Scene) Costume(width, height int) image.Image {
	img := sc.Image()
	if img == nil {
		return nil
	}
	return imagex.Resize(img, image.Pt(width, height))
}

// shapeMask is an alpha mask of the outline of a shape
// filling the given rectangle, in frame coordinates.
type shapeMask struct {
	shape Shapes
	rect  image.Rectangle
}

func (m *shapeMask) ColorModel() color.Model { return color.AlphaModel }

func (m *shapeMask) Bounds() image.Rectangle { return m.rect }

func (m *shapeMask) At(x, y int) color.Color {
	w, h := float32(m.rect.Dx()), float32(m.rect.Dy())
	// normalized coordinates in [-1, 1], y up
	u := 2*(float32(x-m.rect.Min.X)+0.5)/w - 1
	v := 1 - 2*(float32(y-m.rect.Min.Y)+0.5)/h
	in := true
	switch m.shape {
	case Sphere:
		in = u*u+v*v <= 1
	case Torus:
		d := u*u + v*v
		hole := (TorusRadius - TorusTube) / (TorusRadius + TorusTube)
		in = d <= 1 && d >= hole*hole
	case Cone:
		in = math32.Abs(u) <= (1-v)/2
	}
	if in {
		return color.Alpha{0xff}
	}
	return color.Alpha{}
}
