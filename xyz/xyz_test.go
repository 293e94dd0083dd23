// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"cogentcore.org/xyzsim/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func assertVec(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "X: want %v got %v", want, got)
	assert.InDelta(t, want.Y, got.Y, tol, "Y: want %v got %v", want, got)
	assert.InDelta(t, want.Z, got.Z, tol, "Z: want %v got %v", want, got)
}

func TestSharedResources(t *testing.T) {
	sc := NewScene("test")
	a := sc.NewSolid("a", Box)
	b := sc.NewSolid("b", Box)
	c := sc.NewSolid("c", Sphere)
	assert.Same(t, a.Mesh, b.Mesh)
	assert.NotSame(t, a.Mesh, c.Mesh)
	assert.True(t, a.Mesh.Shared)
	assert.Same(t, a.Material, b.Material)
	assert.Equal(t, 2, sc.LiveMeshes())
	assert.Equal(t, 1, sc.LiveMaterials())

	mt := sc.PrivateMaterial(a.ID)
	require.NotNil(t, mt)
	assert.False(t, mt.Shared)
	assert.Equal(t, "a", mt.Name)
	assert.Same(t, mt, sc.PrivateMaterial(a.ID))
	assert.Equal(t, 2, sc.LiveMaterials())
	mt.Color = color.RGBA{255, 0, 0, 255}
	assert.NotEqual(t, mt.Color, b.Material.Color)

	sc.DeleteNode(a.ID)
	assert.Equal(t, 1, sc.LiveMaterials())
	assert.Equal(t, 2, sc.LiveMeshes())
	sc.DeleteNode(b.ID)
	assert.Equal(t, 1, sc.LiveMaterials())
	assert.Nil(t, sc.PrivateMaterial(NoNode))
}

func TestSetParentKeepsWorld(t *testing.T) {
	sc := NewScene("test")
	p := sc.NewSolid("p", Box)
	p.Pose.Pos.Set(1, 2, 3)
	p.Pose.SetAxisRotation(0, 1, 0, 90)
	p.Pose.Scale.Set(2, 2, 2)
	c := sc.NewSolid("c", Sphere)
	c.Pose.Pos.Set(5, 0, 0)

	require.NoError(t, sc.SetParent(c.ID, p.ID))
	assertVec(t, math32.Vec3(5, 0, 0), sc.WorldPos(c.ID))
	assert.Equal(t, []NodeID{c.ID}, p.Children)
	assert.Equal(t, []NodeID{p.ID}, sc.Roots())

	p.Pose.Pos.Set(1, 3, 3)
	assertVec(t, math32.Vec3(5, 1, 0), sc.WorldPos(c.ID))

	assert.Error(t, sc.SetParent(p.ID, c.ID))
	assert.Error(t, sc.SetParent(p.ID, p.ID))

	sc.DeleteNode(p.ID)
	assert.Equal(t, NoNode, c.Parent)
	assertVec(t, math32.Vec3(5, 1, 0), sc.WorldPos(c.ID))
	assertVec(t, math32.Vec3(1, 1, 1), c.Pose.Scale)
	assert.Equal(t, []NodeID{c.ID}, sc.Roots())
}

func TestSetWorldPose(t *testing.T) {
	sc := NewScene("test")
	p := sc.NewSolid("p", Box)
	p.Pose.Pos.Set(0, 10, 0)
	p.Pose.SetAxisRotation(0, 0, 1, 45)
	c := sc.NewSolid("c", Box)
	require.NoError(t, sc.SetParent(c.ID, p.ID))

	q := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), 0.5)
	sc.SetWorldPose(c.ID, math32.Vec3(3, 4, 5), q)
	assertVec(t, math32.Vec3(3, 4, 5), sc.WorldPos(c.ID))
	assert.True(t, q.IsEqualTol(sc.WorldQuat(c.ID), tol))
}

func TestFaceTowards(t *testing.T) {
	var ps Pose
	ps.Defaults()
	ps.Pos.Set(1, 1, 1)
	ps.FaceTowards(math32.Vec3(4, 5, 1))
	assertVec(t, math32.Vec3(0.6, 0.8, 0), ps.Forward())

	ps.SetYawPitch(30, -20)
	yaw, pitch := ps.YawPitch()
	assert.InDelta(t, 30, yaw, 1e-3)
	assert.InDelta(t, -20, pitch, 1e-3)

	ps.SetYawPitch(0, 0)
	assertVec(t, math32.Vec3(0, 0, -1), ps.Forward())
}

func TestRayIntersect(t *testing.T) {
	sc := NewScene("test")
	a := sc.NewSolid("a", Box)
	b := sc.NewSolid("b", Sphere)
	b.Pose.Pos.Set(0, 0, -5)
	far := sc.NewSolid("far", Box)
	far.Pose.Pos.Set(0, 0, -20)
	off := sc.NewSolid("off", Box)
	off.Pose.Pos.Set(3, 0, -5)

	ray := math32.Ray{Origin: sc.WorldPos(a.ID), Dir: sc.WorldForward(a.ID)}
	hits := sc.RayIntersect(ray, a.ID, 0.1, 1000)
	require.Len(t, hits, 2)
	assert.Equal(t, "b", hits[0].Node.Name)
	assert.InDelta(t, 4.5, hits[0].Dist, tol)
	assert.Equal(t, "far", hits[1].Node.Name)

	hits = sc.RayIntersect(ray, a.ID, 0.1, 4)
	assert.Len(t, hits, 0)

	b.Visible = false
	hits = sc.RayIntersect(ray, a.ID, 0.1, 1000)
	require.Len(t, hits, 1)
	assert.Equal(t, "far", hits[0].Node.Name)

	// scaled sphere is tested exactly in local space
	b.Visible = true
	b.Pose.Scale.Set(4, 4, 4)
	hits = sc.RayIntersect(ray, a.ID, 0.1, 1000)
	require.NotEmpty(t, hits)
	assert.InDelta(t, 3, hits[0].Dist, tol)
}

func TestRender(t *testing.T) {
	sc := NewScene("test")
	sc.Width, sc.Height = 64, 48
	assert.Nil(t, sc.Image())
	assert.Nil(t, sc.ImageCopy())
	assert.Nil(t, sc.Costume(10, 10))

	red := sc.NewSolid("red", Box)
	mt := sc.PrivateMaterial(red.ID)
	mt.Color = color.RGBA{200, 0, 0, 255}
	sc.SetAmbient(1, color.RGBA{255, 255, 255, 255})

	img := sc.Render()
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{200, 0, 0, 255}, img.RGBAAt(32, 24))

	sc.SetAmbient(0.5, color.RGBA{255, 255, 255, 255})
	img = sc.Render()
	assert.Equal(t, color.RGBA{100, 0, 0, 255}, img.RGBAAt(32, 24))

	cp := sc.ImageCopy()
	assert.Equal(t, img.Pix, cp.Pix)
	cos := sc.Costume(16, 12)
	require.NotNil(t, cos)
	assert.Equal(t, image.Pt(16, 12), cos.Bounds().Size())

	// behind the camera is not drawn
	red.Pose.Pos.Set(0, 0, 20)
	img = sc.Render()
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(32, 24))
}

func TestShapeBBox(t *testing.T) {
	bb := ShapeBBox(Torus)
	assert.Equal(t, float32(0.7), bb.Max.X)
	assert.Equal(t, float32(-0.7), bb.Min.Y)
	assert.Equal(t, TorusTube, bb.Max.Z)
	bb = ShapeBBox(Box)
	assert.Equal(t, math32.Vector3Scalar(UnitRadius), bb.Max)
}

func TestRenderTexture(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i+1], src.Pix[i+2] = 0, 255
	}
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, src))
	tx, err := ReadTexture("magenta", &b)
	require.NoError(t, err)
	assert.False(t, tx.Transparent)

	_, err = ReadTexture("bad", bytes.NewReader([]byte("not an image at all")))
	assert.Error(t, err)

	sc := NewScene("test")
	sc.Width, sc.Height = 64, 48
	sc.SetAmbient(1, color.RGBA{255, 255, 255, 255})
	sc.AddTexture(tx)
	nd := sc.NewSolid("box", Box)
	sc.PrivateMaterial(nd.ID).SetTexture(sc.TextureByName("magenta"))
	img := sc.Render()
	assert.Equal(t, color.RGBA{255, 0, 255, 255}, img.RGBAAt(32, 24))

	sc.DeleteNode(nd.ID)
	assert.Equal(t, 0, sc.Textures.Len())
	assert.Equal(t, 1, sc.LiveMaterials())

	sc.AddTexture(tx)
	nd = sc.NewSolid("box", Box)
	sc.PrivateMaterial(nd.ID).SetTexture(tx)
	sc.DeleteAll()
	assert.Equal(t, 0, sc.Len())
	assert.Nil(t, sc.TextureByName("magenta"))
	assert.Equal(t, 0, sc.Textures.Len())
}

func TestCamera(t *testing.T) {
	sc := NewScene("test")
	cam := sc.NewCamera("cam")
	sld := sc.NewSolid("box", Box)
	assert.False(t, sc.SetCamera(sld.ID))
	assert.True(t, sc.SetCamera(cam.ID))
	cam.Pose.Pos.Set(0, 0, 5)
	vp := math32.Vec3(0, 0, 0).MulMatrix4(sc.ViewMatrix())
	assertVec(t, math32.Vec3(0, 0, -5), vp)
	sc.DeleteNode(cam.ID)
	assert.Equal(t, NoNode, sc.Camera)
}

func TestLightLevel(t *testing.T) {
	sc := NewScene("test")
	sc.SetAmbient(0.2, color.RGBA{255, 255, 255, 255})
	assert.InDelta(t, 0.2, sc.LightLevel(math32.Vector3{}), tol)
	lt := sc.NewLight("sun", 1, DirectSun)
	lt.Pose.Pos.Set(0, 10, 0)
	assert.InDelta(t, 0.2+1.0/3.0, sc.LightLevel(math32.Vector3{}), tol)
	sc.SetAmbient(0, color.RGBA{})
	lt.Light.On = false
	assert.InDelta(t, 0, sc.LightLevel(math32.Vector3{}), tol)
}
