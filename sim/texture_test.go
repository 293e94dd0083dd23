// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/xyzsim/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(0, 0, color.RGBA{255, 0, 255, 255})
	fn := filepath.Join(t.TempDir(), "tex.png")
	require.NoError(t, imagex.Save(img, fn))

	s, _ := newTestSim()
	s.Create("A", Box)
	s.Create("B", Box)
	s.SetTexture("A", fn)
	s.SetTexture("B", fn)
	s.SetTexture("B", filepath.Join(t.TempDir(), "none.png"))
	s.Delete("B")
	assert.Equal(t, 1, s.WaitTextures())
	assert.Equal(t, 0, s.Poll())

	nd := s.Scene.Node(s.Object("A").Node)
	require.NotNil(t, nd.Material.Texture)
	assert.Equal(t, fn, nd.Material.TextureName)
	assert.False(t, nd.Material.Shared)
	assert.Equal(t, 8, nd.Material.Texture.Image().Bounds().Dx())
	assert.NotNil(t, s.Scene.TextureByName(fn))
	assert.Equal(t, fn, s.Dump()[0].Texture)

	// the texture of a recreated object is not applied
	s.SetTexture("A", fn)
	s.Create("A", Box)
	assert.Equal(t, 0, s.WaitTextures())
	assert.Nil(t, s.Scene.Node(s.Object("A").Node).Material.Texture)

	s.DeleteAll()
	assert.Nil(t, s.Scene.TextureByName(fn))
}

func TestTextureDisposal(t *testing.T) {
	dir := t.TempDir()
	red := filepath.Join(dir, "red.png")
	blue := filepath.Join(dir, "blue.png")
	saveColor(t, red, color.RGBA{255, 0, 0, 255})
	saveColor(t, blue, color.RGBA{0, 0, 255, 255})

	s, _ := newTestSim()
	for range 3 {
		s.Create("A", Box)
		s.SetTexture("A", red)
		assert.Equal(t, 1, s.WaitTextures())
		assert.Equal(t, 1, s.Scene.Textures.Len())
		s.Delete("A")
		assert.Equal(t, 0, s.Scene.Textures.Len())
		assert.Equal(t, 1, s.Scene.LiveMaterials())
	}

	// replacing a texture releases the old one
	s.Create("A", Box)
	s.Create("B", Box)
	s.SetTexture("A", red)
	s.SetTexture("B", red)
	s.WaitTextures()
	s.SetTexture("A", blue)
	s.WaitTextures()
	assert.Equal(t, 2, s.Scene.Textures.Len())
	s.SetTexture("B", blue)
	s.WaitTextures()
	assert.Equal(t, 1, s.Scene.Textures.Len())
	assert.NotNil(t, s.Scene.TextureByName(blue))

	// a texture still used by another object is kept
	s.Delete("A")
	assert.Equal(t, 1, s.Scene.Textures.Len())
	s.Delete("B")
	assert.Equal(t, 0, s.Scene.Textures.Len())
}

func saveColor(t *testing.T, filename string, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.SetRGBA(x, y, c)
		}
	}
	require.NoError(t, imagex.Save(img, filename))
}
