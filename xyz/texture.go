// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image"
	"io"

	"cogentcore.org/xyzsim/base/iox/imagex"
)

// Texture is an image used to color the surface of solids.
// Textures are owned by the [Scene] and connected to [Material]s by name.
type Texture struct {

	// Name is the name of the texture;
	// textures are connected to [Material]s by name.
	Name string

	// File is the file the texture was loaded from, if any.
	File string

	// Format is the detected image format of the source data.
	Format imagex.Formats

	// Transparent is whether the texture has transparency.
	Transparent bool

	// RGBA is the cached internal representation of the image.
	RGBA *image.RGBA
}

// NewTexture returns a new texture from the given image.
func NewTexture(name string, img image.Image) *Texture {
	tx := &Texture{Name: name}
	tx.SetImage(img)
	return tx
}

// SetImage sets the image of the texture, updating Transparent.
func (tx *Texture) SetImage(img image.Image) {
	tx.RGBA = imagex.CloneAsRGBA(img)
	tx.Transparent = false
	if tx.RGBA == nil {
		return
	}
	for i := 3; i < len(tx.RGBA.Pix); i += 4 {
		if tx.RGBA.Pix[i] < 255 {
			tx.Transparent = true
			break
		}
	}
}

// Image returns the image for the texture.
func (tx *Texture) Image() *image.RGBA {
	return tx.RGBA
}

// LoadTexture loads a new texture of the given name from the given image file.
// The image type is detected from the file contents.
// It does not touch any scene, so it is safe to call on any goroutine.
func LoadTexture(name, filename string) (*Texture, error) {
	img, f, err := imagex.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("xyz.LoadTexture: %q: %w", filename, err)
	}
	tx := NewTexture(name, img)
	tx.File = filename
	tx.Format = f
	return tx, nil
}

// ReadTexture reads a new texture of the given name from the given reader.
func ReadTexture(name string, r io.Reader) (*Texture, error) {
	img, f, err := imagex.Read(r)
	if err != nil {
		return nil, fmt.Errorf("xyz.ReadTexture: %q: %w", name, err)
	}
	tx := NewTexture(name, img)
	tx.Format = f
	return tx, nil
}

////////////////////////////////////////////////////////////////////////
// Scene management

// AddTexture adds the given texture to the scene,
// replacing any existing texture of the same name.
func (sc *Scene) AddTexture(tx *Texture) {
	sc.Textures.Add(tx.Name, tx)
}

// TextureByName returns the texture of the given name, or nil.
func (sc *Scene) TextureByName(name string) *Texture {
	tx, _ := sc.Textures.ValueByKeyTry(name)
	return tx
}

// DeleteUnusedTextures deletes all textures not used by any material.
func (sc *Scene) DeleteUnusedTextures() {
	used := map[string]bool{}
	for _, mt := range sc.Materials.All() {
		if mt.TextureName != "" {
			used[mt.TextureName] = true
		}
	}
	for _, name := range sc.Textures.Keys() {
		if !used[name] {
			sc.Textures.DeleteKey(name)
		}
	}
}
