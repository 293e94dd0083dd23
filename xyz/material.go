// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/xyzsim/base/errors"
	"cogentcore.org/xyzsim/colors"
	"github.com/jinzhu/copier"
)

// DefaultMaterialName is the name of the shared default material.
const DefaultMaterialName = "default"

// Material describes the material properties of a surface (colors, shininess, texture)
// i.e., phong lighting parameters.
// Main color is used for both ambient and diffuse color, and alpha component
// is used for opacity.  The Emissive color is only for glowing objects.
type Material struct {

	// Name is the name of the material: the default material name for
	// the shared material, or the name of the owning object for a private one.
	Name string

	// Color is the main color of surface, used for both ambient and diffuse color in standard Phong model -- alpha component determines transparency
	Color color.RGBA

	// Emissive is the color that surface emits independent of any lighting -- i.e., glow -- can be used for marking lights with an object
	Emissive color.RGBA

	// Shiny is the specular shininess factor -- how focally vs. broad the surface shines back directional light.
	Shiny float32

	// Reflective is the specular reflectiveness factor -- how much it shines back directional light.
	Reflective float32

	// Bright is an overall multiplier on final computed color value -- can be used to tune the overall brightness of various surfaces relative to each other for a given set of lighting parameters
	Bright float32

	// TextureName is the name of the texture to provide color for the surface.
	TextureName string

	// Texture is the cached [Texture] object set based on [Material.TextureName].
	Texture *Texture `copier:"-"`

	// Shared is whether this material is shared across solids, in which
	// case it is never modified or disposed through a single solid.
	Shared bool
}

// NewMaterial returns a new material with default settings.
func NewMaterial(name string) *Material {
	mt := &Material{Name: name}
	mt.Defaults()
	return mt
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = colors.FromRGB(128, 128, 128)
	mt.Emissive = color.RGBA{0, 0, 0, 0}
	mt.Shiny = 30
	mt.Reflective = 1
	mt.Bright = 1
}

// Clone returns a private (non-shared) copy of this material with the
// given name, including any texture setting.
func (mt *Material) Clone(name string) *Material {
	nm := &Material{}
	errors.Log(copier.Copy(nm, mt))
	nm.Texture = mt.Texture
	nm.Name = name
	nm.Shared = false
	return nm
}

// IsTransparent returns true if texture says it is, or if color has alpha < 255
func (mt *Material) IsTransparent() bool {
	if mt.Texture != nil {
		return mt.Texture.Transparent
	}
	return mt.Color.A < 255
}

// NoTexture resets any texture setting that might have been set
func (mt *Material) NoTexture() {
	mt.TextureName = ""
	mt.Texture = nil
}

// SetTexture sets material to use given texture
func (mt *Material) SetTexture(tex *Texture) *Material {
	mt.Texture = tex
	if mt.Texture != nil {
		mt.TextureName = mt.Texture.Name
	} else {
		mt.TextureName = ""
	}
	return mt
}
