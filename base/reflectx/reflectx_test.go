// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonPointerType(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[*int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[**int]()))
	assert.Equal(t, nil, NonPointerType(reflect.TypeOf(nil)))
}

func TestPointerValue(t *testing.T) {
	v := 1
	assert.Equal(t, reflect.TypeFor[*int](), PointerValue(reflect.ValueOf(v)).Type())
	assert.Equal(t, reflect.TypeFor[*int](), PointerValue(reflect.ValueOf(&v)).Type())
}

type point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

type inner struct {
	On    bool    `default:"true"`
	Scale float64 `default:"1.5"`
}

type config struct {
	Name   string `default:"main"`
	Count  int    `default:"0x10"`
	Size   uint8  `default:"7"`
	Ratio  float32
	Origin point `default:"{'x': 1, 'y': -2}"`
	Inner  inner
	hidden int `default:"3"`
}

func TestSetFromDefaultTags(t *testing.T) {
	c := &config{Ratio: 2}
	assert.NoError(t, SetFromDefaultTags(c))
	assert.Equal(t, "main", c.Name)
	assert.Equal(t, 16, c.Count)
	assert.Equal(t, uint8(7), c.Size)
	assert.Equal(t, float32(2), c.Ratio)
	assert.Equal(t, point{1, -2}, c.Origin)
	assert.True(t, c.Inner.On)
	assert.Equal(t, 1.5, c.Inner.Scale)
	assert.Equal(t, 0, c.hidden)

	assert.NoError(t, SetFromDefaultTags(nil))
	assert.NoError(t, SetFromDefaultTags((*config)(nil)))
	assert.Error(t, SetFromDefaultTags(new(int)))

	type bad struct {
		N int `default:"many"`
	}
	assert.Error(t, SetFromDefaultTags(&bad{}))
}
