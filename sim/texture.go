// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"log/slog"
	"sync"

	"cogentcore.org/xyzsim/base/errors"
	"cogentcore.org/xyzsim/xyz"
)

// textureLoad is the result of loading a texture for an object.
type textureLoad struct {
	name string
	node xyz.NodeID
	tex  *xyz.Texture
	err  error
}

// textureLoads are finished texture loads waiting to be applied.
type textureLoads struct {
	sync.Mutex
	done []textureLoad
}

func (tl *textureLoads) add(ld textureLoad) {
	tl.Lock()
	tl.done = append(tl.done, ld)
	tl.Unlock()
}

func (tl *textureLoads) take() []textureLoad {
	tl.Lock()
	defer tl.Unlock()
	done := tl.done
	tl.done = nil
	return done
}

// SetTexture starts loading the given image file as the texture of the
// mesh object. The image is read on another goroutine and applied by the
// first [Sim.Poll] after it is loaded, if the object still exists then.
func (s *Sim) SetTexture(name, filename string) {
	ob := s.object(name)
	if ob == nil || !ob.Kind.IsMesh() {
		return
	}
	node := ob.Node
	s.loadWait.Add(1)
	go func() {
		defer s.loadWait.Done()
		tex, err := xyz.LoadTexture(filename, filename)
		s.textures.add(textureLoad{name: name, node: node, tex: tex, err: err})
	}()
}

// Poll applies finished texture loads, returning the number applied.
// It must be called on the host goroutine.
func (s *Sim) Poll() int {
	n := 0
	for _, ld := range s.textures.take() {
		if errors.Log(ld.err) != nil {
			continue
		}
		ob, ok := s.objects.ValueByKeyTry(ld.name)
		if !ok || ob.Node != ld.node {
			slog.Debug("sim: dropping texture of deleted object", "name", ld.name)
			continue
		}
		s.Scene.AddTexture(ld.tex)
		s.Scene.PrivateMaterial(ob.Node).SetTexture(ld.tex)
		n++
	}
	if n > 0 {
		s.Scene.DeleteUnusedTextures()
		s.Render.Request()
	}
	return n
}

// WaitTextures waits for all started texture loads to finish,
// and then applies them with [Sim.Poll].
func (s *Sim) WaitTextures() int {
	s.loadWait.Wait()
	return s.Poll()
}
