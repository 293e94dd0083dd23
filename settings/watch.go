// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/xyzsim/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch watches the given settings file, sending newly loaded settings
// on the returned channel every time the file is written or re-created.
// Files that fail to load are logged and skipped. The channel is closed
// when the context is done.
func Watch(ctx context.Context, filename string) (<-chan *Settings, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	filename = filepath.Clean(filename)
	// watch the directory, so editors that replace the file are seen
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return nil, err
	}
	ch := make(chan *Settings, 1)
	go func() {
		defer close(ch)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filename || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				s, err := Open(filename)
				errors.Log(err)
				if s == nil {
					continue
				}
				slog.Debug("settings reloaded", "file", filename)
				select {
				case ch <- s:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return ch, nil
}
