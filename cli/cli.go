// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli binds config structs to command line flags, using
// `default:`, `flag:`, and `desc:` struct field tags.
package cli

import (
	"flag"
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/xyzsim/base/errors"
	"cogentcore.org/xyzsim/base/reflectx"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// AddFlags adds a flag to the given flag set for each exported field
// of the given config struct pointer, recursing into struct fields
// without a `flag:` tag. The `flag:` tag gives comma-separated flag
// names, defaulting to the lowercase field name, and the `desc:` tag
// gives the usage text.
func AddFlags(fs *flag.FlagSet, cfg any) error {
	val := reflect.ValueOf(cfg)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("cli.AddFlags: %T is not a struct pointer", cfg)
	}
	val = val.Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		names, ok := f.Tag.Lookup("flag")
		if !ok && f.Type.Kind() == reflect.Struct {
			if err := AddFlags(fs, fv.Addr().Interface()); err != nil {
				return err
			}
			continue
		}
		if !ok {
			names = strings.ToLower(f.Name)
		}
		for _, name := range strings.Split(names, ",") {
			fs.Var(&fieldValue{fv}, strings.TrimSpace(name), f.Tag.Get("desc"))
		}
	}
	return nil
}

// fieldValue is a [flag.Value] for a config struct field.
type fieldValue struct {
	v reflect.Value
}

func (fv *fieldValue) String() string {
	if fv == nil || !fv.v.IsValid() {
		return ""
	}
	return fmt.Sprint(fv.v.Interface())
}

func (fv *fieldValue) Set(s string) error {
	return reflectx.SetFromString(fv.v.Addr().Interface(), s)
}

// IsBoolFlag allows bool flags without a value, as in -v.
func (fv *fieldValue) IsBoolFlag() bool {
	return fv.v.IsValid() && fv.v.Kind() == reflect.Bool
}
