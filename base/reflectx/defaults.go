// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/xyzsim/base/errors"
)

// SetFromDefaultTags sets the values of the fields of the given struct
// pointer from their `default:` field tags, recursing into struct fields
// without a tag. Struct values are given in JSON, in which single quotes
// may be used in place of double quotes. Errors are logged and returned
// joined together.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() == reflect.Pointer && ov.IsNil() {
		return nil
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: %T is not a struct", obj)
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok || def == "" {
			if NonPointerType(f.Type).Kind() == reflect.Struct {
				errs = append(errs, SetFromDefaultTags(PointerValue(fv).Interface()))
			}
			continue
		}
		if err := SetFromString(PointerValue(fv).Interface(), def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Log(errors.Join(errs...))
}

// SetFromString sets the value pointed to by ptr from the given string,
// for strings, bools, and numbers, and JSON for everything else.
func SetFromString(ptr any, str string) error {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("reflectx.SetFromString: %T is not a pointer", ptr)
	}
	v = v.Elem()
	switch v.Kind() {
	case reflect.String:
		v.SetString(str)
	case reflect.Bool:
		b, err := strconv.ParseBool(str)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(str, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(str, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(str, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(x)
	default:
		return json.Unmarshal([]byte(strings.ReplaceAll(str, `'`, `"`)), ptr)
	}
	return nil
}
