package arm

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// UnknownValue is an enum value which is not one of the values declared for
// its type, together with the JSON path at which it was found.
type UnknownValue struct {
	Path  string
	Value string
}

func (u UnknownValue) String() string {
	return fmt.Sprintf("%s=%q", u.Path, u.Value)
}

type knower interface {
	IsKnown() bool
}

// variant is implemented by type discriminated unions. The returned payload
// is walked at the same path as the union itself, as its fields are inlined
// on the wire.
type variant interface {
	Variant() interface{}
}

// UnknownValues walks v and returns every enum field holding a value which is
// not declared for its type. Paths use JSON field names, e.g.
// "value[0].properties.billingPlan". Empty values are treated as unset.
func UnknownValues(v interface{}) []UnknownValue {
	var unknown []UnknownValue
	walk(reflect.ValueOf(v), "", &unknown)
	return unknown
}

func walk(v reflect.Value, path string, unknown *[]UnknownValue) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return
		}
		walk(v.Elem(), path, unknown)

	case reflect.String:
		if v.Len() == 0 || !v.CanInterface() {
			return
		}
		if k, ok := v.Interface().(knower); ok && !k.IsKnown() {
			*unknown = append(*unknown, UnknownValue{Path: path, Value: v.String()})
		}

	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return
		}
		for i := 0; i < v.Len(); i++ {
			walk(v.Index(i), fmt.Sprintf("%s[%d]", path, i), unknown)
		}

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return
		}
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		for _, k := range keys {
			walk(v.MapIndex(reflect.ValueOf(k).Convert(v.Type().Key())), fmt.Sprintf("%s[%q]", path, k), unknown)
		}

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}

			name, inline, ok := jsonName(f)
			if !ok {
				continue
			}

			p := path
			if !inline {
				p = join(path, name)
			}
			walk(v.Field(i), p, unknown)
		}

		if v.CanInterface() {
			if u, ok := v.Interface().(variant); ok {
				walk(reflect.ValueOf(u.Variant()), path, unknown)
			} else if v.CanAddr() {
				if u, ok := v.Addr().Interface().(variant); ok {
					walk(reflect.ValueOf(u.Variant()), path, unknown)
				}
			}
		}
	}
}

// jsonName returns the wire name of f. inline is set for embedded structs
// without a name of their own, whose fields encoding/json promotes.
func jsonName(f reflect.StructField) (name string, inline bool, ok bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, false
	}

	name, _, _ = strings.Cut(tag, ",")
	if name == "" {
		if f.Anonymous {
			return "", true, true
		}
		name = f.Name
	}

	return name, false, true
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
