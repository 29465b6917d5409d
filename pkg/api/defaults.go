package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

// Defaulter adapts a typed defaulting function for registration. The returned
// function accepts either a *T or a page of them; any other value is left
// untouched.
//
// Defaults are never applied during decode, so that re-encoding a payload
// reproduces the fields the server sent. Callers which need the effective
// values apply them explicitly.
func Defaulter[T any](f func(*T)) func(interface{}) {
	return func(i interface{}) {
		switch v := i.(type) {
		case *T:
			if v != nil {
				f(v)
			}
		case *arm.List[*T]:
			if v == nil {
				return
			}
			for _, item := range v.Value {
				if item != nil {
					f(item)
				}
			}
		}
	}
}
