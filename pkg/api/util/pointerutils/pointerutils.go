package pointerutils

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

func ToPtr[T any](t T) *T { return &t }

// FromPtr returns the value p points to, or the zero value of T if p is nil.
func FromPtr[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
