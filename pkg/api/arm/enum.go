package arm

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"slices"
)

// Enums in the versioned API packages are string kinded types. Decoding never
// fails for a JSON string: a value the server introduced after this module was
// built is carried verbatim and re-encoded unchanged. IsKnown distinguishes the
// declared values from such values.

// IsKnown reports whether v is one of possible. Matching is case sensitive.
func IsKnown[T ~string](v T, possible []T) bool {
	return slices.Contains(possible, v)
}

// Value dereferences an optional enum field, returning def when it is unset.
func Value[T ~string](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
