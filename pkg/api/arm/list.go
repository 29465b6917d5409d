package arm

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// List is the envelope ARM returns for a collection GET. Value holds a single
// page in the order the server returned it. NextLink, when set and non-empty,
// is the URL of the following page.
type List[T any] struct {
	Value    []T     `json:"value,omitzero"`
	NextLink *string `json:"nextLink,omitempty"`
}

// NewList returns a page holding items. An empty nextLink produces a page with
// no continuation.
func NewList[T any](items []T, nextLink string) *List[T] {
	l := &List[T]{Value: items}
	if l.Value == nil {
		l.Value = []T{}
	}
	if nextLink != "" {
		l.NextLink = &nextLink
	}
	return l
}

// ContinuationToken returns the opaque token for the next page, or nil if this
// is the last page. A nextLink that is present but empty is treated as absent.
func (l *List[T]) ContinuationToken() *string {
	if l == nil || l.NextLink == nil || *l.NextLink == "" {
		return nil
	}

	token := *l.NextLink
	return &token
}

// More reports whether another page can be fetched.
func (l *List[T]) More() bool {
	return l.ContinuationToken() != nil
}

// Len returns the number of items on this page.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Value)
}
