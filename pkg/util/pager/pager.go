package pager

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate go run go.uber.org/mock/mockgen -destination=../mocks/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/azure-arc-models/pkg/util/$GOPACKAGE Fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/tracing"
	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

// ErrRepeatedNextLink is returned when the service hands out a continuation
// token it has already returned during the same iteration.
var ErrRepeatedNextLink = errors.New("repeated nextLink")

// Fetcher retrieves a single page of a list. nextLink is nil for the first
// page and otherwise the continuation token of the previous page. Issuing
// the request is the caller's concern.
type Fetcher[T any] interface {
	Fetch(ctx context.Context, nextLink *string) (*arm.List[T], error)
}

// FetcherFunc adapts a function to a Fetcher.
type FetcherFunc[T any] func(ctx context.Context, nextLink *string) (*arm.List[T], error)

func (f FetcherFunc[T]) Fetch(ctx context.Context, nextLink *string) (*arm.List[T], error) {
	return f(ctx, nextLink)
}

// New returns a pager which calls f for the first page and then for as long
// as the previous page carries a continuation token. A page without a
// continuation token is the last, whether its nextLink is absent or empty.
// The pager is not safe for concurrent use.
func New[T any](f Fetcher[T]) *runtime.Pager[*arm.List[T]] {
	seen := map[string]struct{}{}

	return runtime.NewPager(runtime.PagingHandler[*arm.List[T]]{
		More: func(page *arm.List[T]) bool {
			return page.More()
		},
		Fetcher: func(ctx context.Context, page **arm.List[T]) (*arm.List[T], error) {
			var nextLink *string
			if page != nil {
				nextLink = (*page).ContinuationToken()
			}

			if nextLink != nil {
				if _, found := seen[*nextLink]; found {
					return nil, fmt.Errorf("%w: %s", ErrRepeatedNextLink, *nextLink)
				}
			}

			l, err := f.Fetch(ctx, nextLink)
			if err != nil {
				// the same nextLink may be retried
				return nil, err
			}
			if nextLink != nil {
				seen[*nextLink] = struct{}{}
			}
			if l == nil {
				l = arm.NewList[T](nil, "")
			}

			return l, nil
		},
		Tracer: tracing.Tracer{},
	})
}

// All drains p, returning the items of every page in order.
func All[T any](ctx context.Context, log *logrus.Entry, p *runtime.Pager[*arm.List[T]]) ([]T, error) {
	var items []T

	for pages := 0; p.More(); pages++ {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		log.Debugf("page %d: %d items, more: %t", pages, page.Len(), page.More())
		items = append(items, page.Value...)
	}

	return items, nil
}

// Decode reads a page from the body of a list response.
func Decode[T any](resp *http.Response) (*arm.List[T], error) {
	l := &arm.List[T]{}

	err := runtime.UnmarshalAsJSON(resp, l)
	if err != nil {
		return nil, err
	}

	return l, nil
}
