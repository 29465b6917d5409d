package pager

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
	mock_pager "github.com/Azure/azure-arc-models/pkg/util/mocks/pager"
	testlog "github.com/Azure/azure-arc-models/test/util/log"
)

func TestAll(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name      string
		mocks     func(*mock_pager.MockFetcher[string])
		wantItems []string
		wantErr   string
		wantLogs  []testlog.ExpectedLogEntry
	}{
		{
			name: "single page without nextLink",
			mocks: func(f *mock_pager.MockFetcher[string]) {
				f.EXPECT().Fetch(gomock.Any(), gomock.Nil()).Return(arm.NewList([]string{"a", "b"}, ""), nil)
			},
			wantItems: []string{"a", "b"},
			wantLogs: []testlog.ExpectedLogEntry{
				{Level: logrus.DebugLevel, Message: "page 0: 2 items, more: false"},
			},
		},
		{
			name: "pages followed until nextLink is empty",
			mocks: func(f *mock_pager.MockFetcher[string]) {
				gomock.InOrder(
					f.EXPECT().Fetch(gomock.Any(), gomock.Nil()).Return(arm.NewList([]string{"a"}, "page2"), nil),
					f.EXPECT().Fetch(gomock.Any(), pointerutils.ToPtr("page2")).Return(arm.NewList([]string{}, "page3"), nil),
					f.EXPECT().Fetch(gomock.Any(), pointerutils.ToPtr("page3")).Return(&arm.List[string]{
						Value:    []string{"b", "c"},
						NextLink: pointerutils.ToPtr(""),
					}, nil),
				)
			},
			wantItems: []string{"a", "b", "c"},
			wantLogs: []testlog.ExpectedLogEntry{
				{Level: logrus.DebugLevel, Message: "page 0: 1 items, more: true"},
				{Level: logrus.DebugLevel, Message: "page 1: 0 items, more: true"},
				{Level: logrus.DebugLevel, Message: "page 2: 2 items, more: false"},
			},
		},
		{
			name: "nil page ends iteration",
			mocks: func(f *mock_pager.MockFetcher[string]) {
				f.EXPECT().Fetch(gomock.Any(), gomock.Nil()).Return(nil, nil)
			},
			wantLogs: []testlog.ExpectedLogEntry{
				{Level: logrus.DebugLevel, Message: "page 0: 0 items, more: false"},
			},
		},
		{
			name: "fetch error",
			mocks: func(f *mock_pager.MockFetcher[string]) {
				gomock.InOrder(
					f.EXPECT().Fetch(gomock.Any(), gomock.Nil()).Return(arm.NewList([]string{"a"}, "page2"), nil),
					f.EXPECT().Fetch(gomock.Any(), pointerutils.ToPtr("page2")).Return(nil, errors.New("throttled")),
				)
			},
			wantErr: "throttled",
			wantLogs: []testlog.ExpectedLogEntry{
				{Level: logrus.DebugLevel, Message: "page 0: 1 items, more: true"},
			},
		},
		{
			name: "repeated nextLink",
			mocks: func(f *mock_pager.MockFetcher[string]) {
				gomock.InOrder(
					f.EXPECT().Fetch(gomock.Any(), gomock.Nil()).Return(arm.NewList([]string{"a"}, "page2"), nil),
					f.EXPECT().Fetch(gomock.Any(), pointerutils.ToPtr("page2")).Return(arm.NewList([]string{"b"}, "page2"), nil),
				)
			},
			wantErr: "repeated nextLink: page2",
			wantLogs: []testlog.ExpectedLogEntry{
				{Level: logrus.DebugLevel, Message: "page 0: 1 items, more: true"},
				{Level: logrus.DebugLevel, Message: "page 1: 1 items, more: true"},
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			f := mock_pager.NewMockFetcher[string](controller)
			tt.mocks(f)

			h, log := testlog.NewCapturingLogger()
			log.Logger.SetLevel(logrus.DebugLevel)

			items, err := All(ctx, log, New[string](f))
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Nil(t, items)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantItems, items)
			}

			for _, e := range testlog.AssertLoggingOutput(h, tt.wantLogs) {
				t.Error(e)
			}
		})
	}
}

func TestNextPageRetriesAfterError(t *testing.T) {
	ctx := context.Background()

	controller := gomock.NewController(t)
	defer controller.Finish()

	f := mock_pager.NewMockFetcher[string](controller)
	gomock.InOrder(
		f.EXPECT().Fetch(gomock.Any(), gomock.Nil()).Return(arm.NewList([]string{"a"}, "https://example/next?skip=1"), nil),
		f.EXPECT().Fetch(gomock.Any(), pointerutils.ToPtr("https://example/next?skip=1")).Return(nil, errors.New("transient")),
		f.EXPECT().Fetch(gomock.Any(), pointerutils.ToPtr("https://example/next?skip=1")).Return(arm.NewList([]string{"b"}, ""), nil),
	)

	p := New[string](f)

	page, err := p.NextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, page.Value)

	_, err = p.NextPage(ctx)
	assert.EqualError(t, err, "transient")
	require.True(t, p.More())

	page, err = p.NextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, page.Value)
	assert.False(t, p.More())
}

func TestRepeatedNextLinkIsDetectable(t *testing.T) {
	f := FetcherFunc[int](func(ctx context.Context, nextLink *string) (*arm.List[int], error) {
		return arm.NewList([]int{1}, "loop"), nil
	})

	_, log := testlog.NewCapturingLogger()

	_, err := All(context.Background(), log, New[int](f))
	assert.ErrorIs(t, err, ErrRepeatedNextLink)
}

func TestPagerStopsAfterLastPage(t *testing.T) {
	calls := 0
	p := New[int](FetcherFunc[int](func(ctx context.Context, nextLink *string) (*arm.List[int], error) {
		calls++
		return arm.NewList([]int{1}, ""), nil
	}))

	require.True(t, p.More())
	_, err := p.NextPage(context.Background())
	require.NoError(t, err)

	assert.False(t, p.More())
	_, err = p.NextPage(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDecode(t *testing.T) {
	for _, tt := range []struct {
		name      string
		body      string
		wantLen   int
		wantToken *string
		wantErr   bool
	}{
		{
			name:    "last page",
			body:    `{"value":[{"name":"x","properties":{"billingPlan":"PAYG"}}],"nextLink":""}`,
			wantLen: 1,
		},
		{
			name:      "more pages",
			body:      `{"value":[],"nextLink":"https://management.azure.com/next"}`,
			wantToken: pointerutils.ToPtr("https://management.azure.com/next"),
		},
		{
			name: "empty body",
		},
		{
			name:    "malformed",
			body:    `{"value":{}}`,
			wantErr: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(tt.body)),
			}

			l, err := Decode[map[string]interface{}](resp)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantLen, l.Len())
			assert.Equal(t, tt.wantToken, l.ContinuationToken())
		})
	}
}
