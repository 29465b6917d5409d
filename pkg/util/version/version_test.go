package version

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	utilerror "github.com/Azure/azure-arc-models/test/util/error"
)

func TestNewAPIVersion(t *testing.T) {
	for i, tt := range []struct {
		vs   []uint32
		want *APIVersion
	}{
		{
			vs:   []uint32{2024, 7},
			want: &APIVersion{V: [3]uint32{2024, 7}},
		},
		{
			want: &APIVersion{},
		},
		{
			vs:   []uint32{2024, 7, 10, 1},
			want: &APIVersion{V: [3]uint32{2024, 7, 10}},
		},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := NewAPIVersion(tt.vs...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Error(got)
			}
		})
	}
}

func TestParseAPIVersion(t *testing.T) {
	for _, tt := range []struct {
		vsn     string
		want    *APIVersion
		wantErr string
	}{
		{
			vsn:  "2024-05-01-preview",
			want: &APIVersion{V: [3]uint32{2024, 5, 1}, Suffix: "-preview"},
		},
		{
			vsn:  "2024-07-10",
			want: &APIVersion{V: [3]uint32{2024, 7, 10}},
		},
		{
			vsn:  " 2024-07-10 ",
			want: &APIVersion{V: [3]uint32{2024, 7, 10}},
		},
		{
			vsn:     "2024-13-01",
			wantErr: `could not parse api version "2024-13-01"`,
		},
		{
			vsn:     "2024-05-01-Preview",
			wantErr: `could not parse api version "2024-05-01-Preview"`,
		},
		{
			vsn:     "bad",
			wantErr: `could not parse api version "bad"`,
		},
	} {
		t.Run(tt.vsn, func(t *testing.T) {
			got, err := ParseAPIVersion(tt.vsn)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
			if !reflect.DeepEqual(got, tt.want) {
				t.Error(cmp.Diff(got, tt.want))
			}
		})
	}
}

func TestString(t *testing.T) {
	for _, vsn := range []string{"2024-05-01-preview", "2024-07-10"} {
		v, err := ParseAPIVersion(vsn)
		if err != nil {
			t.Fatal(err)
		}
		if v.String() != vsn {
			t.Error(v.String())
		}
	}
}

func TestLt(t *testing.T) {
	for i, tt := range []struct {
		input string
		min   string
		want  bool
	}{
		{
			input: "2024-05-01-preview",
			min:   "2024-07-10",
			want:  true,
		},
		{
			input: "2024-07-10",
			min:   "2024-05-01-preview",
		},
		{
			input: "2024-07-10-preview",
			min:   "2024-07-10",
			want:  true,
		},
		{
			input: "2024-07-10",
			min:   "2024-07-10-preview",
		},
		{
			input: "2024-07-10",
			min:   "2024-07-10",
		},
		{
			input: "2024-07-10-alpha",
			min:   "2024-07-10-beta",
			want:  true,
		},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			input, err := ParseAPIVersion(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			min, err := ParseAPIVersion(tt.min)
			if err != nil {
				t.Fatal(err)
			}

			got := input.Lt(min)
			if got != tt.want {
				t.Error(got)
			}
		})
	}
}

func TestEq(t *testing.T) {
	for i, tt := range []struct {
		input *APIVersion
		vsn   string
		equal bool
	}{
		{
			input: NewAPIVersion(2024, 7, 10),
			vsn:   "2024-07-10",
			equal: true,
		},
		{
			input: NewAPIVersion(2024, 5, 1),
			vsn:   "2024-05-01-preview",
		},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			vsn, err := ParseAPIVersion(tt.vsn)
			if err != nil {
				t.Error(err)
			}

			got := tt.input.Eq(vsn)
			if got != tt.equal {
				t.Error(got)
			}
		})
	}
}

func TestLatest(t *testing.T) {
	for _, tt := range []struct {
		name     string
		versions []string
		want     string
		wantErr  string
	}{
		{
			name:     "stable wins over older preview",
			versions: []string{"2024-05-01-preview", "2024-07-10", "2023-01-15-preview"},
			want:     "2024-07-10",
		},
		{
			name:     "newer preview wins",
			versions: []string{"2024-07-10", "2025-01-01-preview"},
			want:     "2025-01-01-preview",
		},
		{
			name:    "none",
			wantErr: "no api versions",
		},
		{
			name:     "invalid",
			versions: []string{"2024-07-10", "latest"},
			wantErr:  `could not parse api version "latest"`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Latest(tt.versions)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
			if got != tt.want {
				t.Error(got)
			}
		})
	}
}
