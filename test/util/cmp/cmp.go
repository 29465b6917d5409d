package cmp

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	gocmp "github.com/google/go-cmp/cmp"

	"github.com/Azure/azure-arc-models/pkg/api/azurearcdata/v20240501preview"
)

// Diff is a wrapper for github.com/google/go-cmp/cmp.Diff with extra options
func Diff(x, y interface{}, opts ...gocmp.Option) string {
	newOpts := append(
		opts,
		gocmp.AllowUnexported(v20240501preview.MigrationTarget{}),
	)

	return gocmp.Diff(x, y, newOpts...)
}
