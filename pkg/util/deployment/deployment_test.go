package deployment

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Azure/azure-arc-models/pkg/util/env"
)

func TestNewMode(t *testing.T) {
	for _, tt := range []struct {
		value string
		want  Mode
	}{
		{value: "development", want: Development},
		{value: "Development", want: Development},
		{value: "production", want: Production},
		{value: "", want: Production},
		{value: "dev", want: Production},
	} {
		t.Run(tt.value, func(t *testing.T) {
			got := NewMode(env.MapEnv{"ARCMODELS_MODE": tt.value})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == Development, got.String() == "development")
		})
	}
}
