package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVars(t *testing.T) {
	source := MapEnv{
		"AZURE_CLIENT_ID": "id",
		"AZURE_TENANT_ID": "",
	}

	assert.NoError(t, ValidateVars(source, "AZURE_CLIENT_ID", "AZURE_TENANT_ID"))
	assert.EqualError(t, ValidateVars(source, "AZURE_CLIENT_ID", "AZURE_CLIENT_SECRET"), `environment variable "AZURE_CLIENT_SECRET" unset`)
	assert.NoError(t, ValidateVars(source))
}

func TestOsEnv(t *testing.T) {
	t.Setenv("ARCMODELS_TEST_VAR", "value")

	e := NewOsEnv()
	assert.Equal(t, "value", e.Getenv("ARCMODELS_TEST_VAR"))

	_, found := e.LookupEnv("ARCMODELS_TEST_VAR_UNSET")
	assert.False(t, found)
}
