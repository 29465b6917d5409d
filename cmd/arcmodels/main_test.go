package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	var names []string
	for _, c := range newRootCommand().Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"decode", "validate", "examples"}, names)
}

func TestDecodeCommand(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	file := filepath.Join(t.TempDir(), "esu.json")
	err := os.WriteFile(file, []byte(`{"value":[{"name":"x","properties":{"billingPlan":"PAYG"}}],"nextLink":""}`), 0666)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	cmd := newRootCommand()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"decode", "--namespace", "Microsoft.AzureArcData", "--type", "sqlServerEsuLicenses", "--list", file})

	err = cmd.Execute()
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":[{"name":"x","properties":{"billingPlan":"PAYG"}}],"nextLink":""}`, out.String())
}

func TestDecodeCommandInvalidOutput(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"decode", "--namespace", "Microsoft.AzureArcData", "--type", "sqlServerEsuLicenses", "-o", "xml", "x.json"})

	err := cmd.Execute()
	assert.EqualError(t, err, `invalid output format "xml"`)
}

func TestValidateCommandRequiresResourceID(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"validate", "--namespace", "Microsoft.HybridCompute", "--type", "licenses", "x.json"})

	err := cmd.Execute()
	assert.EqualError(t, err, "--resource-id is required")
}
