package decode

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/Azure/azure-arc-models/pkg/api/azurearcdata/v20240501preview"
	_ "github.com/Azure/azure-arc-models/pkg/api/hybridcompute/v20240710"
	"github.com/Azure/azure-arc-models/pkg/entrypoint/config"
	testlog "github.com/Azure/azure-arc-models/test/util/log"
)

func writeFiles(t *testing.T, bodies ...string) []string {
	t.Helper()

	dir := t.TempDir()
	files := make([]string, 0, len(bodies))
	for i, body := range bodies {
		file := filepath.Join(dir, string(rune('a'+i))+".json")
		err := os.WriteFile(file, []byte(body), 0666)
		require.NoError(t, err)
		files = append(files, file)
	}

	return files
}

func newConfig(resourceType string) *Config {
	return &Config{
		Resource: config.Resource{
			Namespace:  "Microsoft.AzureArcData",
			APIVersion: "2024-05-01-preview",
			Type:       resourceType,
		},
		Parallelism: 1,
		Output:      outputJSON,
	}
}

func TestDecode(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name     string
		cfg      func(*Config)
		body     string
		want     string
		wantLogs []testlog.ExpectedLogEntry
	}{
		{
			name: "esu license list, last page",
			cfg: func(c *Config) {
				c.Type = "sqlServerEsuLicenses"
				c.List = true
			},
			body: `{"value":[{"name":"x","properties":{"billingPlan":"PAYG"}}],"nextLink":""}`,
			want: `{"value":[{"name":"x","properties":{"billingPlan":"PAYG"}}],"nextLink":""}`,
		},
		{
			name: "esu license list with more pages",
			cfg: func(c *Config) {
				c.Type = "sqlServerEsuLicenses"
				c.List = true
			},
			body: `{"value":[],"nextLink":"https://management.azure.com/next?$skipToken=1"}`,
			want: `{"value":[],"nextLink":"https://management.azure.com/next?$skipToken=1"}`,
			wantLogs: []testlog.ExpectedLogEntry{
				{Level: logrus.InfoLevel, Message: "more results available at https://management.azure.com/next?$skipToken=1"},
			},
		},
		{
			name: "unknown values are kept and reported",
			cfg: func(c *Config) {
				c.Type = "sqlServerEsuLicenses"
			},
			body: `{"properties":{"billingPlan":"Free","version":"SQL Server 2012","activationState":"active"}}`,
			want: `{"properties":{"billingPlan":"Free","version":"SQL Server 2012","activationState":"active"}}`,
			wantLogs: []testlog.ExpectedLogEntry{
				{Level: logrus.WarnLevel, Message: `unknown value properties.billingPlan="Free"`},
				{Level: logrus.WarnLevel, Message: `unknown value properties.activationState="active"`},
			},
		},
		{
			name: "defaults not applied",
			cfg: func(c *Config) {
				c.Type = "sqlManagedInstances/failoverGroups"
			},
			body: `{"properties":{"spec":{"sharedName":"x"}}}`,
			want: `{"properties":{"spec":{"sharedName":"x"}}}`,
		},
		{
			name: "defaults applied",
			cfg: func(c *Config) {
				c.Type = "sqlManagedInstances/failoverGroups"
				c.Defaults = true
			},
			body: `{"properties":{"spec":{"sharedName":"x"}}}`,
			want: `{"properties":{"spec":{"sharedName":"x","partnerSyncMode":"async","role":"primary"}}}`,
		},
		{
			name: "defaults do not replace unknown values",
			cfg: func(c *Config) {
				c.Type = "sqlManagedInstances/failoverGroups"
				c.Defaults = true
			},
			body: `{"properties":{"spec":{"role":"tertiary"}}}`,
			want: `{"properties":{"spec":{"partnerSyncMode":"async","role":"tertiary"}}}`,
			wantLogs: []testlog.ExpectedLogEntry{
				{Level: logrus.WarnLevel, Message: `unknown value properties.spec.role="tertiary"`},
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			h, log := testlog.NewCapturingLogger()

			cfg := newConfig("")
			tt.cfg(cfg)

			files := writeFiles(t, tt.body)
			for i := range tt.wantLogs {
				tt.wantLogs[i].Fields = logrus.Fields{"file": files[0]}
			}

			out := &bytes.Buffer{}
			err := start(ctx, log, cfg, files, out)
			require.NoError(t, err)

			assert.JSONEq(t, tt.want, out.String())

			for _, e := range testlog.AssertLoggingOutput(h, tt.wantLogs) {
				t.Error(e)
			}
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	_, log := testlog.NewCapturingLogger()

	cfg := newConfig("sqlManagedInstances/failoverGroups")
	cfg.Defaults = true
	cfg.Output = outputYAML

	out := &bytes.Buffer{}
	err := start(context.Background(), log, cfg, writeFiles(t,
		`{"properties":{"spec":{"sharedName":"x"}}}`,
		`{"name":"fg"}`,
	), out)
	require.NoError(t, err)

	assert.Equal(t, `properties:
  spec:
    partnerSyncMode: async
    role: primary
    sharedName: x
---
name: fg
`, out.String())
}

func TestDecodeErrors(t *testing.T) {
	_, log := testlog.NewCapturingLogger()

	cfg := newConfig("sqlServerEsuLicenses")
	cfg.Parallelism = 2

	files := writeFiles(t,
		`{"name":"a"}`,
		`{"name":`,
		`{"properties":{"physicalCores":"many"}}`,
		`{"name":"d"}`,
	)
	files = append(files, filepath.Join(t.TempDir(), "missing.json"))

	out := &bytes.Buffer{}
	err := start(context.Background(), log, cfg, files, out)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "3 errors occurred")
	assert.Contains(t, err.Error(), files[1]+": decoding: unexpected end of JSON input")
	assert.Contains(t, err.Error(), files[2]+": decoding: json: cannot unmarshal string")
	assert.Contains(t, err.Error(), files[4]+": open ")

	// successful files are still written, in argument order
	dec := strings.Split(strings.TrimSpace(out.String()), "\n}\n")
	require.Len(t, dec, 2)
	assert.Contains(t, dec[0], `"name": "a"`)
	assert.Contains(t, dec[1], `"name": "d"`)
}

func TestDecodeUnknownType(t *testing.T) {
	_, log := testlog.NewCapturingLogger()

	err := start(context.Background(), log, newConfig("sqlServers"), nil, &bytes.Buffer{})
	assert.EqualError(t, err, "400: InvalidResourceType: : The resource type 'sqlServers' could not be found in the namespace 'Microsoft.AzureArcData' for api version '2024-05-01-preview'.")
}

func TestDecodeCanceled(t *testing.T) {
	_, log := testlog.NewCapturingLogger()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := start(ctx, log, newConfig("sqlServerEsuLicenses"), writeFiles(t, `{}`), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}
