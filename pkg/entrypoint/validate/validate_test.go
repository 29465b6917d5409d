package validate

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-arc-models/pkg/api/azurearcdata/v20240501preview"
	"github.com/Azure/azure-arc-models/pkg/entrypoint/config"
	utilerror "github.com/Azure/azure-arc-models/test/util/error"
	testlog "github.com/Azure/azure-arc-models/test/util/log"
)

const resourceID = "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg/providers/Microsoft.AzureArcData/sqlServerEsuLicenses/esu1"

func writeFile(t *testing.T, name string, v interface{}) string {
	t.Helper()

	var b []byte
	switch v := v.(type) {
	case string:
		b = []byte(v)
	default:
		var err error
		b, err = json.Marshal(v)
		require.NoError(t, err)
	}

	file := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(file, b, 0666)
	require.NoError(t, err)

	return file
}

func newConfig() *Config {
	return &Config{
		Resource: config.Resource{
			Namespace:  "Microsoft.AzureArcData",
			APIVersion: "2024-05-01-preview",
			Type:       "sqlServerEsuLicenses",
		},
		ResourceID: resourceID,
		Location:   "location",
	}
}

func TestValidate(t *testing.T) {
	unknownPlan := v20240501preview.ExampleSqlServerEsuLicenseParameter()
	*unknownPlan.Properties.BillingPlan = "Free"

	for _, tt := range []struct {
		name     string
		body     interface{}
		wantErr  string
		wantLogs []testlog.ExpectedLogEntry
	}{
		{
			name: "valid",
			body: v20240501preview.ExampleSqlServerEsuLicenseParameter(),
			wantLogs: []testlog.ExpectedLogEntry{
				{Level: logrus.InfoLevel, Message: "valid"},
			},
		},
		{
			name: "unknown value is not an error",
			body: unknownPlan,
			wantLogs: []testlog.ExpectedLogEntry{
				{Level: logrus.WarnLevel, Message: `unknown value properties.billingPlan="Free"`},
				{Level: logrus.InfoLevel, Message: "valid"},
			},
		},
		{
			name:    "missing billing plan",
			body:    `{"location":"location","properties":{"version":"SQL Server 2012"}}`,
			wantErr: "400: InvalidParameter: properties.billingPlan: The provided billing plan is invalid: must be set.",
		},
		{
			name:    "wrong location",
			body:    `{"location":"westus"}`,
			wantErr: "400: InvalidParameter: location: The provided location 'westus' is invalid.",
		},
		{
			name:    "malformed",
			body:    `[]`,
			wantErr: "decoding: json: cannot unmarshal array into Go value of type v20240501preview.SqlServerEsuLicense",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			h, log := testlog.NewCapturingLogger()

			file := writeFile(t, "esu.json", tt.body)
			for i := range tt.wantLogs {
				tt.wantLogs[i].Fields = logrus.Fields{
					"file":          file,
					"resource_name": "esu1",
				}
			}

			err := start(context.Background(), log, newConfig(), []string{file})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), file+": "+tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			for _, e := range testlog.AssertLoggingOutput(h, tt.wantLogs) {
				t.Error(e)
			}
		})
	}
}

func TestValidateLogsResource(t *testing.T) {
	h, log := testlog.NewCapturingLogger()

	file := writeFile(t, "esu.json", v20240501preview.ExampleSqlServerEsuLicenseParameter())

	err := start(context.Background(), log, newConfig(), []string{file})
	require.NoError(t, err)

	require.Len(t, h.AllEntries(), 1)
	e := h.LastEntry()
	assert.Equal(t, "esu1", e.Data["resource_name"])
	assert.Equal(t, "microsoft.azurearcdata/sqlserveresulicenses", e.Data["resource_type"])
	assert.Equal(t, file, e.Data["file"])
}

func TestValidateAggregates(t *testing.T) {
	_, log := testlog.NewCapturingLogger()

	files := []string{
		writeFile(t, "a.json", `{"location":"westus"}`),
		writeFile(t, "b.json", v20240501preview.ExampleSqlServerEsuLicenseParameter()),
		writeFile(t, "c.json", `{"location":"location"}`),
	}

	err := start(context.Background(), log, newConfig(), files)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Contains(t, err.Error(), files[0]+": 400: InvalidParameter: location")
	assert.Contains(t, err.Error(), files[2]+": 400: InvalidParameter: properties: The provided properties are invalid: must be set.")
	assert.NotContains(t, err.Error(), files[1])
}

func TestValidateResourceIDMismatch(t *testing.T) {
	_, log := testlog.NewCapturingLogger()

	cfg := newConfig()
	cfg.ResourceID = "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg/providers/Microsoft.AzureArcData/sqlServerLicenses/l1"

	err := start(context.Background(), log, cfg, []string{writeFile(t, "a.json", v20240501preview.ExampleSqlServerEsuLicenseParameter())})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400: InvalidResourceType: id: The resource ID '"+cfg.ResourceID+"' is not of type 'Microsoft.AzureArcData/sqlServerEsuLicenses'.")
}

func TestValidateLocation(t *testing.T) {
	for _, tt := range []struct {
		name         string
		resourceType string
		resourceID   string
		body         interface{}
		location     string
		wantErr      string
	}{
		{
			name:         "tracked resource without location",
			resourceType: "sqlServerEsuLicenses",
			resourceID:   resourceID,
			body:         v20240501preview.ExampleSqlServerEsuLicenseParameter(),
			wantErr:      "--location is required for Microsoft.AzureArcData/sqlServerEsuLicenses",
		},
		{
			name:         "tracked resource with location",
			resourceType: "sqlServerEsuLicenses",
			resourceID:   resourceID,
			body:         v20240501preview.ExampleSqlServerEsuLicenseParameter(),
			location:     "location",
		},
		{
			name:         "proxy resource without location",
			resourceType: "sqlManagedInstances/failoverGroups",
			resourceID:   "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg/providers/Microsoft.AzureArcData/sqlManagedInstances/mi1/failoverGroups/fg1",
			body:         v20240501preview.ExampleFailoverGroupParameter(),
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, log := testlog.NewCapturingLogger()

			cfg := newConfig()
			cfg.Type = tt.resourceType
			cfg.ResourceID = tt.resourceID
			cfg.Location = tt.location

			err := start(context.Background(), log, cfg, []string{writeFile(t, "a.json", tt.body)})
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
		})
	}
}
