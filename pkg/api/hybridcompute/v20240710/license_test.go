package v20240710

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

const licenseListResponse = `{
	"value": [
		{
			"id": "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg/providers/Microsoft.HybridCompute/licenses/esu1",
			"name": "esu1",
			"type": "Microsoft.HybridCompute/licenses",
			"location": "eastus2euap",
			"systemData": {
				"createdBy": "user@contoso.com",
				"createdByType": "User",
				"createdAt": "2024-07-10T08:00:00Z"
			},
			"properties": {
				"provisioningState": "Succeeded",
				"tenantId": "11111111-1111-1111-1111-111111111111",
				"licenseType": "ESU",
				"licenseDetails": {
					"state": "Activated",
					"target": "Windows Server 2012 R2",
					"edition": "Datacenter",
					"type": "pCore",
					"processors": 16,
					"assignedLicenses": 2,
					"immutableId": "22222222-2222-2222-2222-222222222222",
					"volumeLicenseDetails": [
						{"programYear": "Year 1", "invoiceId": "inv-1"},
						{"programYear": "Year 4", "invoiceId": "inv-4"}
					]
				}
			}
		},
		{
			"id": "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg/providers/Microsoft.HybridCompute/licenses/esu2",
			"name": "esu2",
			"type": "Microsoft.HybridCompute/licenses",
			"location": "eastus2euap",
			"properties": {
				"provisioningState": "Provisioning",
				"licenseDetails": {
					"state": "Deactivated",
					"target": "Windows Server 2016",
					"type": "vCore",
					"processors": 8
				}
			}
		}
	],
	"nextLink": "https://management.azure.com/subscriptions/00000000-0000-0000-0000-000000000000/providers/Microsoft.HybridCompute/licenses?api-version=2024-07-10&$skiptoken=2"
}`

func TestDecodeLicenseList(t *testing.T) {
	var l LicenseList
	err := json.Unmarshal([]byte(licenseListResponse), &l)
	require.NoError(t, err)

	require.Len(t, l.Value, 2)
	require.NotNil(t, l.ContinuationToken())
	assert.Equal(t, "https://management.azure.com/subscriptions/00000000-0000-0000-0000-000000000000/providers/Microsoft.HybridCompute/licenses?api-version=2024-07-10&$skiptoken=2", *l.ContinuationToken())

	esu1 := l.Value[0]
	assert.Equal(t, "esu1", *esu1.Name)
	assert.Equal(t, arm.CreatedByTypeUser, *esu1.SystemData.CreatedByType)
	assert.True(t, esu1.SystemData.CreatedAt.Equal(time.Date(2024, 7, 10, 8, 0, 0, 0, time.UTC)))
	assert.Nil(t, esu1.SystemData.LastModifiedAt)

	d := esu1.Properties.LicenseDetails
	assert.Equal(t, LicenseTargetWindowsServer2012R2, *d.Target)
	assert.True(t, d.Target.IsKnown())
	assert.Equal(t, LicenseCoreTypePCore, *d.Type)
	assert.Equal(t, int32(16), *d.Processors)
	require.Len(t, d.VolumeLicenseDetails, 2)
	assert.Equal(t, ProgramYearYear1, *d.VolumeLicenseDetails[0].ProgramYear)
	assert.Equal(t, ProgramYear("Year 4"), *d.VolumeLicenseDetails[1].ProgramYear)
	assert.False(t, d.VolumeLicenseDetails[1].ProgramYear.IsKnown())

	esu2 := l.Value[1]
	assert.Nil(t, esu2.SystemData)
	assert.Nil(t, esu2.Properties.TenantID)
	assert.Nil(t, esu2.Properties.LicenseDetails.Edition)
	assert.Empty(t, esu2.Properties.LicenseDetails.VolumeLicenseDetails)
	assert.Equal(t, ProvisioningState("Provisioning"), *esu2.Properties.ProvisioningState)
}

func TestLicenseListRoundTrip(t *testing.T) {
	var l LicenseList
	err := json.Unmarshal([]byte(licenseListResponse), &l)
	require.NoError(t, err)

	b, err := json.Marshal(&l)
	require.NoError(t, err)

	assert.JSONEq(t, licenseListResponse, string(b))
}

func TestLicenseListUnknownValues(t *testing.T) {
	var l LicenseList
	err := json.Unmarshal([]byte(licenseListResponse), &l)
	require.NoError(t, err)

	assert.Equal(t, []arm.UnknownValue{
		{Path: "value[0].properties.licenseDetails.volumeLicenseDetails[1].programYear", Value: "Year 4"},
		{Path: "value[1].properties.provisioningState", Value: "Provisioning"},
		{Path: "value[1].properties.licenseDetails.target", Value: "Windows Server 2016"},
	}, arm.UnknownValues(&l))
}

func TestLicenseDetailsWireValues(t *testing.T) {
	d := &LicenseDetails{}
	err := json.Unmarshal([]byte(`{"target":"Windows Server 2012","type":"vCore","edition":"Standard"}`), d)
	require.NoError(t, err)

	assert.Equal(t, LicenseTargetWindowsServer2012, *d.Target)
	assert.Equal(t, LicenseCoreTypeVCore, *d.Type)
	assert.Equal(t, LicenseEditionStandard, *d.Edition)

	// case sensitive
	err = json.Unmarshal([]byte(`{"type":"VCORE"}`), d)
	require.NoError(t, err)
	assert.False(t, d.Type.IsKnown())
	assert.Equal(t, int32(0), d.Type.MinimumProcessors())
}

func TestProvisioningStateIsTerminal(t *testing.T) {
	for _, v := range PossibleProvisioningStateValues() {
		switch v {
		case ProvisioningStateSucceeded, ProvisioningStateFailed, ProvisioningStateCanceled, ProvisioningStateDeleted:
			assert.True(t, v.IsTerminal(), string(v))
		default:
			assert.False(t, v.IsTerminal(), string(v))
		}
	}
}
