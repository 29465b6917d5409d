package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
	utilerror "github.com/Azure/azure-arc-models/test/util/error"
)

const sqlServerInstanceResourceID = "/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.AzureArcData/sqlServerInstances/sqlServerInstanceName"

func TestSqlServerInstanceStaticValidate(t *testing.T) {
	for _, tt := range []struct {
		name    string
		modify  func(si *SqlServerInstance)
		wantErr string
	}{
		{
			name: "valid",
		},
		{
			name: "valid without properties",
			modify: func(si *SqlServerInstance) {
				si.Properties = nil
			},
		},
		{
			name: "type mismatch",
			modify: func(si *SqlServerInstance) {
				si.Type = pointerutils.ToPtr("Microsoft.AzureArcData/sqlServerLicenses")
			},
			wantErr: "400: MismatchingResourceType: type: The provided resource type 'Microsoft.AzureArcData/sqlServerLicenses' did not match the name in the Url 'Microsoft.AzureArcData/sqlServerInstances'.",
		},
		{
			name: "container resource ID of wrong type",
			modify: func(si *SqlServerInstance) {
				si.Properties.ContainerResourceID = pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.Compute/virtualMachines/vm")
			},
			wantErr: "400: InvalidParameter: properties.containerResourceId: The provided container resource ID '/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.Compute/virtualMachines/vm' is invalid: must be of type 'Microsoft.HybridCompute/machines'.",
		},
		{
			name: "retention period too long",
			modify: func(si *SqlServerInstance) {
				si.Properties.BackupPolicy.RetentionPeriodDays = pointerutils.ToPtr[int32](36)
			},
			wantErr: "400: InvalidParameter: properties.backupPolicy.retentionPeriodDays: The provided retention period '36' is invalid: must be between 0 and 35.",
		},
		{
			name: "full backup days too long",
			modify: func(si *SqlServerInstance) {
				si.Properties.BackupPolicy.FullBackupDays = pointerutils.ToPtr[int32](8)
			},
			wantErr: "400: InvalidParameter: properties.backupPolicy.fullBackupDays: The provided full backup interval '8' is invalid: must be between 0 and 7.",
		},
		{
			name: "differential backup hours invalid",
			modify: func(si *SqlServerInstance) {
				si.Properties.BackupPolicy.DifferentialBackupHours = pointerutils.ToPtr(DifferentialBackupHours(6))
			},
			wantErr: "400: InvalidParameter: properties.backupPolicy.differentialBackupHours: The provided differential backup interval '6' is invalid: must be 12 or 24.",
		},
		{
			name: "user assigned identity without client ID",
			modify: func(si *SqlServerInstance) {
				si.Properties.Authentication.SqlServerEntraIdentity[0].ClientID = nil
			},
			wantErr: "400: InvalidParameter: properties.authentication.sqlServerEntraIdentity[0].clientId: The provided client ID is invalid: must be set.",
		},
		{
			name: "system assigned identity with client ID",
			modify: func(si *SqlServerInstance) {
				si.Properties.Authentication.SqlServerEntraIdentity[0].IdentityType = pointerutils.ToPtr(IdentityTypeSystemAssignedManagedIdentity)
			},
			wantErr: "400: InvalidParameter: properties.authentication.sqlServerEntraIdentity[0].clientId: The provided client ID '00000000-1111-2222-3333-444444444444' is invalid: must be empty for a system assigned identity.",
		},
		{
			name: "unknown identity type is accepted",
			modify: func(si *SqlServerInstance) {
				si.Properties.Authentication.SqlServerEntraIdentity[0].IdentityType = pointerutils.ToPtr(IdentityType("WorkloadIdentity"))
				si.Properties.Authentication.SqlServerEntraIdentity[0].ClientID = pointerutils.ToPtr("not-a-uuid")
			},
		},
		{
			name: "unknown enum values are accepted",
			modify: func(si *SqlServerInstance) {
				si.Properties.Version = pointerutils.ToPtr(SqlVersion("SQL Server 2025"))
				si.Properties.Edition = pointerutils.ToPtr(EditionType("Azure"))
				si.Properties.HostType = pointerutils.ToPtr(HostType("OCI Virtual Machine"))
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			si := ExampleSqlServerInstanceParameter()
			if tt.modify != nil {
				tt.modify(si)
			}

			sv := &sqlServerInstanceStaticValidator{
				location:   "location",
				resourceID: sqlServerInstanceResourceID,
			}

			err := sv.Static(si)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
		})
	}
}
