package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
	utilerror "github.com/Azure/azure-arc-models/test/util/error"
)

const dataControllerResourceID = "/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.AzureArcData/dataControllers/dataControllerName"

func TestDataControllerStaticValidate(t *testing.T) {
	for _, tt := range []struct {
		name    string
		modify  func(dc *DataControllerResource)
		wantErr string
	}{
		{
			name: "valid",
		},
		{
			name: "extended location name unset",
			modify: func(dc *DataControllerResource) {
				dc.ExtendedLocation.Name = nil
			},
			wantErr: "400: InvalidParameter: extendedLocation.name: The provided extended location name is invalid: must be set.",
		},
		{
			name: "custom location of wrong type",
			modify: func(dc *DataControllerResource) {
				dc.ExtendedLocation.Name = pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.Kubernetes/connectedClusters/cluster")
			},
			wantErr: "400: InvalidParameter: extendedLocation.name: The provided custom location '/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.Kubernetes/connectedClusters/cluster' is invalid: must be of type 'Microsoft.ExtendedLocation/customLocations'.",
		},
		{
			name: "unknown extended location type is not checked",
			modify: func(dc *DataControllerResource) {
				dc.ExtendedLocation.Type = pointerutils.ToPtr(arm.ExtendedLocationType("EdgeZone"))
				dc.ExtendedLocation.Name = pointerutils.ToPtr("microsoftlosangeles1")
			},
		},
		{
			name: "properties unset",
			modify: func(dc *DataControllerResource) {
				dc.Properties = nil
			},
			wantErr: "400: InvalidParameter: properties: The provided properties are invalid: must be set.",
		},
		{
			name: "on premise ID invalid",
			modify: func(dc *DataControllerResource) {
				dc.Properties.OnPremiseProperty.ID = pointerutils.ToPtr("cluster")
			},
			wantErr: "400: InvalidParameter: properties.onPremiseProperty.id: The provided on premise ID 'cluster' is invalid.",
		},
		{
			name: "public signing key unset",
			modify: func(dc *DataControllerResource) {
				dc.Properties.OnPremiseProperty.PublicSigningKey = nil
			},
			wantErr: "400: InvalidParameter: properties.onPremiseProperty.publicSigningKey: The provided public signing key is invalid: must be set.",
		},
		{
			name: "workspace ID invalid",
			modify: func(dc *DataControllerResource) {
				dc.Properties.LogAnalyticsWorkspaceConfig.WorkspaceID = pointerutils.ToPtr("workspace")
			},
			wantErr: "400: InvalidParameter: properties.logAnalyticsWorkspaceConfig.workspaceId: The provided workspace ID 'workspace' is invalid.",
		},
		{
			name: "upload tenant ID invalid",
			modify: func(dc *DataControllerResource) {
				dc.Properties.UploadServicePrincipal.TenantID = pointerutils.ToPtr("contoso.onmicrosoft.com")
			},
			wantErr: "400: InvalidParameter: properties.uploadServicePrincipal.tenantId: The provided tenant ID 'contoso.onmicrosoft.com' is invalid.",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			dc := ExampleDataControllerParameter()
			if tt.modify != nil {
				tt.modify(dc)
			}

			sv := &dataControllerStaticValidator{
				location:   "location",
				resourceID: dataControllerResourceID,
			}

			err := sv.Static(dc)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
		})
	}
}
