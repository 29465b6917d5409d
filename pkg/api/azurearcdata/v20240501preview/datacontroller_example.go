package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/api/arm"
	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
)

func exampleDataController() *DataControllerResource {
	return &DataControllerResource{
		TrackedResource: arm.TrackedResource{
			Resource: arm.Resource{
				ID:   pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.AzureArcData/dataControllers/dataControllerName"),
				Name: pointerutils.ToPtr("dataControllerName"),
				Type: pointerutils.ToPtr("Microsoft.AzureArcData/dataControllers"),
			},
			Location: pointerutils.ToPtr("location"),
		},
		ExtendedLocation: &arm.ExtendedLocation{
			Name: pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.ExtendedLocation/customLocations/arclocation"),
			Type: pointerutils.ToPtr(arm.ExtendedLocationTypeCustomLocation),
		},
		Properties: &DataControllerProperties{
			Infrastructure: pointerutils.ToPtr(InfrastructureOnpremises),
			OnPremiseProperty: &OnPremiseProperty{
				ID:                           pointerutils.ToPtr("12345678-1234-1234-ab12-1a2b3c4d5e6f"),
				PublicSigningKey:             pointerutils.ToPtr("publicOnPremSigningKey"),
				SigningCertificateThumbprint: pointerutils.ToPtr("thumbprint"),
			},
			BasicLoginInformation: &BasicLoginInformation{
				Username: pointerutils.ToPtr("username"),
				Password: pointerutils.ToPtr(api.SecureString("password")),
			},
			LogAnalyticsWorkspaceConfig: &LogAnalyticsWorkspaceConfig{
				WorkspaceID: pointerutils.ToPtr("00000000-1111-2222-3333-444444444444"),
				PrimaryKey:  pointerutils.ToPtr(api.SecureString("primaryKey")),
			},
			UploadServicePrincipal: &UploadServicePrincipal{
				ClientID:     pointerutils.ToPtr("00000000-1111-2222-3333-444444444444"),
				TenantID:     pointerutils.ToPtr("00000000-1111-2222-3333-444444444444"),
				Authority:    pointerutils.ToPtr("https://login.microsoftonline.com"),
				ClientSecret: pointerutils.ToPtr(api.SecureString("clientSecret")),
			},
			ProvisioningState: pointerutils.ToPtr("Succeeded"),
			ClusterID:         pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.Kubernetes/connectedClusters/connectedk8s"),
			ExtensionID:       pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.Kubernetes/connectedClusters/connectedk8s/providers/Microsoft.KubernetesConfiguration/extensions/extension"),
		},
	}
}

// ExampleDataControllerParameter returns an example DataControllerResource
// object that an end-user might send to create a data controller in a PUT
// request
func ExampleDataControllerParameter() *DataControllerResource {
	dc := exampleDataController()
	dc.ID = nil
	dc.Name = nil
	dc.Type = nil
	dc.Properties.ProvisioningState = nil
	dc.Properties.ClusterID = nil
	dc.Properties.ExtensionID = nil

	return dc
}

// ExampleDataControllerResponse returns an example DataControllerResource
// object that the RP might return to an end-user. Secrets are never
// returned.
func ExampleDataControllerResponse() *DataControllerResource {
	dc := exampleDataController()
	dc.Properties.BasicLoginInformation.Password = nil
	dc.Properties.LogAnalyticsWorkspaceConfig.PrimaryKey = nil
	dc.Properties.UploadServicePrincipal.ClientSecret = nil

	return dc
}

// ExampleDataControllerListResponse returns an example DataControllerList
// object that the RP might return to an end-user
func ExampleDataControllerListResponse() *DataControllerList {
	return arm.NewList([]*DataControllerResource{
		ExampleDataControllerResponse(),
	}, "")
}
