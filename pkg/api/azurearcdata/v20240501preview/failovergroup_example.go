package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
)

func exampleFailoverGroup() *FailoverGroupResource {
	return &FailoverGroupResource{
		ProxyResource: arm.ProxyResource{
			Resource: arm.Resource{
				ID:   pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.AzureArcData/sqlManagedInstances/sqlManagedInstanceName/failoverGroups/failoverGroupName"),
				Name: pointerutils.ToPtr("failoverGroupName"),
				Type: pointerutils.ToPtr("Microsoft.AzureArcData/sqlManagedInstances/failoverGroups"),
			},
		},
		Properties: &FailoverGroupProperties{
			ProvisioningState:        pointerutils.ToPtr(ProvisioningStateSucceeded),
			PartnerManagedInstanceID: pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.AzureArcData/sqlManagedInstances/partnerMI"),
			Spec: &FailoverGroupSpec{
				SharedName:          pointerutils.ToPtr("sharedname"),
				PartnerMirroringURL: pointerutils.ToPtr("tcp://partnerMI.contoso.com:5022"),
				PartnerSyncMode:     pointerutils.ToPtr(FailoverGroupPartnerSyncModeAsync),
				Role:                pointerutils.ToPtr(InstanceFailoverGroupRolePrimary),
			},
			Status: json.RawMessage(`{"role":"primary","observedGeneration":1}`),
		},
	}
}

// ExampleFailoverGroupParameter returns an example FailoverGroupResource
// object that an end-user might send to create a failover group in a PUT
// request
func ExampleFailoverGroupParameter() *FailoverGroupResource {
	fg := exampleFailoverGroup()
	fg.ID = nil
	fg.Name = nil
	fg.Type = nil
	fg.Properties.ProvisioningState = nil
	fg.Properties.Status = nil

	return fg
}

// ExampleFailoverGroupResponse returns an example FailoverGroupResource
// object that the RP might return to an end-user
func ExampleFailoverGroupResponse() *FailoverGroupResource {
	return exampleFailoverGroup()
}

// ExampleFailoverGroupListResponse returns an example FailoverGroupList
// object that the RP might return to an end-user
func ExampleFailoverGroupListResponse() *FailoverGroupList {
	return arm.NewList([]*FailoverGroupResource{
		ExampleFailoverGroupResponse(),
	}, "")
}
