package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

// ProvisioningState is the provisioning state of an Azure Arc data resource.
type ProvisioningState string

// ProvisioningState constants
const (
	ProvisioningStateAccepted     ProvisioningState = "Accepted"
	ProvisioningStateCanceled     ProvisioningState = "Canceled"
	ProvisioningStateDeleting     ProvisioningState = "Deleting"
	ProvisioningStateFailed       ProvisioningState = "Failed"
	ProvisioningStateProvisioning ProvisioningState = "Provisioning"
	ProvisioningStateSucceeded    ProvisioningState = "Succeeded"
	ProvisioningStateUpdating     ProvisioningState = "Updating"
)

func PossibleProvisioningStateValues() []ProvisioningState {
	return []ProvisioningState{
		ProvisioningStateAccepted,
		ProvisioningStateCanceled,
		ProvisioningStateDeleting,
		ProvisioningStateFailed,
		ProvisioningStateProvisioning,
		ProvisioningStateSucceeded,
		ProvisioningStateUpdating,
	}
}

func (v ProvisioningState) IsKnown() bool {
	return arm.IsKnown(v, PossibleProvisioningStateValues())
}

// BillingPlan is the SQL Server license billing plan.
type BillingPlan string

const (
	BillingPlanPAYG BillingPlan = "PAYG"
	BillingPlanPaid BillingPlan = "Paid"
)

func PossibleBillingPlanValues() []BillingPlan {
	return []BillingPlan{BillingPlanPAYG, BillingPlanPaid}
}

func (v BillingPlan) IsKnown() bool {
	return arm.IsKnown(v, PossibleBillingPlanValues())
}

// ScopeType is the Azure scope to which a license will apply.
type ScopeType string

const (
	ScopeTypeResourceGroup ScopeType = "ResourceGroup"
	ScopeTypeSubscription  ScopeType = "Subscription"
	ScopeTypeTenant        ScopeType = "Tenant"
)

func PossibleScopeTypeValues() []ScopeType {
	return []ScopeType{ScopeTypeResourceGroup, ScopeTypeSubscription, ScopeTypeTenant}
}

func (v ScopeType) IsKnown() bool {
	return arm.IsKnown(v, PossibleScopeTypeValues())
}
