package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

// FailoverGroupResource is a failover group between two Arc SQL managed
// instances.
type FailoverGroupResource struct {
	arm.ProxyResource

	// null
	Properties *FailoverGroupProperties `json:"properties,omitempty"`
}

// FailoverGroupList is a page of failover groups.
type FailoverGroupList = arm.List[*FailoverGroupResource]

// FailoverGroupProperties describes a failover group.
type FailoverGroupProperties struct {
	// The provisioning state of the failover group resource. Read only.
	ProvisioningState *ProvisioningState `json:"provisioningState,omitempty"`

	// The resource ID of the partner SQL managed instance.
	PartnerManagedInstanceID *string `json:"partnerManagedInstanceId,omitempty"`

	// The specifications of the failover group resource.
	Spec *FailoverGroupSpec `json:"spec,omitempty"`

	// The status of the failover group custom resource, passed through
	// from the Kubernetes cluster verbatim.
	Status json.RawMessage `json:"status,omitempty"`
}

// FailoverGroupSpec is the specification of a failover group.
type FailoverGroupSpec struct {
	// The shared name of the failover group for this SQL managed instance.
	// Both SQL managed instance and its partner have to use the same shared
	// name.
	SharedName *string `json:"sharedName,omitempty"`

	// The name of the SQL managed instance with this failover group role.
	SourceMI *string `json:"sourceMI,omitempty"`

	// The name of the partner SQL managed instance.
	PartnerMI *string `json:"partnerMI,omitempty"`

	// The mirroring endpoint URL of the partner SQL managed instance.
	PartnerMirroringURL *string `json:"partnerMirroringURL,omitempty"`

	// The mirroring endpoint public certificate for the partner SQL managed
	// instance. Only PEM format is supported.
	PartnerMirroringCert *string `json:"partnerMirroringCert,omitempty"`

	// The partner sync mode of the SQL managed instance.
	PartnerSyncMode *FailoverGroupPartnerSyncMode `json:"partnerSyncMode,omitempty"`

	// The role of the SQL managed instance in this failover group.
	Role *InstanceFailoverGroupRole `json:"role,omitempty"`
}

// FailoverGroupPartnerSyncMode is the partner sync mode of a SQL managed
// instance.
type FailoverGroupPartnerSyncMode string

const (
	FailoverGroupPartnerSyncModeAsync FailoverGroupPartnerSyncMode = "async"
	FailoverGroupPartnerSyncModeSync  FailoverGroupPartnerSyncMode = "sync"
)

// DefaultFailoverGroupPartnerSyncMode applies when partnerSyncMode is
// absent.
const DefaultFailoverGroupPartnerSyncMode = FailoverGroupPartnerSyncModeAsync

func PossibleFailoverGroupPartnerSyncModeValues() []FailoverGroupPartnerSyncMode {
	return []FailoverGroupPartnerSyncMode{FailoverGroupPartnerSyncModeAsync, FailoverGroupPartnerSyncModeSync}
}

func (v FailoverGroupPartnerSyncMode) IsKnown() bool {
	return arm.IsKnown(v, PossibleFailoverGroupPartnerSyncModeValues())
}

// InstanceFailoverGroupRole is the role of a SQL managed instance in a
// failover group.
type InstanceFailoverGroupRole string

const (
	InstanceFailoverGroupRoleForcePrimaryAllowDataLoss InstanceFailoverGroupRole = "force-primary-allow-data-loss"
	InstanceFailoverGroupRoleForceSecondary            InstanceFailoverGroupRole = "force-secondary"
	InstanceFailoverGroupRolePrimary                   InstanceFailoverGroupRole = "primary"
	InstanceFailoverGroupRoleSecondary                 InstanceFailoverGroupRole = "secondary"
)

// DefaultInstanceFailoverGroupRole applies when role is absent.
const DefaultInstanceFailoverGroupRole = InstanceFailoverGroupRolePrimary

func PossibleInstanceFailoverGroupRoleValues() []InstanceFailoverGroupRole {
	return []InstanceFailoverGroupRole{
		InstanceFailoverGroupRoleForcePrimaryAllowDataLoss,
		InstanceFailoverGroupRoleForceSecondary,
		InstanceFailoverGroupRolePrimary,
		InstanceFailoverGroupRoleSecondary,
	}
}

func (v InstanceFailoverGroupRole) IsKnown() bool {
	return arm.IsKnown(v, PossibleInstanceFailoverGroupRoleValues())
}

// IsForced reports whether the role forces a failover.
func (v InstanceFailoverGroupRole) IsForced() bool {
	return v == InstanceFailoverGroupRoleForcePrimaryAllowDataLoss || v == InstanceFailoverGroupRoleForceSecondary
}
