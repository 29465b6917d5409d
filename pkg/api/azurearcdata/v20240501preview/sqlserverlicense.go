package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

// SqlServerLicense describes a SQL Server license.
type SqlServerLicense struct {
	arm.TrackedResource

	// SQL Server license properties
	Properties *SqlServerLicenseProperties `json:"properties,omitempty"`
}

// SqlServerLicenseList is a page of SQL Server licenses.
type SqlServerLicenseList = arm.List[*SqlServerLicense]

// SqlServerLicenseProperties describes the properties of a SQL Server
// license.
type SqlServerLicenseProperties struct {
	// SQL Server license type.
	BillingPlan *BillingPlan `json:"billingPlan,omitempty"`

	// The number of total cores of the license covers.
	PhysicalCores *int32 `json:"physicalCores,omitempty"`

	// This property represents the choice between SQL Server Core and ESU
	// licenses.
	LicenseCategory *LicenseCategory `json:"licenseCategory,omitempty"`

	// The activation state of the license.
	ActivationState *ActivationState `json:"activationState,omitempty"`

	// The Azure scope to which the license will apply.
	ScopeType *ScopeType `json:"scopeType,omitempty"`

	// The timestamp of the most recent activation of the SqlServerLicense.
	// Read only.
	LastActivatedAt *date.Time `json:"lastActivatedAt,omitempty"`

	// The timestamp of the most recent deactivation of the SqlServerLicense.
	// Read only.
	LastDeactivatedAt *date.Time `json:"lastDeactivatedAt,omitempty"`

	// The tenantId the SQL Server license resource subscription resides in.
	// Read only.
	TenantID *string `json:"tenantId,omitempty"`
}

// SqlServerLicenseUpdate is the body of a PATCH request on a SQL Server
// license.
type SqlServerLicenseUpdate struct {
	Tags       map[string]*string          `json:"tags,omitzero"`
	Properties *SqlServerLicenseProperties `json:"properties,omitempty"`
}

// LicenseCategory represents the choice between SQL Server Core and ESU
// licenses.
type LicenseCategory string

const (
	LicenseCategoryCore LicenseCategory = "Core"
)

func PossibleLicenseCategoryValues() []LicenseCategory {
	return []LicenseCategory{LicenseCategoryCore}
}

func (v LicenseCategory) IsKnown() bool {
	return arm.IsKnown(v, PossibleLicenseCategoryValues())
}

// ActivationState is the activation state of a SQL Server license.
type ActivationState string

const (
	ActivationStateActivated   ActivationState = "Activated"
	ActivationStateDeactivated ActivationState = "Deactivated"
)

func PossibleActivationStateValues() []ActivationState {
	return []ActivationState{ActivationStateActivated, ActivationStateDeactivated}
}

func (v ActivationState) IsKnown() bool {
	return arm.IsKnown(v, PossibleActivationStateValues())
}
