package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

// SqlServerEsuLicense describes a SQL Server Extended Security Updates
// license.
type SqlServerEsuLicense struct {
	arm.TrackedResource

	// SQL Server ESU license properties
	Properties *SqlServerEsuLicenseProperties `json:"properties,omitempty"`
}

// SqlServerEsuLicenseList is a page of SQL Server ESU licenses.
type SqlServerEsuLicenseList = arm.List[*SqlServerEsuLicense]

// SqlServerEsuLicenseProperties describes the properties of a SQL Server ESU
// license.
type SqlServerEsuLicenseProperties struct {
	// The SQL Server version the license covers.
	Version *EsuVersion `json:"version,omitempty"`

	// The unique ID of this license. This is a GUID-formatted string (e.g.
	// 00000000-0000-0000-0000-000000000000). Read only.
	UniqueID *string `json:"uniqueId,omitempty"`

	// SQL Server ESU license type.
	BillingPlan *BillingPlan `json:"billingPlan,omitempty"`

	// The number of total cores of the license covers.
	PhysicalCores *int32 `json:"physicalCores,omitempty"`

	// The activation state of the license.
	ActivationState *EsuLicenseState `json:"activationState,omitempty"`

	// The Azure scope to which the license will apply.
	ScopeType *ScopeType `json:"scopeType,omitempty"`

	// The timestamp of the activation of the SqlServerEsuLicense in ISO 8601
	// date-time format. Read only.
	ActivatedAt *date.Time `json:"activatedAt,omitempty"`

	// The timestamp of the termination of the SqlServerEsuLicense in ISO 8601
	// date-time format. Read only.
	TerminatedAt *date.Time `json:"terminatedAt,omitempty"`

	// The tenantId the SQL Server ESU license resource subscription resides
	// in. Read only.
	TenantID *string `json:"tenantId,omitempty"`
}

// SqlServerEsuLicenseUpdate is the body of a PATCH request on a SQL Server
// ESU license.
type SqlServerEsuLicenseUpdate struct {
	Tags       map[string]*string             `json:"tags,omitzero"`
	Properties *SqlServerEsuLicenseProperties `json:"properties,omitempty"`
}

// EsuVersion is the SQL Server version covered by an ESU license.
type EsuVersion string

const (
	EsuVersionSQLServer2012 EsuVersion = "SQL Server 2012"
	EsuVersionSQLServer2014 EsuVersion = "SQL Server 2014"
)

func PossibleEsuVersionValues() []EsuVersion {
	return []EsuVersion{EsuVersionSQLServer2012, EsuVersionSQLServer2014}
}

func (v EsuVersion) IsKnown() bool {
	return arm.IsKnown(v, PossibleEsuVersionValues())
}

// EsuLicenseState is the activation state of a SQL Server ESU license.
type EsuLicenseState string

const (
	EsuLicenseStateActive     EsuLicenseState = "Active"
	EsuLicenseStateInactive   EsuLicenseState = "Inactive"
	EsuLicenseStateTerminated EsuLicenseState = "Terminated"
)

func PossibleEsuLicenseStateValues() []EsuLicenseState {
	return []EsuLicenseState{EsuLicenseStateActive, EsuLicenseStateInactive, EsuLicenseStateTerminated}
}

func (v EsuLicenseState) IsKnown() bool {
	return arm.IsKnown(v, PossibleEsuLicenseStateValues())
}
