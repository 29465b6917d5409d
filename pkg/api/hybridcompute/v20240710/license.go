package v20240710

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

// License describes an Extended Security Updates license which can be
// assigned to Azure Arc-enabled servers.
type License struct {
	arm.TrackedResource

	// Hybrid Compute License properties.
	Properties *LicenseProperties `json:"properties,omitempty"`
}

// LicenseList is a page of licenses.
type LicenseList = arm.List[*License]

// LicenseProperties describes the properties of a License.
type LicenseProperties struct {
	// The provisioning state, which only appears in the response.
	ProvisioningState *ProvisioningState `json:"provisioningState,omitempty"`

	// Describes the tenant id.
	TenantID *string `json:"tenantId,omitempty"`

	// The type of the license resource.
	LicenseType *LicenseType `json:"licenseType,omitempty"`

	// Describes the properties of a License.
	LicenseDetails *LicenseDetails `json:"licenseDetails,omitempty"`
}

// LicenseDetails describes the properties of a License.
type LicenseDetails struct {
	State   *LicenseState    `json:"state,omitempty"`
	Target  *LicenseTarget   `json:"target,omitempty"`
	Edition *LicenseEdition  `json:"edition,omitempty"`
	Type    *LicenseCoreType `json:"type,omitempty"`

	// Describes the number of processors.
	Processors *int32 `json:"processors,omitempty"`

	// Describes the number of assigned licenses. Read only.
	AssignedLicenses *int32 `json:"assignedLicenses,omitempty"`

	// Describes the immutable id. Read only.
	ImmutableID *string `json:"immutableId,omitempty"`

	// A list of volume license details.
	VolumeLicenseDetails []*VolumeLicenseDetails `json:"volumeLicenseDetails,omitzero"`
}

// VolumeLicenseDetails ties a license to a volume licensing purchase.
type VolumeLicenseDetails struct {
	ProgramYear *ProgramYear `json:"programYear,omitempty"`

	// The invoice id for the volume license.
	InvoiceID *string `json:"invoiceId,omitempty"`
}

// LicenseUpdate is the body of a PATCH request on a license.
type LicenseUpdate struct {
	Tags       map[string]*string       `json:"tags,omitzero"`
	Properties *LicenseUpdateProperties `json:"properties,omitempty"`
}

// LicenseUpdateProperties holds the license properties which may be patched.
type LicenseUpdateProperties struct {
	LicenseType    *LicenseType                    `json:"licenseType,omitempty"`
	LicenseDetails *LicenseUpdatePropertiesDetails `json:"licenseDetails,omitempty"`
}

// LicenseUpdatePropertiesDetails holds the license details which may be
// patched.
type LicenseUpdatePropertiesDetails struct {
	State      *LicenseState    `json:"state,omitempty"`
	Target     *LicenseTarget   `json:"target,omitempty"`
	Edition    *LicenseEdition  `json:"edition,omitempty"`
	Type       *LicenseCoreType `json:"type,omitempty"`
	Processors *int32           `json:"processors,omitempty"`
}

// ProvisioningState represents a provisioning state.
type ProvisioningState string

// ProvisioningState constants
const (
	ProvisioningStateAccepted  ProvisioningState = "Accepted"
	ProvisioningStateCanceled  ProvisioningState = "Canceled"
	ProvisioningStateCreating  ProvisioningState = "Creating"
	ProvisioningStateDeleted   ProvisioningState = "Deleted"
	ProvisioningStateDeleting  ProvisioningState = "Deleting"
	ProvisioningStateFailed    ProvisioningState = "Failed"
	ProvisioningStateSucceeded ProvisioningState = "Succeeded"
	ProvisioningStateUpdating  ProvisioningState = "Updating"
)

func PossibleProvisioningStateValues() []ProvisioningState {
	return []ProvisioningState{
		ProvisioningStateAccepted,
		ProvisioningStateCanceled,
		ProvisioningStateCreating,
		ProvisioningStateDeleted,
		ProvisioningStateDeleting,
		ProvisioningStateFailed,
		ProvisioningStateSucceeded,
		ProvisioningStateUpdating,
	}
}

func (v ProvisioningState) IsKnown() bool {
	return arm.IsKnown(v, PossibleProvisioningStateValues())
}

// IsTerminal reports whether no further transitions are expected.
func (v ProvisioningState) IsTerminal() bool {
	switch v {
	case ProvisioningStateSucceeded, ProvisioningStateFailed, ProvisioningStateCanceled, ProvisioningStateDeleted:
		return true
	}
	return false
}

// LicenseType is the type of the license resource.
type LicenseType string

const (
	LicenseTypeESU LicenseType = "ESU"
)

func PossibleLicenseTypeValues() []LicenseType {
	return []LicenseType{LicenseTypeESU}
}

func (v LicenseType) IsKnown() bool {
	return arm.IsKnown(v, PossibleLicenseTypeValues())
}

// LicenseState describes the state of the license.
type LicenseState string

const (
	LicenseStateActivated   LicenseState = "Activated"
	LicenseStateDeactivated LicenseState = "Deactivated"
)

func PossibleLicenseStateValues() []LicenseState {
	return []LicenseState{LicenseStateActivated, LicenseStateDeactivated}
}

func (v LicenseState) IsKnown() bool {
	return arm.IsKnown(v, PossibleLicenseStateValues())
}

// LicenseTarget describes the license target server.
type LicenseTarget string

const (
	LicenseTargetWindowsServer2012   LicenseTarget = "Windows Server 2012"
	LicenseTargetWindowsServer2012R2 LicenseTarget = "Windows Server 2012 R2"
)

func PossibleLicenseTargetValues() []LicenseTarget {
	return []LicenseTarget{LicenseTargetWindowsServer2012, LicenseTargetWindowsServer2012R2}
}

func (v LicenseTarget) IsKnown() bool {
	return arm.IsKnown(v, PossibleLicenseTargetValues())
}

// LicenseEdition describes the edition of the license. The values are either
// Standard or Datacenter.
type LicenseEdition string

const (
	LicenseEditionDatacenter LicenseEdition = "Datacenter"
	LicenseEditionStandard   LicenseEdition = "Standard"
)

func PossibleLicenseEditionValues() []LicenseEdition {
	return []LicenseEdition{LicenseEditionDatacenter, LicenseEditionStandard}
}

func (v LicenseEdition) IsKnown() bool {
	return arm.IsKnown(v, PossibleLicenseEditionValues())
}

// LicenseCoreType describes the license core type (pCore or vCore).
type LicenseCoreType string

const (
	LicenseCoreTypePCore LicenseCoreType = "pCore"
	LicenseCoreTypeVCore LicenseCoreType = "vCore"
)

func PossibleLicenseCoreTypeValues() []LicenseCoreType {
	return []LicenseCoreType{LicenseCoreTypePCore, LicenseCoreTypeVCore}
}

func (v LicenseCoreType) IsKnown() bool {
	return arm.IsKnown(v, PossibleLicenseCoreTypeValues())
}

// MinimumProcessors returns the smallest processor count which may be
// licensed with this core type, or zero if there is no minimum.
func (v LicenseCoreType) MinimumProcessors() int32 {
	switch v {
	case LicenseCoreTypePCore:
		return 16
	case LicenseCoreTypeVCore:
		return 8
	}
	return 0
}

// ProgramYear describes the year of the volume license program.
type ProgramYear string

const (
	ProgramYearYear1 ProgramYear = "Year 1"
	ProgramYearYear2 ProgramYear = "Year 2"
	ProgramYearYear3 ProgramYear = "Year 3"
)

func PossibleProgramYearValues() []ProgramYear {
	return []ProgramYear{ProgramYearYear1, ProgramYearYear2, ProgramYearYear3}
}

func (v ProgramYear) IsKnown() bool {
	return arm.IsKnown(v, PossibleProgramYearValues())
}
