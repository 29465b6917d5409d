package v20240710

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

// LicenseProfileName is the only name a machine license profile may have.
const LicenseProfileName = "default"

// LicenseProfile describes the license profile of an Azure Arc-enabled
// server.
type LicenseProfile struct {
	arm.TrackedResource

	// Describe the properties of a license profile.
	Properties *LicenseProfileProperties `json:"properties,omitempty"`
}

// LicenseProfileList is a page of license profiles.
type LicenseProfileList = arm.List[*LicenseProfile]

// LicenseProfileProperties describes the properties of a license profile.
type LicenseProfileProperties struct {
	ProvisioningState *ProvisioningState               `json:"provisioningState,omitempty"`
	EsuProfile        *LicenseProfileArmEsuProperties  `json:"esuProfile,omitempty"`
	ProductProfile    *LicenseProfileArmProductProfile `json:"productProfile,omitempty"`
	SoftwareAssurance *SoftwareAssurance               `json:"softwareAssurance,omitempty"`
}

// SoftwareAssurance describes whether the machine is covered by software
// assurance.
type SoftwareAssurance struct {
	SoftwareAssuranceCustomer *bool `json:"softwareAssuranceCustomer,omitempty"`
}

// LicenseProfileArmEsuProperties describes the ESU properties of a machine.
type LicenseProfileArmEsuProperties struct {
	// The resource id of the license assigned to the machine.
	AssignedLicense *string `json:"assignedLicense,omitempty"`

	// The type of the Esu servers. Read only.
	ServerType *EsuServerType `json:"serverType,omitempty"`

	// Indicates the eligibility state of Esu. Read only.
	EsuEligibility *EsuEligibility `json:"esuEligibility,omitempty"`

	// Indicates whether there is an ESU Key currently active for the
	// machine. Read only.
	EsuKeyState *EsuKeyState `json:"esuKeyState,omitempty"`

	// The guid id of the license. Read only.
	AssignedLicenseImmutableID *string `json:"assignedLicenseImmutableId,omitempty"`

	// The list of ESU keys. Read only.
	EsuKeys []*EsuKey `json:"esuKeys,omitzero"`

	// Describes the license assignment state. Read only.
	LicenseAssignmentState *LicenseAssignmentState `json:"licenseAssignmentState,omitempty"`
}

// EsuKey describes an ESU key.
type EsuKey struct {
	// SKU number.
	SKU *string `json:"sku,omitempty"`

	// The current status of the license profile key.
	LicenseStatus *int32 `json:"licenseStatus,omitempty"`
}

// LicenseProfileArmProductProfile describes the properties of a product
// subscription.
type LicenseProfileArmProductProfile struct {
	SubscriptionStatus *LicenseProfileSubscriptionStatus `json:"subscriptionStatus,omitempty"`
	ProductType        *LicenseProfileProductType        `json:"productType,omitempty"`
	EnrollmentDate     *date.Time                        `json:"enrollmentDate,omitempty"`
	BillingStartDate   *date.Time                        `json:"billingStartDate,omitempty"`
	DisenrollmentDate  *date.Time                        `json:"disenrollmentDate,omitempty"`
	BillingEndDate     *date.Time                        `json:"billingEndDate,omitempty"`
	Error              *arm.ErrorDetail                  `json:"error,omitempty"`
	ProductFeatures    []*ProductFeature                 `json:"productFeatures,omitzero"`
}

// ProductFeature describes a product feature subscription.
type ProductFeature struct {
	Name               *string                           `json:"name,omitempty"`
	SubscriptionStatus *LicenseProfileSubscriptionStatus `json:"subscriptionStatus,omitempty"`
	EnrollmentDate     *date.Time                        `json:"enrollmentDate,omitempty"`
	BillingStartDate   *date.Time                        `json:"billingStartDate,omitempty"`
	DisenrollmentDate  *date.Time                        `json:"disenrollmentDate,omitempty"`
	BillingEndDate     *date.Time                        `json:"billingEndDate,omitempty"`
	Error              *arm.ErrorDetail                  `json:"error,omitempty"`
}

// EsuServerType is the server types for Esu.
type EsuServerType string

const (
	EsuServerTypeDatacenter EsuServerType = "Datacenter"
	EsuServerTypeStandard   EsuServerType = "Standard"
)

func PossibleEsuServerTypeValues() []EsuServerType {
	return []EsuServerType{EsuServerTypeDatacenter, EsuServerTypeStandard}
}

func (v EsuServerType) IsKnown() bool {
	return arm.IsKnown(v, PossibleEsuServerTypeValues())
}

// EsuEligibility indicates the eligibility state of Esu.
type EsuEligibility string

const (
	EsuEligibilityEligible   EsuEligibility = "Eligible"
	EsuEligibilityIneligible EsuEligibility = "Ineligible"
	EsuEligibilityUnknown    EsuEligibility = "Unknown"
)

func PossibleEsuEligibilityValues() []EsuEligibility {
	return []EsuEligibility{EsuEligibilityEligible, EsuEligibilityIneligible, EsuEligibilityUnknown}
}

func (v EsuEligibility) IsKnown() bool {
	return arm.IsKnown(v, PossibleEsuEligibilityValues())
}

// EsuKeyState indicates whether there is an ESU Key currently active for the
// machine.
type EsuKeyState string

const (
	EsuKeyStateActive   EsuKeyState = "Active"
	EsuKeyStateInactive EsuKeyState = "Inactive"
)

func PossibleEsuKeyStateValues() []EsuKeyState {
	return []EsuKeyState{EsuKeyStateActive, EsuKeyStateInactive}
}

func (v EsuKeyState) IsKnown() bool {
	return arm.IsKnown(v, PossibleEsuKeyStateValues())
}

// LicenseAssignmentState describes the license assignment state (Assigned or
// NotAssigned).
type LicenseAssignmentState string

const (
	LicenseAssignmentStateAssigned    LicenseAssignmentState = "Assigned"
	LicenseAssignmentStateNotAssigned LicenseAssignmentState = "NotAssigned"
)

func PossibleLicenseAssignmentStateValues() []LicenseAssignmentState {
	return []LicenseAssignmentState{LicenseAssignmentStateAssigned, LicenseAssignmentStateNotAssigned}
}

func (v LicenseAssignmentState) IsKnown() bool {
	return arm.IsKnown(v, PossibleLicenseAssignmentStateValues())
}

// LicenseProfileSubscriptionStatus indicates the subscription status of the
// product.
type LicenseProfileSubscriptionStatus string

const (
	LicenseProfileSubscriptionStatusDisabled  LicenseProfileSubscriptionStatus = "Disabled"
	LicenseProfileSubscriptionStatusDisabling LicenseProfileSubscriptionStatus = "Disabling"
	LicenseProfileSubscriptionStatusEnabled   LicenseProfileSubscriptionStatus = "Enabled"
	LicenseProfileSubscriptionStatusEnabling  LicenseProfileSubscriptionStatus = "Enabling"
	LicenseProfileSubscriptionStatusFailed    LicenseProfileSubscriptionStatus = "Failed"
	LicenseProfileSubscriptionStatusUnknown   LicenseProfileSubscriptionStatus = "Unknown"
)

func PossibleLicenseProfileSubscriptionStatusValues() []LicenseProfileSubscriptionStatus {
	return []LicenseProfileSubscriptionStatus{
		LicenseProfileSubscriptionStatusDisabled,
		LicenseProfileSubscriptionStatusDisabling,
		LicenseProfileSubscriptionStatusEnabled,
		LicenseProfileSubscriptionStatusEnabling,
		LicenseProfileSubscriptionStatusFailed,
		LicenseProfileSubscriptionStatusUnknown,
	}
}

func (v LicenseProfileSubscriptionStatus) IsKnown() bool {
	return arm.IsKnown(v, PossibleLicenseProfileSubscriptionStatusValues())
}

// LicenseProfileProductType indicates the product type of the license.
type LicenseProfileProductType string

const (
	LicenseProfileProductTypeWindowsIoTEnterprise LicenseProfileProductType = "WindowsIoTEnterprise"
	LicenseProfileProductTypeWindowsServer        LicenseProfileProductType = "WindowsServer"
)

func PossibleLicenseProfileProductTypeValues() []LicenseProfileProductType {
	return []LicenseProfileProductType{LicenseProfileProductTypeWindowsIoTEnterprise, LicenseProfileProductTypeWindowsServer}
}

func (v LicenseProfileProductType) IsKnown() bool {
	return arm.IsKnown(v, PossibleLicenseProfileProductTypeValues())
}
