package v20240710

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
)

func exampleLicenseProfile() *LicenseProfile {
	enrolled := &date.Time{Time: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)}

	return &LicenseProfile{
		TrackedResource: arm.TrackedResource{
			Resource: arm.Resource{
				ID:   pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.HybridCompute/machines/machineName/licenseProfiles/default"),
				Name: pointerutils.ToPtr(LicenseProfileName),
				Type: pointerutils.ToPtr("Microsoft.HybridCompute/machines/licenseProfiles"),
			},
			Location: pointerutils.ToPtr("location"),
		},
		Properties: &LicenseProfileProperties{
			ProvisioningState: pointerutils.ToPtr(ProvisioningStateSucceeded),
			EsuProfile: &LicenseProfileArmEsuProperties{
				AssignedLicense:            pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.HybridCompute/licenses/licenseName"),
				ServerType:                 pointerutils.ToPtr(EsuServerTypeDatacenter),
				EsuEligibility:             pointerutils.ToPtr(EsuEligibilityEligible),
				EsuKeyState:                pointerutils.ToPtr(EsuKeyStateActive),
				AssignedLicenseImmutableID: pointerutils.ToPtr("11111111-1111-1111-1111-111111111111"),
				EsuKeys: []*EsuKey{
					{
						SKU:           pointerutils.ToPtr("skuNumber1"),
						LicenseStatus: pointerutils.ToPtr[int32](1),
					},
				},
				LicenseAssignmentState: pointerutils.ToPtr(LicenseAssignmentStateAssigned),
			},
			ProductProfile: &LicenseProfileArmProductProfile{
				SubscriptionStatus: pointerutils.ToPtr(LicenseProfileSubscriptionStatusEnabled),
				ProductType:        pointerutils.ToPtr(LicenseProfileProductTypeWindowsServer),
				EnrollmentDate:     enrolled,
				BillingStartDate:   enrolled,
				ProductFeatures: []*ProductFeature{
					{
						Name:               pointerutils.ToPtr("Hotpatch"),
						SubscriptionStatus: pointerutils.ToPtr(LicenseProfileSubscriptionStatusEnabled),
						EnrollmentDate:     enrolled,
						BillingStartDate:   enrolled,
					},
				},
			},
			SoftwareAssurance: &SoftwareAssurance{
				SoftwareAssuranceCustomer: pointerutils.ToPtr(true),
			},
		},
	}
}

// ExampleLicenseProfileParameter returns an example LicenseProfile object that
// an end-user might send to create a license profile in a PUT request
func ExampleLicenseProfileParameter() *LicenseProfile {
	lp := exampleLicenseProfile()
	lp.ID = nil
	lp.Name = nil
	lp.Type = nil
	lp.Properties.ProvisioningState = nil
	lp.Properties.EsuProfile = &LicenseProfileArmEsuProperties{
		AssignedLicense: lp.Properties.EsuProfile.AssignedLicense,
	}
	lp.Properties.ProductProfile = &LicenseProfileArmProductProfile{
		SubscriptionStatus: pointerutils.ToPtr(LicenseProfileSubscriptionStatusEnabling),
		ProductType:        pointerutils.ToPtr(LicenseProfileProductTypeWindowsServer),
		ProductFeatures: []*ProductFeature{
			{
				Name:               pointerutils.ToPtr("Hotpatch"),
				SubscriptionStatus: pointerutils.ToPtr(LicenseProfileSubscriptionStatusEnabling),
			},
		},
	}

	return lp
}

// ExampleLicenseProfileResponse returns an example LicenseProfile object that
// the RP might return to an end-user
func ExampleLicenseProfileResponse() *LicenseProfile {
	return exampleLicenseProfile()
}

// ExampleLicenseProfileListResponse returns an example LicenseProfileList
// object that the RP might return to an end-user
func ExampleLicenseProfileListResponse() *LicenseProfileList {
	return arm.NewList([]*LicenseProfile{
		ExampleLicenseProfileResponse(),
	}, "")
}
