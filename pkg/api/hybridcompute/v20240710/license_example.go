package v20240710

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-arc-models/pkg/api/arm"
	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
)

func exampleLicense() *License {
	return &License{
		TrackedResource: arm.TrackedResource{
			Resource: arm.Resource{
				ID:   pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.HybridCompute/licenses/licenseName"),
				Name: pointerutils.ToPtr("licenseName"),
				Type: pointerutils.ToPtr("Microsoft.HybridCompute/licenses"),
			},
			Location: pointerutils.ToPtr("location"),
			Tags: map[string]*string{
				"key": pointerutils.ToPtr("value"),
			},
		},
		Properties: &LicenseProperties{
			ProvisioningState: pointerutils.ToPtr(ProvisioningStateSucceeded),
			TenantID:          pointerutils.ToPtr("00000000-0000-0000-0000-000000000000"),
			LicenseType:       pointerutils.ToPtr(LicenseTypeESU),
			LicenseDetails: &LicenseDetails{
				State:            pointerutils.ToPtr(LicenseStateActivated),
				Target:           pointerutils.ToPtr(LicenseTargetWindowsServer2012),
				Edition:          pointerutils.ToPtr(LicenseEditionDatacenter),
				Type:             pointerutils.ToPtr(LicenseCoreTypePCore),
				Processors:       pointerutils.ToPtr[int32](16),
				AssignedLicenses: pointerutils.ToPtr[int32](8),
				ImmutableID:      pointerutils.ToPtr("11111111-1111-1111-1111-111111111111"),
				VolumeLicenseDetails: []*VolumeLicenseDetails{
					{
						ProgramYear: pointerutils.ToPtr(ProgramYearYear1),
						InvoiceID:   pointerutils.ToPtr("invoiceId"),
					},
				},
			},
		},
	}
}

// ExampleLicenseParameter returns an example License object that an end-user
// might send to create a license in a PUT request
func ExampleLicenseParameter() *License {
	l := exampleLicense()
	l.ID = nil
	l.Name = nil
	l.Type = nil
	l.Properties.ProvisioningState = nil
	l.Properties.LicenseDetails.AssignedLicenses = nil
	l.Properties.LicenseDetails.ImmutableID = nil

	return l
}

// ExampleLicenseResponse returns an example License object that the RP might
// return to an end-user
func ExampleLicenseResponse() *License {
	return exampleLicense()
}

// ExampleLicenseListResponse returns an example LicenseList object that the
// RP might return to an end-user
func ExampleLicenseListResponse() *LicenseList {
	return arm.NewList([]*License{
		ExampleLicenseResponse(),
	}, "")
}
