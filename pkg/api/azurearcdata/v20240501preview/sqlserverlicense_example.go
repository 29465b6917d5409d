package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
)

func exampleSqlServerLicense() *SqlServerLicense {
	return &SqlServerLicense{
		TrackedResource: arm.TrackedResource{
			Resource: arm.Resource{
				ID:   pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.AzureArcData/sqlServerLicenses/sqlServerLicenseName"),
				Name: pointerutils.ToPtr("sqlServerLicenseName"),
				Type: pointerutils.ToPtr("Microsoft.AzureArcData/sqlServerLicenses"),
			},
			Location: pointerutils.ToPtr("location"),
		},
		Properties: &SqlServerLicenseProperties{
			BillingPlan:     pointerutils.ToPtr(BillingPlanPAYG),
			PhysicalCores:   pointerutils.ToPtr[int32](24),
			LicenseCategory: pointerutils.ToPtr(LicenseCategoryCore),
			ActivationState: pointerutils.ToPtr(ActivationStateActivated),
			ScopeType:       pointerutils.ToPtr(ScopeTypeResourceGroup),
			LastActivatedAt: &date.Time{Time: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)},
			TenantID:        pointerutils.ToPtr("00000000-0000-0000-0000-000000000000"),
		},
	}
}

// ExampleSqlServerLicenseParameter returns an example SqlServerLicense object
// that an end-user might send to create a license in a PUT request
func ExampleSqlServerLicenseParameter() *SqlServerLicense {
	l := exampleSqlServerLicense()
	l.ID = nil
	l.Name = nil
	l.Type = nil
	l.Properties.LastActivatedAt = nil
	l.Properties.TenantID = nil

	return l
}

// ExampleSqlServerLicenseResponse returns an example SqlServerLicense object
// that the RP might return to an end-user
func ExampleSqlServerLicenseResponse() *SqlServerLicense {
	return exampleSqlServerLicense()
}

// ExampleSqlServerLicenseListResponse returns an example SqlServerLicenseList
// object that the RP might return to an end-user
func ExampleSqlServerLicenseListResponse() *SqlServerLicenseList {
	return arm.NewList([]*SqlServerLicense{
		ExampleSqlServerLicenseResponse(),
	}, "")
}
