package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
)

func exampleSqlServerEsuLicense() *SqlServerEsuLicense {
	return &SqlServerEsuLicense{
		TrackedResource: arm.TrackedResource{
			Resource: arm.Resource{
				ID:   pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.AzureArcData/sqlServerEsuLicenses/sqlServerEsuLicenseName"),
				Name: pointerutils.ToPtr("sqlServerEsuLicenseName"),
				Type: pointerutils.ToPtr("Microsoft.AzureArcData/sqlServerEsuLicenses"),
			},
			Location: pointerutils.ToPtr("location"),
			Tags: map[string]*string{
				"key": pointerutils.ToPtr("value"),
			},
		},
		Properties: &SqlServerEsuLicenseProperties{
			Version:         pointerutils.ToPtr(EsuVersionSQLServer2012),
			UniqueID:        pointerutils.ToPtr("11111111-1111-1111-1111-111111111111"),
			BillingPlan:     pointerutils.ToPtr(BillingPlanPAYG),
			PhysicalCores:   pointerutils.ToPtr[int32](24),
			ActivationState: pointerutils.ToPtr(EsuLicenseStateActive),
			ScopeType:       pointerutils.ToPtr(ScopeTypeSubscription),
			ActivatedAt:     &date.Time{Time: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)},
			TenantID:        pointerutils.ToPtr("00000000-0000-0000-0000-000000000000"),
		},
	}
}

// ExampleSqlServerEsuLicenseParameter returns an example SqlServerEsuLicense
// object that an end-user might send to create a license in a PUT request
func ExampleSqlServerEsuLicenseParameter() *SqlServerEsuLicense {
	l := exampleSqlServerEsuLicense()
	l.ID = nil
	l.Name = nil
	l.Type = nil
	l.Properties.UniqueID = nil
	l.Properties.ActivatedAt = nil
	l.Properties.TenantID = nil

	return l
}

// ExampleSqlServerEsuLicenseResponse returns an example SqlServerEsuLicense
// object that the RP might return to an end-user
func ExampleSqlServerEsuLicenseResponse() *SqlServerEsuLicense {
	return exampleSqlServerEsuLicense()
}

// ExampleSqlServerEsuLicenseListResponse returns an example
// SqlServerEsuLicenseList object that the RP might return to an end-user
func ExampleSqlServerEsuLicenseListResponse() *SqlServerEsuLicenseList {
	return arm.NewList([]*SqlServerEsuLicense{
		ExampleSqlServerEsuLicenseResponse(),
	}, "")
}
