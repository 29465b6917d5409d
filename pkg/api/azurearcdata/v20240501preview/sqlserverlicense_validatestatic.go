package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"math"
	"net/http"

	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/api/validate"
)

type sqlServerLicenseStaticValidator struct {
	location   string
	resourceID string
}

// Static validates a SQL Server license
func (sv *sqlServerLicenseStaticValidator) Static(_l interface{}) error {
	l := _l.(*SqlServerLicense)

	err := validate.TrackedResource(sv.location, sv.resourceID, qualified(resourceTypeSqlServerLicenses), &l.TrackedResource)
	if err != nil {
		return err
	}

	p := l.Properties
	if p == nil {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "properties", "The provided properties are invalid: must be set.")
	}

	if err := validate.Required("properties.billingPlan", "billing plan", p.BillingPlan); err != nil {
		return err
	}

	if p.PhysicalCores == nil {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "properties.physicalCores", "The provided physical cores are invalid: must be set.")
	}
	if err := validate.Range("properties.physicalCores", "physical cores", p.PhysicalCores, 0, math.MaxInt32); err != nil {
		return err
	}

	if err := validate.Required("properties.activationState", "activation state", p.ActivationState); err != nil {
		return err
	}

	return validate.Required("properties.scopeType", "scope type", p.ScopeType)
}
