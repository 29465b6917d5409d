package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"math"
	"net/http"

	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/api/validate"
)

type sqlServerEsuLicenseStaticValidator struct {
	location   string
	resourceID string
}

// Static validates a SQL Server ESU license
func (sv *sqlServerEsuLicenseStaticValidator) Static(_l interface{}) error {
	l := _l.(*SqlServerEsuLicense)

	err := validate.TrackedResource(sv.location, sv.resourceID, qualified(resourceTypeSqlServerEsuLicenses), &l.TrackedResource)
	if err != nil {
		return err
	}

	return sv.validateProperties("properties", l.Properties)
}

func (sv *sqlServerEsuLicenseStaticValidator) validateProperties(path string, p *SqlServerEsuLicenseProperties) error {
	if p == nil {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path, "The provided properties are invalid: must be set.")
	}

	if err := validate.Required(path+".version", "version", p.Version); err != nil {
		return err
	}

	if err := validate.Required(path+".billingPlan", "billing plan", p.BillingPlan); err != nil {
		return err
	}

	if p.PhysicalCores == nil {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path+".physicalCores", "The provided physical cores are invalid: must be set.")
	}
	if err := validate.Range(path+".physicalCores", "physical cores", p.PhysicalCores, 0, math.MaxInt32); err != nil {
		return err
	}

	if err := validate.Required(path+".activationState", "activation state", p.ActivationState); err != nil {
		return err
	}

	if err := validate.Required(path+".scopeType", "scope type", p.ScopeType); err != nil {
		return err
	}

	return validate.UUID(path+".uniqueId", "unique ID", p.UniqueID)
}
