package v20240710

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net/http"

	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/api/validate"
)

type licenseStaticValidator struct {
	location   string
	resourceID string
}

// Static validates a license
func (sv *licenseStaticValidator) Static(_l interface{}) error {
	l := _l.(*License)

	err := validate.TrackedResource(sv.location, sv.resourceID, resourceProviderNamespace+"/"+resourceTypeLicenses, &l.TrackedResource)
	if err != nil {
		return err
	}

	return sv.validateProperties("properties", l.Properties)
}

func (sv *licenseStaticValidator) validateProperties(path string, p *LicenseProperties) error {
	if p == nil {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path, "The provided properties are invalid: must be set.")
	}

	if err := validate.UUID(path+".tenantId", "tenant ID", p.TenantID); err != nil {
		return err
	}

	if p.LicenseDetails == nil {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path+".licenseDetails", "The provided license details are invalid: must be set.")
	}

	return sv.validateLicenseDetails(path+".licenseDetails", p.LicenseDetails)
}

func (sv *licenseStaticValidator) validateLicenseDetails(path string, d *LicenseDetails) error {
	if d.Processors != nil {
		if *d.Processors < 0 {
			return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path+".processors", "The provided processors '%d' is invalid.", *d.Processors)
		}

		// an unrecognised core type has no known minimum
		if d.Type != nil {
			if minimum := d.Type.MinimumProcessors(); *d.Processors < minimum {
				return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path+".processors", "The provided processors '%d' is invalid: %s licenses require at least %d.", *d.Processors, *d.Type, minimum)
			}
		}
	}

	for i, vld := range d.VolumeLicenseDetails {
		if vld == nil {
			continue
		}
		if err := validate.Required(fmt.Sprintf("%s.volumeLicenseDetails[%d].invoiceId", path, i), "invoice ID", vld.InvoiceID); err != nil {
			return err
		}
	}

	return nil
}
