package v20240710

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net/http"
	"strings"

	azcorearm "github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/api/validate"
)

type licenseProfileStaticValidator struct {
	location   string
	resourceID string
}

// Static validates a license profile
func (sv *licenseProfileStaticValidator) Static(_lp interface{}) error {
	lp := _lp.(*LicenseProfile)

	err := validate.TrackedResource(sv.location, sv.resourceID, resourceProviderNamespace+"/"+resourceTypeLicenseProfiles, &lp.TrackedResource)
	if err != nil {
		return err
	}

	// TrackedResource has already parsed the resource ID
	r, _ := azcorearm.ParseResourceID(sv.resourceID)
	if !strings.EqualFold(r.Name, LicenseProfileName) {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "name", "The provided license profile name '%s' is invalid: must be '%s'.", r.Name, LicenseProfileName)
	}

	if lp.Properties == nil {
		return nil
	}

	return sv.validateProperties("properties", lp.Properties)
}

func (sv *licenseProfileStaticValidator) validateProperties(path string, p *LicenseProfileProperties) error {
	if p.EsuProfile != nil {
		err := validate.ResourceID(path+".esuProfile.assignedLicense", "assigned license", resourceProviderNamespace+"/"+resourceTypeLicenses, p.EsuProfile.AssignedLicense)
		if err != nil {
			return err
		}
	}

	if p.ProductProfile != nil {
		for i, pf := range p.ProductProfile.ProductFeatures {
			if pf == nil {
				continue
			}
			if err := validate.Required(fmt.Sprintf("%s.productProfile.productFeatures[%d].name", path, i), "product feature name", pf.Name); err != nil {
				return err
			}
		}
	}

	return nil
}
