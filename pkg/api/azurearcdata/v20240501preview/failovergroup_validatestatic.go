package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"

	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/api/validate"
	utilpem "github.com/Azure/azure-arc-models/pkg/util/pem"
)

type failoverGroupStaticValidator struct {
	resourceID string
}

// Static validates a failover group
func (sv *failoverGroupStaticValidator) Static(_fg interface{}) error {
	fg := _fg.(*FailoverGroupResource)

	err := validate.Resource(sv.resourceID, qualified(resourceTypeFailoverGroups), &fg.Resource)
	if err != nil {
		return err
	}

	if fg.Properties == nil {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "properties", "The provided properties are invalid: must be set.")
	}

	return sv.validateProperties("properties", fg.Properties)
}

func (sv *failoverGroupStaticValidator) validateProperties(path string, p *FailoverGroupProperties) error {
	if err := validate.ResourceID(path+".partnerManagedInstanceId", "partner managed instance ID", qualified(resourceTypeSqlManagedInstances), p.PartnerManagedInstanceID); err != nil {
		return err
	}

	if p.Spec == nil {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path+".spec", "The provided spec is invalid: must be set.")
	}

	return sv.validateSpec(path+".spec", p.Spec)
}

func (sv *failoverGroupStaticValidator) validateSpec(path string, s *FailoverGroupSpec) error {
	if s.SharedName != nil && !validate.RxDomainNameRFC1123.MatchString(*s.SharedName) {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path+".sharedName", "The provided shared name '%s' is invalid.", *s.SharedName)
	}

	if s.PartnerMirroringURL != nil && !validate.RxMirroringEndpointURL.MatchString(*s.PartnerMirroringURL) {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path+".partnerMirroringURL", "The provided partner mirroring URL '%s' is invalid.", *s.PartnerMirroringURL)
	}

	if s.PartnerMirroringCert != nil {
		if _, err := utilpem.ParseFirstCertificate([]byte(*s.PartnerMirroringCert)); err != nil {
			return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path+".partnerMirroringCert", "The provided partner mirroring certificate is invalid: must be a PEM encoded certificate.")
		}
	}

	return nil
}
