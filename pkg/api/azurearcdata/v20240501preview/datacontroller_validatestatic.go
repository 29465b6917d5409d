package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"

	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/api/arm"
	"github.com/Azure/azure-arc-models/pkg/api/validate"
)

type dataControllerStaticValidator struct {
	location   string
	resourceID string
}

// Static validates a data controller
func (sv *dataControllerStaticValidator) Static(_dc interface{}) error {
	dc := _dc.(*DataControllerResource)

	err := validate.TrackedResource(sv.location, sv.resourceID, qualified(resourceTypeDataControllers), &dc.TrackedResource)
	if err != nil {
		return err
	}

	if dc.ExtendedLocation != nil {
		if err := sv.validateExtendedLocation("extendedLocation", dc.ExtendedLocation); err != nil {
			return err
		}
	}

	if dc.Properties == nil {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "properties", "The provided properties are invalid: must be set.")
	}

	return sv.validateProperties("properties", dc.Properties)
}

func (sv *dataControllerStaticValidator) validateExtendedLocation(path string, el *arm.ExtendedLocation) error {
	if err := validate.Required(path+".name", "extended location name", el.Name); err != nil {
		return err
	}

	if el.Type != nil && *el.Type == arm.ExtendedLocationTypeCustomLocation {
		return validate.ResourceID(path+".name", "custom location", "Microsoft.ExtendedLocation/customLocations", el.Name)
	}

	return nil
}

func (sv *dataControllerStaticValidator) validateProperties(path string, p *DataControllerProperties) error {
	if p.OnPremiseProperty != nil {
		if err := validate.Required(path+".onPremiseProperty.id", "on premise ID", p.OnPremiseProperty.ID); err != nil {
			return err
		}
		if err := validate.UUID(path+".onPremiseProperty.id", "on premise ID", p.OnPremiseProperty.ID); err != nil {
			return err
		}
		if err := validate.Required(path+".onPremiseProperty.publicSigningKey", "public signing key", p.OnPremiseProperty.PublicSigningKey); err != nil {
			return err
		}
	}

	if p.LogAnalyticsWorkspaceConfig != nil {
		if err := validate.UUID(path+".logAnalyticsWorkspaceConfig.workspaceId", "workspace ID", p.LogAnalyticsWorkspaceConfig.WorkspaceID); err != nil {
			return err
		}
	}

	if sp := p.UploadServicePrincipal; sp != nil {
		if err := validate.UUID(path+".uploadServicePrincipal.clientId", "client ID", sp.ClientID); err != nil {
			return err
		}
		if err := validate.UUID(path+".uploadServicePrincipal.tenantId", "tenant ID", sp.TenantID); err != nil {
			return err
		}
	}

	return nil
}
