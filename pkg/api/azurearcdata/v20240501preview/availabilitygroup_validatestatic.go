package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net/http"

	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/api/validate"
)

type availabilityGroupStaticValidator struct {
	location   string
	resourceID string
}

// Static validates an availability group
func (sv *availabilityGroupStaticValidator) Static(_ag interface{}) error {
	ag := _ag.(*SqlServerAvailabilityGroupResource)

	err := validate.TrackedResource(sv.location, sv.resourceID, qualified(resourceTypeAvailabilityGroups), &ag.TrackedResource)
	if err != nil {
		return err
	}

	if ag.Properties == nil {
		return nil
	}

	if info := ag.Properties.Info; info != nil && info.Listener != nil {
		if err := validateListener("properties.info.listener", info.Listener); err != nil {
			return err
		}
	}

	if ag.Properties.Replicas == nil {
		return nil
	}

	for i, r := range ag.Properties.Replicas.Value {
		if r == nil {
			continue
		}

		path := fmt.Sprintf("properties.replicas.value[%d]", i)

		if err := validate.ResourceID(path+".replicaResourceId", "replica resource ID", "", r.ReplicaResourceID); err != nil {
			return err
		}

		if c := r.Configure; c != nil {
			if err := validateEndpoint(path+".configure", c.EndpointURL, c.EndpointAuthenticationMode, c.CertificateName); err != nil {
				return err
			}
			if err := validate.Range(path+".configure.backupPriority", "backup priority", c.BackupPriority, 0, 100); err != nil {
				return err
			}
			if err := validate.Range(path+".configure.sessionTimeout", "session timeout", c.SessionTimeout, 5, 86400); err != nil {
				return err
			}
		}
	}

	return nil
}

// ValidateAvailabilityGroupCreateUpdateConfiguration validates the body of the
// createAvailabilityGroup action.
func ValidateAvailabilityGroupCreateUpdateConfiguration(c *AvailabilityGroupCreateUpdateConfiguration) error {
	if err := validate.Required("availabilityGroupName", "availability group name", c.AvailabilityGroupName); err != nil {
		return err
	}

	if len(c.Replicas) == 0 {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "replicas", "The provided replicas are invalid: at least one replica must be set.")
	}

	for i, r := range c.Replicas {
		path := fmt.Sprintf("replicas[%d]", i)
		if r == nil {
			return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path, "The provided replica is invalid: must be set.")
		}

		if err := validate.Required(path+".serverInstance", "server instance", r.ServerInstance); err != nil {
			return err
		}
		if err := validate.ResourceID(path+".serverInstance", "server instance", qualified(resourceTypeSqlServerInstances), r.ServerInstance); err != nil {
			return err
		}
		if err := validateEndpoint(path, r.EndpointURL, r.EndpointAuthenticationMode, r.CertificateName); err != nil {
			return err
		}
		if err := validate.Range(path+".backupPriority", "backup priority", r.BackupPriority, 0, 100); err != nil {
			return err
		}
		if err := validate.Range(path+".sessionTimeout", "session timeout", r.SessionTimeout, 5, 86400); err != nil {
			return err
		}
	}

	if c.Listener != nil {
		if err := validateListener("listener", c.Listener); err != nil {
			return err
		}
	}

	return nil
}

func validateEndpoint(path string, url *string, mode *ConnectionAuth, certificateName *string) error {
	if url != nil && !validate.RxMirroringEndpointURL.MatchString(*url) {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path+".endpointUrl", "The provided endpoint URL '%s' is invalid.", *url)
	}

	if mode != nil && mode.UsesCertificate() {
		return validate.Required(path+".certificateName", "certificate name", certificateName)
	}

	return nil
}

func validateListener(path string, l *SqlAvailabilityGroupStaticIPListenerProperties) error {
	if l.DNSName != nil && !validate.RxDomainNameRFC1123.MatchString(*l.DNSName) {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path+".dnsName", "The provided DNS name '%s' is invalid.", *l.DNSName)
	}

	return validate.Range(path+".port", "port", l.Port, 1, 65535)
}
