package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/api/validate"
)

type sqlServerInstanceStaticValidator struct {
	location   string
	resourceID string
}

// Static validates a SQL Server instance
func (sv *sqlServerInstanceStaticValidator) Static(_si interface{}) error {
	si := _si.(*SqlServerInstance)

	err := validate.TrackedResource(sv.location, sv.resourceID, qualified(resourceTypeSqlServerInstances), &si.TrackedResource)
	if err != nil {
		return err
	}

	if si.Properties == nil {
		return nil
	}

	return sv.validateProperties("properties", si.Properties)
}

func (sv *sqlServerInstanceStaticValidator) validateProperties(path string, p *SqlServerInstanceProperties) error {
	if err := validate.ResourceID(path+".containerResourceId", "container resource ID", "Microsoft.HybridCompute/machines", p.ContainerResourceID); err != nil {
		return err
	}

	if p.BackupPolicy != nil {
		if err := sv.validateBackupPolicy(path+".backupPolicy", p.BackupPolicy); err != nil {
			return err
		}
	}

	if p.Authentication != nil {
		if err := sv.validateAuthentication(path+".authentication", p.Authentication); err != nil {
			return err
		}
	}

	return nil
}

func (sv *sqlServerInstanceStaticValidator) validateBackupPolicy(path string, bp *BackupPolicy) error {
	if err := validate.Range(path+".retentionPeriodDays", "retention period", bp.RetentionPeriodDays, 0, 35); err != nil {
		return err
	}

	if err := validate.Range(path+".fullBackupDays", "full backup interval", bp.FullBackupDays, 0, 7); err != nil {
		return err
	}

	if err := validate.Range(path+".transactionLogBackupMinutes", "transaction log backup interval", bp.TransactionLogBackupMinutes, 0, 60); err != nil {
		return err
	}

	if bp.DifferentialBackupHours != nil && !slices.Contains(PossibleDifferentialBackupHoursValues(), *bp.DifferentialBackupHours) {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path+".differentialBackupHours", "The provided differential backup interval '%d' is invalid: must be 12 or 24.", *bp.DifferentialBackupHours)
	}

	return nil
}

func (sv *sqlServerInstanceStaticValidator) validateAuthentication(path string, a *Authentication) error {
	for i, ei := range a.SqlServerEntraIdentity {
		if ei == nil || ei.IdentityType == nil {
			continue
		}

		p := fmt.Sprintf("%s.sqlServerEntraIdentity[%d].clientId", path, i)

		switch *ei.IdentityType {
		case IdentityTypeUserAssignedManagedIdentity:
			if err := validate.Required(p, "client ID", ei.ClientID); err != nil {
				return err
			}
			if err := validate.UUID(p, "client ID", ei.ClientID); err != nil {
				return err
			}
		case IdentityTypeSystemAssignedManagedIdentity:
			if ei.ClientID != nil && *ei.ClientID != "" {
				return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, p, "The provided client ID '%s' is invalid: must be empty for a system assigned identity.", *ei.ClientID)
			}
		}
	}

	return nil
}
