package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
)

// SetSqlServerInstanceDefaults sets the values the service assumes for unset
// fields.
func SetSqlServerInstanceDefaults(si *SqlServerInstance) {
	p := si.Properties
	if p == nil {
		return
	}

	if p.Monitoring != nil && p.Monitoring.Enabled == nil {
		p.Monitoring.Enabled = pointerutils.ToPtr(true)
	}

	if p.Migration != nil && p.Migration.Assessment != nil && p.Migration.Assessment.Enabled == nil {
		p.Migration.Assessment.Enabled = pointerutils.ToPtr(true)
	}
}

// SetSqlServerAvailabilityGroupDefaults sets the failover mode of every
// replica which does not declare one.
func SetSqlServerAvailabilityGroupDefaults(ag *SqlServerAvailabilityGroupResource) {
	if ag.Properties == nil || ag.Properties.Replicas == nil {
		return
	}

	for _, r := range ag.Properties.Replicas.Value {
		if r == nil || r.Configure == nil {
			continue
		}
		if r.Configure.FailoverMode == nil {
			r.Configure.FailoverMode = pointerutils.ToPtr(DefaultFailoverModeDescription)
		}
	}
}

// SetAvailabilityGroupCreateUpdateConfigurationDefaults is the equivalent of
// SetSqlServerAvailabilityGroupDefaults for the createAvailabilityGroup
// action.
func SetAvailabilityGroupCreateUpdateConfigurationDefaults(c *AvailabilityGroupCreateUpdateConfiguration) {
	for _, r := range c.Replicas {
		if r != nil && r.FailoverMode == nil {
			r.FailoverMode = pointerutils.ToPtr(DefaultFailoverModeDescription)
		}
	}
}

// SetFailoverGroupDefaults sets the role and partner sync mode of a failover
// group which does not declare them.
func SetFailoverGroupDefaults(fg *FailoverGroupResource) {
	if fg.Properties == nil || fg.Properties.Spec == nil {
		return
	}

	spec := fg.Properties.Spec
	if spec.Role == nil {
		spec.Role = pointerutils.ToPtr(DefaultInstanceFailoverGroupRole)
	}
	if spec.PartnerSyncMode == nil {
		spec.PartnerSyncMode = pointerutils.ToPtr(DefaultFailoverGroupPartnerSyncMode)
	}
}

// SetDataControllerDefaults sets the values the service assumes for unset
// fields.
func SetDataControllerDefaults(dc *DataControllerResource) {
	if dc.Properties != nil && dc.Properties.Infrastructure == nil {
		dc.Properties.Infrastructure = pointerutils.ToPtr(DefaultInfrastructure)
	}
}

// SetSqlServerLicenseDefaults sets the values the service assumes for unset
// fields.
func SetSqlServerLicenseDefaults(l *SqlServerLicense) {
	// Core is the only license category
	if l.Properties != nil && l.Properties.LicenseCategory == nil {
		l.Properties.LicenseCategory = pointerutils.ToPtr(LicenseCategoryCore)
	}
}
