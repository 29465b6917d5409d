package v20240710

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
)

// SetLicenseDefaults sets the values the service assumes for unset fields.
func SetLicenseDefaults(l *License) {
	if l.Properties == nil {
		return
	}

	// ESU is the only license type
	if l.Properties.LicenseType == nil {
		l.Properties.LicenseType = pointerutils.ToPtr(LicenseTypeESU)
	}
}

// SetLicenseProfileDefaults sets the values the service assumes for unset
// fields.
func SetLicenseProfileDefaults(lp *LicenseProfile) {
	if lp.Properties == nil {
		return
	}

	if lp.Properties.SoftwareAssurance != nil && lp.Properties.SoftwareAssurance.SoftwareAssuranceCustomer == nil {
		lp.Properties.SoftwareAssurance.SoftwareAssuranceCustomer = pointerutils.ToPtr(false)
	}
}
