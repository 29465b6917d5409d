package v20240710

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-arc-models/pkg/api"
)

// APIVersion contains the version of this API
const APIVersion = "2024-07-10"

const (
	resourceProviderNamespace   = "Microsoft.HybridCompute"
	resourceTypeLicenses        = "licenses"
	resourceTypeLicenseProfiles = "machines/licenseProfiles"
)

func init() {
	api.Register(resourceProviderNamespace, APIVersion, &api.Version{
		ResourceTypes: map[string]*api.ResourceType{
			resourceTypeLicenses: {
				Tracked:     true,
				New:         func() interface{} { return &License{} },
				NewList:     func() interface{} { return &LicenseList{} },
				SetDefaults: api.Defaulter(SetLicenseDefaults),
				StaticValidator: func(location, resourceID string) api.StaticValidator {
					return &licenseStaticValidator{
						location:   location,
						resourceID: resourceID,
					}
				},
				Example:     func() interface{} { return ExampleLicenseParameter() },
				ExampleList: func() interface{} { return ExampleLicenseListResponse() },
			},
			resourceTypeLicenseProfiles: {
				Tracked:     true,
				New:         func() interface{} { return &LicenseProfile{} },
				NewList:     func() interface{} { return &LicenseProfileList{} },
				SetDefaults: api.Defaulter(SetLicenseProfileDefaults),
				StaticValidator: func(location, resourceID string) api.StaticValidator {
					return &licenseProfileStaticValidator{
						location:   location,
						resourceID: resourceID,
					}
				},
				Example:     func() interface{} { return ExampleLicenseProfileParameter() },
				ExampleList: func() interface{} { return ExampleLicenseProfileListResponse() },
			},
		},
	})
}
