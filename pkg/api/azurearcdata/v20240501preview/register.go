package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-arc-models/pkg/api"
)

// APIVersion contains the version of this API
const APIVersion = "2024-05-01-preview"

const (
	resourceProviderNamespace = "Microsoft.AzureArcData"

	resourceTypeSqlServerInstances   = "sqlServerInstances"
	resourceTypeSqlServerEsuLicenses = "sqlServerEsuLicenses"
	resourceTypeSqlServerLicenses    = "sqlServerLicenses"
	resourceTypeAvailabilityGroups   = "sqlServerInstances/availabilityGroups"
	resourceTypeFailoverGroups       = "sqlManagedInstances/failoverGroups"
	resourceTypeDataControllers      = "dataControllers"
	resourceTypeSqlManagedInstances  = "sqlManagedInstances"
)

// qualified returns the fully qualified resource type, as found in resource
// IDs and the type field of a resource.
func qualified(resourceType string) string {
	return resourceProviderNamespace + "/" + resourceType
}

func init() {
	api.Register(resourceProviderNamespace, APIVersion, &api.Version{
		ResourceTypes: map[string]*api.ResourceType{
			resourceTypeSqlServerInstances: {
				Tracked:     true,
				New:         func() interface{} { return &SqlServerInstance{} },
				NewList:     func() interface{} { return &SqlServerInstanceList{} },
				SetDefaults: api.Defaulter(SetSqlServerInstanceDefaults),
				StaticValidator: func(location, resourceID string) api.StaticValidator {
					return &sqlServerInstanceStaticValidator{
						location:   location,
						resourceID: resourceID,
					}
				},
				Example:     func() interface{} { return ExampleSqlServerInstanceParameter() },
				ExampleList: func() interface{} { return ExampleSqlServerInstanceListResponse() },
			},
			resourceTypeSqlServerEsuLicenses: {
				Tracked: true,
				New:     func() interface{} { return &SqlServerEsuLicense{} },
				NewList: func() interface{} { return &SqlServerEsuLicenseList{} },
				StaticValidator: func(location, resourceID string) api.StaticValidator {
					return &sqlServerEsuLicenseStaticValidator{
						location:   location,
						resourceID: resourceID,
					}
				},
				Example:     func() interface{} { return ExampleSqlServerEsuLicenseParameter() },
				ExampleList: func() interface{} { return ExampleSqlServerEsuLicenseListResponse() },
			},
			resourceTypeSqlServerLicenses: {
				Tracked:     true,
				New:         func() interface{} { return &SqlServerLicense{} },
				NewList:     func() interface{} { return &SqlServerLicenseList{} },
				SetDefaults: api.Defaulter(SetSqlServerLicenseDefaults),
				StaticValidator: func(location, resourceID string) api.StaticValidator {
					return &sqlServerLicenseStaticValidator{
						location:   location,
						resourceID: resourceID,
					}
				},
				Example:     func() interface{} { return ExampleSqlServerLicenseParameter() },
				ExampleList: func() interface{} { return ExampleSqlServerLicenseListResponse() },
			},
			resourceTypeAvailabilityGroups: {
				Tracked:     true,
				New:         func() interface{} { return &SqlServerAvailabilityGroupResource{} },
				NewList:     func() interface{} { return &SqlServerAvailabilityGroupList{} },
				SetDefaults: api.Defaulter(SetSqlServerAvailabilityGroupDefaults),
				StaticValidator: func(location, resourceID string) api.StaticValidator {
					return &availabilityGroupStaticValidator{
						location:   location,
						resourceID: resourceID,
					}
				},
				Example:     func() interface{} { return ExampleSqlServerAvailabilityGroupParameter() },
				ExampleList: func() interface{} { return ExampleSqlServerAvailabilityGroupListResponse() },
			},
			resourceTypeFailoverGroups: {
				New:         func() interface{} { return &FailoverGroupResource{} },
				NewList:     func() interface{} { return &FailoverGroupList{} },
				SetDefaults: api.Defaulter(SetFailoverGroupDefaults),
				StaticValidator: func(location, resourceID string) api.StaticValidator {
					return &failoverGroupStaticValidator{
						resourceID: resourceID,
					}
				},
				Example:     func() interface{} { return ExampleFailoverGroupParameter() },
				ExampleList: func() interface{} { return ExampleFailoverGroupListResponse() },
			},
			resourceTypeDataControllers: {
				Tracked:     true,
				New:         func() interface{} { return &DataControllerResource{} },
				NewList:     func() interface{} { return &DataControllerList{} },
				SetDefaults: api.Defaulter(SetDataControllerDefaults),
				StaticValidator: func(location, resourceID string) api.StaticValidator {
					return &dataControllerStaticValidator{
						location:   location,
						resourceID: resourceID,
					}
				},
				Example:     func() interface{} { return ExampleDataControllerParameter() },
				ExampleList: func() interface{} { return ExampleDataControllerListResponse() },
			},
		},
	})
}
