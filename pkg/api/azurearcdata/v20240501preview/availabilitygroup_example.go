package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-arc-models/pkg/api/arm"
	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
)

func exampleSqlServerAvailabilityGroup() *SqlServerAvailabilityGroupResource {
	return &SqlServerAvailabilityGroupResource{
		TrackedResource: arm.TrackedResource{
			Resource: arm.Resource{
				ID:   pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.AzureArcData/sqlServerInstances/sqlServerInstanceName/availabilityGroups/availabilityGroupName"),
				Name: pointerutils.ToPtr("availabilityGroupName"),
				Type: pointerutils.ToPtr("Microsoft.AzureArcData/sqlServerInstances/availabilityGroups"),
			},
			Location: pointerutils.ToPtr("location"),
		},
		Properties: &SqlServerAvailabilityGroupResourceProperties{
			AvailabilityGroupID: pointerutils.ToPtr("22222222-2222-2222-2222-222222222222"),
			ServerName:          pointerutils.ToPtr("server1"),
			InstanceName:        pointerutils.ToPtr("server1\\instance1"),
			Info: &AvailabilityGroupInfo{
				FailureConditionLevel: pointerutils.ToPtr[int32](3),
				HealthCheckTimeout:    pointerutils.ToPtr[int32](30000),
				BasicFeatures:         pointerutils.ToPtr(false),
				IsDistributed:         pointerutils.ToPtr(false),
				ClusterTypeDesc:       pointerutils.ToPtr("WSFC"),
			},
			Replicas: arm.NewList([]*SqlAvailabilityGroupReplicaResourceProperties{
				{
					ReplicaName: pointerutils.ToPtr("server1\\instance1"),
					Configure: &AvailabilityGroupConfigure{
						EndpointURL:                pointerutils.ToPtr("TCP://server1.contoso.com:5022"),
						EndpointAuthenticationMode: pointerutils.ToPtr(ConnectionAuthWindowsNegotiate),
						AvailabilityMode:           pointerutils.ToPtr(AvailabilityModeDescriptionSynchronousCommit),
						FailoverMode:               pointerutils.ToPtr(FailoverModeDescriptionAutomatic),
						SeedingMode:                pointerutils.ToPtr(SeedingModeAutomatic),
						BackupPriority:             pointerutils.ToPtr[int32](50),
						SessionTimeout:             pointerutils.ToPtr[int32](10),
						PrimaryAllowConnections:    pointerutils.ToPtr(PrimaryAllowConnectionsAll),
						SecondaryAllowConnections:  pointerutils.ToPtr(SecondaryAllowConnectionsReadOnly),
					},
				},
			}, ""),
			Databases: arm.NewList([]*SqlAvailabilityGroupDatabaseReplicaResourceProperties{
				{
					DatabaseName:     pointerutils.ToPtr("db1"),
					IsPrimaryReplica: pointerutils.ToPtr(true),
				},
			}, ""),
			ProvisioningState: pointerutils.ToPtr(ProvisioningStateSucceeded),
		},
	}
}

// ExampleSqlServerAvailabilityGroupParameter returns an example
// SqlServerAvailabilityGroupResource object that an end-user might send to
// create an availability group in a PUT request
func ExampleSqlServerAvailabilityGroupParameter() *SqlServerAvailabilityGroupResource {
	ag := exampleSqlServerAvailabilityGroup()
	ag.ID = nil
	ag.Name = nil
	ag.Type = nil
	ag.Properties.AvailabilityGroupID = nil
	ag.Properties.ServerName = nil
	ag.Properties.InstanceName = nil
	ag.Properties.ProvisioningState = nil

	return ag
}

// ExampleSqlServerAvailabilityGroupResponse returns an example
// SqlServerAvailabilityGroupResource object that the RP might return to an
// end-user
func ExampleSqlServerAvailabilityGroupResponse() *SqlServerAvailabilityGroupResource {
	return exampleSqlServerAvailabilityGroup()
}

// ExampleSqlServerAvailabilityGroupListResponse returns an example
// SqlServerAvailabilityGroupList object that the RP might return to an
// end-user
func ExampleSqlServerAvailabilityGroupListResponse() *SqlServerAvailabilityGroupList {
	return arm.NewList([]*SqlServerAvailabilityGroupResource{
		ExampleSqlServerAvailabilityGroupResponse(),
	}, "")
}

// ExampleAvailabilityGroupCreateUpdateConfiguration returns an example body
// of the createAvailabilityGroup action
func ExampleAvailabilityGroupCreateUpdateConfiguration() *AvailabilityGroupCreateUpdateConfiguration {
	return &AvailabilityGroupCreateUpdateConfiguration{
		AvailabilityGroupName: pointerutils.ToPtr("availabilityGroupName"),
		Replicas: []*AvailabilityGroupCreateUpdateReplicaConfiguration{
			{
				ServerInstance:             pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.AzureArcData/sqlServerInstances/server1"),
				EndpointName:               pointerutils.ToPtr("Hadr_endpoint"),
				EndpointURL:                pointerutils.ToPtr("TCP://server1.contoso.com:5022"),
				EndpointAuthenticationMode: pointerutils.ToPtr(ConnectionAuthWindowsNegotiate),
				AvailabilityMode:           pointerutils.ToPtr(AvailabilityModeDescriptionSynchronousCommit),
				FailoverMode:               pointerutils.ToPtr(FailoverModeDescriptionAutomatic),
				SeedingMode:                pointerutils.ToPtr(SeedingModeAutomatic),
				BackupPriority:             pointerutils.ToPtr[int32](50),
			},
			{
				ServerInstance:             pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.AzureArcData/sqlServerInstances/server2"),
				EndpointName:               pointerutils.ToPtr("Hadr_endpoint"),
				EndpointURL:                pointerutils.ToPtr("TCP://server2.contoso.com:5022"),
				EndpointAuthenticationMode: pointerutils.ToPtr(ConnectionAuthCertificate),
				CertificateName:            pointerutils.ToPtr("hadr_cert"),
				AvailabilityMode:           pointerutils.ToPtr(AvailabilityModeDescriptionSynchronousCommit),
				SeedingMode:                pointerutils.ToPtr(SeedingModeAutomatic),
			},
		},
		Databases:                 []*string{pointerutils.ToPtr("db1")},
		AutomatedBackupPreference: pointerutils.ToPtr(AutomatedBackupPreferenceSecondary),
		FailureConditionLevel:     pointerutils.ToPtr(FailureConditionLevelThree),
		HealthCheckTimeout:        pointerutils.ToPtr[int32](30000),
		DbFailover:                pointerutils.ToPtr(DbFailoverON),
		DtcSupport:                pointerutils.ToPtr(DtcSupportNONE),
		ClusterType:               pointerutils.ToPtr(ClusterTypeWSFC),
		Listener: &SqlAvailabilityGroupStaticIPListenerProperties{
			DNSName: pointerutils.ToPtr("aglistener"),
			IPV4AddressesAndMasks: []*SqlAvailabilityGroupIPV4AddressesAndMasksPropertiesItem{
				{
					IPAddress: pointerutils.ToPtr("192.168.0.10"),
					Mask:      pointerutils.ToPtr("255.255.255.0"),
				},
			},
			Port: pointerutils.ToPtr[int32](1433),
		},
	}
}
