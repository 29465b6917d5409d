package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
)

func exampleSqlServerInstance() *SqlServerInstance {
	uploaded := date.Time{Time: time.Date(2024, time.May, 1, 10, 30, 0, 0, time.UTC)}

	return &SqlServerInstance{
		TrackedResource: arm.TrackedResource{
			Resource: arm.Resource{
				ID:   pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.AzureArcData/sqlServerInstances/sqlServerInstanceName"),
				Name: pointerutils.ToPtr("sqlServerInstanceName"),
				Type: pointerutils.ToPtr("Microsoft.AzureArcData/sqlServerInstances"),
			},
			Location: pointerutils.ToPtr("location"),
			Tags: map[string]*string{
				"key": pointerutils.ToPtr("value"),
			},
		},
		Properties: &SqlServerInstanceProperties{
			Version:                 pointerutils.ToPtr(SqlVersionSQLServer2012),
			Edition:                 pointerutils.ToPtr(EditionTypeDeveloper),
			ContainerResourceID:     pointerutils.ToPtr("/subscriptions/subscriptionId/resourceGroups/resourceGroup/providers/Microsoft.HybridCompute/machines/machineName"),
			VCore:                   pointerutils.ToPtr("4"),
			Cores:                   pointerutils.ToPtr("4"),
			Status:                  pointerutils.ToPtr(ConnectionStatusConnected),
			PatchLevel:              pointerutils.ToPtr("patchLevel"),
			Collation:               pointerutils.ToPtr("collation"),
			CurrentVersion:          pointerutils.ToPtr("2012"),
			InstanceName:            pointerutils.ToPtr("name of instance"),
			TCPDynamicPorts:         pointerutils.ToPtr("1433"),
			TCPStaticPorts:          pointerutils.ToPtr("1433"),
			ProductID:               pointerutils.ToPtr("sql id"),
			LicenseType:             pointerutils.ToPtr(ArcSqlServerLicenseTypeFree),
			AzureDefenderStatus:     pointerutils.ToPtr(DefenderStatusProtected),
			ProvisioningState:       pointerutils.ToPtr(ProvisioningStateSucceeded),
			LastInventoryUploadTime: &uploaded,
			HostType:                pointerutils.ToPtr(HostTypePhysicalServer),
			AlwaysOnRole:            pointerutils.ToPtr(AlwaysOnRoleAvailabilityGroupReplica),
			TraceFlags:              []*int32{pointerutils.ToPtr[int32](1204)},
			ServiceType:             pointerutils.ToPtr(ServiceTypeEngine),
			BackupPolicy: &BackupPolicy{
				RetentionPeriodDays:         pointerutils.ToPtr[int32](1),
				FullBackupDays:              pointerutils.ToPtr[int32](1),
				DifferentialBackupHours:     pointerutils.ToPtr(DifferentialBackupHoursTwelve),
				TransactionLogBackupMinutes: pointerutils.ToPtr[int32](30),
			},
			Monitoring: &Monitoring{
				Enabled: pointerutils.ToPtr(false),
			},
			ClientConnection: &ClientConnection{
				Enabled: pointerutils.ToPtr(true),
			},
			Authentication: &Authentication{
				Mode: pointerutils.ToPtr(AuthenticationModeMixed),
				SqlServerEntraIdentity: []*EntraAuthentication{
					{
						IdentityType: pointerutils.ToPtr(IdentityTypeUserAssignedManagedIdentity),
						ClientID:     pointerutils.ToPtr("00000000-1111-2222-3333-444444444444"),
					},
				},
			},
			DatabaseMirroringEndpoint: &DBMEndpoint{
				EndpointName:        pointerutils.ToPtr("Hadr_endpoint"),
				Role:                pointerutils.ToPtr(DBMEndpointRoleAll),
				IsEncryptionEnabled: pointerutils.ToPtr(true),
				ConnectionAuth:      pointerutils.ToPtr(ConnectionAuthWindowsNegotiate),
				EncryptionAlgorithm: pointerutils.ToPtr(EncryptionAlgorithmNONERC4AES),
				IPAddress:           pointerutils.ToPtr("0.0.0.0"),
				Port:                pointerutils.ToPtr[int32](5022),
				IsDynamicPort:       pointerutils.ToPtr(false),
			},
			Migration: &Migration{
				Assessment: &MigrationAssessment{
					Enabled:              pointerutils.ToPtr(true),
					AssessmentUploadTime: &uploaded,
					SkuRecommendationResults: &SkuRecommendationResults{
						Targets: []*MigrationTarget{
							NewAzureSqlManagedInstanceTarget(&AzureSqlManagedInstanceTarget{
								MigrationTargetBase: MigrationTargetBase{
									RecommendationStatus:        pointerutils.ToPtr(RecommendationStatusReady),
									NumberOfServerBlockerIssues: pointerutils.ToPtr[int32](0),
									MonthlyCost: &MonthlyCost{
										ComputeCost: pointerutils.ToPtr(744.0),
										StorageCost: pointerutils.ToPtr(30.0),
										TotalCost:   pointerutils.ToPtr(774.0),
									},
								},
								TargetSku: &TargetSku{
									Category: &TargetSkuCategory{
										ComputeTier:    pointerutils.ToPtr("Provisioned"),
										HardwareType:   pointerutils.ToPtr("Gen5"),
										SqlServiceTier: pointerutils.ToPtr("General Purpose"),
									},
									ComputeSize:        pointerutils.ToPtr[int32](4),
									StorageMaxSizeInMb: pointerutils.ToPtr[int64](32768),
								},
							}),
							NewAzureSqlVirtualMachineTarget(&AzureSqlVirtualMachineTarget{
								MigrationTargetBase: MigrationTargetBase{
									RecommendationStatus:        pointerutils.ToPtr(RecommendationStatusReady),
									NumberOfServerBlockerIssues: pointerutils.ToPtr[int32](0),
								},
								VirtualMachineSize: pointerutils.ToPtr("Standard_E4ds_v5"),
								VCPU:               pointerutils.ToPtr[int32](4),
								DataDiskCount:      pointerutils.ToPtr[int32](1),
								LogDiskCount:       pointerutils.ToPtr[int32](1),
							}),
						},
					},
				},
			},
		},
	}
}

// ExampleSqlServerInstanceParameter returns an example SqlServerInstance
// object that an end-user might send to create an instance in a PUT request
func ExampleSqlServerInstanceParameter() *SqlServerInstance {
	si := exampleSqlServerInstance()
	si.ID = nil
	si.Name = nil
	si.Type = nil
	si.Properties.Status = nil
	si.Properties.ProvisioningState = nil
	si.Properties.LastInventoryUploadTime = nil
	si.Properties.AlwaysOnRole = nil
	si.Properties.DatabaseMirroringEndpoint = nil
	si.Properties.Migration.Assessment.AssessmentUploadTime = nil
	si.Properties.Migration.Assessment.SkuRecommendationResults = nil

	return si
}

// ExampleSqlServerInstanceResponse returns an example SqlServerInstance
// object that the RP might return to an end-user
func ExampleSqlServerInstanceResponse() *SqlServerInstance {
	return exampleSqlServerInstance()
}

// ExampleSqlServerInstanceListResponse returns an example
// SqlServerInstanceList object that the RP might return to an end-user
func ExampleSqlServerInstanceListResponse() *SqlServerInstanceList {
	return arm.NewList([]*SqlServerInstance{
		ExampleSqlServerInstanceResponse(),
	}, "")
}
