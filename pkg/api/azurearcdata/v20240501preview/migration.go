package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

// Migration holds the migration related configuration of a SQL Server
// instance.
type Migration struct {
	// Migration assessments related configuration.
	Assessment *MigrationAssessment `json:"assessment,omitempty"`
}

// MigrationAssessment holds the result of the last migration assessment.
type MigrationAssessment struct {
	// Indicates if migration assessment is enabled for this SQL Server
	// instance.
	Enabled *bool `json:"enabled,omitempty"`

	// The time when Migration Assessment Report upload was last performed.
	// Read only.
	AssessmentUploadTime *date.Time `json:"assessmentUploadTime,omitempty"`

	// Issues and warnings impacting the migration of SQL Server instance to
	// particular Azure Migration Target. Read only.
	ServerAssessments []*ServerAssessment `json:"serverAssessments,omitzero"`

	// SKU Recommendation results for Azure migration targets for SQL Server.
	// Read only.
	SkuRecommendationResults *SkuRecommendationResults `json:"skuRecommendationResults,omitempty"`
}

// ServerAssessment is an issue or warning impacting the migration of a SQL
// Server instance.
type ServerAssessment struct {
	AppliesToMigrationTargetPlatform *string           `json:"appliesToMigrationTargetPlatform,omitempty"`
	FeatureID                        *string           `json:"featureId,omitempty"`
	ImpactedObjects                  []*ImpactedObject `json:"impactedObjects,omitzero"`
	IssueCategory                    *string           `json:"issueCategory,omitempty"`
	MoreInformation                  *string           `json:"moreInformation,omitempty"`
}

// ImpactedObject is a database object impacted by an assessment issue.
type ImpactedObject struct {
	Name       *string `json:"name,omitempty"`
	ObjectType *string `json:"objectType,omitempty"`
}

// SkuRecommendationResults holds the SKU recommendations for each Azure
// migration target.
type SkuRecommendationResults struct {
	// Recommendations per target, discriminated by their type.
	Targets []*MigrationTarget `json:"targets,omitzero"`
}

// MigrationTargetType discriminates the variants of MigrationTarget.
type MigrationTargetType string

const (
	MigrationTargetTypeAzureSqlDatabase        MigrationTargetType = "AzureSqlDatabase"
	MigrationTargetTypeAzureSqlManagedInstance MigrationTargetType = "AzureSqlManagedInstance"
	MigrationTargetTypeAzureSqlVirtualMachine  MigrationTargetType = "AzureSqlVirtualMachine"
)

func PossibleMigrationTargetTypeValues() []MigrationTargetType {
	return []MigrationTargetType{
		MigrationTargetTypeAzureSqlDatabase,
		MigrationTargetTypeAzureSqlManagedInstance,
		MigrationTargetTypeAzureSqlVirtualMachine,
	}
}

func (v MigrationTargetType) IsKnown() bool {
	return arm.IsKnown(v, PossibleMigrationTargetTypeValues())
}

// MigrationTarget is a SKU recommendation for one Azure migration target.
// The variant is selected by the "type" field and its fields are inlined on
// the wire. At most one of the variant fields is set. A target whose type is
// not known keeps its JSON object verbatim and re-encodes it unchanged for as
// long as Type is left as decoded. Changing Type, or setting a variant,
// discards the kept object on encode.
type MigrationTarget struct {
	Type *MigrationTargetType `json:"type,omitempty"`

	AzureSqlDatabase        *AzureSqlDatabaseTarget        `json:"-"`
	AzureSqlManagedInstance *AzureSqlManagedInstanceTarget `json:"-"`
	AzureSqlVirtualMachine  *AzureSqlVirtualMachineTarget  `json:"-"`

	raw json.RawMessage
}

// MigrationTargetBase holds the fields common to every migration target.
type MigrationTargetBase struct {
	// The target recommendation status for this migration target.
	RecommendationStatus *RecommendationStatus `json:"recommendationStatus,omitempty"`

	// Number of blocker issues to fix before migrating to the target platform.
	NumberOfServerBlockerIssues *int32 `json:"numberOfServerBlockerIssues,omitempty"`

	// The monthly cost of the recommended configuration.
	MonthlyCost *MonthlyCost `json:"monthlyCost,omitempty"`
}

// AzureSqlDatabaseTarget is a recommendation to migrate each database to
// Azure SQL Database.
type AzureSqlDatabaseTarget struct {
	MigrationTargetBase

	// Number of databases which are ready to migrate.
	NumberOfDatabasesReadyForMigration *int32 `json:"numberOfDatabasesReadyForMigration,omitempty"`

	// Per database recommendations.
	DatabaseLevelRecommendations []*DatabaseLevelRecommendation `json:"databaseLevelRecommendations,omitzero"`
}

// AzureSqlManagedInstanceTarget is a recommendation to migrate the instance
// to Azure SQL Managed Instance.
type AzureSqlManagedInstanceTarget struct {
	MigrationTargetBase

	TargetSku *TargetSku `json:"targetSku,omitempty"`
}

// AzureSqlVirtualMachineTarget is a recommendation to migrate the instance to
// SQL Server on an Azure virtual machine.
type AzureSqlVirtualMachineTarget struct {
	MigrationTargetBase

	VirtualMachineSize *string `json:"virtualMachineSize,omitempty"`
	VCPU               *int32  `json:"vCpu,omitempty"`
	DataDiskCount      *int32  `json:"dataDiskCount,omitempty"`
	LogDiskCount       *int32  `json:"logDiskCount,omitempty"`
}

// DatabaseLevelRecommendation is an Azure SQL Database recommendation for
// a single database.
type DatabaseLevelRecommendation struct {
	DatabaseName         *string               `json:"databaseName,omitempty"`
	RecommendationStatus *RecommendationStatus `json:"recommendationStatus,omitempty"`
	TargetSku            *TargetSku            `json:"targetSku,omitempty"`
}

// TargetSku is the recommended compute configuration.
type TargetSku struct {
	Category           *TargetSkuCategory `json:"category,omitempty"`
	ComputeSize        *int32             `json:"computeSize,omitempty"`
	StorageMaxSizeInMb *int64             `json:"storageMaxSizeInMb,omitempty"`
}

// TargetSkuCategory describes the tier of a recommended SKU.
type TargetSkuCategory struct {
	ComputeTier             *string `json:"computeTier,omitempty"`
	HardwareType            *string `json:"hardwareType,omitempty"`
	SqlPurchasingModel      *string `json:"sqlPurchasingModel,omitempty"`
	SqlServiceTier          *string `json:"sqlServiceTier,omitempty"`
	ZoneRedundancyAvailable *bool   `json:"zoneRedundancyAvailable,omitempty"`
}

// MonthlyCost is the monthly cost of a recommended configuration.
type MonthlyCost struct {
	ComputeCost *float64 `json:"computeCost,omitempty"`
	StorageCost *float64 `json:"storageCost,omitempty"`
	TotalCost   *float64 `json:"totalCost,omitempty"`
}

// RecommendationStatus is the target recommendation status.
type RecommendationStatus string

const (
	RecommendationStatusNotReady RecommendationStatus = "NotReady"
	RecommendationStatusReady    RecommendationStatus = "Ready"
	RecommendationStatusUnknown  RecommendationStatus = "Unknown"
)

func PossibleRecommendationStatusValues() []RecommendationStatus {
	return []RecommendationStatus{
		RecommendationStatusNotReady,
		RecommendationStatusReady,
		RecommendationStatusUnknown,
	}
}

func (v RecommendationStatus) IsKnown() bool {
	return arm.IsKnown(v, PossibleRecommendationStatusValues())
}

func NewAzureSqlDatabaseTarget(t *AzureSqlDatabaseTarget) *MigrationTarget {
	typ := MigrationTargetTypeAzureSqlDatabase
	return &MigrationTarget{Type: &typ, AzureSqlDatabase: t}
}

func NewAzureSqlManagedInstanceTarget(t *AzureSqlManagedInstanceTarget) *MigrationTarget {
	typ := MigrationTargetTypeAzureSqlManagedInstance
	return &MigrationTarget{Type: &typ, AzureSqlManagedInstance: t}
}

func NewAzureSqlVirtualMachineTarget(t *AzureSqlVirtualMachineTarget) *MigrationTarget {
	typ := MigrationTargetTypeAzureSqlVirtualMachine
	return &MigrationTarget{Type: &typ, AzureSqlVirtualMachine: t}
}

// Variant returns the payload of the set variant, or nil when the type is
// absent or not known.
func (t MigrationTarget) Variant() interface{} {
	switch {
	case t.AzureSqlDatabase != nil:
		return t.AzureSqlDatabase
	case t.AzureSqlManagedInstance != nil:
		return t.AzureSqlManagedInstance
	case t.AzureSqlVirtualMachine != nil:
		return t.AzureSqlVirtualMachine
	}
	return nil
}

func (t *MigrationTarget) UnmarshalJSON(b []byte) error {
	var head struct {
		Type *MigrationTargetType `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}

	*t = MigrationTarget{Type: head.Type}

	var err error
	switch arm.Value(head.Type, "") {
	case MigrationTargetTypeAzureSqlDatabase:
		t.AzureSqlDatabase = &AzureSqlDatabaseTarget{}
		err = json.Unmarshal(b, t.AzureSqlDatabase)
	case MigrationTargetTypeAzureSqlManagedInstance:
		t.AzureSqlManagedInstance = &AzureSqlManagedInstanceTarget{}
		err = json.Unmarshal(b, t.AzureSqlManagedInstance)
	case MigrationTargetTypeAzureSqlVirtualMachine:
		t.AzureSqlVirtualMachine = &AzureSqlVirtualMachineTarget{}
		err = json.Unmarshal(b, t.AzureSqlVirtualMachine)
	default:
		t.raw = append(json.RawMessage(nil), b...)
	}

	return err
}

// MarshalJSON emits the discriminator followed by the fields of the set
// variant. The discriminator is derived from the variant when one is set.
func (t MigrationTarget) MarshalJSON() ([]byte, error) {
	typ := func(v MigrationTargetType) *MigrationTargetType { return &v }

	switch {
	case t.AzureSqlDatabase != nil:
		return json.Marshal(struct {
			Type *MigrationTargetType `json:"type,omitempty"`
			*AzureSqlDatabaseTarget
		}{typ(MigrationTargetTypeAzureSqlDatabase), t.AzureSqlDatabase})
	case t.AzureSqlManagedInstance != nil:
		return json.Marshal(struct {
			Type *MigrationTargetType `json:"type,omitempty"`
			*AzureSqlManagedInstanceTarget
		}{typ(MigrationTargetTypeAzureSqlManagedInstance), t.AzureSqlManagedInstance})
	case t.AzureSqlVirtualMachine != nil:
		return json.Marshal(struct {
			Type *MigrationTargetType `json:"type,omitempty"`
			*AzureSqlVirtualMachineTarget
		}{typ(MigrationTargetTypeAzureSqlVirtualMachine), t.AzureSqlVirtualMachine})
	case t.raw != nil && rawHasType(t.raw, t.Type):
		return t.raw, nil
	}

	return json.Marshal(struct {
		Type *MigrationTargetType `json:"type,omitempty"`
	}{t.Type})
}

// rawHasType reports whether the discriminator of raw still equals typ.
func rawHasType(raw json.RawMessage, typ *MigrationTargetType) bool {
	var head struct {
		Type *MigrationTargetType `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return false
	}

	if head.Type == nil || typ == nil {
		return head.Type == nil && typ == nil
	}
	return *head.Type == *typ
}
