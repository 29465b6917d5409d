package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

// DataControllerResource is an Azure Arc data controller.
type DataControllerResource struct {
	arm.TrackedResource

	// The extendedLocation of the resource.
	ExtendedLocation *arm.ExtendedLocation `json:"extendedLocation,omitempty"`

	// The data controller's properties
	Properties *DataControllerProperties `json:"properties,omitempty"`
}

// String returns a representation of the data controller in which secrets
// are redacted.
func (dc *DataControllerResource) String() string {
	return api.EncodeJSON(dc)
}

// DataControllerList is a page of data controllers.
type DataControllerList = arm.List[*DataControllerResource]

// DataControllerProperties describes the properties of a data controller.
type DataControllerProperties struct {
	// The infrastructure the data controller is running on.
	Infrastructure *Infrastructure `json:"infrastructure,omitempty"`

	// Properties from the Kubernetes data controller
	OnPremiseProperty *OnPremiseProperty `json:"onPremiseProperty,omitempty"`

	// The raw kubernetes information
	K8SRaw json.RawMessage `json:"k8sRaw,omitempty"`

	// Properties on upload watermark. Mostly timestamp for each upload data
	// type
	UploadWatermark *UploadWatermark `json:"uploadWatermark,omitempty"`

	// Last uploaded date from Kubernetes cluster. Defaults to current date
	// time
	LastUploadedDate *date.Time `json:"lastUploadedDate,omitempty"`

	// Deprecated. Azure Arc Data Services data controller no longer expose
	// any endpoint. All traffic are exposed through Kubernetes native API.
	BasicLoginInformation *BasicLoginInformation `json:"basicLoginInformation,omitempty"`

	// Login credential for metrics dashboard on the Kubernetes cluster.
	MetricsDashboardCredential *BasicLoginInformation `json:"metricsDashboardCredential,omitempty"`

	// Login credential for logs dashboard on the Kubernetes cluster.
	LogsDashboardCredential *BasicLoginInformation `json:"logsDashboardCredential,omitempty"`

	// Log analytics workspace id and primary key
	LogAnalyticsWorkspaceConfig *LogAnalyticsWorkspaceConfig `json:"logAnalyticsWorkspaceConfig,omitempty"`

	// Deprecated. Service principal is deprecated in favor of Arc Kubernetes
	// service extension managed identity.
	UploadServicePrincipal *UploadServicePrincipal `json:"uploadServicePrincipal,omitempty"`

	// The provisioningState property. Read only.
	ProvisioningState *string `json:"provisioningState,omitempty"`

	// If a CustomLocation is provided, this contains the ARM id of the
	// connected cluster the custom location belongs to.
	ClusterID *string `json:"clusterId,omitempty"`

	// If a CustomLocation is provided, this contains the ARM id of the
	// extension the custom location belongs to.
	ExtensionID *string `json:"extensionId,omitempty"`
}

// DataControllerUpdate is the body of a PATCH request on a data controller.
type DataControllerUpdate struct {
	Tags       map[string]*string        `json:"tags,omitzero"`
	Properties *DataControllerProperties `json:"properties,omitempty"`
}

// OnPremiseProperty holds the properties from the Kubernetes data
// controller.
type OnPremiseProperty struct {
	// A globally unique ID identifying the associated Kubernetes cluster
	ID *string `json:"id,omitempty"`

	// Certificate that contains the Kubernetes cluster public key used to
	// verify signing
	PublicSigningKey *string `json:"publicSigningKey,omitempty"`

	// Unique thumbprint returned to customer to verify the certificate being
	// uploaded
	SigningCertificateThumbprint *string `json:"signingCertificateThumbprint,omitempty"`
}

// UploadWatermark holds the timestamp of the last upload of each data type.
type UploadWatermark struct {
	Metrics *date.Time `json:"metrics,omitempty"`
	Logs    *date.Time `json:"logs,omitempty"`
	Usages  *date.Time `json:"usages,omitempty"`
}

// BasicLoginInformation is a username and password pair.
type BasicLoginInformation struct {
	Username *string           `json:"username,omitempty"`
	Password *api.SecureString `json:"password,omitempty"`
}

// LogAnalyticsWorkspaceConfig holds the log analytics workspace id and
// primary key.
type LogAnalyticsWorkspaceConfig struct {
	// Azure Log Analytics workspace ID
	WorkspaceID *string `json:"workspaceId,omitempty"`

	// Primary key of the workspace
	PrimaryKey *api.SecureString `json:"primaryKey,omitempty"`
}

// UploadServicePrincipal is the service principal used to upload data to
// Azure.
type UploadServicePrincipal struct {
	ClientID     *string           `json:"clientId,omitempty"`
	TenantID     *string           `json:"tenantId,omitempty"`
	Authority    *string           `json:"authority,omitempty"`
	ClientSecret *api.SecureString `json:"clientSecret,omitempty"`
}

// Infrastructure is the infrastructure the data controller is running on.
type Infrastructure string

const (
	InfrastructureAlibaba    Infrastructure = "alibaba"
	InfrastructureAws        Infrastructure = "aws"
	InfrastructureAzure      Infrastructure = "azure"
	InfrastructureGcp        Infrastructure = "gcp"
	InfrastructureOnpremises Infrastructure = "onpremises"
	InfrastructureOther      Infrastructure = "other"
)

// DefaultInfrastructure applies when infrastructure is absent.
const DefaultInfrastructure = InfrastructureOther

func PossibleInfrastructureValues() []Infrastructure {
	return []Infrastructure{
		InfrastructureAlibaba,
		InfrastructureAws,
		InfrastructureAzure,
		InfrastructureGcp,
		InfrastructureOnpremises,
		InfrastructureOther,
	}
}

func (v Infrastructure) IsKnown() bool {
	return arm.IsKnown(v, PossibleInfrastructureValues())
}
