package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

// SqlServerInstance is a SQL Server instance connected to Azure Arc.
type SqlServerInstance struct {
	arm.TrackedResource

	// null
	Properties *SqlServerInstanceProperties `json:"properties,omitempty"`
}

// SqlServerInstanceList is a page of SQL Server instances.
type SqlServerInstanceList = arm.List[*SqlServerInstance]

// SqlServerInstanceProperties describes the properties of a SQL Server
// instance.
type SqlServerInstanceProperties struct {
	// SQL Server version.
	Version *SqlVersion `json:"version,omitempty"`

	// SQL Server edition.
	Edition *EditionType `json:"edition,omitempty"`

	// ARM Resource id of the container resource (Azure Arc for Servers).
	// Read only.
	ContainerResourceID *string `json:"containerResourceId,omitempty"`

	// The time when the resource was created. Read only.
	CreateTime *string `json:"createTime,omitempty"`

	// The number of logical processors used by the SQL Server instance.
	// Read only.
	VCore *string `json:"vCore,omitempty"`

	// The number of total cores of the Operating System Environment (OSE)
	// hosting the SQL Server instance.
	Cores *string `json:"cores,omitempty"`

	// The cloud connectivity status. Read only.
	Status *ConnectionStatus `json:"status,omitempty"`

	// SQL Server update level.
	PatchLevel *string `json:"patchLevel,omitempty"`

	// SQL Server collation.
	Collation *string `json:"collation,omitempty"`

	// Indicates whether database master key exists in SQL Server.
	DbMasterKeyExists *bool `json:"dbMasterKeyExists,omitempty"`

	// Indicates whether always On availability groups is enabled in SQL
	// Server.
	IsHadrEnabled *bool `json:"isHadrEnabled,omitempty"`

	// An array of integers, where each value represents the enabled trace
	// flags in SQL Server.
	TraceFlags []*int32 `json:"traceFlags,omitzero"`

	// SQL Server current version.
	CurrentVersion *string `json:"currentVersion,omitempty"`

	// SQL Server instance name.
	InstanceName *string `json:"instanceName,omitempty"`

	// Dynamic TCP ports used by SQL Server.
	TCPDynamicPorts *string `json:"tcpDynamicPorts,omitempty"`

	// Static TCP ports used by SQL Server.
	TCPStaticPorts *string `json:"tcpStaticPorts,omitempty"`

	// SQL Server product ID.
	ProductID *string `json:"productId,omitempty"`

	// SQL Server license type. Read only.
	LicenseType *ArcSqlServerLicenseType `json:"licenseType,omitempty"`

	// Timestamp of last Azure Defender status update.
	AzureDefenderStatusLastUpdated *date.Time `json:"azureDefenderStatusLastUpdated,omitempty"`

	// Status of Azure Defender.
	AzureDefenderStatus *DefenderStatus `json:"azureDefenderStatus,omitempty"`

	// The provisioning state of the Arc-enabled SQL Server resource. Read
	// only.
	ProvisioningState *ProvisioningState `json:"provisioningState,omitempty"`

	// The time when last successful inventory upload was performed. Read
	// only.
	LastInventoryUploadTime *date.Time `json:"lastInventoryUploadTime,omitempty"`

	// The time when last successful usage upload was performed. Read only.
	LastUsageUploadTime *date.Time `json:"lastUsageUploadTime,omitempty"`

	// Type of host for Azure Arc SQL Server
	HostType *HostType `json:"hostType,omitempty"`

	// The role of the SQL Server, based on availability. Read only.
	AlwaysOnRole *AlwaysOnRole `json:"alwaysOnRole,omitempty"`

	// Database mirroring endpoint related properties. Read only.
	DatabaseMirroringEndpoint *DBMEndpoint `json:"databaseMirroringEndpoint,omitempty"`

	// Failover Cluster Instance properties. Read only.
	FailoverCluster *FailoverCluster `json:"failoverCluster,omitempty"`

	// The backup profile for the SQL server.
	BackupPolicy *BackupPolicy `json:"backupPolicy,omitempty"`

	// Upgrade Action for this resource is locked until this date time. Read
	// only.
	UpgradeLockedUntil *date.Time `json:"upgradeLockedUntil,omitempty"`

	// The monitoring configuration.
	Monitoring *Monitoring `json:"monitoring,omitempty"`

	// Migration related configuration.
	Migration *Migration `json:"migration,omitempty"`

	// Client connection related configuration.
	ClientConnection *ClientConnection `json:"clientConnection,omitempty"`

	// Indicates if the resource represents a SQL Server engine or a SQL
	// Server component service installed on the host.
	ServiceType *ServiceType `json:"serviceType,omitempty"`

	// Authentication related configuration for the SQL Server Instance.
	Authentication *Authentication `json:"authentication,omitempty"`
}

// SqlServerInstanceUpdate is the body of a PATCH request on a SQL Server
// instance.
type SqlServerInstanceUpdate struct {
	Tags       map[string]*string           `json:"tags,omitzero"`
	Properties *SqlServerInstanceProperties `json:"properties,omitempty"`
}

// FailoverCluster describes the failover cluster instance properties.
type FailoverCluster struct {
	// The GUID of the SQL Server's underlying Failover Cluster.
	ID *string `json:"id,omitempty"`

	// The network name to connect to the SQL FCI.
	NetworkName *string `json:"networkName,omitempty"`

	// The ARM IDs of the Arc SQL Server resources, belonging to the current
	// server's Failover cluster.
	SqlInstanceIDs []*string `json:"sqlInstanceIds,omitzero"`

	// The host names which are part of the SQL FCI resource group.
	HostNames []*string `json:"hostNames,omitzero"`

	// The IP addresses and related properties associated with the SQL FCI.
	HostIPAddresses []*HostIPAddressInformation `json:"hostIPAddresses,omitzero"`
}

// HostIPAddressInformation describes an IP address of a failover cluster
// host.
type HostIPAddressInformation struct {
	IPAddress   *string `json:"ipAddress,omitempty"`
	SubnetMask  *string `json:"subnetMask,omitempty"`
	NetworkName *string `json:"networkName,omitempty"`
}

// BackupPolicy is the backup profile for the SQL server.
type BackupPolicy struct {
	// The retention period for all the databases in this managed instance.
	RetentionPeriodDays *int32 `json:"retentionPeriodDays,omitempty"`

	// The value indicating days between full backups.
	FullBackupDays *int32 `json:"fullBackupDays,omitempty"`

	// The differential backup interval in hours.
	DifferentialBackupHours *DifferentialBackupHours `json:"differentialBackupHours,omitempty"`

	// The value indicating minutes between transaction log backups.
	TransactionLogBackupMinutes *int32 `json:"transactionLogBackupMinutes,omitempty"`
}

// Monitoring is the monitoring configuration.
type Monitoring struct {
	// Indicates if monitoring is enabled for this SQL Server instance.
	Enabled *bool `json:"enabled,omitempty"`
}

// ClientConnection is the client connection related configuration.
type ClientConnection struct {
	// Indicates if client connection is enabled for this SQL Server instance.
	Enabled *bool `json:"enabled,omitempty"`
}

// Authentication is the authentication related configuration for the SQL
// Server instance.
type Authentication struct {
	// Mode of authentication in SqlServer.
	Mode *AuthenticationMode `json:"mode,omitempty"`

	// Entra Authentication configuration for the SQL Server Instance.
	SqlServerEntraIdentity []*EntraAuthentication `json:"sqlServerEntraIdentity,omitzero"`
}

// EntraAuthentication describes an identity SQL Server uses for Entra ID
// authentication.
type EntraAuthentication struct {
	// The method used for Entra authentication
	IdentityType *IdentityType `json:"identityType,omitempty"`

	// The client Id of the Managed Identity to query Microsoft Graph API. An
	// empty string must be used for the system assigned Managed Identity
	ClientID *string `json:"clientId,omitempty"`
}

// DBMEndpoint holds the database mirroring endpoint related properties.
type DBMEndpoint struct {
	// Name of the database mirroring endpoint.
	EndpointName *string `json:"endpointName,omitempty"`

	// Mirroring Role
	Role *DBMEndpointRole `json:"role,omitempty"`

	// Is Encryption enabled
	IsEncryptionEnabled *bool `json:"isEncryptionEnabled,omitempty"`

	// The type of connection authentication required for connections to
	// this endpoint
	ConnectionAuth *ConnectionAuth `json:"connectionAuth,omitempty"`

	// Name of the certificate.
	CertificateName *string `json:"certificateName,omitempty"`

	// The encryption algorithm(s) used by the endpoint
	EncryptionAlgorithm *EncryptionAlgorithm `json:"encryptionAlgorithm,omitempty"`

	// Listener IP address.
	IPAddress *string `json:"ipAddress,omitempty"`

	// The port number that the endpoint is listening on.
	Port *int32 `json:"port,omitempty"`

	// Is the port number dynamically assigned.
	IsDynamicPort *bool `json:"isDynamicPort,omitempty"`
}

// SqlVersion is the SQL Server version.
type SqlVersion string

const (
	SqlVersionSQLServer2012 SqlVersion = "SQL Server 2012"
	SqlVersionSQLServer2014 SqlVersion = "SQL Server 2014"
	SqlVersionSQLServer2016 SqlVersion = "SQL Server 2016"
	SqlVersionSQLServer2017 SqlVersion = "SQL Server 2017"
	SqlVersionSQLServer2019 SqlVersion = "SQL Server 2019"
	SqlVersionSQLServer2022 SqlVersion = "SQL Server 2022"
	SqlVersionUnknown       SqlVersion = "Unknown"
)

func PossibleSqlVersionValues() []SqlVersion {
	return []SqlVersion{
		SqlVersionSQLServer2012,
		SqlVersionSQLServer2014,
		SqlVersionSQLServer2016,
		SqlVersionSQLServer2017,
		SqlVersionSQLServer2019,
		SqlVersionSQLServer2022,
		SqlVersionUnknown,
	}
}

func (v SqlVersion) IsKnown() bool {
	return arm.IsKnown(v, PossibleSqlVersionValues())
}

// IsExtendedSupport reports whether the version is past the end of
// mainstream and extended support and so requires an ESU license.
func (v SqlVersion) IsExtendedSupport() bool {
	return v == SqlVersionSQLServer2012 || v == SqlVersionSQLServer2014
}

// EditionType is the SQL Server edition.
type EditionType string

const (
	EditionTypeBusinessIntelligence EditionType = "Business Intelligence"
	EditionTypeDeveloper            EditionType = "Developer"
	EditionTypeEnterprise           EditionType = "Enterprise"
	EditionTypeEvaluation           EditionType = "Evaluation"
	EditionTypeExpress              EditionType = "Express"
	EditionTypeStandard             EditionType = "Standard"
	EditionTypeWeb                  EditionType = "Web"
)

func PossibleEditionTypeValues() []EditionType {
	return []EditionType{
		EditionTypeBusinessIntelligence,
		EditionTypeDeveloper,
		EditionTypeEnterprise,
		EditionTypeEvaluation,
		EditionTypeExpress,
		EditionTypeStandard,
		EditionTypeWeb,
	}
}

func (v EditionType) IsKnown() bool {
	return arm.IsKnown(v, PossibleEditionTypeValues())
}

// ConnectionStatus is the cloud connectivity status.
type ConnectionStatus string

const (
	ConnectionStatusConnected    ConnectionStatus = "Connected"
	ConnectionStatusDisconnected ConnectionStatus = "Disconnected"
	ConnectionStatusRegistered   ConnectionStatus = "Registered"
	ConnectionStatusUnknown      ConnectionStatus = "Unknown"
)

func PossibleConnectionStatusValues() []ConnectionStatus {
	return []ConnectionStatus{
		ConnectionStatusConnected,
		ConnectionStatusDisconnected,
		ConnectionStatusRegistered,
		ConnectionStatusUnknown,
	}
}

func (v ConnectionStatus) IsKnown() bool {
	return arm.IsKnown(v, PossibleConnectionStatusValues())
}

// ArcSqlServerLicenseType is the SQL Server license type.
type ArcSqlServerLicenseType string

const (
	ArcSqlServerLicenseTypeFree        ArcSqlServerLicenseType = "Free"
	ArcSqlServerLicenseTypeHADR        ArcSqlServerLicenseType = "HADR"
	ArcSqlServerLicenseTypeLicenseOnly ArcSqlServerLicenseType = "LicenseOnly"
	ArcSqlServerLicenseTypePAYG        ArcSqlServerLicenseType = "PAYG"
	ArcSqlServerLicenseTypePaid        ArcSqlServerLicenseType = "Paid"
	ArcSqlServerLicenseTypeServerCAL   ArcSqlServerLicenseType = "ServerCAL"
	ArcSqlServerLicenseTypeUndefined   ArcSqlServerLicenseType = "Undefined"
)

func PossibleArcSqlServerLicenseTypeValues() []ArcSqlServerLicenseType {
	return []ArcSqlServerLicenseType{
		ArcSqlServerLicenseTypeFree,
		ArcSqlServerLicenseTypeHADR,
		ArcSqlServerLicenseTypeLicenseOnly,
		ArcSqlServerLicenseTypePAYG,
		ArcSqlServerLicenseTypePaid,
		ArcSqlServerLicenseTypeServerCAL,
		ArcSqlServerLicenseTypeUndefined,
	}
}

func (v ArcSqlServerLicenseType) IsKnown() bool {
	return arm.IsKnown(v, PossibleArcSqlServerLicenseTypeValues())
}

// DefenderStatus is the status of Azure Defender.
type DefenderStatus string

const (
	DefenderStatusProtected   DefenderStatus = "Protected"
	DefenderStatusUnknown     DefenderStatus = "Unknown"
	DefenderStatusUnprotected DefenderStatus = "Unprotected"
)

func PossibleDefenderStatusValues() []DefenderStatus {
	return []DefenderStatus{DefenderStatusProtected, DefenderStatusUnknown, DefenderStatusUnprotected}
}

func (v DefenderStatus) IsKnown() bool {
	return arm.IsKnown(v, PossibleDefenderStatusValues())
}

// HostType is the type of host for Azure Arc SQL Server.
type HostType string

const (
	HostTypeAWSKubernetesService      HostType = "AWS Kubernetes Service"
	HostTypeAWSVMWareVirtualMachine   HostType = "AWS VMWare Virtual Machine"
	HostTypeAWSVirtualMachine         HostType = "AWS Virtual Machine"
	HostTypeAzureKubernetesService    HostType = "Azure Kubernetes Service"
	HostTypeAzureVMWareVirtualMachine HostType = "Azure VMWare Virtual Machine"
	HostTypeAzureVirtualMachine       HostType = "Azure Virtual Machine"
	HostTypeContainer                 HostType = "Container"
	HostTypeGCPKubernetesService      HostType = "GCP Kubernetes Service"
	HostTypeGCPVMWareVirtualMachine   HostType = "GCP VMWare Virtual Machine"
	HostTypeGCPVirtualMachine         HostType = "GCP Virtual Machine"
	HostTypeOther                     HostType = "Other"
	HostTypePhysicalServer            HostType = "Physical Server"
	HostTypeVirtualMachine            HostType = "Virtual Machine"
)

func PossibleHostTypeValues() []HostType {
	return []HostType{
		HostTypeAWSKubernetesService,
		HostTypeAWSVMWareVirtualMachine,
		HostTypeAWSVirtualMachine,
		HostTypeAzureKubernetesService,
		HostTypeAzureVMWareVirtualMachine,
		HostTypeAzureVirtualMachine,
		HostTypeContainer,
		HostTypeGCPKubernetesService,
		HostTypeGCPVMWareVirtualMachine,
		HostTypeGCPVirtualMachine,
		HostTypeOther,
		HostTypePhysicalServer,
		HostTypeVirtualMachine,
	}
}

func (v HostType) IsKnown() bool {
	return arm.IsKnown(v, PossibleHostTypeValues())
}

// AlwaysOnRole is the role of the SQL Server, based on availability.
type AlwaysOnRole string

const (
	AlwaysOnRoleAvailabilityGroupReplica AlwaysOnRole = "AvailabilityGroupReplica"
	AlwaysOnRoleFailoverClusterInstance  AlwaysOnRole = "FailoverClusterInstance"
	AlwaysOnRoleFailoverClusterNode      AlwaysOnRole = "FailoverClusterNode"
	AlwaysOnRoleNone                     AlwaysOnRole = "None"
)

func PossibleAlwaysOnRoleValues() []AlwaysOnRole {
	return []AlwaysOnRole{
		AlwaysOnRoleAvailabilityGroupReplica,
		AlwaysOnRoleFailoverClusterInstance,
		AlwaysOnRoleFailoverClusterNode,
		AlwaysOnRoleNone,
	}
}

func (v AlwaysOnRole) IsKnown() bool {
	return arm.IsKnown(v, PossibleAlwaysOnRoleValues())
}

// DifferentialBackupHours is the differential backup interval in hours.
type DifferentialBackupHours int32

const (
	DifferentialBackupHoursTwelve     DifferentialBackupHours = 12
	DifferentialBackupHoursTwentyFour DifferentialBackupHours = 24
)

func PossibleDifferentialBackupHoursValues() []DifferentialBackupHours {
	return []DifferentialBackupHours{DifferentialBackupHoursTwelve, DifferentialBackupHoursTwentyFour}
}

// ServiceType indicates if the resource represents a SQL Server engine or a
// SQL Server component service installed on the host.
type ServiceType string

const (
	ServiceTypeEngine ServiceType = "Engine"
	ServiceTypePBIRS  ServiceType = "PBIRS"
	ServiceTypeSSAS   ServiceType = "SSAS"
	ServiceTypeSSIS   ServiceType = "SSIS"
	ServiceTypeSSRS   ServiceType = "SSRS"
)

func PossibleServiceTypeValues() []ServiceType {
	return []ServiceType{ServiceTypeEngine, ServiceTypePBIRS, ServiceTypeSSAS, ServiceTypeSSIS, ServiceTypeSSRS}
}

func (v ServiceType) IsKnown() bool {
	return arm.IsKnown(v, PossibleServiceTypeValues())
}

// AuthenticationMode is the mode of authentication in SqlServer.
type AuthenticationMode string

const (
	AuthenticationModeMixed     AuthenticationMode = "Mixed"
	AuthenticationModeUndefined AuthenticationMode = "Undefined"
	AuthenticationModeWindows   AuthenticationMode = "Windows"
)

func PossibleAuthenticationModeValues() []AuthenticationMode {
	return []AuthenticationMode{AuthenticationModeMixed, AuthenticationModeUndefined, AuthenticationModeWindows}
}

func (v AuthenticationMode) IsKnown() bool {
	return arm.IsKnown(v, PossibleAuthenticationModeValues())
}

// IdentityType is the method used for Entra authentication.
type IdentityType string

const (
	IdentityTypeSystemAssignedManagedIdentity IdentityType = "SystemAssignedManagedIdentity"
	IdentityTypeUserAssignedManagedIdentity   IdentityType = "UserAssignedManagedIdentity"
)

func PossibleIdentityTypeValues() []IdentityType {
	return []IdentityType{IdentityTypeSystemAssignedManagedIdentity, IdentityTypeUserAssignedManagedIdentity}
}

func (v IdentityType) IsKnown() bool {
	return arm.IsKnown(v, PossibleIdentityTypeValues())
}

// DBMEndpointRole is the mirroring role of a database mirroring endpoint.
type DBMEndpointRole string

const (
	DBMEndpointRoleAll     DBMEndpointRole = "ALL"
	DBMEndpointRoleNone    DBMEndpointRole = "NONE"
	DBMEndpointRolePartner DBMEndpointRole = "PARTNER"
	DBMEndpointRoleWitness DBMEndpointRole = "WITNESS"
)

func PossibleDBMEndpointRoleValues() []DBMEndpointRole {
	return []DBMEndpointRole{DBMEndpointRoleAll, DBMEndpointRoleNone, DBMEndpointRolePartner, DBMEndpointRoleWitness}
}

func (v DBMEndpointRole) IsKnown() bool {
	return arm.IsKnown(v, PossibleDBMEndpointRoleValues())
}

// ConnectionAuth is the type of connection authentication required for
// connections to a database mirroring endpoint.
type ConnectionAuth string

const (
	ConnectionAuthCertificate                 ConnectionAuth = "Certificate"
	ConnectionAuthCertificateWindowsKerberos  ConnectionAuth = "Certificate_Windows_Kerberos"
	ConnectionAuthCertificateWindowsNTLM      ConnectionAuth = "Certificate_Windows_NTLM"
	ConnectionAuthCertificateWindowsNegotiate ConnectionAuth = "Certificate_Windows_Negotiate"
	ConnectionAuthWindowsKerberos             ConnectionAuth = "Windows_Kerberos"
	ConnectionAuthWindowsKerberosCertificate  ConnectionAuth = "Windows_Kerberos_Certificate"
	ConnectionAuthWindowsNTLM                 ConnectionAuth = "Windows_NTLM"
	ConnectionAuthWindowsNTLMCertificate      ConnectionAuth = "Windows_NTLM_Certificate"
	ConnectionAuthWindowsNegotiate            ConnectionAuth = "Windows_Negotiate"
	ConnectionAuthWindowsNegotiateCertificate ConnectionAuth = "Windows_Negotiate_Certificate"
)

func PossibleConnectionAuthValues() []ConnectionAuth {
	return []ConnectionAuth{
		ConnectionAuthCertificate,
		ConnectionAuthCertificateWindowsKerberos,
		ConnectionAuthCertificateWindowsNTLM,
		ConnectionAuthCertificateWindowsNegotiate,
		ConnectionAuthWindowsKerberos,
		ConnectionAuthWindowsKerberosCertificate,
		ConnectionAuthWindowsNTLM,
		ConnectionAuthWindowsNTLMCertificate,
		ConnectionAuthWindowsNegotiate,
		ConnectionAuthWindowsNegotiateCertificate,
	}
}

func (v ConnectionAuth) IsKnown() bool {
	return arm.IsKnown(v, PossibleConnectionAuthValues())
}

// UsesCertificate reports whether the authentication mode involves a
// certificate, and so requires a certificate name.
func (v ConnectionAuth) UsesCertificate() bool {
	switch v {
	case ConnectionAuthCertificate,
		ConnectionAuthCertificateWindowsKerberos,
		ConnectionAuthCertificateWindowsNTLM,
		ConnectionAuthCertificateWindowsNegotiate,
		ConnectionAuthWindowsKerberosCertificate,
		ConnectionAuthWindowsNTLMCertificate,
		ConnectionAuthWindowsNegotiateCertificate:
		return true
	}
	return false
}

// EncryptionAlgorithm is the encryption algorithm(s) used by a database
// mirroring endpoint. The wire values list the algorithms in order of
// preference.
type EncryptionAlgorithm string

const (
	EncryptionAlgorithmAES        EncryptionAlgorithm = "AES"
	EncryptionAlgorithmAESRC4     EncryptionAlgorithm = "AES, RC4"
	EncryptionAlgorithmNONE       EncryptionAlgorithm = "NONE"
	EncryptionAlgorithmNONEAES    EncryptionAlgorithm = "NONE, AES"
	EncryptionAlgorithmNONEAESRC4 EncryptionAlgorithm = "NONE, AES, RC4"
	EncryptionAlgorithmNONERC4    EncryptionAlgorithm = "NONE, RC4"
	EncryptionAlgorithmNONERC4AES EncryptionAlgorithm = "NONE, RC4, AES"
	EncryptionAlgorithmRC4        EncryptionAlgorithm = "RC4"
	EncryptionAlgorithmRC4AES     EncryptionAlgorithm = "RC4, AES"
)

func PossibleEncryptionAlgorithmValues() []EncryptionAlgorithm {
	return []EncryptionAlgorithm{
		EncryptionAlgorithmAES,
		EncryptionAlgorithmAESRC4,
		EncryptionAlgorithmNONE,
		EncryptionAlgorithmNONEAES,
		EncryptionAlgorithmNONEAESRC4,
		EncryptionAlgorithmNONERC4,
		EncryptionAlgorithmNONERC4AES,
		EncryptionAlgorithmRC4,
		EncryptionAlgorithmRC4AES,
	}
}

func (v EncryptionAlgorithm) IsKnown() bool {
	return arm.IsKnown(v, PossibleEncryptionAlgorithmValues())
}
