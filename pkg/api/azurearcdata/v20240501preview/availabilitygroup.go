package v20240501preview

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-arc-models/pkg/api/arm"
)

// SqlServerAvailabilityGroupResource is an Arc-enabled SQL Server
// availability group, a child of a SQL Server instance.
type SqlServerAvailabilityGroupResource struct {
	arm.TrackedResource

	Properties *SqlServerAvailabilityGroupResourceProperties `json:"properties,omitempty"`
}

// SqlServerAvailabilityGroupList is a page of availability groups.
type SqlServerAvailabilityGroupList = arm.List[*SqlServerAvailabilityGroupResource]

// SqlServerAvailabilityGroupResourceProperties describes an availability
// group.
type SqlServerAvailabilityGroupResourceProperties struct {
	// ID GUID of the availability group. Read only.
	AvailabilityGroupID *string `json:"availabilityGroupId,omitempty"`

	// The SQL server name. Read only.
	ServerName *string `json:"serverName,omitempty"`

	// The SQL Server Instance name. Read only.
	InstanceName *string `json:"instanceName,omitempty"`

	// Timestamp for when the data was collected from the client machine.
	// Read only.
	CollectionTimestamp *string `json:"collectionTimestamp,omitempty"`

	// Availability Group Info
	Info *AvailabilityGroupInfo `json:"info,omitempty"`

	// A list of Availability Group Replicas.
	Replicas *AvailabilityGroupReplicaList `json:"replicas,omitempty"`

	// A list of Availability Group Database Replicas.
	Databases *AvailabilityGroupDatabaseReplicaList `json:"databases,omitempty"`

	// The provisioning state of the Arc-enabled SQL Server availability group
	// resource. Read only.
	ProvisioningState *ProvisioningState `json:"provisioningState,omitempty"`
}

// SqlServerAvailabilityGroupUpdate is the body of a PATCH request on an
// availability group.
type SqlServerAvailabilityGroupUpdate struct {
	Tags       map[string]*string                            `json:"tags,omitzero"`
	Properties *SqlServerAvailabilityGroupResourceProperties `json:"properties,omitempty"`
}

// AvailabilityGroupReplicaList is the nested page of replicas carried by an
// availability group.
type AvailabilityGroupReplicaList = arm.List[*SqlAvailabilityGroupReplicaResourceProperties]

// AvailabilityGroupDatabaseReplicaList is the nested page of database
// replicas carried by an availability group.
type AvailabilityGroupDatabaseReplicaList = arm.List[*SqlAvailabilityGroupDatabaseReplicaResourceProperties]

// AvailabilityGroupInfo holds the availability group level settings.
type AvailabilityGroupInfo struct {
	FailureConditionLevel                   *int32                                          `json:"failureConditionLevel,omitempty"`
	HealthCheckTimeout                      *int32                                          `json:"healthCheckTimeout,omitempty"`
	AutomatedBackupPreferenceDescription    *string                                         `json:"automatedBackupPreferenceDescription,omitempty"`
	Version                                 *int32                                          `json:"version,omitempty"`
	BasicFeatures                           *bool                                           `json:"basicFeatures,omitempty"`
	DtcSupport                              *bool                                           `json:"dtcSupport,omitempty"`
	DbFailover                              *bool                                           `json:"dbFailover,omitempty"`
	IsDistributed                           *bool                                           `json:"isDistributed,omitempty"`
	ClusterTypeDesc                         *string                                         `json:"clusterTypeDesc,omitempty"`
	RequiredSynchronizedSecondariesToCommit *int32                                          `json:"requiredSynchronizedSecondariesToCommit,omitempty"`
	IsContained                             *bool                                           `json:"isContained,omitempty"`
	PrimaryRecoveryHealthDesc               *string                                         `json:"primaryRecoveryHealthDesc,omitempty"`
	SecondaryRecoveryHealthDesc             *string                                         `json:"secondaryRecoveryHealthDesc,omitempty"`
	SynchronizationHealthDesc               *string                                         `json:"synchronizationHealthDesc,omitempty"`
	ReplicationPartnerType                  *string                                         `json:"replicationPartnerType,omitempty"`
	Listener                                *SqlAvailabilityGroupStaticIPListenerProperties `json:"listener,omitempty"`
}

// SqlAvailabilityGroupStaticIPListenerProperties describes an availability
// group listener with static IP addresses.
type SqlAvailabilityGroupStaticIPListenerProperties struct {
	DNSName               *string                                                    `json:"dnsName,omitempty"`
	IPV4AddressesAndMasks []*SqlAvailabilityGroupIPV4AddressesAndMasksPropertiesItem `json:"ipV4AddressesAndMasks,omitzero"`
	Port                  *int32                                                     `json:"port,omitempty"`
}

type SqlAvailabilityGroupIPV4AddressesAndMasksPropertiesItem struct {
	IPAddress *string `json:"ipAddress,omitempty"`
	Mask      *string `json:"mask,omitempty"`
}

// SqlAvailabilityGroupReplicaResourceProperties describes one replica of an
// availability group.
type SqlAvailabilityGroupReplicaResourceProperties struct {
	// ID GUID of the availability group. Read only.
	ReplicaID *string `json:"replicaId,omitempty"`

	// the replica name.
	ReplicaName *string `json:"replicaName,omitempty"`

	// Resource id of this replica. This is required for a distributed
	// availability group, in which case it describes the location of the
	// availability group that hosts one replica in the DAG. In a non
	// distributed availability group this field is optional but can be used
	// to store the Azure resource id for AG.
	ReplicaResourceID *string `json:"replicaResourceId,omitempty"`

	// null
	Configure *AvailabilityGroupConfigure `json:"configure,omitempty"`

	// null
	State *AvailabilityGroupState `json:"state,omitempty"`
}

// AvailabilityGroupConfigure is the replica configuration as reported by
// the server.
type AvailabilityGroupConfigure struct {
	// Name of the mirroring endpoint URL
	EndpointName *string `json:"endpointName,omitempty"`

	// Mirroring endpoint URL of availability group replica
	EndpointURL *string `json:"endpointUrl,omitempty"`

	// Permitted authentication modes for the mirroring endpoint.
	EndpointAuthenticationMode *ConnectionAuth `json:"endpointAuthenticationMode,omitempty"`

	// Name of certificate to use for authentication. Required if any
	// CERTIFICATE authentication modes are specified.
	CertificateName *string `json:"certificateName,omitempty"`

	// The login which will connect to the mirroring endpoint.
	EndpointConnectLogin *string `json:"endpointConnectLogin,omitempty"`

	// Property that determines whether a given availability replica can run
	// in synchronous-commit mode
	AvailabilityMode *AvailabilityModeDescription `json:"availabilityMode,omitempty"`

	// The Availability Synchronization mode of the availability group
	// replica. Read only.
	AvailabilityModeDesc *string `json:"availabilityModeDesc,omitempty"`

	// The failover mode of the availability group replica.
	FailoverMode *FailoverModeDescription `json:"failoverMode,omitempty"`

	// The failover mode of the availability group replica. Read only.
	FailoverModeDesc *string `json:"failoverModeDesc,omitempty"`

	// The time-out period of availability group session replica, in
	// seconds.
	SessionTimeout *int32 `json:"sessionTimeout,omitempty"`

	// Whether the primary replica should allow all connections or only READ
	// WRITE connections (disallowing ReadOnly connections)
	PrimaryAllowConnections *PrimaryAllowConnections `json:"primaryAllowConnections,omitempty"`

	// Whether the availability allows all connections or only read-write
	// connections. Read only.
	PrimaryRoleAllowConnectionsDesc *string `json:"primaryRoleAllowConnectionsDesc,omitempty"`

	// Whether the secondary replica should allow all connections, no
	// connections, or only ReadOnly connections.
	SecondaryAllowConnections *SecondaryAllowConnections `json:"secondaryAllowConnections,omitempty"`

	// Whether an availability replica that is performing the secondary role
	// (that is, a secondary replica) can accept connections from clients.
	// Read only.
	SecondaryRoleAllowConnectionsDesc *string `json:"secondaryRoleAllowConnectionsDesc,omitempty"`

	// Date that the replica was created. Read only.
	ReplicaCreateDate *string `json:"replicaCreateDate,omitempty"`

	// Date that the replica was modified. Read only.
	ReplicaModifyDate *string `json:"replicaModifyDate,omitempty"`

	// Represents the user-specified priority for performing backups on this
	// replica relative to the other replicas in the same availability group.
	BackupPriority *int32 `json:"backupPriority,omitempty"`

	// Connectivity endpoint (URL) of the read only availability replica.
	ReadOnlyRoutingURL *string `json:"readOnlyRoutingUrl,omitempty"`

	// Connectivity endpoint (URL) of the read write availability replica.
	ReadWriteRoutingURL *string `json:"readWriteRoutingUrl,omitempty"`

	// Specifies how the secondary replica will be initially seeded.
	SeedingMode *SeedingMode `json:"seedingMode,omitempty"`

	// Describes seeding mode. Read only.
	SeedingModeDesc *string `json:"seedingModeDesc,omitempty"`
}

// AvailabilityGroupState is the replica state as reported by the server.
type AvailabilityGroupState struct {
	AvailabilityGroupReplicaRole     *string `json:"availabilityGroupReplicaRole,omitempty"`
	OperationalStateDescription      *string `json:"operationalStateDescription,omitempty"`
	RecoveryHealthDescription        *string `json:"recoveryHealthDescription,omitempty"`
	SynchronizationHealthDescription *string `json:"synchronizationHealthDescription,omitempty"`
	ConnectedStateDescription        *string `json:"connectedStateDescription,omitempty"`
	LastConnectErrorDescription      *string `json:"lastConnectErrorDescription,omitempty"`
	LastConnectErrorTimestamp        *string `json:"lastConnectErrorTimestamp,omitempty"`
}

// SqlAvailabilityGroupDatabaseReplicaResourceProperties describes one
// database replica of an availability group.
type SqlAvailabilityGroupDatabaseReplicaResourceProperties struct {
	// the database name.
	DatabaseName *string `json:"databaseName,omitempty"`

	// the database replica name. Read only.
	ReplicaName *string `json:"replicaName,omitempty"`

	// Whether the availability database is local. Read only.
	IsLocal *bool `json:"isLocal,omitempty"`

	// Returns 1 if the replica is primary, or 0 if it is a secondary
	// replica. Read only.
	IsPrimaryReplica *bool `json:"isPrimaryReplica,omitempty"`

	// Description of the data-movement state. Read only.
	SynchronizationStateDescription *string `json:"synchronizationStateDescription,omitempty"`

	// Whether this replica is transaction committer. Read only.
	IsCommitParticipant *bool `json:"isCommitParticipant,omitempty"`

	// Description of the health of database. Read only.
	SynchronizationHealthDescription *string `json:"synchronizationHealthDescription,omitempty"`

	// Description of the database state of the availability replica. Read
	// only.
	DatabaseStateDescription *string `json:"databaseStateDescription,omitempty"`

	// Whether this data movement is suspended. Read only.
	IsSuspended *bool `json:"isSuspended,omitempty"`

	// Description of the database suspended state reason. Read only.
	SuspendReasonDescription *string `json:"suspendReasonDescription,omitempty"`
}

// AvailabilityGroupCreateUpdateConfiguration is the body of the
// createAvailabilityGroup action on a SQL Server instance.
type AvailabilityGroupCreateUpdateConfiguration struct {
	// Name of the availability group.
	AvailabilityGroupName *string `json:"availabilityGroupName,omitempty"`

	// List of availability group replicas.
	Replicas []*AvailabilityGroupCreateUpdateReplicaConfiguration `json:"replicas,omitzero"`

	// List of databases to be added to the availability group.
	Databases []*string `json:"databases,omitzero"`

	// Preference for running automated backups.
	AutomatedBackupPreference *AutomatedBackupPreference `json:"automatedBackupPreference,omitempty"`

	// User-defined failure condition level under which an automatic failover
	// must be triggered.
	FailureConditionLevel *FailureConditionLevel `json:"failureConditionLevel,omitempty"`

	// Wait time (in milliseconds) for the sp_server_diagnostics system
	// stored procedure to return server-health information, before the
	// server instance is assumed to be slow or not responding.
	HealthCheckTimeout *int32 `json:"healthCheckTimeout,omitempty"`

	// Specifies whether DB_FAILOVER is enabled.
	DbFailover *DbFailover `json:"dbFailover,omitempty"`

	// Specifies whether DTC support is enabled.
	DtcSupport *DtcSupport `json:"dtcSupport,omitempty"`

	// The number of secondary replicas that must be in a synchronized state
	// for a commit to complete.
	RequiredSynchronizedSecondariesToCommit *int32 `json:"requiredSynchronizedSecondariesToCommit,omitempty"`

	// Set to WSFC when availability group is on a failover cluster instance
	// on a Windows Server failover cluster. Set to NONE when availability
	// group not using WSFC for cluster coordination.
	ClusterType *ClusterType `json:"clusterType,omitempty"`

	// The listener for the sql server availability group
	Listener *SqlAvailabilityGroupStaticIPListenerProperties `json:"listener,omitempty"`
}

// AvailabilityGroupCreateUpdateReplicaConfiguration is the configuration
// of one replica in a createAvailabilityGroup request.
type AvailabilityGroupCreateUpdateReplicaConfiguration struct {
	// The Azure resource identifier for the Sql Server Instance hosting the
	// availability group replica.
	ServerInstance *string `json:"serverInstance,omitempty"`

	// Name of the database mirroring endpoint URL for the availability
	// group replica
	EndpointName *string `json:"endpointName,omitempty"`

	// Database mirroring endpoint URL of availability group replica
	EndpointURL *string `json:"endpointUrl,omitempty"`

	// Permitted authentication modes for the mirroring endpoint.
	EndpointAuthenticationMode *ConnectionAuth `json:"endpointAuthenticationMode,omitempty"`

	// Name of certificate to use for authentication. Required if any
	// CERTIFICATE authentication modes are specified.
	CertificateName *string `json:"certificateName,omitempty"`

	// The login which will connect to the mirroring endpoint.
	EndpointConnectLogin *string `json:"endpointConnectLogin,omitempty"`

	// Property that determines whether a given availability replica can run
	// in synchronous-commit mode
	AvailabilityMode *AvailabilityModeDescription `json:"availabilityMode,omitempty"`

	// Property to set the failover mode of the availability group replica
	FailoverMode *FailoverModeDescription `json:"failoverMode,omitempty"`

	// Specifies how the secondary replica will be initially seeded.
	SeedingMode *SeedingMode `json:"seedingMode,omitempty"`

	// Represents the user-specified priority for performing backups on this
	// replica relative to the other replicas in the same availability group.
	BackupPriority *int32 `json:"backupPriority,omitempty"`

	// Whether the secondary replica should allow all connections, no
	// connections, or only ReadOnly connections.
	SecondaryRoleAllowConnections *SecondaryAllowConnections `json:"secondaryRoleAllowConnections,omitempty"`

	// Connectivity endpoint (URL) of the read only availability replica.
	SecondaryRoleReadOnlyRoutingURL *string `json:"secondaryRoleReadOnlyRoutingUrl,omitempty"`

	// Whether the primary replica should allow all connections or only READ
	// WRITE connections (disallowing ReadOnly connections)
	PrimaryRoleAllowConnections *PrimaryAllowConnections `json:"primaryRoleAllowConnections,omitempty"`

	// List of read only routing URLs.
	PrimaryRoleReadOnlyRoutingList []*string `json:"primaryRoleReadOnlyRoutingList,omitzero"`

	// The time-out period of availability group session replica, in
	// seconds.
	SessionTimeout *int32 `json:"sessionTimeout,omitempty"`
}

// AvailabilityModeDescription determines whether a replica can run in
// synchronous-commit mode.
type AvailabilityModeDescription string

const (
	AvailabilityModeDescriptionAsynchronousCommit AvailabilityModeDescription = "ASYNCHRONOUS_COMMIT"
	AvailabilityModeDescriptionConfigurationOnly  AvailabilityModeDescription = "CONFIGURATION_ONLY"
	AvailabilityModeDescriptionSynchronousCommit  AvailabilityModeDescription = "SYNCHRONOUS_COMMIT"
)

func PossibleAvailabilityModeDescriptionValues() []AvailabilityModeDescription {
	return []AvailabilityModeDescription{
		AvailabilityModeDescriptionAsynchronousCommit,
		AvailabilityModeDescriptionConfigurationOnly,
		AvailabilityModeDescriptionSynchronousCommit,
	}
}

func (v AvailabilityModeDescription) IsKnown() bool {
	return arm.IsKnown(v, PossibleAvailabilityModeDescriptionValues())
}

// FailoverModeDescription is the failover mode of an availability group
// replica. When absent the replica fails over manually.
type FailoverModeDescription string

const (
	FailoverModeDescriptionAutomatic FailoverModeDescription = "AUTOMATIC"
	FailoverModeDescriptionExternal  FailoverModeDescription = "EXTERNAL"
	FailoverModeDescriptionManual    FailoverModeDescription = "MANUAL"
	FailoverModeDescriptionNone      FailoverModeDescription = "NONE"
)

// DefaultFailoverModeDescription applies when failoverMode is absent.
const DefaultFailoverModeDescription = FailoverModeDescriptionManual

func PossibleFailoverModeDescriptionValues() []FailoverModeDescription {
	return []FailoverModeDescription{
		FailoverModeDescriptionAutomatic,
		FailoverModeDescriptionExternal,
		FailoverModeDescriptionManual,
		FailoverModeDescriptionNone,
	}
}

func (v FailoverModeDescription) IsKnown() bool {
	return arm.IsKnown(v, PossibleFailoverModeDescriptionValues())
}

// PrimaryAllowConnections controls which connections the primary replica
// accepts.
type PrimaryAllowConnections string

const (
	PrimaryAllowConnectionsAll       PrimaryAllowConnections = "ALL"
	PrimaryAllowConnectionsReadWrite PrimaryAllowConnections = "READ_WRITE"
)

func PossiblePrimaryAllowConnectionsValues() []PrimaryAllowConnections {
	return []PrimaryAllowConnections{PrimaryAllowConnectionsAll, PrimaryAllowConnectionsReadWrite}
}

func (v PrimaryAllowConnections) IsKnown() bool {
	return arm.IsKnown(v, PossiblePrimaryAllowConnectionsValues())
}

// SecondaryAllowConnections controls which connections a secondary replica
// accepts.
type SecondaryAllowConnections string

const (
	SecondaryAllowConnectionsAll      SecondaryAllowConnections = "ALL"
	SecondaryAllowConnectionsNo       SecondaryAllowConnections = "NO"
	SecondaryAllowConnectionsReadOnly SecondaryAllowConnections = "READ_ONLY"
)

func PossibleSecondaryAllowConnectionsValues() []SecondaryAllowConnections {
	return []SecondaryAllowConnections{
		SecondaryAllowConnectionsAll,
		SecondaryAllowConnectionsNo,
		SecondaryAllowConnectionsReadOnly,
	}
}

func (v SecondaryAllowConnections) IsKnown() bool {
	return arm.IsKnown(v, PossibleSecondaryAllowConnectionsValues())
}

// SeedingMode specifies how a secondary replica is initially seeded.
type SeedingMode string

const (
	SeedingModeAutomatic SeedingMode = "AUTOMATIC"
	SeedingModeManual    SeedingMode = "MANUAL"
)

func PossibleSeedingModeValues() []SeedingMode {
	return []SeedingMode{SeedingModeAutomatic, SeedingModeManual}
}

func (v SeedingMode) IsKnown() bool {
	return arm.IsKnown(v, PossibleSeedingModeValues())
}

// AutomatedBackupPreference is the preference for running automated
// backups.
type AutomatedBackupPreference string

const (
	AutomatedBackupPreferenceNone          AutomatedBackupPreference = "NONE"
	AutomatedBackupPreferencePrimary       AutomatedBackupPreference = "PRIMARY"
	AutomatedBackupPreferenceSecondary     AutomatedBackupPreference = "SECONDARY"
	AutomatedBackupPreferenceSecondaryOnly AutomatedBackupPreference = "SECONDARY_ONLY"
)

func PossibleAutomatedBackupPreferenceValues() []AutomatedBackupPreference {
	return []AutomatedBackupPreference{
		AutomatedBackupPreferenceNone,
		AutomatedBackupPreferencePrimary,
		AutomatedBackupPreferenceSecondary,
		AutomatedBackupPreferenceSecondaryOnly,
	}
}

func (v AutomatedBackupPreference) IsKnown() bool {
	return arm.IsKnown(v, PossibleAutomatedBackupPreferenceValues())
}

// FailureConditionLevel is the failure condition level under which an
// automatic failover is triggered. It is carried on the wire as a number.
type FailureConditionLevel int32

const (
	FailureConditionLevelOne   FailureConditionLevel = 1
	FailureConditionLevelTwo   FailureConditionLevel = 2
	FailureConditionLevelThree FailureConditionLevel = 3
	FailureConditionLevelFour  FailureConditionLevel = 4
	FailureConditionLevelFive  FailureConditionLevel = 5
)

func PossibleFailureConditionLevelValues() []FailureConditionLevel {
	return []FailureConditionLevel{
		FailureConditionLevelOne,
		FailureConditionLevelTwo,
		FailureConditionLevelThree,
		FailureConditionLevelFour,
		FailureConditionLevelFive,
	}
}

// DbFailover specifies whether DB_FAILOVER is enabled.
type DbFailover string

const (
	DbFailoverOFF DbFailover = "OFF"
	DbFailoverON  DbFailover = "ON"
)

func PossibleDbFailoverValues() []DbFailover {
	return []DbFailover{DbFailoverOFF, DbFailoverON}
}

func (v DbFailover) IsKnown() bool {
	return arm.IsKnown(v, PossibleDbFailoverValues())
}

// DtcSupport specifies whether DTC support is enabled.
type DtcSupport string

const (
	DtcSupportNONE  DtcSupport = "NONE"
	DtcSupportPERDB DtcSupport = "PER_DB"
)

func PossibleDtcSupportValues() []DtcSupport {
	return []DtcSupport{DtcSupportNONE, DtcSupportPERDB}
}

func (v DtcSupport) IsKnown() bool {
	return arm.IsKnown(v, PossibleDtcSupportValues())
}

// ClusterType is the cluster coordination of an availability group.
type ClusterType string

const (
	ClusterTypeNONE ClusterType = "NONE"
	ClusterTypeWSFC ClusterType = "WSFC"
)

func PossibleClusterTypeValues() []ClusterType {
	return []ClusterType{ClusterTypeNONE, ClusterTypeWSFC}
}

func (v ClusterType) IsKnown() bool {
	return arm.IsKnown(v, PossibleClusterTypeValues())
}
