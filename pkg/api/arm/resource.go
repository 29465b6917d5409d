package arm

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/go-autorest/autorest/date"
)

// Resource holds the fields every ARM resource envelope carries.
type Resource struct {
	// Fully qualified resource ID for the resource.
	ID *string `json:"id,omitempty"`

	// The name of the resource.
	Name *string `json:"name,omitempty"`

	// The type of the resource, e.g. "Microsoft.AzureArcData/sqlServerInstances".
	Type *string `json:"type,omitempty"`

	// Metadata pertaining to creation and last modification of the resource.
	SystemData *SystemData `json:"systemData,omitempty"`
}

// TrackedResource is a resource which has a location and tags.
type TrackedResource struct {
	Resource

	Location *string            `json:"location,omitempty"`
	Tags     map[string]*string `json:"tags,omitzero"`
}

// ProxyResource is a resource whose lifecycle is owned by a parent tracked
// resource. It has no location or tags of its own.
type ProxyResource struct {
	Resource
}

// CreatedByType is the type of identity that created or modified a resource.
type CreatedByType string

const (
	CreatedByTypeApplication     CreatedByType = "Application"
	CreatedByTypeKey             CreatedByType = "Key"
	CreatedByTypeManagedIdentity CreatedByType = "ManagedIdentity"
	CreatedByTypeUser            CreatedByType = "User"
)

// PossibleCreatedByTypeValues returns the known values for CreatedByType.
func PossibleCreatedByTypeValues() []CreatedByType {
	return []CreatedByType{
		CreatedByTypeApplication,
		CreatedByTypeKey,
		CreatedByTypeManagedIdentity,
		CreatedByTypeUser,
	}
}

func (v CreatedByType) IsKnown() bool {
	return IsKnown(v, PossibleCreatedByTypeValues())
}

// SystemData metadata pertaining to creation and last modification of the
// resource.
type SystemData struct {
	CreatedBy          *string        `json:"createdBy,omitempty"`
	CreatedByType      *CreatedByType `json:"createdByType,omitempty"`
	CreatedAt          *date.Time     `json:"createdAt,omitempty"`
	LastModifiedBy     *string        `json:"lastModifiedBy,omitempty"`
	LastModifiedByType *CreatedByType `json:"lastModifiedByType,omitempty"`
	LastModifiedAt     *date.Time     `json:"lastModifiedAt,omitempty"`
}
