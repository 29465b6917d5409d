package validate

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"
	"strings"

	azcorearm "github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/gofrs/uuid"

	"github.com/Azure/azure-arc-models/pkg/api"
	"github.com/Azure/azure-arc-models/pkg/api/arm"
	"github.com/Azure/azure-arc-models/pkg/api/util/pointerutils"
)

// Resource validates the envelope of r against the resource ID in the request
// URL. Envelope fields which are unset are not checked, since ARM fills them
// in on PUT. resourceType is the fully qualified type, e.g.
// "Microsoft.HybridCompute/machines/licenseProfiles".
func Resource(resourceID, resourceType string, r *arm.Resource) error {
	rid, err := azcorearm.ParseResourceID(resourceID)
	if err != nil {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidResource, "id", "The resource ID '%s' is invalid.", resourceID)
	}
	if !strings.EqualFold(rid.ResourceType.String(), resourceType) {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidResourceType, "id", "The resource ID '%s' is not of type '%s'.", resourceID, resourceType)
	}

	if r == nil {
		return nil
	}
	if r.ID != nil && !strings.EqualFold(*r.ID, resourceID) {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeMismatchingResourceID, "id", "The provided resource ID '%s' did not match the name in the Url '%s'.", *r.ID, resourceID)
	}
	if r.Name != nil && !strings.EqualFold(*r.Name, rid.Name) {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeMismatchingResourceName, "name", "The provided resource name '%s' did not match the name in the Url '%s'.", *r.Name, rid.Name)
	}
	if r.Type != nil && !strings.EqualFold(*r.Type, resourceType) {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeMismatchingResourceType, "type", "The provided resource type '%s' did not match the name in the Url '%s'.", *r.Type, resourceType)
	}

	return nil
}

// TrackedResource validates the envelope of a tracked resource, including its
// location.
func TrackedResource(location, resourceID, resourceType string, r *arm.TrackedResource) error {
	if r == nil {
		return Resource(resourceID, resourceType, nil)
	}

	err := Resource(resourceID, resourceType, &r.Resource)
	if err != nil {
		return err
	}

	if r.Location == nil || !strings.EqualFold(*r.Location, location) {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "location", "The provided location '%s' is invalid.", pointerutils.FromPtr(r.Location))
	}

	return nil
}

// UUID validates that an optional field holds a UUID.
func UUID(path, what string, v *string) error {
	if v == nil {
		return nil
	}
	if _, err := uuid.FromString(*v); err != nil {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path, "The provided %s '%s' is invalid.", what, *v)
	}
	return nil
}

// ResourceID validates that an optional field holds an ARM resource ID of the
// given type. An empty resourceType accepts any type.
func ResourceID(path, what, resourceType string, v *string) error {
	if v == nil {
		return nil
	}

	rid, err := azcorearm.ParseResourceID(*v)
	if err != nil {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path, "The provided %s '%s' is invalid.", what, *v)
	}
	if resourceType != "" && !strings.EqualFold(rid.ResourceType.String(), resourceType) {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path, "The provided %s '%s' is invalid: must be of type '%s'.", what, *v, resourceType)
	}

	return nil
}

// Range validates that an optional integer field lies within [min, max].
func Range[T ~int32 | ~int64 | ~int](path, what string, v *T, lo, hi T) error {
	if v == nil {
		return nil
	}
	if *v < lo || *v > hi {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path, "The provided %s '%d' is invalid: must be between %d and %d.", what, *v, lo, hi)
	}
	return nil
}

// Required validates that an optional field is set and non-empty.
func Required[T ~string](path, what string, v *T) error {
	if v == nil || *v == "" {
		return api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, path, "The provided %s is invalid: must be set.", what)
	}
	return nil
}
