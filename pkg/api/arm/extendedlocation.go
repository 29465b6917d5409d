package arm

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// ExtendedLocation is the complex type of the extended location.
type ExtendedLocation struct {
	// The name of the extended location.
	Name *string `json:"name,omitempty"`

	// The type of the extended location.
	Type *ExtendedLocationType `json:"type,omitempty"`
}

// ExtendedLocationType is the type of extendedLocation.
type ExtendedLocationType string

const (
	ExtendedLocationTypeCustomLocation ExtendedLocationType = "CustomLocation"
)

func PossibleExtendedLocationTypeValues() []ExtendedLocationType {
	return []ExtendedLocationType{ExtendedLocationTypeCustomLocation}
}

func (v ExtendedLocationType) IsKnown() bool {
	return IsKnown(v, PossibleExtendedLocationTypeValues())
}
