package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"
	"sort"
	"strings"
)

// StaticValidator validates an external resource payload without reference
// to any other state.
type StaticValidator interface {
	Static(interface{}) error
}

// ResourceType is the set of operations implemented for a resource type in an
// API version
type ResourceType struct {
	// Tracked is set when the resource envelope carries a location.
	Tracked bool

	New             func() interface{}
	NewList         func() interface{}
	SetDefaults     func(interface{})
	StaticValidator func(location, resourceID string) StaticValidator
	Example         func() interface{}
	ExampleList     func() interface{}
}

// Version is a set of resource types implemented by each API version
type Version struct {
	ResourceTypes map[string]*ResourceType
}

// APIs is the map of registered API versions, keyed by resource provider
// namespace and then by API version
var APIs = map[string]map[string]*Version{}

// Register adds an API version for a resource provider namespace. It is
// intended to be called from init() and panics on duplicate registration.
func Register(namespace, apiVersion string, v *Version) {
	if APIs[namespace] == nil {
		APIs[namespace] = map[string]*Version{}
	}
	if _, found := APIs[namespace][apiVersion]; found {
		panic("duplicate registration of " + namespace + " " + apiVersion)
	}
	APIs[namespace][apiVersion] = v
}

// Lookup returns the registered resource type. Namespace and resource type
// matching is case insensitive, as in ARM.
func Lookup(namespace, apiVersion, resourceType string) (*ResourceType, error) {
	for ns, versions := range APIs {
		if !strings.EqualFold(ns, namespace) {
			continue
		}

		v, found := versions[apiVersion]
		if !found {
			break
		}

		for name, rt := range v.ResourceTypes {
			if strings.EqualFold(name, resourceType) {
				return rt, nil
			}
		}

		break
	}

	return nil, NewCloudError(http.StatusBadRequest, CloudErrorCodeInvalidResourceType, "", "The resource type '%s' could not be found in the namespace '%s' for api version '%s'.", resourceType, namespace, apiVersion)
}

// Versions returns the API versions registered for a namespace, sorted.
// Namespace matching is case insensitive.
func Versions(namespace string) []string {
	for ns, versions := range APIs {
		if strings.EqualFold(ns, namespace) {
			return sortedKeys(versions)
		}
	}

	return nil
}

// Each calls f for every registered resource type, in a stable order.
func Each(f func(namespace, apiVersion, resourceType string, rt *ResourceType) error) error {
	for _, ns := range sortedKeys(APIs) {
		for _, apiVersion := range sortedKeys(APIs[ns]) {
			types := APIs[ns][apiVersion].ResourceTypes
			for _, name := range sortedKeys(types) {
				err := f(ns, apiVersion, name, types[name])
				if err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
