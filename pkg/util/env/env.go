package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"os"
)

// EnvironmentSource is a wrapper around env calls so we can mock and test.
type EnvironmentSource interface {
	Getenv(key string) string
	LookupEnv(key string) (string, bool)
}

type OsEnv struct{}

func NewOsEnv() OsEnv {
	return OsEnv{}
}

func (OsEnv) Getenv(key string) string {
	return os.Getenv(key)
}

func (OsEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv serves lookups from a fixed map.
type MapEnv map[string]string

func (m MapEnv) Getenv(key string) string {
	return m[key]
}

func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, found := m[key]
	return v, found
}

// ValidateVars returns an error naming the first of keys which is unset.
func ValidateVars(source EnvironmentSource, keys ...string) error {
	for _, key := range keys {
		if _, found := source.LookupEnv(key); !found {
			return fmt.Errorf("environment variable %q unset", key)
		}
	}

	return nil
}
