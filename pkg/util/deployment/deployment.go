package deployment

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"

	"github.com/Azure/azure-arc-models/pkg/util/env"
)

// Mode selects how the tooling authenticates against Azure.
type Mode int

const (
	Production Mode = iota
	Development
)

func (m Mode) String() string {
	switch m {
	case Development:
		return "development"
	default:
		return "production"
	}
}

// NewMode reads the mode from ARCMODELS_MODE. Anything other than
// "development" is production.
func NewMode(source env.EnvironmentSource) Mode {
	if strings.EqualFold(source.Getenv("ARCMODELS_MODE"), "development") {
		return Development
	}

	return Production
}
