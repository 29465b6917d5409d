package arm

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
)

// ErrorDetail is the ARM common error detail, as embedded in resource
// properties which report the outcome of an asynchronous operation.
type ErrorDetail struct {
	Code           *string                `json:"code,omitempty"`
	Message        *string                `json:"message,omitempty"`
	Target         *string                `json:"target,omitempty"`
	Details        []*ErrorDetail         `json:"details,omitzero"`
	AdditionalInfo []*ErrorAdditionalInfo `json:"additionalInfo,omitzero"`
}

// ErrorAdditionalInfo is the resource management error additional info. Info
// is kept verbatim.
type ErrorAdditionalInfo struct {
	Type *string         `json:"type,omitempty"`
	Info json.RawMessage `json:"info,omitempty"`
}
