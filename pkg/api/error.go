package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"
)

// CloudError represents a cloud error.
type CloudError struct {
	// The status code.
	StatusCode int `json:"-"`

	// An error response from the service.
	*CloudErrorBody `json:"error,omitempty"`
}

func (err *CloudError) Error() string {
	var body string

	if err.CloudErrorBody != nil {
		body = ": " + err.CloudErrorBody.String()
	}

	return fmt.Sprintf("%d%s", err.StatusCode, body)
}

// CloudErrorBody represents the body of a cloud error.
type CloudErrorBody struct {
	// An identifier for the error. Codes are invariant and are intended to be consumed programmatically.
	Code string `json:"code,omitempty"`

	// A message describing the error, intended to be suitable for display in a user interface.
	Message string `json:"message,omitempty"`

	// The target of the particular error. For example, the name of the property in error.
	Target string `json:"target,omitempty"`

	// A list of additional details about the error.
	Details []CloudErrorBody `json:"details,omitempty"`
}

func (b *CloudErrorBody) String() string {
	var details string

	if len(b.Details) > 0 {
		parts := make([]string, 0, len(b.Details))
		for _, d := range b.Details {
			parts = append(parts, d.String())
		}
		details = " Details: " + strings.Join(parts, ", ")
	}

	return fmt.Sprintf("%s: %s: %s%s", b.Code, b.Target, b.Message, details)
}

// CloudErrorCodes
const (
	CloudErrorCodeInternalServerError      = "InternalServerError"
	CloudErrorCodeInvalidParameter         = "InvalidParameter"
	CloudErrorCodeInvalidRequestContent    = "InvalidRequestContent"
	CloudErrorCodeInvalidResource          = "InvalidResource"
	CloudErrorCodeInvalidResourceNamespace = "InvalidResourceNamespace"
	CloudErrorCodeInvalidResourceType      = "InvalidResourceType"
	CloudErrorCodeMismatchingResourceID    = "MismatchingResourceID"
	CloudErrorCodeMismatchingResourceName  = "MismatchingResourceName"
	CloudErrorCodeMismatchingResourceType  = "MismatchingResourceType"
	CloudErrorCodePropertyChangeNotAllowed = "PropertyChangeNotAllowed"
	CloudErrorCodeNotFound                 = "NotFound"
)

// NewCloudError returns a new CloudError
func NewCloudError(statusCode int, code, target, message string, a ...interface{}) *CloudError {
	return &CloudError{
		StatusCode: statusCode,
		CloudErrorBody: &CloudErrorBody{
			Code:    code,
			Message: fmt.Sprintf(message, a...),
			Target:  target,
		},
	}
}
