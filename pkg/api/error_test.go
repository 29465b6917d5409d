package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudErrorError(t *testing.T) {
	for _, tt := range []struct {
		name string
		err  *CloudError
		want string
	}{
		{
			name: "no body",
			err:  &CloudError{StatusCode: http.StatusInternalServerError},
			want: "500",
		},
		{
			name: "body",
			err:  NewCloudError(http.StatusBadRequest, CloudErrorCodeInvalidParameter, "properties.billingPlan", "The provided billing plan '%s' is invalid.", "Free"),
			want: "400: InvalidParameter: properties.billingPlan: The provided billing plan 'Free' is invalid.",
		},
		{
			name: "details",
			err: &CloudError{
				StatusCode: http.StatusBadRequest,
				CloudErrorBody: &CloudErrorBody{
					Code:    CloudErrorCodeInvalidRequestContent,
					Message: "Multiple errors.",
					Details: []CloudErrorBody{
						{Code: CloudErrorCodeInvalidParameter, Target: "a", Message: "bad a."},
						{Code: CloudErrorCodeInvalidParameter, Target: "b", Message: "bad b."},
					},
				},
			},
			want: "400: InvalidRequestContent: : Multiple errors. Details: InvalidParameter: a: bad a., InvalidParameter: b: bad b.",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestCloudErrorWireFormat(t *testing.T) {
	err := NewCloudError(http.StatusBadRequest, CloudErrorCodeInvalidParameter, "location", "The provided location '%s' is invalid.", "nowhere")

	b, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	assert.JSONEq(t, `{"error":{"code":"InvalidParameter","message":"The provided location 'nowhere' is invalid.","target":"location"}}`, string(b))

	var decoded CloudError
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, CloudErrorCodeInvalidParameter, decoded.Code)
	assert.Equal(t, 0, decoded.StatusCode)
}
