package arm

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type colour string

const (
	colourRed  colour = "Red"
	colourBlue colour = "Blue"
)

func (c colour) IsKnown() bool {
	return IsKnown(c, []colour{colourRed, colourBlue})
}

type shapeVariant struct {
	Fill *colour `json:"fill,omitempty"`
}

type shape struct {
	Kind    *string       `json:"kind,omitempty"`
	variant *shapeVariant
}

func (s shape) Variant() interface{} {
	return s.variant
}

type paint struct {
	ProxyResource
	Properties *paintProperties `json:"properties,omitempty"`
}

type paintProperties struct {
	Colour   *colour            `json:"colour,omitempty"`
	Palette  []colour           `json:"palette,omitzero"`
	ByName   map[string]*colour `json:"byName,omitzero"`
	Ignored  *colour            `json:"-"`
	Untagged *colour
	Shapes   []shape            `json:"shapes,omitzero"`
	Raw      json.RawMessage    `json:"raw,omitempty"`
}

func TestIsKnown(t *testing.T) {
	assert.True(t, colourRed.IsKnown())
	assert.False(t, colour("red").IsKnown(), "matching is case sensitive")
	assert.False(t, colour("Green").IsKnown())
	assert.True(t, CreatedByTypeManagedIdentity.IsKnown())
	assert.False(t, CreatedByType("Robot").IsKnown())
}

func TestValue(t *testing.T) {
	blue := colourBlue

	assert.Equal(t, colourRed, Value(nil, colourRed))
	assert.Equal(t, colourBlue, Value(&blue, colourRed))
}

func TestEnumRoundTrip(t *testing.T) {
	for _, wire := range []string{"Red", "Blue", "Green", "red", "NONE, RC4, AES", ""} {
		t.Run(wire, func(t *testing.T) {
			b, err := json.Marshal(wire)
			require.NoError(t, err)

			var c colour
			err = json.Unmarshal(b, &c)
			require.NoError(t, err)
			assert.Equal(t, wire, string(c))

			out, err := json.Marshal(c)
			require.NoError(t, err)
			assert.Equal(t, string(b), string(out))
		})
	}
}

func TestEnumDecodeNonString(t *testing.T) {
	var c colour
	err := json.Unmarshal([]byte(`42`), &c)
	assert.Error(t, err)
}

func TestUnknownValues(t *testing.T) {
	body := `{
		"value": [
			{
				"name": "a",
				"systemData": {"createdByType": "Robot"},
				"properties": {
					"colour": "Red",
					"palette": ["Blue", "Green"],
					"byName": {"z": "Purple", "a": "Blue"},
					"Untagged": "Orange"
				}
			},
			{
				"name": "b",
				"properties": {"colour": "Teal"}
			},
			null
		],
		"nextLink": ""
	}`

	var l List[*paint]
	err := json.Unmarshal([]byte(body), &l)
	require.NoError(t, err)

	got := UnknownValues(&l)
	for _, diff := range deep.Equal(got, []UnknownValue{
		{Path: "value[0].systemData.createdByType", Value: "Robot"},
		{Path: "value[0].properties.palette[1]", Value: "Green"},
		{Path: `value[0].properties.byName["z"]`, Value: "Purple"},
		{Path: "value[0].properties.Untagged", Value: "Orange"},
		{Path: "value[1].properties.colour", Value: "Teal"},
	}) {
		t.Error(diff)
	}
}

func TestUnknownValuesWalksVariants(t *testing.T) {
	grey := colour("Grey")
	p := &paintProperties{
		Shapes: []shape{
			{variant: &shapeVariant{Fill: &grey}},
			{},
		},
	}

	assert.Equal(t, []UnknownValue{{Path: "shapes[0].fill", Value: "Grey"}}, UnknownValues(p))
}

func TestUnknownValuesNil(t *testing.T) {
	assert.Empty(t, UnknownValues(nil))
	assert.Empty(t, UnknownValues((*paint)(nil)))
}

func TestUnknownValueString(t *testing.T) {
	assert.Equal(t, `properties.colour="Teal"`, UnknownValue{Path: "properties.colour", Value: "Teal"}.String())
}
