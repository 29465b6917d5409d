package validate

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
)

func TestRxMirroringEndpointURL(t *testing.T) {
	for _, tt := range []struct {
		value string
		want  bool
	}{
		{
			value: "tcp://sql1.contoso.com:5022",
			want:  true,
		},
		{
			value: "TCP://10.0.0.4:5022",
			want:  true,
		},
		{
			value: "https://sql1.contoso.com:5022",
		},
		{
			value: "tcp://sql1.contoso.com",
		},
		{
			value: "tcp://:5022",
		},
	} {
		t.Run(tt.value, func(t *testing.T) {
			got := RxMirroringEndpointURL.MatchString(tt.value)
			if got != tt.want {
				t.Error(got)
			}
		})
	}
}

func TestRxDomainNameRFC1123(t *testing.T) {
	for _, tt := range []struct {
		value string
		want  bool
	}{
		{
			value: "fog1",
			want:  true,
		},
		{
			value: "fog-1.contoso.com",
			want:  true,
		},
		{
			value: "-fog",
		},
		{
			value: "Fog1",
		},
	} {
		t.Run(tt.value, func(t *testing.T) {
			got := RxDomainNameRFC1123.MatchString(tt.value)
			if got != tt.want {
				t.Error(got)
			}
		})
	}
}

func TestRxESUKey(t *testing.T) {
	for _, tt := range []struct {
		value string
		want  bool
	}{
		{
			value: "ABCDE-12345-FGHIJ-67890-KLMNO",
			want:  true,
		},
		{
			value: "abcde-12345-fghij-67890-klmno",
		},
		{
			value: "ABCDE-12345-FGHIJ-67890",
		},
	} {
		t.Run(tt.value, func(t *testing.T) {
			got := RxESUKey.MatchString(tt.value)
			if got != tt.want {
				t.Error(got)
			}
		})
	}
}
