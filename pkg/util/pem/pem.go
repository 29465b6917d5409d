package pem

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
)

type Encodable interface {
	*x509.Certificate | *x509.CertificateRequest
}

// ParseFirstCertificate returns the first CERTIFICATE block in b, skipping
// blocks of other types.
func ParseFirstCertificate(b []byte) (*x509.Certificate, error) {
	for {
		var block *pem.Block
		block, b = pem.Decode(b)
		if block == nil {
			break
		}

		if block.Type != "CERTIFICATE" {
			continue
		}

		return x509.ParseCertificate(block.Bytes)
	}

	return nil, errors.New("unable to find certificate")
}

func Encode[V Encodable](inputs ...V) (r []byte) {
	for _, i := range inputs {
		var block *pem.Block

		switch t := any(i).(type) {
		case *x509.Certificate:
			block = &pem.Block{Type: "CERTIFICATE", Bytes: t.Raw}
		case *x509.CertificateRequest:
			block = &pem.Block{Type: "CERTIFICATE REQUEST", Bytes: t.Raw}
		}

		r = append(r, pem.EncodeToMemory(block)...)
	}
	return
}
