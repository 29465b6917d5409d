// stringifying representations of API payloads for debugging and testing
// logging

package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"reflect"
	"strings"

	"github.com/ugorji/go/codec"
)

// SecureString is a string which is hidden in debug representations.
// It is sent on the wire unchanged.
type SecureString string

func (s SecureString) String() string {
	return "[REDACTED]"
}

func newSecretHidingJsonHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{}

	h.SetInterfaceExt(reflect.TypeOf(SecureString("")), 1, secureHidingExt{})
	return h
}

// EncodeJSON returns a JSON representation of i in which every SecureString
// is replaced with "[REDACTED]". It is intended for log output only.
func EncodeJSON(i interface{}) string {
	w := &strings.Builder{}
	enc := codec.NewEncoder(w, newSecretHidingJsonHandle())
	err := enc.Encode(i)
	if err != nil {
		return err.Error()
	}
	return w.String()
}

var _ codec.InterfaceExt = (*secureHidingExt)(nil)

type secureHidingExt struct {
}

func (s secureHidingExt) ConvertExt(v interface{}) interface{} {
	return "[REDACTED]"
}

func (s secureHidingExt) UpdateExt(dest interface{}, v interface{}) {
	panic("cannot be used to decode!")
}
