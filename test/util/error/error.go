package error

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
)

// AssertErrorMessage fails t unless err's message is wantMsg. An empty
// wantMsg asserts that err is nil.
func AssertErrorMessage(t *testing.T, err error, wantMsg string) {
	t.Helper()

	switch {
	case err == nil && wantMsg != "":
		t.Errorf("did not get an error, but wanted error %q", wantMsg)
	case err != nil && wantMsg == "":
		t.Errorf("got unexpected error %q", err)
	case err != nil && err.Error() != wantMsg:
		t.Errorf("got error %q, but wanted error %q", err, wantMsg)
	}
}
