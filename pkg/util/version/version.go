package version

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var rxAPIVersion = regexp.MustCompile(`^([0-9]{4}-[0-9]{2}-[0-9]{2})(-[a-z]+)?$`)

// APIVersion is an ARM api-version: a date, optionally followed by a suffix
// such as "-preview".
type APIVersion struct {
	V      [3]uint32
	Suffix string
}

// NewAPIVersion returns an APIVersion from year, month and day.
func NewAPIVersion(vs ...uint32) *APIVersion {
	v := &APIVersion{}

	copy(v.V[:], vs)

	return v
}

// ParseAPIVersion parses an api-version string, e.g. "2024-05-01-preview".
func ParseAPIVersion(vsn string) (*APIVersion, error) {
	m := rxAPIVersion.FindStringSubmatch(strings.TrimSpace(vsn))
	if m == nil {
		return nil, fmt.Errorf("could not parse api version %q", vsn)
	}

	t, err := time.Parse(time.DateOnly, m[1])
	if err != nil {
		return nil, fmt.Errorf("could not parse api version %q", vsn)
	}

	v := NewAPIVersion(uint32(t.Year()), uint32(t.Month()), uint32(t.Day()))
	v.Suffix = m[2]

	return v, nil
}

func (v *APIVersion) String() string {
	return fmt.Sprintf("%04d-%02d-%02d%s", v.V[0], v.V[1], v.V[2], v.Suffix)
}

// Lt returns true if v is older than w. On the same date a suffixed version
// is older than a stable one.
func (v *APIVersion) Lt(w *APIVersion) bool {
	for i := 0; i < 3; i++ {
		switch {
		case v.V[i] < w.V[i]:
			return true
		case v.V[i] > w.V[i]:
			return false
		}
	}

	switch {
	case v.Suffix == w.Suffix:
		return false
	case v.Suffix == "":
		return false
	case w.Suffix == "":
		return true
	}

	return v.Suffix < w.Suffix
}

func (v *APIVersion) Eq(w *APIVersion) bool {
	return v.V == w.V && v.Suffix == w.Suffix
}

// Latest returns the newest of versions, as written.
func Latest(versions []string) (string, error) {
	var latest string
	var latestV *APIVersion

	for _, vsn := range versions {
		v, err := ParseAPIVersion(vsn)
		if err != nil {
			return "", err
		}

		if latestV == nil || latestV.Lt(v) {
			latest, latestV = vsn, v
		}
	}

	if latestV == nil {
		return "", fmt.Errorf("no api versions")
	}

	return latest, nil
}
