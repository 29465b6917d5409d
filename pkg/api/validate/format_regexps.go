package validate

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"regexp"
)

// Regular expressions used to validate the format of names and endpoints acceptable by API.
var (
	RxMirroringEndpointURL = regexp.MustCompile(`(?i)^tcp://[-a-z0-9_.]{1,253}:[0-9]{1,5}$`)
	RxDomainNameRFC1123    = regexp.MustCompile(`^` +
		`([a-z0-9]|[a-z0-9][-a-z0-9]{0,61}[a-z0-9])` +
		`(\.([a-z0-9]|[a-z0-9][-a-z0-9]{0,61}[a-z0-9]))*` +
		`$`)
	RxESUKey = regexp.MustCompile(`^[A-Z0-9]{5}(-[A-Z0-9]{5}){4}$`)
)
