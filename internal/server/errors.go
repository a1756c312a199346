// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when no HTTP address or
// handler is available.
var errNoServersAreCreated = errors.New("no servers are created")
