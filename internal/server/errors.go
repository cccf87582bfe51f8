// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errListenAndServe      = errors.New("HTTP server ListenAndServe")
	errShutdown            = errors.New("HTTP server Shutdown")
)
