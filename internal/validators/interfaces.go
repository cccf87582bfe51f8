// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input against ordered rule chains.
//
// Each field owns a [Chain] of rules evaluated in order. The first failing
// rule stops its chain, and the messages of all failing chains are returned
// together as [models.ValidationErrors]. Signup credentials and comment
// bodies have their own validators.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
// A nil error means the value passed; a [models.ValidationErrors] lists the
// triggered messages; any other error means the value could not be checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
