// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request bodies before
// they reach persistence.
//
// Rules are declared as ordered lists per model. Every failing rule
// contributes one message to a [ValidationError], in declaration order, so
// clients receive all problems with a request at once.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
