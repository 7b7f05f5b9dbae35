// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrOperationNotPermitted is returned when a syntactically valid token
	// carries an operation claim that does not match the HTTP method of the
	// request it was presented with.
	ErrOperationNotPermitted = errors.New("token operation does not permit this request")
)
