// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication middleware when resolving the
// session token from the request. Callers can match against them with
// [errors.Is].
var (
	// ErrNoToken is returned when the request carries neither an
	// "Authorization" header nor the session cookie.
	ErrNoToken = errors.New("no session token in request")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrSubjectMismatch is returned when an authenticated request addresses
	// a different user than the one named in the token's subject claim.
	ErrSubjectMismatch = errors.New("request subject does not match token subject")
)
