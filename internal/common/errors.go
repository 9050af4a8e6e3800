// Package common defines shared sentinel errors and small utilities used
// across the client layers. Callers should use errors.Is to match the
// sentinel values.
package common

import "errors"

var (
	// ErrNotFound marks a direct resource lookup (post, profile) that the
	// backend answered with 404. Callers route this to the message view
	// rather than showing an inline error.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks a 401-class response. No automatic retry or
	// token refresh happens; the user is expected to log in again.
	ErrUnauthorized = errors.New("unauthorized")
)
