// Package common defines shared constants and sentinel errors used across
// client and server layers of the case intake pipeline. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Pipeline errors.
	ErrDecode           = errors.New("not a decodable image")
	ErrMalformedPayload = errors.New("malformed image payload")

	// Submission errors.
	ErrValidation = errors.New("validation error")
	ErrDelivery   = errors.New("delivery failed")
)
