// Package client contains the HTTP client for the case intake API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the intake backend: Ping, StoreImages, SendNotification and
//     SendTestNotification.
//  2. A concrete HTTP implementation (see IntakeClient) that talks JSON to
//     the server's /api/v1 endpoints and maps response statuses to sentinel
//     errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrRejected.
//
// Concurrency & Contexts
//
// IntakeClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
