// Package api contains the client-side gateway to the blogging backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the full operation table: auth (Register/Login/Me), users (lookup,
//     posts, follow/unfollow, profile update), posts (list, fetch, create,
//     update, delete), and the feed.
//  2. A concrete HTTP implementation (see HTTPClient) that builds request
//     URLs against a configurable base address, attaches the stored bearer
//     credential to every call, encodes and decodes JSON bodies, and
//     normalizes backend error payloads into *Error values.
//
// # Error Handling
//
// Transport-level failures (connection refused, DNS, timeouts) are wrapped
// in ErrUnavailable and can be matched with errors.Is. Backend rejections
// (any non-2xx status) become *Error values carrying the HTTP status code
// and a human-readable reason extracted from the response body.
//
// The gateway never retries, never caches, and never batches; each call is
// an independent round trip and the caller owns retry policy, concurrency,
// and cancellation through the supplied context.
package api
