// Package client talks to the gallery backend.
//
// # Overview
//
// The package provides:
//  1. The Client interface, the REST contract of the backend: image listing
//     and upload, named albums, popular tags, the authorization-code
//     exchange and account sign-up.
//  2. HTTPClient, its net/http implementation. Requests are authorized by
//     a transport that picks the bearer token by path (identity token for
//     /api/, access token for /auth/) and tags every call with an
//     X-Request-ID. Listings are cached and invalidated by mutations.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): the SQLite
//     database of the CLI with embedded goose migrations.
//
// # Error Handling
//
// Transport failures, timeouts and 5xx answers map to ErrUnavailable;
// 401/403 map to ErrUnauthorized; 404 maps to ErrNotFound. Every other
// non-2xx answer is an *APIError carrying the backend message.
package client
