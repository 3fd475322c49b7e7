// Package api contains the remote-facing building blocks of the client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     article platform backend: article CRUD, likes, categories, comments,
//     and the user endpoints.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that
//     attaches the bearer credential, unwraps the standard response
//     envelope, normalizes identifiers, and maps failures to sentinel
//     errors. On an auth rejection it clears the session credential as a
//     side effect; that is the only state it mutates.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     for the CLI, wiring the SQLite client database and applying embedded
//     goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors matched with errors.Is
// (ErrUnavailable, ErrUnauthorized); server-side business rejections carry
// the server message as *RemoteError, matched with errors.As. The client
// never retries on its own.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package api
