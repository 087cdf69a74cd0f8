// Package client contains client-side building blocks for railticket.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the railticket backend: Authenticate, CreateUser, user record
//     reads, updates and deletion, the WatchUser live subscription, identity
//     pre-checks, profile image URLs and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, attaches the session token to account-scoped calls, and
//     maps gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the SQLite file and applies the embedded goose migrations.
//
// # Error Handling
//
// Sign-in failures are answers, not errors of the transport: Authenticate
// returns common.ErrIdentityNotFound or common.ErrWrongPassword. Transport
// conditions are exposed as ErrUnavailable and ErrUnauthorized; throttled
// sign-ins as common.ErrTooManyAttempts. Registration and profile updates
// that collide with another account return *common.DuplicateIdentityError.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and deadlines.
package client
