// Package common contains shared constants and sentinel errors used across
// railticket components.
package common

// SessionTokenKey is the local storage key holding the encrypted session token.
const SessionTokenKey = "token"

// EnvPrefix prefixes every environment variable read by railticket binaries.
const EnvPrefix = "RAILTICKET_"

// SessionTokenHeaderName is the gRPC metadata key carrying the session token
// on calls that act on the signed-in account.
const SessionTokenHeaderName = "session_token"
