// Package cli provides the interactive railticket command-line client.
//
// NewApp wires configuration, the encrypted local store, the session, the
// backend client and the auth service. App.Run restores the stored session,
// starts the connectivity watcher and blocks in the REPL until the user exits.
//
// Commands cover registration, sign-in by email, user name or phone, profile
// edits, avatar upload and account deletion.
package cli
