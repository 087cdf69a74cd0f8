// Package migrations embeds the goose migrations of the client's local SQLite database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
