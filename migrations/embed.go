// Package migrations embeds the SQL schema applied with goose.
package migrations

import "embed"

// FS holds all *.sql migration files.
//
//go:embed *.sql
var FS embed.FS
