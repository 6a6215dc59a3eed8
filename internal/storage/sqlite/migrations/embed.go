package migrations

import "embed"

// FS contains embedded SQLite migrations for objectives storage.
//
//go:embed *.sql
var FS embed.FS
