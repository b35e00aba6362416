package migrations

import "embed"

// Migrations holds the golang-migrate files for the SQLite schema.
//
//go:embed *.sql
var Migrations embed.FS
