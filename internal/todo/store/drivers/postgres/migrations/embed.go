package migrations

import "embed"

// Migrations holds the golang-migrate files for the Postgres schema.
//
//go:embed *.sql
var Migrations embed.FS
