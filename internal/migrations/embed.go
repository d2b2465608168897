// Package migrations embeds the goose SQL migrations for the vault store.
// Migrations are additive only: upgrades add tables or columns, never drop
// or rewrite existing data.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
