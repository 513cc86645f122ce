// Package migrations embeds the goose SQL migrations applied at server
// startup when the Postgres store is selected.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
