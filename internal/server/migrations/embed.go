// Package migrations embeds the SQL migration files applied by goose on
// server start.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
