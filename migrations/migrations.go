// Package migrations embeds the schema so the API binary can migrate on start.
package migrations

import "embed"

//go:embed *.up.sql
var FS embed.FS
