// Package migrations embeds the SQL migration files into the binary so the
// service can migrate its import-history database without shipping loose
// files alongside it.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
