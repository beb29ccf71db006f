// Package migrations embeds the SQL migration files so the migrate CLI and the
// server bootstrap do not depend on the working directory.
package migrations

import "embed"

// FS holds the postgres migrations, read through the iofs source under Dir.
//
//go:embed postgres/*.sql
var FS embed.FS

const Dir = "postgres"
