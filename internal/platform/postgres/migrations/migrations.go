// Package migrations embeds the SQL migrations for the tasks schema so the
// server binary and the integration test helpers apply the same files.
package migrations

import "embed"

// Dir is the directory within FS that holds the migration files.
const Dir = "."

// FS contains every goose migration file.
//
//go:embed *.sql
var FS embed.FS
