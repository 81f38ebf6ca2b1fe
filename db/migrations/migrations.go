// Package migrations embeds the SQL schema of the station catalog.
package migrations

import "embed"

// FS holds the migration files read by golang-migrate through the iofs
// driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
