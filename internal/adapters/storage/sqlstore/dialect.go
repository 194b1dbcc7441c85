package sqlstore

import (
	"strconv"
	"strings"

	"github.com/jsamuelsen11/deal-pipeline/internal/platform/config"
)

// dialect captures the few differences between the supported engines.
type dialect struct {
	name string
	// driver is the database/sql driver name.
	driver string
	// numbered placeholders ($1, $2, ...) instead of ?.
	numbered bool
	// migrationsTable is the DDL for the applied-migrations ledger.
	migrationsTable string
}

var (
	sqliteDialect = dialect{
		name:   config.DriverSQLite,
		driver: "sqlite3",
		migrationsTable: `CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	postgresDialect = dialect{
		name:     config.DriverPostgres,
		driver:   "pgx",
		numbered: true,
		migrationsTable: `CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
)

// rebind rewrites ? placeholders for engines that use numbered parameters.
// Queries in this package never contain a literal question mark.
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// placeholders returns "?, ?, ..." with n entries.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}
