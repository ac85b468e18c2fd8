// Package postgres persists generated questions in a PostgreSQL database.
// It is an optional secondary sink next to the CSV output and owns its own
// schema migrations.
package postgres
