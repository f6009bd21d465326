// Package migrations holds the battle history schema
package migrations

import "embed"

// FS contains the embedded SQLite migrations
//
//go:embed *.sql
var FS embed.FS
