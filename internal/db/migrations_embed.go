package db

import "embed"

// Migration SQL is embedded so the service can migrate itself at boot and
// integration tests can run against a fresh container.
//
//go:embed migrations/*.sql
var migrationFiles embed.FS
