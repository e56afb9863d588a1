package configs

import "strings"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Storage selects where accounts, campaigns and the import ledger live.
type Storage struct {
	// Driver is one of postgres, sqlite or memory. Unknown values fall back
	// to postgres.
	Driver string `env:"DRIVER" envDefault:"postgres"`
	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string `env:"SQLITE_PATH" envDefault:"reconciler.db"`
}

// Backend normalises Driver.
func (c Storage) Backend() string {
	switch strings.ToLower(strings.TrimSpace(c.Driver)) {
	case DriverSQLite, "sqlite3":
		return DriverSQLite
	case DriverMemory, "mem":
		return DriverMemory
	default:
		return DriverPostgres
	}
}
