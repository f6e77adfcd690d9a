package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectSQLite opens the single database file backing the whole app.
// Foreign keys are off by default in SQLite, so switch them on for the
// user -> skill cascade to hold.
func ConnectSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{})
}
