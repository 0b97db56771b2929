// Package mock provides shared test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection for the feature suite. All
// scenarios run against the same connection; ClearDB wipes the tables between
// them.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb returns the singleton test database, creating and migrating it on
// first use. models maps table names to model pointers.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	// A single connection keeps the shared in-memory database alive.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := conn.AutoMigrate(modelList...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return &Db{DbConn: conn, models: models}
}

// ClearDB removes every row from every registered table.
func (d *Db) ClearDB() error {
	for table, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
