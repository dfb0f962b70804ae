// Copyright 2021 Dalarub & Ettrich GmbH - All Rights Reserved
// Unauthorized copying of this file, via any medium is strictly prohibited
// Proprietary and confidential
// info@dalarub.com
//

package csql

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/relabs-tech/neurai/core/logger"

	_ "github.com/lib/pq" // load database driver for postgres
	_ "modernc.org/sqlite" // load database driver for sqlite
)

// Driver names accepted by Open
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DB encapsulates a standard sql.DB with a schema and the driver it was opened with
type DB struct {
	*sql.DB
	Schema string
	Driver string
}

// OpenWithSchema opens a postgres database with a schema.
// The schema gets created if it does not exist yet.
func OpenWithSchema(dataSourceName, password, schema string) (*DB, error) {
	nillog := logger.FromContext(nil)
	nillog.Infoln("connecting to postgres database:", dataSourceName)
	if len(password) > 0 {
		dataSourceName += " password=" + password
	}
	db, err := sql.Open(DriverPostgres, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if len(schema) == 0 {
		schema = "public"
	} else {
		nillog.Infoln("selected database schema:", schema)
		_, err = db.Exec(`CREATE schema IF NOT EXISTS ` + schema + `;`)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema %s: %w", schema, err)
		}
	}
	return &DB{DB: db, Schema: schema, Driver: DriverPostgres}, nil
}

// OpenSQLite opens (or creates) a sqlite database file at path. SQLite has no
// schemas, tables live in the main database.
func OpenSQLite(path string) (*DB, error) {
	logger.FromContext(nil).Infoln("opening sqlite database:", path)
	db, err := sql.Open(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time, sqlite would answer SQLITE_BUSY otherwise
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &DB{DB: db, Driver: DriverSQLite}, nil
}

// Table returns the fully qualified, quoted name of table
func (db *DB) Table(table string) string {
	if db.Driver == DriverSQLite {
		return `"` + table + `"`
	}
	return db.Schema + `."` + table + `"`
}

// Placeholder returns the i-th (1-based) parameter placeholder, $i for
// postgres and ? for sqlite
func (db *DB) Placeholder(i int) string {
	if db.Driver == DriverSQLite {
		return "?"
	}
	return "$" + strconv.Itoa(i)
}

// Placeholders returns the parameter placeholders for n parameters,
// $1,...,$n for postgres and ?,...,? for sqlite
func (db *DB) Placeholders(n int) string {
	params := make([]string, n)
	for i := range params {
		params[i] = db.Placeholder(i + 1)
	}
	return strings.Join(params, ",")
}

// ClearSchema clears all the data contained in the database's schema
// Technically this is done by dropping the schema and then recreating it.
// For sqlite the given tables are dropped instead.
func (db *DB) ClearSchema(tables ...string) error {
	if db.Driver == DriverSQLite {
		for _, table := range tables {
			if _, err := db.Exec(`DROP TABLE IF EXISTS ` + db.Table(table) + `;`); err != nil {
				return fmt.Errorf("drop table %s: %w", table, err)
			}
		}
		return nil
	}
	if db.Schema == "public" {
		return fmt.Errorf("refuse to drop public schema")
	}
	_, err := db.Exec(`DROP SCHEMA IF EXISTS ` + db.Schema + ` CASCADE;
	CREATE schema IF NOT EXISTS ` + db.Schema + `;`)
	if err != nil {
		return fmt.Errorf("clear schema %s: %w", db.Schema, err)
	}
	return nil
}
