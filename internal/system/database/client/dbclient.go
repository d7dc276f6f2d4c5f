/*
 * Copyright (c) 2025, Veritag Labs. (https://veritag.io).
 *
 * Veritag Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package client executes queries and manages transactions against a database.
package client

import (
	"database/sql"
	"strings"

	"github.com/veritag/veritag/internal/system/database/model"
	"github.com/veritag/veritag/internal/system/log"

	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // sqlite driver
)

const loggerComponentName = "DBClient"

// DBClientInterface is the query surface the stores are written against.
type DBClientInterface interface {
	// Query runs a row-returning query and yields each row as a map
	// keyed by lowercased column name.
	Query(query model.DBQuery, args ...any) ([]map[string]any, error)
	// Execute runs a statement and returns the number of rows affected.
	Execute(query model.DBQuery, args ...any) (int64, error)
	// BeginTx starts a database transaction.
	BeginTx() (model.TxInterface, error)
	// Close closes the underlying connection pool.
	Close() error
}

// DBClient runs DBQuery values against a single database, selecting the
// driver-specific SQL variant for its database type.
type DBClient struct {
	db     model.DBInterface
	dbType string
}

// NewDBClient creates a client over an open database handle.
func NewDBClient(db model.DBInterface, dbType string) DBClientInterface {
	return &DBClient{db: db, dbType: dbType}
}

// Query runs a row-returning query and yields each row as a map keyed by
// lowercased column name.
func (c *DBClient) Query(query model.DBQuery, args ...any) ([]map[string]any, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Executing query", log.String("queryID", query.GetID()))

	rows, err := c.db.Query(query.GetQuery(c.dbType), args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			logger.Error("Error closing rows", log.Error(closeErr))
		}
	}()

	return collectRows(rows)
}

// collectRows scans every row into a map keyed by lowercased column name.
// Drivers disagree on column name casing, so the stores rely on lowercase.
func collectRows(rows *sql.Rows) ([]map[string]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[strings.ToLower(col)] = values[i]
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Execute runs a statement and returns the number of rows affected.
func (c *DBClient) Execute(query model.DBQuery, args ...any) (int64, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Executing statement", log.String("queryID", query.GetID()))

	result, err := c.db.Exec(query.GetQuery(c.dbType), args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// BeginTx starts a database transaction.
func (c *DBClient) BeginTx() (model.TxInterface, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return nil, err
	}
	return model.NewTx(tx), nil
}

// Close closes the underlying connection pool.
func (c *DBClient) Close() error {
	return c.db.Close()
}
