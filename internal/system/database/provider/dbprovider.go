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

// Package provider manages the database connections of the server.
//
// The server uses two databases: "catalog" holds brands, campaigns, QR
// batches, templates and page content, while "runtime" holds flow sessions
// and telemetry events. Either may be backed by PostgreSQL or SQLite.
package provider

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path"
	"sync"
	"syscall"
	"time"

	"github.com/veritag/veritag/internal/system/config"
	"github.com/veritag/veritag/internal/system/database/client"
	dbmodel "github.com/veritag/veritag/internal/system/database/model"
	"github.com/veritag/veritag/internal/system/log"
)

const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
)

// DBProviderInterface hands out database clients by logical database name.
type DBProviderInterface interface {
	GetDBClient(dbName string) (client.DBClientInterface, error)
}

// DBProvider lazily opens one client per logical database and reuses it.
type DBProvider struct {
	mu      sync.Mutex
	clients map[string]client.DBClientInterface
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the singleton provider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{clients: make(map[string]client.DBClientInterface)}
		instance.closeOnInterrupt()
	})
	return instance
}

// GetDBClient returns the client for the named database, opening the
// connection pool on first use. The caller must not close the client.
func (d *DBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	dataSource, err := lookupDataSource(dbName)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, ok := d.clients[dbName]; ok {
		return existing, nil
	}

	dbClient, err := openClient(dbName, dataSource)
	if err != nil {
		return nil, err
	}
	d.clients[dbName] = dbClient
	return dbClient, nil
}

// lookupDataSource maps a logical database name to its configuration.
func lookupDataSource(dbName string) (config.DataSource, error) {
	databaseConfig := config.GetVeritagRuntime().Config.Database
	switch dbName {
	case "catalog":
		return databaseConfig.Catalog, nil
	case "runtime":
		return databaseConfig.Runtime, nil
	default:
		return config.DataSource{}, fmt.Errorf("unsupported database name: %s", dbName)
	}
}

// openClient opens and verifies a connection pool for the data source.
func openClient(dbName string, dataSource config.DataSource) (client.DBClientInterface, error) {
	driverName, dsn := buildDSN(dataSource)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dbName, err)
	}

	db.SetMaxOpenConns(dataSource.MaxOpenConns)
	db.SetMaxIdleConns(dataSource.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database %s: %w (close error: %w)", dbName, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database %s: %w", dbName, err)
	}

	// SQLite does not enforce foreign keys unless asked to.
	if driverName == driverSQLite {
		if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				return nil, fmt.Errorf("failed to enable foreign key constraints for %s: %w (close error: %w)",
					dbName, err, closeErr)
			}
			return nil, fmt.Errorf("failed to enable foreign key constraints for %s: %w", dbName, err)
		}
	}

	return client.NewDBClient(dbmodel.NewDB(db), driverName), nil
}

// buildDSN derives the driver name and connection string for a data source.
func buildDSN(dataSource config.DataSource) (string, string) {
	switch dataSource.Type {
	case driverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
			dataSource.Name, dataSource.SSLMode)
		return driverPostgres, dsn
	case driverSQLite:
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		dsn := path.Join(config.GetVeritagRuntime().VeritagHome, dataSource.Path) + options
		return driverSQLite, dsn
	default:
		return dataSource.Type, ""
	}
}

// closeOnInterrupt closes all open connection pools on shutdown signals.
func (d *DBProvider) closeOnInterrupt() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger := log.GetLogger()
		if err := d.close(); err != nil {
			logger.Error("Error closing database connections", log.Error(err))
		} else {
			logger.Debug("Database connections closed successfully")
		}
	}()
}

func (d *DBProvider) close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var errs []error
	for name, dbClient := range d.clients {
		if err := dbClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s client: %w", name, err))
		}
		delete(d.clients, name)
	}
	return errors.Join(errs...)
}
