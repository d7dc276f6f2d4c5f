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

// Package service provides health check-related business logic and operations.
package service

import (
	"sync"

	dbmodel "github.com/veritag/veritag/internal/system/database/model"
	"github.com/veritag/veritag/internal/system/database/provider"
	"github.com/veritag/veritag/internal/system/healthcheck/model"
	"github.com/veritag/veritag/internal/system/log"
)

var (
	instance *HealthCheckService
	once     sync.Once
)

// Probe queries used to verify each database answers.
var (
	queryCatalogDBTable = dbmodel.DBQuery{
		ID:    "HCQ-HEALTH-01",
		Query: "SELECT 1 FROM BRAND LIMIT 1",
	}
	queryRuntimeDBTable = dbmodel.DBQuery{
		ID:    "HCQ-HEALTH-02",
		Query: "SELECT 1 FROM FLOW_SESSION LIMIT 1",
	}
)

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness() model.ServerStatus
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	DBProvider provider.DBProviderInterface
}

// GetHealthCheckService returns a singleton instance of HealthCheckService.
func GetHealthCheckService() HealthCheckServiceInterface {
	once.Do(func() {
		instance = &HealthCheckService{
			DBProvider: provider.GetDBProvider(),
		}
	})
	return instance
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness() model.ServerStatus {
	catalogDBStatus := model.ServiceStatus{
		ServiceName: "CatalogDB",
		Status:      hcs.checkDatabaseStatus("catalog", queryCatalogDBTable),
	}

	runtimeDBStatus := model.ServiceStatus{
		ServiceName: "RuntimeDB",
		Status:      hcs.checkDatabaseStatus("runtime", queryRuntimeDBTable),
	}

	status := model.StatusUp
	if catalogDBStatus.Status == model.StatusDown || runtimeDBStatus.Status == model.StatusDown {
		status = model.StatusDown
	}
	return model.ServerStatus{
		Status: status,
		ServiceStatus: []model.ServiceStatus{
			catalogDBStatus,
			runtimeDBStatus,
		},
	}
}

// checkDatabaseStatus runs the probe query against the named database.
func (hcs *HealthCheckService) checkDatabaseStatus(dbName string, query dbmodel.DBQuery) model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	dbClient, err := hcs.DBProvider.GetDBClient(dbName)
	if err != nil {
		logger.Error("Failed to get database client", log.String("database", dbName), log.Error(err))
		return model.StatusDown
	}

	if _, err := dbClient.Query(query); err != nil {
		logger.Error("Database probe failed", log.String("database", dbName), log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}
