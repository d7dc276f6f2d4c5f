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

package telemetry

import (
	"sync"
	"time"

	"github.com/veritag/veritag/internal/system/log"
	sysutils "github.com/veritag/veritag/internal/system/utils"
)

const serviceLoggerComponentName = "TelemetryService"

// ServiceInterface defines the telemetry sink operations.
type ServiceInterface interface {
	// Track appends one event. Delivery failures are swallowed and logged; Track
	// never fails the calling operation.
	Track(actor, action, objectType, objectID string, metadata map[string]any)
	GetEventsByObject(objectType, objectID string) ([]Event, error)
}

// telemetryService is the implementation of ServiceInterface.
type telemetryService struct {
	store StoreInterface
}

var (
	serviceInstance ServiceInterface
	serviceOnce     sync.Once
)

// GetTelemetryService returns a singleton instance of the telemetry service.
func GetTelemetryService() ServiceInterface {
	serviceOnce.Do(func() {
		serviceInstance = newService(NewStore())
	})
	return serviceInstance
}

// newService creates a telemetry service with explicit dependencies.
func newService(store StoreInterface) ServiceInterface {
	return &telemetryService{
		store: store,
	}
}

// Track appends one event to the log. Failure isolation is the contract here:
// a sink error must never surface to the operation being tracked.
func (s *telemetryService) Track(actor, action, objectType, objectID string, metadata map[string]any) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	event := Event{
		ID:         sysutils.GenerateUUID(),
		Actor:      actor,
		Action:     action,
		ObjectType: objectType,
		ObjectID:   objectID,
		Metadata:   metadata,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.store.AppendEvent(event); err != nil {
		logger.Warn("Failed to deliver telemetry event", log.String("action", action),
			log.String("objectId", objectID), log.Error(err))
	}
}

// GetEventsByObject retrieves the events recorded against an object.
func (s *telemetryService) GetEventsByObject(objectType, objectID string) ([]Event, error) {
	return s.store.GetEventsByObject(objectType, objectID)
}
