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
	"encoding/json"
	"fmt"
	"time"

	"github.com/veritag/veritag/internal/system/database/model"
	"github.com/veritag/veritag/internal/system/database/provider"
)

var (
	// QueryInsertEvent is the query to append a telemetry event.
	QueryInsertEvent = model.DBQuery{
		ID: "TLQ-EVENT-01",
		Query: "INSERT INTO EVENT_LOG (EVENT_ID, ACTOR, ACTION, OBJECT_TYPE, OBJECT_ID, METADATA, " +
			"EVENT_TIME) VALUES ($1, $2, $3, $4, $5, $6, $7)",
	}

	// QueryGetEventsByObject is the query to list the events recorded against an object.
	QueryGetEventsByObject = model.DBQuery{
		ID: "TLQ-EVENT-02",
		Query: "SELECT EVENT_ID, ACTOR, ACTION, OBJECT_TYPE, OBJECT_ID, METADATA, EVENT_TIME " +
			"FROM EVENT_LOG WHERE OBJECT_TYPE = $1 AND OBJECT_ID = $2 ORDER BY EVENT_TIME ASC",
	}
)

// StoreInterface defines the persistence operations for telemetry events.
type StoreInterface interface {
	AppendEvent(event Event) error
	GetEventsByObject(objectType, objectID string) ([]Event, error)
}

// eventStore is the database backed implementation of StoreInterface.
type eventStore struct{}

// NewStore creates a new telemetry event store.
func NewStore() StoreInterface {
	return &eventStore{}
}

// AppendEvent inserts one event row.
func (s *eventStore) AppendEvent(event Event) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	metadata := ""
	if event.Metadata != nil {
		data, err := json.Marshal(event.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal event metadata: %w", err)
		}
		metadata = string(data)
	}

	_, err = dbClient.Execute(QueryInsertEvent, event.ID, event.Actor, event.Action, event.ObjectType,
		event.ObjectID, metadata, event.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

// GetEventsByObject retrieves the events recorded against an object in append order.
func (s *eventStore) GetEventsByObject(objectType, objectID string) ([]Event, error) {
	dbClient, err := provider.GetDBProvider().GetDBClient("runtime")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetEventsByObject, objectType, objectID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	events := make([]Event, 0, len(results))
	for _, row := range results {
		event := Event{
			ID:         stringColumn(row, "event_id"),
			Actor:      stringColumn(row, "actor"),
			Action:     stringColumn(row, "action"),
			ObjectType: stringColumn(row, "object_type"),
			ObjectID:   stringColumn(row, "object_id"),
		}
		if raw := stringColumn(row, "metadata"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &event.Metadata); err != nil {
				return nil, fmt.Errorf("failed to parse event metadata: %w", err)
			}
		}
		if eventTime, ok := row["event_time"].(time.Time); ok {
			event.Timestamp = eventTime
		}
		events = append(events, event)
	}
	return events, nil
}

// stringColumn reads a string column from a result row, tolerating NULL and []byte values.
func stringColumn(row map[string]any, column string) string {
	switch value := row[column].(type) {
	case string:
		return value
	case []byte:
		return string(value)
	default:
		return ""
	}
}
