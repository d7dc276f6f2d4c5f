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

package content

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/veritag/veritag/internal/system/database/provider"
	"github.com/veritag/veritag/internal/system/log"
)

const storeLoggerComponentName = "ContentStore"

// StoreInterface defines the read operations for flow content records.
type StoreInterface interface {
	// GetRecord retrieves the flow content record for the given campaign.
	// Returns nil when no record exists.
	GetRecord(campaignID string) (*Record, error)
	// GetLegacyRows retrieves the ordered legacy content rows for the given campaign.
	GetLegacyRows(campaignID string) ([]LegacyRow, error)
}

// LegacyRow is one row of the legacy content table, before documents were stored
// as a single JSON payload.
type LegacyRow struct {
	PageID      string
	PageName    string
	PageType    string
	SectionID   string
	SectionType string
	Position    int
	ConfigJSON  string
}

// contentStore is the database backed implementation of StoreInterface.
type contentStore struct{}

// NewStore creates a new content store.
func NewStore() StoreInterface {
	return &contentStore{}
}

// GetRecord retrieves the flow content record for the given campaign.
func (s *contentStore) GetRecord(campaignID string) (*Record, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, storeLoggerComponentName))

	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetContentRecord, campaignID)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		logger.Debug("Content record not found", log.String(log.LoggerKeyCampaignID, campaignID))
		return nil, nil
	}
	if len(results) != 1 {
		logger.Error("Unexpected number of results", log.Int("resultCount", len(results)))
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildRecordFromResultRow(results[0])
}

// GetLegacyRows retrieves the ordered legacy content rows for the given campaign.
func (s *contentStore) GetLegacyRows(campaignID string) ([]LegacyRow, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, storeLoggerComponentName))

	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetLegacyContentRows, campaignID)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	rows := make([]LegacyRow, 0, len(results))
	for _, result := range results {
		row := LegacyRow{
			PageID:      stringColumn(result, "page_id"),
			PageName:    stringColumn(result, "page_name"),
			PageType:    stringColumn(result, "page_type"),
			SectionID:   stringColumn(result, "section_id"),
			SectionType: stringColumn(result, "section_type"),
			ConfigJSON:  stringColumn(result, "config"),
		}
		if position, ok := result["position"].(int64); ok {
			row.Position = int(position)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Position < rows[j].Position
	})

	return rows, nil
}

// buildRecordFromResultRow maps a database row to a content record.
func buildRecordFromResultRow(row map[string]any) (*Record, error) {
	record := &Record{
		CampaignID:     stringColumn(row, "campaign_id"),
		TemplateID:     stringColumn(row, "template_id"),
		TemplateFamily: stringColumn(row, "template_family"),
	}

	if version, ok := row["latest_published_version"].(int64); ok {
		record.LatestPublishedVersion = int(version)
	}

	if raw := stringColumn(row, "flow_config"); raw != "" {
		var doc Document
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("failed to parse draft config: %w", err)
		}
		record.FlowConfig = &doc
	}

	if raw := stringColumn(row, "published_snapshot"); raw != "" {
		var doc Document
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("failed to parse published snapshot: %w", err)
		}
		record.PublishedSnapshot = &doc
	}

	if raw := stringColumn(row, "design_config"); raw != "" {
		var design DesignConfig
		if err := json.Unmarshal([]byte(raw), &design); err != nil {
			return nil, fmt.Errorf("failed to parse design config: %w", err)
		}
		record.DesignConfig = &design
	}

	return record, nil
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
