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

package template

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/veritag/veritag/internal/content"
	"github.com/veritag/veritag/internal/system/database/model"
	"github.com/veritag/veritag/internal/system/database/provider"
)

// StoreInterface defines the persistence operations for flow templates.
type StoreInterface interface {
	CreateTemplate(template FlowTemplate) error
	GetTemplate(templateID string) (*FlowTemplate, error)
	GetTemplateByCampaign(campaignID string) (*FlowTemplate, error)
	UpdateDraft(template FlowTemplate) error
	// Publish atomically copies the given snapshot into the published column and
	// advances the version counter.
	Publish(templateID string, snapshot *content.Document) error
	DeleteTemplate(templateID string) error
}

// templateStore is the database backed implementation of StoreInterface.
type templateStore struct{}

// NewStore creates a new template store.
func NewStore() StoreInterface {
	return &templateStore{}
}

// CreateTemplate inserts a new template row.
func (s *templateStore) CreateTemplate(template FlowTemplate) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	designConfig, err := marshalJSONColumn(template.DesignConfig)
	if err != nil {
		return err
	}
	draft, err := marshalJSONColumn(template.Draft)
	if err != nil {
		return err
	}
	snapshot, err := marshalJSONColumn(template.PublishedSnapshot)
	if err != nil {
		return err
	}

	_, err = dbClient.Execute(QueryCreateTemplate, template.ID, template.CampaignID, template.Name,
		template.Family, designConfig, draft, snapshot, template.LatestPublishedVersion)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

// GetTemplate retrieves a template by id. Returns nil when no template exists.
func (s *templateStore) GetTemplate(templateID string) (*FlowTemplate, error) {
	return s.getOne(QueryGetTemplateByID, templateID)
}

// GetTemplateByCampaign retrieves the template of a campaign. Returns nil when
// the campaign has no template.
func (s *templateStore) GetTemplateByCampaign(campaignID string) (*FlowTemplate, error) {
	return s.getOne(QueryGetTemplateByCampaign, campaignID)
}

// UpdateDraft updates the template's name, design config and draft document.
func (s *templateStore) UpdateDraft(template FlowTemplate) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	designConfig, err := marshalJSONColumn(template.DesignConfig)
	if err != nil {
		return err
	}
	draft, err := marshalJSONColumn(template.Draft)
	if err != nil {
		return err
	}

	_, err = dbClient.Execute(QueryUpdateTemplateDraft, template.ID, template.Name, designConfig, draft)
	if err != nil {
		return fmt.Errorf("failed to update template draft: %w", err)
	}
	return nil
}

// Publish copies the snapshot into the published column and advances the
// version counter in one statement.
func (s *templateStore) Publish(templateID string, snapshot *content.Document) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	data, err := marshalJSONColumn(snapshot)
	if err != nil {
		return err
	}

	_, err = dbClient.Execute(QueryPublishTemplate, templateID, data)
	if err != nil {
		return fmt.Errorf("failed to publish template: %w", err)
	}
	return nil
}

// DeleteTemplate removes a template row.
func (s *templateStore) DeleteTemplate(templateID string) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(QueryDeleteTemplate, templateID)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

// getOne runs a single-row template query.
func (s *templateStore) getOne(query model.DBQuery, arg string) (*FlowTemplate, error) {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return buildTemplateFromResultRow(results[0])
}

// marshalJSONColumn serializes an optional JSON document column.
func marshalJSONColumn(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to marshal column value: %w", err)
	}
	return string(data), nil
}

// buildTemplateFromResultRow maps a database row to a flow template.
func buildTemplateFromResultRow(row map[string]any) (*FlowTemplate, error) {
	template := &FlowTemplate{
		ID:         stringColumn(row, "template_id"),
		CampaignID: stringColumn(row, "campaign_id"),
		Name:       stringColumn(row, "name"),
		Family:     stringColumn(row, "template_family"),
	}

	if raw := stringColumn(row, "design_config"); raw != "" {
		cfg := &content.DesignConfig{}
		if err := json.Unmarshal([]byte(raw), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse design config: %w", err)
		}
		template.DesignConfig = cfg
	}
	if raw := stringColumn(row, "flow_config"); raw != "" {
		doc := &content.Document{}
		if err := json.Unmarshal([]byte(raw), doc); err != nil {
			return nil, fmt.Errorf("failed to parse draft document: %w", err)
		}
		template.Draft = doc
	}
	if raw := stringColumn(row, "published_snapshot"); raw != "" {
		doc := &content.Document{}
		if err := json.Unmarshal([]byte(raw), doc); err != nil {
			return nil, fmt.Errorf("failed to parse published snapshot: %w", err)
		}
		template.PublishedSnapshot = doc
	}

	switch version := row["latest_published_version"].(type) {
	case int:
		template.LatestPublishedVersion = version
	case int32:
		template.LatestPublishedVersion = int(version)
	case int64:
		template.LatestPublishedVersion = int(version)
	}

	if createdAt, ok := row["created_at"].(time.Time); ok {
		template.CreatedAt = createdAt
	}
	if updatedAt, ok := row["updated_at"].(time.Time); ok {
		template.UpdatedAt = updatedAt
	}

	return template, nil
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
