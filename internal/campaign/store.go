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

package campaign

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/veritag/veritag/internal/content"
	"github.com/veritag/veritag/internal/system/database/provider"
	"github.com/veritag/veritag/internal/system/log"
)

const storeLoggerComponentName = "CampaignStore"

// StoreInterface defines the persistence operations for campaigns.
type StoreInterface interface {
	CreateCampaign(campaign Campaign) error
	GetCampaign(campaignID string) (*Campaign, error)
	ListCampaignsByBrand(brandID string) ([]Campaign, error)
	UpdateCampaign(campaign Campaign) error
	DeleteCampaign(campaignID string) error
}

// campaignStore is the database backed implementation of StoreInterface.
type campaignStore struct{}

// NewStore creates a new campaign store.
func NewStore() StoreInterface {
	return &campaignStore{}
}

// CreateCampaign inserts a new campaign row.
func (s *campaignStore) CreateCampaign(campaign Campaign) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tokens, err := marshalLockedTokens(campaign.LockedDesignTokens)
	if err != nil {
		return err
	}

	_, err = dbClient.Execute(QueryCreateCampaign, campaign.ID, campaign.BrandID, campaign.Name,
		string(campaign.Status), campaign.FinalRedirectURL, tokens)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

// GetCampaign retrieves a campaign by id. Returns nil when no campaign exists.
func (s *campaignStore) GetCampaign(campaignID string) (*Campaign, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, storeLoggerComponentName))

	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetCampaignByID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		logger.Debug("Campaign not found", log.String(log.LoggerKeyCampaignID, campaignID))
		return nil, nil
	}

	campaign, err := buildCampaignFromResultRow(results[0])
	if err != nil {
		return nil, err
	}
	return campaign, nil
}

// ListCampaignsByBrand retrieves the campaigns owned by a brand.
func (s *campaignStore) ListCampaignsByBrand(brandID string) ([]Campaign, error) {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetCampaignListByBrand, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	campaigns := make([]Campaign, 0, len(results))
	for _, row := range results {
		campaign, err := buildCampaignFromResultRow(row)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *campaign)
	}
	return campaigns, nil
}

// UpdateCampaign updates an existing campaign row.
func (s *campaignStore) UpdateCampaign(campaign Campaign) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tokens, err := marshalLockedTokens(campaign.LockedDesignTokens)
	if err != nil {
		return err
	}

	_, err = dbClient.Execute(QueryUpdateCampaign, campaign.ID, campaign.Name, string(campaign.Status),
		campaign.FinalRedirectURL, tokens)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	return nil
}

// DeleteCampaign removes a campaign row.
func (s *campaignStore) DeleteCampaign(campaignID string) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(QueryDeleteCampaign, campaignID)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}

// marshalLockedTokens serializes the locked design tokens. Nil locks serialize as empty.
func marshalLockedTokens(tokens *content.DesignConfig) (string, error) {
	if tokens == nil {
		return "", nil
	}
	data, err := json.Marshal(tokens)
	if err != nil {
		return "", fmt.Errorf("failed to marshal locked design tokens: %w", err)
	}
	return string(data), nil
}

// buildCampaignFromResultRow maps a database row to a campaign.
func buildCampaignFromResultRow(row map[string]any) (*Campaign, error) {
	campaign := &Campaign{
		ID:               stringColumn(row, "campaign_id"),
		BrandID:          stringColumn(row, "brand_id"),
		Name:             stringColumn(row, "name"),
		Status:           Status(stringColumn(row, "status")),
		FinalRedirectURL: stringColumn(row, "final_redirect_url"),
	}

	if raw := stringColumn(row, "locked_design_tokens"); raw != "" {
		tokens := &content.DesignConfig{}
		if err := json.Unmarshal([]byte(raw), tokens); err != nil {
			return nil, fmt.Errorf("failed to parse locked design tokens: %w", err)
		}
		campaign.LockedDesignTokens = tokens
	}

	if createdAt, ok := row["created_at"].(time.Time); ok {
		campaign.CreatedAt = createdAt
	}
	if updatedAt, ok := row["updated_at"].(time.Time); ok {
		campaign.UpdatedAt = updatedAt
	}

	return campaign, nil
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
