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

// Package campaign provides campaign management for the certification platform.
package campaign

import (
	"time"

	"github.com/veritag/veritag/internal/content"
)

// Status defines the lifecycle status of a campaign.
type Status string

const (
	// StatusDraft indicates a campaign that has not been launched.
	StatusDraft Status = "draft"
	// StatusActive indicates a launched campaign accepting scans.
	StatusActive Status = "active"
	// StatusArchived indicates a retired campaign.
	StatusArchived Status = "archived"
)

// Campaign represents one brand campaign.
type Campaign struct {
	ID               string `json:"id"`
	BrandID          string `json:"brandId"`
	Name             string `json:"name"`
	Status           Status `json:"status"`
	FinalRedirectURL string `json:"finalRedirectUrl,omitempty"`
	// LockedDesignTokens freeze the campaign look after launch. When present they
	// are the strongest style override layer.
	LockedDesignTokens *content.DesignConfig `json:"lockedDesignTokens,omitempty"`
	CreatedAt          time.Time             `json:"createdAt,omitempty"`
	UpdatedAt          time.Time             `json:"updatedAt,omitempty"`
}

// CreateCampaignRequest is the request body for creating a campaign.
type CreateCampaignRequest struct {
	BrandID          string `json:"brandId" validate:"required,uuid4"`
	Name             string `json:"name" validate:"required,min=1,max=120"`
	FinalRedirectURL string `json:"finalRedirectUrl,omitempty" validate:"omitempty,url"`
}

// UpdateCampaignRequest is the request body for updating a campaign.
type UpdateCampaignRequest struct {
	Name               string                `json:"name" validate:"required,min=1,max=120"`
	Status             Status                `json:"status" validate:"required,oneof=draft active archived"`
	FinalRedirectURL   string                `json:"finalRedirectUrl,omitempty" validate:"omitempty,url"`
	LockedDesignTokens *content.DesignConfig `json:"lockedDesignTokens,omitempty"`
}
