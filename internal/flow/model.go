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

package flow

import (
	"time"

	"github.com/veritag/veritag/internal/verify"
)

// GeoLocation is an optional coordinate pair attached to a store choice.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// StoreMeta records where the customer purchased the product.
type StoreMeta struct {
	LocationType string       `json:"location_type"`
	StoreName    string       `json:"store_name"`
	GeoLocation  *GeoLocation `json:"geo_location,omitempty"`
}

// CampaignInfo is the campaign summary carried by a session.
type CampaignInfo struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	FinalRedirectURL string `json:"final_redirect_url,omitempty"`
}

// BrandInfo is the brand summary carried by a session.
type BrandInfo struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	LogoURL     string            `json:"logo_url,omitempty"`
	BrandColors map[string]string `json:"brand_colors,omitempty"`
}

// VerificationRecord is the stored outcome of one verification call.
type VerificationRecord struct {
	ID        string        `json:"id"`
	Result    verify.Result `json:"result"`
	Reasons   []string      `json:"reasons"`
	StoreOK   bool          `json:"store_ok"`
	ExpiryOK  bool          `json:"expiry_ok"`
	BatchInfo string        `json:"batch_info,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// FlowSession represents one customer's traversal of a campaign's flow. All
// mutation happens through the collaborator calls; nothing writes these fields
// directly past the controller.
type FlowSession struct {
	ID             string              `json:"id"`
	QRID           string              `json:"qr_id,omitempty"`
	Status         SessionStatus       `json:"status"`
	Step           FlowStep            `json:"step"`
	StoreMeta      *StoreMeta          `json:"store_meta,omitempty"`
	UserID         string              `json:"user_id,omitempty"`
	MarketingOptIn bool                `json:"marketing_opt_in,omitempty"`
	CreatedVia     LoginProvider       `json:"created_via,omitempty"`
	Campaign       CampaignInfo        `json:"campaign"`
	Brand          BrandInfo           `json:"brand"`
	Verification   *VerificationRecord `json:"verification,omitempty"`
	CreatedAt      time.Time           `json:"created_at,omitempty"`
	UpdatedAt      time.Time           `json:"updated_at,omitempty"`
}

// StartFlowResult is the outcome of resolving a QR scan into a new session.
type StartFlowResult struct {
	SessionID    string `json:"session_id"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	BrandID      string `json:"brand_id"`
	BrandName    string `json:"brand_name"`
}
