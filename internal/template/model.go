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

// Package template manages flow templates: the draft and published page
// documents a campaign's flow is rendered from.
package template

import (
	"time"

	"github.com/veritag/veritag/internal/content"
)

// FlowTemplate is one campaign's flow template: a mutable draft, the immutable
// published snapshot and the monotonic publish version.
type FlowTemplate struct {
	ID                     string                `json:"id"`
	CampaignID             string                `json:"campaignId"`
	Name                   string                `json:"name"`
	Family                 string                `json:"family,omitempty"`
	DesignConfig           *content.DesignConfig `json:"designConfig,omitempty"`
	Draft                  *content.Document     `json:"draft,omitempty"`
	PublishedSnapshot      *content.Document     `json:"publishedSnapshot,omitempty"`
	LatestPublishedVersion int                   `json:"latestPublishedVersion"`
	CreatedAt              time.Time             `json:"createdAt,omitempty"`
	UpdatedAt              time.Time             `json:"updatedAt,omitempty"`
}

// CreateTemplateRequest is the request body for creating a template.
type CreateTemplateRequest struct {
	CampaignID string `json:"campaignId" validate:"required,uuid4"`
	Name       string `json:"name" validate:"required,min=1,max=120"`
	Family     string `json:"family,omitempty" validate:"omitempty,oneof=classic modern minimal"`
}

// UpdateDraftRequest is the request body for updating a template's draft.
type UpdateDraftRequest struct {
	Name         string                `json:"name" validate:"required,min=1,max=120"`
	DesignConfig *content.DesignConfig `json:"designConfig,omitempty"`
	Draft        *content.Document     `json:"draft" validate:"required"`
}

// CloneTemplateRequest is the request body for cloning a template.
type CloneTemplateRequest struct {
	TargetCampaignID string `json:"targetCampaignId" validate:"required,uuid4"`
	Name             string `json:"name" validate:"required,min=1,max=120"`
}
