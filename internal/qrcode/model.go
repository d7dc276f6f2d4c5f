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

// Package qrcode manages QR code batches and scan resolution.
package qrcode

import "time"

// Batch represents one printed batch of QR codes for a campaign.
type Batch struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// QRCode represents one scannable code within a batch.
type QRCode struct {
	ID         string    `json:"id"`
	BatchID    string    `json:"batchId"`
	CampaignID string    `json:"campaignId"`
	ScanCount  int       `json:"scanCount"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// CreateBatchRequest is the request body for creating a QR batch.
type CreateBatchRequest struct {
	CampaignID string `json:"campaignId" validate:"required,uuid4"`
	Name       string `json:"name" validate:"required,min=1,max=120"`
	Quantity   int    `json:"quantity" validate:"required,min=1,max=10000"`
}
