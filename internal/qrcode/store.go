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

package qrcode

import (
	"fmt"
	"time"

	"github.com/veritag/veritag/internal/system/database/provider"
)

// StoreInterface defines the persistence operations for QR batches and codes.
type StoreInterface interface {
	CreateBatch(batch Batch, codes []QRCode) error
	GetBatch(batchID string) (*Batch, error)
	ListBatchesByCampaign(campaignID string) ([]Batch, error)
	GetQRCode(qrID string) (*QRCode, error)
	IncrementScanCount(qrID string) error
}

// qrCodeStore is the database backed implementation of StoreInterface.
type qrCodeStore struct{}

// NewStore creates a new QR code store.
func NewStore() StoreInterface {
	return &qrCodeStore{}
}

// CreateBatch inserts a batch row and all its code rows in one transaction.
func (s *qrCodeStore) CreateBatch(batch Batch, codes []QRCode) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(QueryCreateBatch.Query, batch.ID, batch.CampaignID, batch.Name,
		batch.Quantity); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return fmt.Errorf("failed to create batch: %w", err)
	}

	for _, code := range codes {
		if _, err := tx.Exec(QueryCreateQRCode.Query, code.ID, code.BatchID, code.CampaignID); err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
			}
			return fmt.Errorf("failed to create QR code: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetBatch retrieves a batch by id. Returns nil when no batch exists.
func (s *qrCodeStore) GetBatch(batchID string) (*Batch, error) {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetBatchByID, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return buildBatchFromResultRow(results[0]), nil
}

// ListBatchesByCampaign retrieves the batches of a campaign.
func (s *qrCodeStore) ListBatchesByCampaign(campaignID string) ([]Batch, error) {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetBatchListByCampaign, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	batches := make([]Batch, 0, len(results))
	for _, row := range results {
		batches = append(batches, *buildBatchFromResultRow(row))
	}
	return batches, nil
}

// GetQRCode retrieves a QR code by id. Returns nil when no code exists.
func (s *qrCodeStore) GetQRCode(qrID string) (*QRCode, error) {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetQRCodeByID, qrID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	row := results[0]
	code := &QRCode{
		ID:         stringColumn(row, "qr_id"),
		BatchID:    stringColumn(row, "batch_id"),
		CampaignID: stringColumn(row, "campaign_id"),
		ScanCount:  intColumn(row, "scan_count"),
	}
	if createdAt, ok := row["created_at"].(time.Time); ok {
		code.CreatedAt = createdAt
	}
	return code, nil
}

// IncrementScanCount records one scan of a QR code.
func (s *qrCodeStore) IncrementScanCount(qrID string) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(QueryIncrementScanCount, qrID)
	if err != nil {
		return fmt.Errorf("failed to increment scan count: %w", err)
	}
	return nil
}

// buildBatchFromResultRow maps a database row to a batch.
func buildBatchFromResultRow(row map[string]any) *Batch {
	batch := &Batch{
		ID:         stringColumn(row, "batch_id"),
		CampaignID: stringColumn(row, "campaign_id"),
		Name:       stringColumn(row, "name"),
		Quantity:   intColumn(row, "quantity"),
	}
	if createdAt, ok := row["created_at"].(time.Time); ok {
		batch.CreatedAt = createdAt
	}
	return batch
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

// intColumn reads an integer column from a result row, tolerating driver-specific widths.
func intColumn(row map[string]any, column string) int {
	switch value := row[column].(type) {
	case int:
		return value
	case int32:
		return int(value)
	case int64:
		return int(value)
	default:
		return 0
	}
}
