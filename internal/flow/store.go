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
	"encoding/json"
	"fmt"
	"time"

	"github.com/veritag/veritag/internal/system/database/provider"
)

// StoreInterface defines the persistence operations for flow sessions.
type StoreInterface interface {
	CreateSession(session FlowSession) error
	GetSession(sessionID string) (*FlowSession, error)
	UpdateSessionStore(sessionID string, storeMeta StoreMeta) error
	UpdateSessionUser(sessionID, userID string, marketingOptIn bool, createdVia LoginProvider) error
	UpdateSessionStep(sessionID string, step FlowStep, status SessionStatus) error
	UpdateSessionVerification(sessionID string, record VerificationRecord) error
}

// sessionStore is the database backed implementation of StoreInterface.
type sessionStore struct{}

// NewStore creates a new flow session store.
func NewStore() StoreInterface {
	return &sessionStore{}
}

// CreateSession inserts a new session row.
func (s *sessionStore) CreateSession(session FlowSession) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	brandColors := ""
	if session.Brand.BrandColors != nil {
		data, err := json.Marshal(session.Brand.BrandColors)
		if err != nil {
			return fmt.Errorf("failed to marshal brand colors: %w", err)
		}
		brandColors = string(data)
	}

	_, err = dbClient.Execute(QueryCreateFlowSession, session.ID, session.QRID, string(session.Status),
		string(session.Step), session.Campaign.ID, session.Campaign.Name,
		session.Campaign.FinalRedirectURL, session.Brand.ID, session.Brand.Name,
		session.Brand.LogoURL, brandColors)
	if err != nil {
		return fmt.Errorf("failed to create flow session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by id. Returns nil when no session exists.
func (s *sessionStore) GetSession(sessionID string) (*FlowSession, error) {
	dbClient, err := provider.GetDBProvider().GetDBClient("runtime")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetFlowSessionByID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return buildSessionFromResultRow(results[0])
}

// UpdateSessionStore persists the session's store choice.
func (s *sessionStore) UpdateSessionStore(sessionID string, storeMeta StoreMeta) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	data, err := json.Marshal(storeMeta)
	if err != nil {
		return fmt.Errorf("failed to marshal store meta: %w", err)
	}

	_, err = dbClient.Execute(QueryUpdateFlowSessionStore, sessionID, string(data))
	if err != nil {
		return fmt.Errorf("failed to update session store: %w", err)
	}
	return nil
}

// UpdateSessionUser links a user identity to the session.
func (s *sessionStore) UpdateSessionUser(sessionID, userID string, marketingOptIn bool,
	createdVia LoginProvider) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(QueryUpdateFlowSessionUser, sessionID, userID, marketingOptIn,
		string(createdVia))
	if err != nil {
		return fmt.Errorf("failed to update session user: %w", err)
	}
	return nil
}

// UpdateSessionStep persists the session's step and status.
func (s *sessionStore) UpdateSessionStep(sessionID string, step FlowStep, status SessionStatus) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(QueryUpdateFlowSessionStep, sessionID, string(step), string(status))
	if err != nil {
		return fmt.Errorf("failed to update session step: %w", err)
	}
	return nil
}

// UpdateSessionVerification persists the verification outcome.
func (s *sessionStore) UpdateSessionVerification(sessionID string, record VerificationRecord) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal verification record: %w", err)
	}

	_, err = dbClient.Execute(QueryUpdateFlowSessionVerification, sessionID, string(data))
	if err != nil {
		return fmt.Errorf("failed to update session verification: %w", err)
	}
	return nil
}

// buildSessionFromResultRow maps a database row to a flow session.
func buildSessionFromResultRow(row map[string]any) (*FlowSession, error) {
	session := &FlowSession{
		ID:         stringColumn(row, "session_id"),
		QRID:       stringColumn(row, "qr_id"),
		Status:     SessionStatus(stringColumn(row, "status")),
		Step:       FlowStep(stringColumn(row, "step")),
		UserID:     stringColumn(row, "user_id"),
		CreatedVia: LoginProvider(stringColumn(row, "created_via")),
		Campaign: CampaignInfo{
			ID:               stringColumn(row, "campaign_id"),
			Name:             stringColumn(row, "campaign_name"),
			FinalRedirectURL: stringColumn(row, "final_redirect_url"),
		},
		Brand: BrandInfo{
			ID:      stringColumn(row, "brand_id"),
			Name:    stringColumn(row, "brand_name"),
			LogoURL: stringColumn(row, "brand_logo_url"),
		},
	}

	session.MarketingOptIn = boolColumn(row, "marketing_opt_in")

	if raw := stringColumn(row, "store_meta"); raw != "" {
		storeMeta := &StoreMeta{}
		if err := json.Unmarshal([]byte(raw), storeMeta); err != nil {
			return nil, fmt.Errorf("failed to parse store meta: %w", err)
		}
		session.StoreMeta = storeMeta
	}
	if raw := stringColumn(row, "brand_colors"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &session.Brand.BrandColors); err != nil {
			return nil, fmt.Errorf("failed to parse brand colors: %w", err)
		}
	}
	if raw := stringColumn(row, "verification"); raw != "" {
		record := &VerificationRecord{}
		if err := json.Unmarshal([]byte(raw), record); err != nil {
			return nil, fmt.Errorf("failed to parse verification record: %w", err)
		}
		session.Verification = record
	}

	if createdAt, ok := row["created_at"].(time.Time); ok {
		session.CreatedAt = createdAt
	}
	if updatedAt, ok := row["updated_at"].(time.Time); ok {
		session.UpdatedAt = updatedAt
	}

	return session, nil
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

// boolColumn reads a boolean column from a result row, tolerating integer encodings.
func boolColumn(row map[string]any, column string) bool {
	switch value := row[column].(type) {
	case bool:
		return value
	case int64:
		return value != 0
	default:
		return false
	}
}
