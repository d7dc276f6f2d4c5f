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

package brand

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/veritag/veritag/internal/system/database/provider"
	"github.com/veritag/veritag/internal/system/log"
)

const storeLoggerComponentName = "BrandStore"

// StoreInterface defines the persistence operations for brands.
type StoreInterface interface {
	CreateBrand(brand Brand) error
	GetBrand(brandID string) (*Brand, error)
	ListBrands() ([]Brand, error)
	UpdateBrand(brand Brand) error
	DeleteBrand(brandID string) error
}

// brandStore is the database backed implementation of StoreInterface.
type brandStore struct{}

// NewStore creates a new brand store.
func NewStore() StoreInterface {
	return &brandStore{}
}

// CreateBrand inserts a new brand row.
func (s *brandStore) CreateBrand(brand Brand) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	colors, err := marshalBrandColors(brand.BrandColors)
	if err != nil {
		return err
	}

	_, err = dbClient.Execute(QueryCreateBrand, brand.ID, brand.Name, brand.LogoURL, colors)
	if err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

// GetBrand retrieves a brand by id. Returns nil when no brand exists.
func (s *brandStore) GetBrand(brandID string) (*Brand, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, storeLoggerComponentName))

	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetBrandByID, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		logger.Debug("Brand not found", log.String(log.LoggerKeyBrandID, brandID))
		return nil, nil
	}

	brand, err := buildBrandFromResultRow(results[0])
	if err != nil {
		return nil, err
	}
	return brand, nil
}

// ListBrands retrieves all brands.
func (s *brandStore) ListBrands() ([]Brand, error) {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetBrandList)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	brands := make([]Brand, 0, len(results))
	for _, row := range results {
		brand, err := buildBrandFromResultRow(row)
		if err != nil {
			return nil, err
		}
		brands = append(brands, *brand)
	}
	return brands, nil
}

// UpdateBrand updates an existing brand row.
func (s *brandStore) UpdateBrand(brand Brand) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	colors, err := marshalBrandColors(brand.BrandColors)
	if err != nil {
		return err
	}

	_, err = dbClient.Execute(QueryUpdateBrand, brand.ID, brand.Name, brand.LogoURL, colors)
	if err != nil {
		return fmt.Errorf("failed to update brand: %w", err)
	}
	return nil
}

// DeleteBrand removes a brand row.
func (s *brandStore) DeleteBrand(brandID string) error {
	dbClient, err := provider.GetDBProvider().GetDBClient("catalog")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(QueryDeleteBrand, brandID)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	return nil
}

// marshalBrandColors serializes the brand colors map. Nil maps serialize as empty.
func marshalBrandColors(colors map[string]string) (string, error) {
	if colors == nil {
		return "", nil
	}
	data, err := json.Marshal(colors)
	if err != nil {
		return "", fmt.Errorf("failed to marshal brand colors: %w", err)
	}
	return string(data), nil
}

// buildBrandFromResultRow maps a database row to a brand.
func buildBrandFromResultRow(row map[string]any) (*Brand, error) {
	brand := &Brand{
		ID:      stringColumn(row, "brand_id"),
		Name:    stringColumn(row, "name"),
		LogoURL: stringColumn(row, "logo_url"),
	}

	if raw := stringColumn(row, "brand_colors"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &brand.BrandColors); err != nil {
			return nil, fmt.Errorf("failed to parse brand colors: %w", err)
		}
	}

	if createdAt, ok := row["created_at"].(time.Time); ok {
		brand.CreatedAt = createdAt
	}
	if updatedAt, ok := row["updated_at"].(time.Time); ok {
		brand.UpdatedAt = updatedAt
	}

	return brand, nil
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
