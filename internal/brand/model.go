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

// Package brand provides brand management for the campaign platform.
package brand

import "time"

// Brand represents a tenant brand on the platform.
type Brand struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	LogoURL     string            `json:"logoUrl,omitempty"`
	BrandColors map[string]string `json:"brandColors,omitempty"`
	CreatedAt   time.Time         `json:"createdAt,omitempty"`
	UpdatedAt   time.Time         `json:"updatedAt,omitempty"`
}

// CreateBrandRequest is the request body for creating a brand.
type CreateBrandRequest struct {
	Name        string            `json:"name" validate:"required,min=1,max=120"`
	LogoURL     string            `json:"logoUrl,omitempty" validate:"omitempty,url"`
	BrandColors map[string]string `json:"brandColors,omitempty"`
}

// UpdateBrandRequest is the request body for updating a brand.
type UpdateBrandRequest struct {
	Name        string            `json:"name" validate:"required,min=1,max=120"`
	LogoURL     string            `json:"logoUrl,omitempty" validate:"omitempty,url"`
	BrandColors map[string]string `json:"brandColors,omitempty"`
}
