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
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/veritag/veritag/internal/system/error/serviceerror"
	"github.com/veritag/veritag/internal/system/log"
	sysutils "github.com/veritag/veritag/internal/system/utils"
)

const serviceLoggerComponentName = "BrandService"

// ServiceInterface defines the brand management operations.
type ServiceInterface interface {
	CreateBrand(request CreateBrandRequest) (*Brand, *serviceerror.ServiceError)
	GetBrand(brandID string) (*Brand, *serviceerror.ServiceError)
	ListBrands() ([]Brand, *serviceerror.ServiceError)
	UpdateBrand(brandID string, request UpdateBrandRequest) (*Brand, *serviceerror.ServiceError)
	DeleteBrand(brandID string) *serviceerror.ServiceError
}

// brandService is the implementation of ServiceInterface.
type brandService struct {
	store    StoreInterface
	validate *validator.Validate
}

var (
	serviceInstance ServiceInterface
	serviceOnce     sync.Once
)

// GetBrandService returns a singleton instance of the brand service.
func GetBrandService() ServiceInterface {
	serviceOnce.Do(func() {
		serviceInstance = newService(NewStore())
	})
	return serviceInstance
}

// newService creates a brand service with explicit dependencies.
func newService(store StoreInterface) ServiceInterface {
	return &brandService{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateBrand creates a new brand.
func (s *brandService) CreateBrand(request CreateBrandRequest) (*Brand, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if err := s.validate.Struct(request); err != nil {
		svcErr := ErrorInvalidBrandRequest.WithDescription(err.Error())
		return nil, &svcErr
	}

	brand := Brand{
		ID:          sysutils.GenerateUUID(),
		Name:        request.Name,
		LogoURL:     request.LogoURL,
		BrandColors: sysutils.SanitizeStringMap(request.BrandColors),
	}

	if err := s.store.CreateBrand(brand); err != nil {
		logger.Error("Failed to create brand", log.Error(err))
		return nil, &ErrorBrandServerError
	}

	logger.Debug("Brand created", log.String(log.LoggerKeyBrandID, brand.ID))
	return &brand, nil
}

// GetBrand retrieves a brand by id.
func (s *brandService) GetBrand(brandID string) (*Brand, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	brand, err := s.store.GetBrand(brandID)
	if err != nil {
		logger.Error("Failed to retrieve brand", log.Error(err))
		return nil, &ErrorBrandServerError
	}
	if brand == nil {
		return nil, &ErrorBrandNotFound
	}
	return brand, nil
}

// ListBrands retrieves all brands.
func (s *brandService) ListBrands() ([]Brand, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	brands, err := s.store.ListBrands()
	if err != nil {
		logger.Error("Failed to list brands", log.Error(err))
		return nil, &ErrorBrandServerError
	}
	return brands, nil
}

// UpdateBrand updates an existing brand.
func (s *brandService) UpdateBrand(brandID string, request UpdateBrandRequest) (*Brand,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if err := s.validate.Struct(request); err != nil {
		svcErr := ErrorInvalidBrandRequest.WithDescription(err.Error())
		return nil, &svcErr
	}

	existing, svcErr := s.GetBrand(brandID)
	if svcErr != nil {
		return nil, svcErr
	}

	updated := Brand{
		ID:          existing.ID,
		Name:        request.Name,
		LogoURL:     request.LogoURL,
		BrandColors: sysutils.SanitizeStringMap(request.BrandColors),
	}

	if err := s.store.UpdateBrand(updated); err != nil {
		logger.Error("Failed to update brand", log.Error(err))
		return nil, &ErrorBrandServerError
	}
	return &updated, nil
}

// DeleteBrand removes a brand.
func (s *brandService) DeleteBrand(brandID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if _, svcErr := s.GetBrand(brandID); svcErr != nil {
		return svcErr
	}

	if err := s.store.DeleteBrand(brandID); err != nil {
		logger.Error("Failed to delete brand", log.Error(err))
		return &ErrorBrandServerError
	}
	return nil
}
