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
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/veritag/veritag/internal/brand"
	"github.com/veritag/veritag/internal/system/error/serviceerror"
	"github.com/veritag/veritag/internal/system/log"
	sysutils "github.com/veritag/veritag/internal/system/utils"
)

const serviceLoggerComponentName = "CampaignService"

// ServiceInterface defines the campaign management operations.
type ServiceInterface interface {
	CreateCampaign(request CreateCampaignRequest) (*Campaign, *serviceerror.ServiceError)
	GetCampaign(campaignID string) (*Campaign, *serviceerror.ServiceError)
	ListCampaignsByBrand(brandID string) ([]Campaign, *serviceerror.ServiceError)
	UpdateCampaign(campaignID string, request UpdateCampaignRequest) (*Campaign, *serviceerror.ServiceError)
	DeleteCampaign(campaignID string) *serviceerror.ServiceError
}

// campaignService is the implementation of ServiceInterface.
type campaignService struct {
	store        StoreInterface
	brandService brand.ServiceInterface
	validate     *validator.Validate
}

var (
	serviceInstance ServiceInterface
	serviceOnce     sync.Once
)

// GetCampaignService returns a singleton instance of the campaign service.
func GetCampaignService() ServiceInterface {
	serviceOnce.Do(func() {
		serviceInstance = newService(NewStore(), brand.GetBrandService())
	})
	return serviceInstance
}

// newService creates a campaign service with explicit dependencies.
func newService(store StoreInterface, brandService brand.ServiceInterface) ServiceInterface {
	return &campaignService{
		store:        store,
		brandService: brandService,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateCampaign creates a new campaign in draft status for an existing brand.
func (s *campaignService) CreateCampaign(request CreateCampaignRequest) (*Campaign,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if err := s.validate.Struct(request); err != nil {
		svcErr := ErrorInvalidCampaignRequest.WithDescription(err.Error())
		return nil, &svcErr
	}

	if _, svcErr := s.brandService.GetBrand(request.BrandID); svcErr != nil {
		return nil, svcErr
	}

	campaign := Campaign{
		ID:               sysutils.GenerateUUID(),
		BrandID:          request.BrandID,
		Name:             request.Name,
		Status:           StatusDraft,
		FinalRedirectURL: request.FinalRedirectURL,
	}

	if err := s.store.CreateCampaign(campaign); err != nil {
		logger.Error("Failed to create campaign", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Campaign created", log.String(log.LoggerKeyCampaignID, campaign.ID),
		log.String(log.LoggerKeyBrandID, campaign.BrandID))
	return &campaign, nil
}

// GetCampaign retrieves a campaign by id.
func (s *campaignService) GetCampaign(campaignID string) (*Campaign, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	campaign, err := s.store.GetCampaign(campaignID)
	if err != nil {
		logger.Error("Failed to retrieve campaign", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if campaign == nil {
		return nil, &ErrorCampaignNotFound
	}
	return campaign, nil
}

// ListCampaignsByBrand retrieves the campaigns owned by a brand.
func (s *campaignService) ListCampaignsByBrand(brandID string) ([]Campaign, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if _, svcErr := s.brandService.GetBrand(brandID); svcErr != nil {
		return nil, svcErr
	}

	campaigns, err := s.store.ListCampaignsByBrand(brandID)
	if err != nil {
		logger.Error("Failed to list campaigns", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return campaigns, nil
}

// UpdateCampaign updates an existing campaign. Locked design tokens may only be
// set, never cleared, once the campaign has been activated.
func (s *campaignService) UpdateCampaign(campaignID string, request UpdateCampaignRequest) (*Campaign,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if err := s.validate.Struct(request); err != nil {
		svcErr := ErrorInvalidCampaignRequest.WithDescription(err.Error())
		return nil, &svcErr
	}

	existing, svcErr := s.GetCampaign(campaignID)
	if svcErr != nil {
		return nil, svcErr
	}

	lockedTokens := request.LockedDesignTokens
	if lockedTokens == nil && existing.Status != StatusDraft {
		lockedTokens = existing.LockedDesignTokens
	}

	updated := Campaign{
		ID:                 existing.ID,
		BrandID:            existing.BrandID,
		Name:               request.Name,
		Status:             request.Status,
		FinalRedirectURL:   request.FinalRedirectURL,
		LockedDesignTokens: lockedTokens,
	}

	if err := s.store.UpdateCampaign(updated); err != nil {
		logger.Error("Failed to update campaign", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return &updated, nil
}

// DeleteCampaign removes a campaign.
func (s *campaignService) DeleteCampaign(campaignID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if _, svcErr := s.GetCampaign(campaignID); svcErr != nil {
		return svcErr
	}

	if err := s.store.DeleteCampaign(campaignID); err != nil {
		logger.Error("Failed to delete campaign", log.Error(err))
		return &ErrorInternalServerError
	}
	return nil
}
