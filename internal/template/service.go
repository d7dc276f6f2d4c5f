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

package template

import (
	"encoding/json"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/veritag/veritag/internal/campaign"
	"github.com/veritag/veritag/internal/content"
	"github.com/veritag/veritag/internal/system/error/serviceerror"
	"github.com/veritag/veritag/internal/system/log"
	sysutils "github.com/veritag/veritag/internal/system/utils"
)

const serviceLoggerComponentName = "TemplateService"

// ServiceInterface defines the flow template management operations.
type ServiceInterface interface {
	CreateTemplate(request CreateTemplateRequest) (*FlowTemplate, *serviceerror.ServiceError)
	GetTemplate(templateID string) (*FlowTemplate, *serviceerror.ServiceError)
	GetTemplateByCampaign(campaignID string) (*FlowTemplate, *serviceerror.ServiceError)
	UpdateDraft(templateID string, request UpdateDraftRequest) (*FlowTemplate,
		*serviceerror.ServiceError)
	CloneTemplate(templateID string, request CloneTemplateRequest) (*FlowTemplate,
		*serviceerror.ServiceError)
	// PublishTemplate validates the draft and atomically promotes it to the
	// published snapshot, advancing the version counter.
	PublishTemplate(templateID string) (*FlowTemplate, *serviceerror.ServiceError)
	DeleteTemplate(templateID string) *serviceerror.ServiceError
}

// templateService is the implementation of ServiceInterface.
type templateService struct {
	store           StoreInterface
	campaignService campaign.ServiceInterface
	validate        *validator.Validate
}

var (
	serviceInstance ServiceInterface
	serviceOnce     sync.Once
)

// GetTemplateService returns a singleton instance of the template service.
func GetTemplateService() ServiceInterface {
	serviceOnce.Do(func() {
		serviceInstance = newService(NewStore(), campaign.GetCampaignService())
	})
	return serviceInstance
}

// newService creates a template service with explicit dependencies.
func newService(store StoreInterface, campaignService campaign.ServiceInterface) ServiceInterface {
	return &templateService{
		store:           store,
		campaignService: campaignService,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateTemplate creates an empty template for a campaign.
func (s *templateService) CreateTemplate(request CreateTemplateRequest) (*FlowTemplate,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if err := s.validate.Struct(request); err != nil {
		svcErr := ErrorInvalidTemplateRequest.WithDescription(err.Error())
		return nil, &svcErr
	}

	if _, svcErr := s.campaignService.GetCampaign(request.CampaignID); svcErr != nil {
		return nil, svcErr
	}

	existing, err := s.store.GetTemplateByCampaign(request.CampaignID)
	if err != nil {
		logger.Error("Failed to check for an existing template", log.Error(err))
		return nil, &ErrorTemplateServerError
	}
	if existing != nil {
		return nil, &ErrorCampaignAlreadyHasTemplate
	}

	template := FlowTemplate{
		ID:         sysutils.GenerateUUID(),
		CampaignID: request.CampaignID,
		Name:       request.Name,
		Family:     request.Family,
		Draft:      &content.Document{Pages: []content.Page{}},
	}

	if err := s.store.CreateTemplate(template); err != nil {
		logger.Error("Failed to create template", log.Error(err))
		return nil, &ErrorTemplateServerError
	}

	logger.Debug("Template created", log.String(log.LoggerKeyTemplateID, template.ID),
		log.String(log.LoggerKeyCampaignID, template.CampaignID))
	return &template, nil
}

// GetTemplate retrieves a template by id.
func (s *templateService) GetTemplate(templateID string) (*FlowTemplate, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	template, err := s.store.GetTemplate(templateID)
	if err != nil {
		logger.Error("Failed to retrieve template", log.Error(err))
		return nil, &ErrorTemplateServerError
	}
	if template == nil {
		return nil, &ErrorTemplateNotFound
	}
	return template, nil
}

// GetTemplateByCampaign retrieves the template of a campaign.
func (s *templateService) GetTemplateByCampaign(campaignID string) (*FlowTemplate,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	template, err := s.store.GetTemplateByCampaign(campaignID)
	if err != nil {
		logger.Error("Failed to retrieve template", log.Error(err))
		return nil, &ErrorTemplateServerError
	}
	if template == nil {
		return nil, &ErrorTemplateNotFound
	}
	return template, nil
}

// UpdateDraft replaces the template's draft document and design config. The
// published snapshot is never touched here.
func (s *templateService) UpdateDraft(templateID string, request UpdateDraftRequest) (*FlowTemplate,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if err := s.validate.Struct(request); err != nil {
		svcErr := ErrorInvalidTemplateRequest.WithDescription(err.Error())
		return nil, &svcErr
	}

	existing, svcErr := s.GetTemplate(templateID)
	if svcErr != nil {
		return nil, svcErr
	}

	updated := *existing
	updated.Name = request.Name
	updated.DesignConfig = request.DesignConfig
	updated.Draft = request.Draft

	if err := s.store.UpdateDraft(updated); err != nil {
		logger.Error("Failed to update template draft", log.Error(err))
		return nil, &ErrorTemplateServerError
	}
	return &updated, nil
}

// CloneTemplate copies a template's draft and design config into a new template
// owned by another campaign. The clone starts unpublished at version zero.
func (s *templateService) CloneTemplate(templateID string, request CloneTemplateRequest) (*FlowTemplate,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if err := s.validate.Struct(request); err != nil {
		svcErr := ErrorInvalidTemplateRequest.WithDescription(err.Error())
		return nil, &svcErr
	}

	source, svcErr := s.GetTemplate(templateID)
	if svcErr != nil {
		return nil, svcErr
	}

	if _, svcErr := s.campaignService.GetCampaign(request.TargetCampaignID); svcErr != nil {
		return nil, svcErr
	}

	existing, err := s.store.GetTemplateByCampaign(request.TargetCampaignID)
	if err != nil {
		logger.Error("Failed to check for an existing template", log.Error(err))
		return nil, &ErrorTemplateServerError
	}
	if existing != nil {
		return nil, &ErrorCampaignAlreadyHasTemplate
	}

	clone := FlowTemplate{
		ID:           sysutils.GenerateUUID(),
		CampaignID:   request.TargetCampaignID,
		Name:         request.Name,
		Family:       source.Family,
		DesignConfig: source.DesignConfig,
		Draft:        source.Draft,
	}

	if err := s.store.CreateTemplate(clone); err != nil {
		logger.Error("Failed to clone template", log.Error(err))
		return nil, &ErrorTemplateServerError
	}

	logger.Debug("Template cloned", log.String(log.LoggerKeyTemplateID, clone.ID),
		log.String("sourceTemplateId", source.ID))
	return &clone, nil
}

// PublishTemplate validates the draft against the page schema and atomically
// copies it into the published snapshot, incrementing the version counter.
func (s *templateService) PublishTemplate(templateID string) (*FlowTemplate,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	template, svcErr := s.GetTemplate(templateID)
	if svcErr != nil {
		return nil, svcErr
	}

	if template.Draft.IsEmpty() {
		return nil, &ErrorEmptyDraft
	}

	draftJSON, err := json.Marshal(template.Draft)
	if err != nil {
		logger.Error("Failed to serialize draft for validation", log.Error(err))
		return nil, &ErrorTemplateServerError
	}
	if err := validatePageDocument(draftJSON); err != nil {
		svcErr := ErrorDraftSchemaViolation.WithDescription(err.Error())
		return nil, &svcErr
	}

	if err := s.store.Publish(templateID, template.Draft); err != nil {
		logger.Error("Failed to publish template", log.Error(err))
		return nil, &ErrorTemplateServerError
	}

	published, svcErr := s.GetTemplate(templateID)
	if svcErr != nil {
		return nil, svcErr
	}

	logger.Debug("Template published", log.String(log.LoggerKeyTemplateID, templateID),
		log.Int("version", published.LatestPublishedVersion))
	return published, nil
}

// DeleteTemplate removes a template.
func (s *templateService) DeleteTemplate(templateID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if _, svcErr := s.GetTemplate(templateID); svcErr != nil {
		return svcErr
	}

	if err := s.store.DeleteTemplate(templateID); err != nil {
		logger.Error("Failed to delete template", log.Error(err))
		return &ErrorTemplateServerError
	}
	return nil
}
