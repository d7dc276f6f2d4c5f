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
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/veritag/veritag/internal/campaign"
	"github.com/veritag/veritag/internal/content"
	"github.com/veritag/veritag/internal/system/error/serviceerror"
)

const (
	testCampaignID  = "0b6f1c7e-9d3a-4e5f-8a2b-1c4d6e8f0a2b"
	otherCampaignID = "4f2a8d1c-6b3e-4c7d-9e0f-2a5b8c1d4e7f"
)

// fakeTemplateStore keeps templates in memory and mimics the store's atomic
// publish semantics.
type fakeTemplateStore struct {
	templates map[string]*FlowTemplate
}

func newFakeTemplateStore() *fakeTemplateStore {
	return &fakeTemplateStore{templates: make(map[string]*FlowTemplate)}
}

func (s *fakeTemplateStore) CreateTemplate(template FlowTemplate) error {
	stored := template
	s.templates[template.ID] = &stored
	return nil
}

func (s *fakeTemplateStore) GetTemplate(templateID string) (*FlowTemplate, error) {
	template, ok := s.templates[templateID]
	if !ok {
		return nil, nil
	}
	copied := *template
	return &copied, nil
}

func (s *fakeTemplateStore) GetTemplateByCampaign(campaignID string) (*FlowTemplate, error) {
	for _, template := range s.templates {
		if template.CampaignID == campaignID {
			copied := *template
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeTemplateStore) UpdateDraft(template FlowTemplate) error {
	stored := s.templates[template.ID]
	stored.Name = template.Name
	stored.DesignConfig = template.DesignConfig
	stored.Draft = template.Draft
	return nil
}

func (s *fakeTemplateStore) Publish(templateID string, snapshot *content.Document) error {
	stored := s.templates[templateID]
	stored.PublishedSnapshot = snapshot
	stored.LatestPublishedVersion++
	return nil
}

func (s *fakeTemplateStore) DeleteTemplate(templateID string) error {
	delete(s.templates, templateID)
	return nil
}

// fakeCampaignService resolves a fixed set of campaign ids.
type fakeCampaignService struct {
	known map[string]bool
}

func (f *fakeCampaignService) GetCampaign(campaignID string) (*campaign.Campaign,
	*serviceerror.ServiceError) {
	if !f.known[campaignID] {
		return nil, &campaign.ErrorCampaignNotFound
	}
	return &campaign.Campaign{ID: campaignID, Status: campaign.StatusActive}, nil
}

func (f *fakeCampaignService) CreateCampaign(campaign.CreateCampaignRequest) (*campaign.Campaign,
	*serviceerror.ServiceError) {
	return nil, nil
}

func (f *fakeCampaignService) ListCampaignsByBrand(string) ([]campaign.Campaign,
	*serviceerror.ServiceError) {
	return nil, nil
}

func (f *fakeCampaignService) UpdateCampaign(string, campaign.UpdateCampaignRequest) (
	*campaign.Campaign, *serviceerror.ServiceError) {
	return nil, nil
}

func (f *fakeCampaignService) DeleteCampaign(string) *serviceerror.ServiceError {
	return nil
}

type TemplateServiceTestSuite struct {
	suite.Suite
	store   *fakeTemplateStore
	service ServiceInterface
}

func TestTemplateServiceSuite(t *testing.T) {
	suite.Run(t, new(TemplateServiceTestSuite))
}

func (suite *TemplateServiceTestSuite) SetupTest() {
	suite.store = newFakeTemplateStore()
	suite.service = newService(suite.store, &fakeCampaignService{
		known: map[string]bool{testCampaignID: true, otherCampaignID: true},
	})
}

func (suite *TemplateServiceTestSuite) createTemplate() *FlowTemplate {
	template, svcErr := suite.service.CreateTemplate(CreateTemplateRequest{
		CampaignID: testCampaignID,
		Name:       "Spring Launch",
		Family:     "modern",
	})
	suite.Require().Nil(svcErr)
	return template
}

func validDraft() *content.Document {
	return &content.Document{
		Pages: []content.Page{
			{
				ID:   "p1",
				Type: "welcome",
				Sections: []content.Section{
					{ID: "s1", Type: content.SectionTypeHero,
						Config: &content.HeroConfig{Title: "Welcome"}},
				},
			},
		},
	}
}

func (suite *TemplateServiceTestSuite) TestCreateTemplate() {
	template := suite.createTemplate()

	suite.NotEmpty(template.ID)
	suite.Equal(testCampaignID, template.CampaignID)
	suite.Equal("modern", template.Family)
	suite.Equal(0, template.LatestPublishedVersion)
	suite.Nil(template.PublishedSnapshot)
	suite.Require().NotNil(template.Draft)
	suite.Empty(template.Draft.Pages)
}

func (suite *TemplateServiceTestSuite) TestCreateTemplateValidation() {
	tests := []struct {
		name    string
		request CreateTemplateRequest
	}{
		{
			name:    "Missing campaign id",
			request: CreateTemplateRequest{Name: "Spring Launch"},
		},
		{
			name:    "Missing name",
			request: CreateTemplateRequest{CampaignID: testCampaignID},
		},
		{
			name: "Unknown family",
			request: CreateTemplateRequest{CampaignID: testCampaignID, Name: "Spring Launch",
				Family: "brutalist"},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			template, svcErr := suite.service.CreateTemplate(tc.request)

			suite.Nil(template)
			suite.Require().NotNil(svcErr)
			suite.Equal(ErrorInvalidTemplateRequest.Code, svcErr.Code)
		})
	}
}

func (suite *TemplateServiceTestSuite) TestCreateTemplateUnknownCampaign() {
	template, svcErr := suite.service.CreateTemplate(CreateTemplateRequest{
		CampaignID: "9c8b7a6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d",
		Name:       "Spring Launch",
	})

	suite.Nil(template)
	suite.Require().NotNil(svcErr)
	suite.Equal(campaign.ErrorCampaignNotFound.Code, svcErr.Code)
}

func (suite *TemplateServiceTestSuite) TestCreateTemplateUniquePerCampaign() {
	suite.createTemplate()

	template, svcErr := suite.service.CreateTemplate(CreateTemplateRequest{
		CampaignID: testCampaignID,
		Name:       "Second Template",
	})

	suite.Nil(template)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorCampaignAlreadyHasTemplate.Code, svcErr.Code)
}

func (suite *TemplateServiceTestSuite) TestUpdateDraft() {
	template := suite.createTemplate()

	updated, svcErr := suite.service.UpdateDraft(template.ID, UpdateDraftRequest{
		Name:  "Spring Launch v2",
		Draft: validDraft(),
	})

	suite.Require().Nil(svcErr)
	suite.Equal("Spring Launch v2", updated.Name)
	suite.Require().Len(updated.Draft.Pages, 1)
	// The published side is untouched by draft updates.
	suite.Nil(updated.PublishedSnapshot)
	suite.Equal(0, updated.LatestPublishedVersion)
}

func (suite *TemplateServiceTestSuite) TestPublishEmptyDraft() {
	template := suite.createTemplate()

	published, svcErr := suite.service.PublishTemplate(template.ID)

	suite.Nil(published)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorEmptyDraft.Code, svcErr.Code)
}

func (suite *TemplateServiceTestSuite) TestPublishSchemaViolation() {
	template := suite.createTemplate()
	draft := validDraft()
	draft.Pages[0].Sections[0].Type = content.SectionType("marquee")
	_, svcErr := suite.service.UpdateDraft(template.ID, UpdateDraftRequest{
		Name:  template.Name,
		Draft: draft,
	})
	suite.Require().Nil(svcErr)

	published, svcErr := suite.service.PublishTemplate(template.ID)

	suite.Nil(published)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorDraftSchemaViolation.Code, svcErr.Code)
	suite.NotEmpty(svcErr.ErrorDescription)
}

func (suite *TemplateServiceTestSuite) TestPublishAdvancesVersion() {
	template := suite.createTemplate()
	_, svcErr := suite.service.UpdateDraft(template.ID, UpdateDraftRequest{
		Name:  template.Name,
		Draft: validDraft(),
	})
	suite.Require().Nil(svcErr)

	published, svcErr := suite.service.PublishTemplate(template.ID)
	suite.Require().Nil(svcErr)
	suite.Equal(1, published.LatestPublishedVersion)
	suite.Require().NotNil(published.PublishedSnapshot)
	suite.Len(published.PublishedSnapshot.Pages, 1)

	republished, svcErr := suite.service.PublishTemplate(template.ID)
	suite.Require().Nil(svcErr)
	suite.Equal(2, republished.LatestPublishedVersion)
}

func (suite *TemplateServiceTestSuite) TestCloneTemplate() {
	template := suite.createTemplate()
	_, svcErr := suite.service.UpdateDraft(template.ID, UpdateDraftRequest{
		Name:  template.Name,
		Draft: validDraft(),
	})
	suite.Require().Nil(svcErr)
	_, svcErr = suite.service.PublishTemplate(template.ID)
	suite.Require().Nil(svcErr)

	clone, svcErr := suite.service.CloneTemplate(template.ID, CloneTemplateRequest{
		TargetCampaignID: otherCampaignID,
		Name:             "Spring Launch Copy",
	})

	suite.Require().Nil(svcErr)
	suite.NotEqual(template.ID, clone.ID)
	suite.Equal(otherCampaignID, clone.CampaignID)
	suite.Equal(template.Family, clone.Family)
	suite.Require().NotNil(clone.Draft)
	suite.Len(clone.Draft.Pages, 1)
	// The clone starts unpublished regardless of the source's publish history.
	suite.Nil(clone.PublishedSnapshot)
	suite.Equal(0, clone.LatestPublishedVersion)
}

func (suite *TemplateServiceTestSuite) TestCloneIntoOccupiedCampaign() {
	template := suite.createTemplate()

	clone, svcErr := suite.service.CloneTemplate(template.ID, CloneTemplateRequest{
		TargetCampaignID: testCampaignID,
		Name:             "Copy",
	})

	suite.Nil(clone)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorCampaignAlreadyHasTemplate.Code, svcErr.Code)
}

func (suite *TemplateServiceTestSuite) TestGetTemplateNotFound() {
	template, svcErr := suite.service.GetTemplate("missing")

	suite.Nil(template)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorTemplateNotFound.Code, svcErr.Code)
}

func (suite *TemplateServiceTestSuite) TestDeleteTemplate() {
	template := suite.createTemplate()

	suite.Require().Nil(suite.service.DeleteTemplate(template.ID))

	_, svcErr := suite.service.GetTemplate(template.ID)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorTemplateNotFound.Code, svcErr.Code)
}

func (suite *TemplateServiceTestSuite) TestValidatePageDocument() {
	tests := []struct {
		name        string
		document    string
		expectError bool
	}{
		{
			name:        "Valid document",
			document:    `{"pages":[{"id":"p1","sections":[{"id":"s1","type":"hero"}]}]}`,
			expectError: false,
		},
		{
			name:        "Missing pages",
			document:    `{}`,
			expectError: true,
		},
		{
			name:        "Section without id",
			document:    `{"pages":[{"id":"p1","sections":[{"type":"hero"}]}]}`,
			expectError: true,
		},
		{
			name:        "Unknown section type",
			document:    `{"pages":[{"id":"p1","sections":[{"id":"s1","type":"marquee"}]}]}`,
			expectError: true,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			err := validatePageDocument([]byte(tc.document))

			if tc.expectError {
				suite.Error(err)
			} else {
				suite.NoError(err)
			}
		})
	}
}
