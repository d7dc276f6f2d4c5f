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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/veritag/veritag/internal/authn"
	"github.com/veritag/veritag/internal/brand"
	"github.com/veritag/veritag/internal/campaign"
	"github.com/veritag/veritag/internal/content"
	"github.com/veritag/veritag/internal/render"
	"github.com/veritag/veritag/internal/system/error/apierror"
	"github.com/veritag/veritag/internal/system/error/serviceerror"
)

// fakeAuthProvider resolves identities from canned responses and records the
// credentials it was handed.
type fakeAuthProvider struct {
	identity *authn.Identity
	err      error

	lastEmail    string
	lastPassword string
	lastToken    string
	lastProvider authn.OAuthProvider
	signUp       bool
}

func (f *fakeAuthProvider) SignIn(_ context.Context, email, password string) (*authn.Identity, error) {
	f.lastEmail = email
	f.lastPassword = password
	return f.identity, f.err
}

func (f *fakeAuthProvider) SignUp(_ context.Context, email, password string) (*authn.Identity, error) {
	f.lastEmail = email
	f.lastPassword = password
	f.signUp = true
	return f.identity, f.err
}

func (f *fakeAuthProvider) SignInWithOAuth(_ context.Context, provider authn.OAuthProvider,
	token string) (*authn.Identity, error) {
	f.lastProvider = provider
	f.lastToken = token
	return f.identity, f.err
}

// fakeContentLoader serves a fixed load result.
type fakeContentLoader struct {
	result *content.LoadResult
	err    *serviceerror.ServiceError
}

func (f *fakeContentLoader) Load(_ string, _ content.LoadOptions) (*content.LoadResult,
	*serviceerror.ServiceError) {
	return f.result, f.err
}

// fakeCampaignService only answers GetCampaign; the handler treats a lookup
// failure as "render without campaign overrides".
type fakeCampaignService struct {
	campaign *campaign.Campaign
}

func (f *fakeCampaignService) CreateCampaign(campaign.CreateCampaignRequest) (*campaign.Campaign,
	*serviceerror.ServiceError) {
	return nil, &campaign.ErrorInternalServerError
}

func (f *fakeCampaignService) GetCampaign(string) (*campaign.Campaign, *serviceerror.ServiceError) {
	if f.campaign == nil {
		return nil, &campaign.ErrorCampaignNotFound
	}
	return f.campaign, nil
}

func (f *fakeCampaignService) ListCampaignsByBrand(string) ([]campaign.Campaign,
	*serviceerror.ServiceError) {
	return nil, &campaign.ErrorInternalServerError
}

func (f *fakeCampaignService) UpdateCampaign(string, campaign.UpdateCampaignRequest) (*campaign.Campaign,
	*serviceerror.ServiceError) {
	return nil, &campaign.ErrorInternalServerError
}

func (f *fakeCampaignService) DeleteCampaign(string) *serviceerror.ServiceError {
	return &campaign.ErrorInternalServerError
}

// fakeBrandService only answers GetBrand.
type fakeBrandService struct {
	brand *brand.Brand
}

func (f *fakeBrandService) CreateBrand(brand.CreateBrandRequest) (*brand.Brand,
	*serviceerror.ServiceError) {
	return nil, &brand.ErrorBrandServerError
}

func (f *fakeBrandService) GetBrand(string) (*brand.Brand, *serviceerror.ServiceError) {
	if f.brand == nil {
		return nil, &brand.ErrorBrandNotFound
	}
	return f.brand, nil
}

func (f *fakeBrandService) ListBrands() ([]brand.Brand, *serviceerror.ServiceError) {
	return nil, &brand.ErrorBrandServerError
}

func (f *fakeBrandService) UpdateBrand(string, brand.UpdateBrandRequest) (*brand.Brand,
	*serviceerror.ServiceError) {
	return nil, &brand.ErrorBrandServerError
}

func (f *fakeBrandService) DeleteBrand(string) *serviceerror.ServiceError {
	return &brand.ErrorBrandServerError
}

type HandlerTestSuite struct {
	suite.Suite
	collaborator    *fakeCollaborator
	telemetry       *fakeTelemetry
	loader          *fakeContentLoader
	campaignService *fakeCampaignService
	brandService    *fakeBrandService
	authProvider    *fakeAuthProvider
	handler         *Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.collaborator = newFakeCollaborator()
	suite.telemetry = &fakeTelemetry{}
	suite.loader = &fakeContentLoader{}
	suite.campaignService = &fakeCampaignService{}
	suite.brandService = &fakeBrandService{}
	suite.authProvider = &fakeAuthProvider{}
	suite.handler = newHandler(suite.collaborator, suite.telemetry, suite.loader,
		suite.campaignService, suite.brandService, suite.authProvider)
}

func (suite *HandlerTestSuite) seedSessionAt(step FlowStep) *FlowSession {
	session := &FlowSession{
		ID:       "session-1",
		QRID:     "qr-1",
		Status:   SessionStatusActive,
		Step:     step,
		Campaign: CampaignInfo{ID: "campaign-1", Name: "Spring Launch"},
		Brand:    BrandInfo{ID: "brand-1", Name: "Acme"},
	}
	suite.collaborator.seedSession(session)
	return session
}

func (suite *HandlerTestSuite) postLogin(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/flow/sessions/session-1/login",
		bytes.NewReader(payload))
	req.SetPathValue("id", "session-1")
	rec := httptest.NewRecorder()
	suite.handler.HandleFlowLoginRequest(rec, req)
	return rec
}

func (suite *HandlerTestSuite) TestLoginResolvesIdentityThroughProvider() {
	suite.seedSessionAt(StepUserLogin)
	suite.authProvider.identity = &authn.Identity{UserID: "user-42", Email: "shopper@example.com"}

	rec := suite.postLogin(map[string]any{
		"provider":       "email",
		"email":          "shopper@example.com",
		"password":       "hunter2",
		"marketingOptIn": true,
	})

	suite.Equal(http.StatusOK, rec.Code)

	var response flowStateResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	suite.Equal(StepAuthentication, response.Step)

	// The linked user is the provider's identity, not anything the client sent.
	session := suite.collaborator.sessions["session-1"]
	suite.Equal("user-42", session.UserID)
	suite.True(session.MarketingOptIn)
	suite.Equal(LoginProviderEmail, session.CreatedVia)
	suite.Equal("shopper@example.com", suite.authProvider.lastEmail)
	suite.Equal("hunter2", suite.authProvider.lastPassword)
	suite.False(suite.authProvider.signUp)
}

func (suite *HandlerTestSuite) TestLoginSignUpUsesProviderSignUp() {
	suite.seedSessionAt(StepUserLogin)
	suite.authProvider.identity = &authn.Identity{UserID: "user-77"}

	rec := suite.postLogin(map[string]any{
		"provider": "email",
		"email":    "new@example.com",
		"password": "secret",
		"signUp":   true,
	})

	suite.Equal(http.StatusOK, rec.Code)
	suite.True(suite.authProvider.signUp)
	suite.Equal("user-77", suite.collaborator.sessions["session-1"].UserID)
}

func (suite *HandlerTestSuite) TestLoginSocialProvidersPassTokenThrough() {
	tests := []struct {
		name     string
		provider string
		expected authn.OAuthProvider
	}{
		{name: "Google", provider: "google", expected: authn.OAuthProviderGoogle},
		{name: "Apple", provider: "apple", expected: authn.OAuthProviderApple},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.seedSessionAt(StepUserLogin)
			suite.authProvider.identity = &authn.Identity{UserID: "user-9"}

			rec := suite.postLogin(map[string]any{
				"provider": tc.provider,
				"token":    "oauth-token-abc",
			})

			suite.Equal(http.StatusOK, rec.Code)
			suite.Equal(tc.expected, suite.authProvider.lastProvider)
			suite.Equal("oauth-token-abc", suite.authProvider.lastToken)
			suite.Equal("user-9", suite.collaborator.sessions["session-1"].UserID)
		})
	}
}

func (suite *HandlerTestSuite) TestLoginProviderRejectionLinksNothing() {
	session := suite.seedSessionAt(StepUserLogin)
	suite.authProvider.err = errors.New("invalid credentials")

	rec := suite.postLogin(map[string]any{
		"provider": "email",
		"email":    "shopper@example.com",
		"password": "wrong",
	})

	suite.Equal(http.StatusBadRequest, rec.Code)

	var errResp apierror.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errResp))
	suite.Equal(ErrorAuthenticationFailed.Code, errResp.Code)
	suite.Empty(session.UserID)
	suite.Equal(StepUserLogin, session.Step)
}

func (suite *HandlerTestSuite) TestLoginUnsupportedProviderRejected() {
	suite.seedSessionAt(StepUserLogin)
	suite.authProvider.identity = &authn.Identity{UserID: "user-1"}

	rec := suite.postLogin(map[string]any{"provider": "carrier-pigeon"})

	suite.Equal(http.StatusBadRequest, rec.Code)

	var errResp apierror.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errResp))
	suite.Equal(ErrorAuthenticationFailed.Code, errResp.Code)
}

func (suite *HandlerTestSuite) TestPageMergesLiveBrandPaletteOverSnapshot() {
	session := suite.seedSessionAt(StepUserLogin)
	session.Brand.BrandColors = map[string]string{"primary": "#111111", "accent": "#old"}

	suite.brandService.brand = &brand.Brand{
		ID:          "brand-1",
		Name:        "Acme",
		BrandColors: map[string]string{"accent": "#22cc88"},
	}
	suite.loader.result = &content.LoadResult{
		Content: &content.Document{
			Pages: []content.Page{{
				ID:   "page-login",
				Name: "Login",
				Type: string(StepUserLogin),
				Sections: []content.Section{{
					ID:     "section-login",
					Type:   content.SectionTypeLoginStep,
					Config: &content.LoginStepConfig{Heading: "Sign in"},
				}},
			}},
		},
		SourceMode: content.SourceModePublished,
		Metadata:   content.Metadata{CampaignID: "campaign-1", Version: 1},
	}

	req := httptest.NewRequest(http.MethodGet, "/flow/sessions/session-1/page", nil)
	req.SetPathValue("id", "session-1")
	rec := httptest.NewRecorder()
	suite.handler.HandleFlowPageRequest(rec, req)

	suite.Equal(http.StatusOK, rec.Code)

	var response pageResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	suite.Require().Len(response.Sections, 1)

	var prompt *render.Element
	for i, element := range response.Sections[0].Elements {
		if element.Kind == render.ElementKindAuthPrompt {
			prompt = &response.Sections[0].Elements[i]
		}
	}
	suite.Require().NotNil(prompt, "login step should render an auth prompt")

	// The live accent wins; the snapshot fills the slots the live brand lacks.
	suite.Equal("#22cc88", prompt.Props["brandColor.accent"])
	suite.Equal("#111111", prompt.Props["brandColor.primary"])
}

func (suite *HandlerTestSuite) TestPageFallsBackToSnapshotPaletteWhenBrandGone() {
	session := suite.seedSessionAt(StepUserLogin)
	session.Brand.BrandColors = map[string]string{"primary": "#111111"}

	suite.loader.result = &content.LoadResult{
		Content: &content.Document{
			Pages: []content.Page{{
				ID:   "page-login",
				Type: string(StepUserLogin),
				Sections: []content.Section{{
					ID:     "section-login",
					Type:   content.SectionTypeLoginStep,
					Config: &content.LoginStepConfig{},
				}},
			}},
		},
		SourceMode: content.SourceModePublished,
		Metadata:   content.Metadata{CampaignID: "campaign-1", Version: 1},
	}

	req := httptest.NewRequest(http.MethodGet, "/flow/sessions/session-1/page", nil)
	req.SetPathValue("id", "session-1")
	rec := httptest.NewRecorder()
	suite.handler.HandleFlowPageRequest(rec, req)

	suite.Equal(http.StatusOK, rec.Code)

	var response pageResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	suite.Require().Len(response.Sections, 1)

	var prompt *render.Element
	for i, element := range response.Sections[0].Elements {
		if element.Kind == render.ElementKindAuthPrompt {
			prompt = &response.Sections[0].Elements[i]
		}
	}
	suite.Require().NotNil(prompt)
	suite.Equal("#111111", prompt.Props["brandColor.primary"])
}
