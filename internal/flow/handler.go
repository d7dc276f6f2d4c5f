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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/veritag/veritag/internal/authn"
	"github.com/veritag/veritag/internal/brand"
	"github.com/veritag/veritag/internal/campaign"
	"github.com/veritag/veritag/internal/content"
	"github.com/veritag/veritag/internal/render"
	"github.com/veritag/veritag/internal/style"
	serverconst "github.com/veritag/veritag/internal/system/constants"
	"github.com/veritag/veritag/internal/system/error/apierror"
	"github.com/veritag/veritag/internal/system/error/serviceerror"
	"github.com/veritag/veritag/internal/system/log"
	sysutils "github.com/veritag/veritag/internal/system/utils"
	"github.com/veritag/veritag/internal/telemetry"
)

// Handler handles the certification flow HTTP requests. Each request rehydrates
// a controller around the addressed session; the controller instance never
// outlives the request.
type Handler struct {
	collaborator    Collaborator
	telemetry       telemetry.ServiceInterface
	loader          content.LoaderInterface
	campaignService campaign.ServiceInterface
	brandService    brand.ServiceInterface
	authnProvider   authn.ProviderInterface
}

// NewHandler creates a new flow handler.
func NewHandler() *Handler {
	return newHandler(GetFlowCollaborator(), telemetry.GetTelemetryService(),
		content.GetContentLoader(), campaign.GetCampaignService(),
		brand.GetBrandService(), authn.GetProvider())
}

// newHandler creates a flow handler with explicit dependencies.
func newHandler(collaborator Collaborator, telemetryService telemetry.ServiceInterface,
	loader content.LoaderInterface, campaignService campaign.ServiceInterface,
	brandService brand.ServiceInterface, authnProvider authn.ProviderInterface) *Handler {
	return &Handler{
		collaborator:    collaborator,
		telemetry:       telemetryService,
		loader:          loader,
		campaignService: campaignService,
		brandService:    brandService,
		authnProvider:   authnProvider,
	}
}

// flowStateResponse is the session view returned by the flow endpoints.
type flowStateResponse struct {
	Step          FlowStep     `json:"step"`
	InvalidReason string       `json:"invalidReason,omitempty"`
	Session       *FlowSession `json:"session,omitempty"`
}

// startFlowRequest is the request body for starting a flow.
type startFlowRequest struct {
	QRID          string `json:"qrId,omitempty"`
	TestSessionID string `json:"testSessionId,omitempty"`
}

// HandleFlowStartRequest handles the start flow request. Resolution failures
// answer with the invalid step and a retained reason, not an error status.
func (h *Handler) HandleFlowStartRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[startFlowRequest](r)
	if err != nil {
		svcErr := ErrorInvalidFlowRequest.WithDescription(err.Error())
		writeServiceError(w, &svcErr)
		return
	}

	controller := NewController(h.collaborator, h.telemetry)
	controller.StartFlow(r.Context(), sysutils.SanitizeString(request.QRID),
		sysutils.SanitizeString(request.TestSessionID))

	writeJSONResponse(w, http.StatusOK, flowStateResponse{
		Step:          controller.CurrentStep(),
		InvalidReason: controller.InvalidReason(),
		Session:       controller.Session(),
	})
}

// HandleFlowSessionGetRequest handles the get flow session request.
func (h *Handler) HandleFlowSessionGetRequest(w http.ResponseWriter, r *http.Request) {
	sessionID := sysutils.SanitizeString(r.PathValue("id"))

	session, err := h.collaborator.GetFlowSession(r.Context(), sessionID)
	if err != nil {
		writeCollaboratorError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, session)
}

// updateStoreRequest is the request body for the store selection step.
type updateStoreRequest struct {
	LocationType string       `json:"locationType"`
	StoreName    string       `json:"storeName"`
	GeoLocation  *GeoLocation `json:"geoLocation,omitempty"`
}

// HandleFlowStoreRequest handles the store selection request.
func (h *Handler) HandleFlowStoreRequest(w http.ResponseWriter, r *http.Request) {
	sessionID := sysutils.SanitizeString(r.PathValue("id"))

	request, err := sysutils.DecodeJSONBody[updateStoreRequest](r)
	if err != nil {
		svcErr := ErrorInvalidFlowRequest.WithDescription(err.Error())
		writeServiceError(w, &svcErr)
		return
	}

	controller, svcErr := h.rehydrate(r, sessionID)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}

	ok := controller.UpdateStore(r.Context(), StoreMeta{
		LocationType: sysutils.SanitizeString(request.LocationType),
		StoreName:    sysutils.SanitizeString(request.StoreName),
		GeoLocation:  request.GeoLocation,
	})
	if !ok {
		writeServiceError(w, &ErrorFlowOperationFailed)
		return
	}

	controller.GoToNextStep(r.Context())
	writeJSONResponse(w, http.StatusOK, flowStateResponse{
		Step:    controller.CurrentStep(),
		Session: controller.Session(),
	})
}

// linkUserRequest is the request body for the login step. Email and password
// carry credential logins, token carries social logins; the identity itself is
// only ever resolved by the authentication provider.
type linkUserRequest struct {
	Provider       LoginProvider `json:"provider"`
	Email          string        `json:"email,omitempty"`
	Password       string        `json:"password,omitempty"`
	Token          string        `json:"token,omitempty"`
	SignUp         bool          `json:"signUp,omitempty"`
	MarketingOptIn bool          `json:"marketingOptIn"`
}

// HandleFlowLoginRequest handles the user link request.
func (h *Handler) HandleFlowLoginRequest(w http.ResponseWriter, r *http.Request) {
	sessionID := sysutils.SanitizeString(r.PathValue("id"))

	request, err := sysutils.DecodeJSONBody[linkUserRequest](r)
	if err != nil {
		svcErr := ErrorInvalidFlowRequest.WithDescription(err.Error())
		writeServiceError(w, &svcErr)
		return
	}

	controller, svcErr := h.rehydrate(r, sessionID)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}

	identity, err := h.resolveIdentity(r.Context(), request)
	if err != nil {
		svcErr := ErrorAuthenticationFailed.WithDescription(err.Error())
		writeServiceError(w, &svcErr)
		return
	}

	if !controller.LinkUser(r.Context(), identity, request.Provider, request.MarketingOptIn) {
		writeServiceError(w, &ErrorFlowOperationFailed)
		return
	}

	controller.GoToNextStep(r.Context())
	writeJSONResponse(w, http.StatusOK, flowStateResponse{
		Step:    controller.CurrentStep(),
		Session: controller.Session(),
	})
}

// resolveIdentity resolves the login request through the external
// authentication provider.
func (h *Handler) resolveIdentity(ctx context.Context,
	request *linkUserRequest) (*authn.Identity, error) {
	email := sysutils.SanitizeString(request.Email)

	switch request.Provider {
	case LoginProviderGoogle:
		return h.authnProvider.SignInWithOAuth(ctx, authn.OAuthProviderGoogle, request.Token)
	case LoginProviderApple:
		return h.authnProvider.SignInWithOAuth(ctx, authn.OAuthProviderApple, request.Token)
	case LoginProviderEmail:
		if request.SignUp {
			return h.authnProvider.SignUp(ctx, email, request.Password)
		}
		return h.authnProvider.SignIn(ctx, email, request.Password)
	default:
		return nil, fmt.Errorf("unsupported login provider %q", request.Provider)
	}
}

// HandleFlowVerifyRequest handles the verification request.
func (h *Handler) HandleFlowVerifyRequest(w http.ResponseWriter, r *http.Request) {
	sessionID := sysutils.SanitizeString(r.PathValue("id"))

	controller, svcErr := h.rehydrate(r, sessionID)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}

	record := controller.RunVerification(r.Context())
	if record == nil {
		writeServiceError(w, &ErrorFlowOperationFailed)
		return
	}

	controller.GoToNextStep(r.Context())
	writeJSONResponse(w, http.StatusOK, struct {
		Step         FlowStep            `json:"step"`
		Verification *VerificationRecord `json:"verification"`
		Session      *FlowSession        `json:"session"`
	}{
		Step:         controller.CurrentStep(),
		Verification: record,
		Session:      controller.Session(),
	})
}

// stepRequest is the request body for explicit navigation.
type stepRequest struct {
	Direction string   `json:"direction,omitempty"`
	Step      FlowStep `json:"step,omitempty"`
}

// HandleFlowStepRequest handles next/prev navigation and direct step jumps.
func (h *Handler) HandleFlowStepRequest(w http.ResponseWriter, r *http.Request) {
	sessionID := sysutils.SanitizeString(r.PathValue("id"))

	request, err := sysutils.DecodeJSONBody[stepRequest](r)
	if err != nil {
		svcErr := ErrorInvalidFlowRequest.WithDescription(err.Error())
		writeServiceError(w, &svcErr)
		return
	}

	controller, svcErr := h.rehydrate(r, sessionID)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}

	switch {
	case request.Direction == "next":
		controller.GoToNextStep(r.Context())
	case request.Direction == "prev":
		controller.GoToPrevStep(r.Context())
	case request.Step != "":
		controller.GoToStep(r.Context(), request.Step)
	default:
		svcErr := ErrorInvalidFlowRequest.WithDescription("Either a direction or a step is required")
		writeServiceError(w, &svcErr)
		return
	}

	writeJSONResponse(w, http.StatusOK, flowStateResponse{
		Step:          controller.CurrentStep(),
		InvalidReason: controller.InvalidReason(),
		Session:       controller.Session(),
	})
}

// pageResponse is the rendered page view served to flow clients.
type pageResponse struct {
	Step       FlowStep                 `json:"step"`
	SourceMode content.SourceMode       `json:"sourceMode"`
	Metadata   content.Metadata         `json:"metadata"`
	Tokens     style.StyleTokens        `json:"tokens"`
	Sections   []render.RenderedSection `json:"sections"`
}

// HandleFlowPageRequest renders the page for the session's current step:
// content load, style token resolution and section rendering composed in one
// response.
func (h *Handler) HandleFlowPageRequest(w http.ResponseWriter, r *http.Request) {
	sessionID := sysutils.SanitizeString(r.PathValue("id"))
	forceDraft := r.URL.Query().Get("draft") == "true"

	session, err := h.collaborator.GetFlowSession(r.Context(), sessionID)
	if err != nil {
		writeCollaboratorError(w, err)
		return
	}

	result, svcErr := h.loader.Load(session.Campaign.ID, content.LoadOptions{ForceDraft: forceDraft})
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}

	var cmp *campaign.Campaign
	if resolved, svcErr := h.campaignService.GetCampaign(session.Campaign.ID); svcErr == nil {
		cmp = resolved
	}

	record := &content.Record{
		CampaignID:     result.Metadata.CampaignID,
		TemplateID:     result.Metadata.TemplateID,
		TemplateFamily: result.Metadata.Family,
		DesignConfig:   result.Content.DesignConfig,
	}
	tokens := style.Resolve(cmp, record, result.Metadata.TemplateID)

	// The session carries the palette snapshot taken at scan time; the live
	// brand palette wins when the brand is still reachable.
	brandColors := session.Brand.BrandColors
	if liveBrand, svcErr := h.brandService.GetBrand(session.Brand.ID); svcErr == nil {
		brandColors = sysutils.MergeStringMaps(session.Brand.BrandColors, liveBrand.BrandColors)
	}

	renderCtx := &render.Context{
		PreviewMode: forceDraft,
		BrandColors: brandColors,
	}
	if session.StoreMeta != nil {
		renderCtx.StoreSelection = &render.StoreSelection{
			LocationType: session.StoreMeta.LocationType,
			StoreName:    session.StoreMeta.StoreName,
		}
	}

	page := pageForStep(result.Content, session.Step)
	sections := render.RenderPage(page, tokens, renderCtx)

	writeJSONResponse(w, http.StatusOK, pageResponse{
		Step:       session.Step,
		SourceMode: result.SourceMode,
		Metadata:   result.Metadata,
		Tokens:     tokens,
		Sections:   sections,
	})
}

// rehydrate rebuilds a controller around an existing session.
func (h *Handler) rehydrate(r *http.Request, sessionID string) (*Controller,
	*serviceerror.ServiceError) {
	controller := NewController(h.collaborator, h.telemetry)
	if !controller.StartFlow(r.Context(), "", sessionID) {
		return nil, &ErrorFlowSessionNotFound
	}
	return controller, nil
}

// pageForStep picks the page matching the session's step by page type, falling
// back to the step's position in the flow order and finally the first page. A
// content document with no matching page still renders, just with the closest
// page available.
func pageForStep(doc *content.Document, step FlowStep) content.Page {
	if doc == nil || len(doc.Pages) == 0 {
		return content.Page{}
	}
	for _, page := range doc.Pages {
		if page.Type == string(step) {
			return page
		}
	}
	if index := stepIndex(step); index >= 0 && index < len(doc.Pages) {
		return doc.Pages[index]
	}
	return doc.Pages[0]
}

// writeJSONResponse writes a JSON response with the given status code.
func writeJSONResponse(w http.ResponseWriter, statusCode int, payload any) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FlowHandler"))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeCollaboratorError maps collaborator sentinel errors onto the flow API
// error responses.
func writeCollaboratorError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrSessionNotFound) {
		writeServiceError(w, &ErrorFlowSessionNotFound)
		return
	}
	svcErr := ErrorFlowServerError.WithDescription(err.Error())
	writeServiceError(w, &svcErr)
}

// writeServiceError writes a service error as an API error response.
func writeServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FlowHandler"))

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	if svcErr.Type == serviceerror.ClientErrorType {
		if svcErr.Code == ErrorFlowSessionNotFound.Code {
			w.WriteHeader(http.StatusNotFound)
		} else {
			w.WriteHeader(http.StatusBadRequest)
		}
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
