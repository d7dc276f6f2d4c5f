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
	"net/http"

	serverconst "github.com/veritag/veritag/internal/system/constants"
	"github.com/veritag/veritag/internal/system/error/apierror"
	"github.com/veritag/veritag/internal/system/error/serviceerror"
	"github.com/veritag/veritag/internal/system/log"
	sysutils "github.com/veritag/veritag/internal/system/utils"
)

// Handler handles flow template management HTTP requests.
type Handler struct {
	service ServiceInterface
}

// NewHandler creates a new template handler.
func NewHandler() *Handler {
	return &Handler{
		service: GetTemplateService(),
	}
}

// HandleTemplateCreateRequest handles the create template request.
func (h *Handler) HandleTemplateCreateRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[CreateTemplateRequest](r)
	if err != nil {
		svcErr := ErrorInvalidTemplateRequest.WithDescription(err.Error())
		writeServiceError(w, &svcErr)
		return
	}

	template, svcErr := h.service.CreateTemplate(*request)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusCreated, template)
}

// HandleTemplateGetRequest handles the get template request. A campaignId
// query parameter retrieves by owning campaign instead.
func (h *Handler) HandleTemplateGetRequest(w http.ResponseWriter, r *http.Request) {
	templateID := sysutils.SanitizeString(r.PathValue("id"))

	template, svcErr := h.service.GetTemplate(templateID)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, template)
}

// HandleTemplateByCampaignRequest handles the get template by campaign request.
func (h *Handler) HandleTemplateByCampaignRequest(w http.ResponseWriter, r *http.Request) {
	campaignID := sysutils.SanitizeString(r.URL.Query().Get("campaignId"))

	template, svcErr := h.service.GetTemplateByCampaign(campaignID)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, template)
}

// HandleTemplateDraftUpdateRequest handles the update draft request.
func (h *Handler) HandleTemplateDraftUpdateRequest(w http.ResponseWriter, r *http.Request) {
	templateID := sysutils.SanitizeString(r.PathValue("id"))

	request, err := sysutils.DecodeJSONBody[UpdateDraftRequest](r)
	if err != nil {
		svcErr := ErrorInvalidTemplateRequest.WithDescription(err.Error())
		writeServiceError(w, &svcErr)
		return
	}

	template, svcErr := h.service.UpdateDraft(templateID, *request)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, template)
}

// HandleTemplateCloneRequest handles the clone template request.
func (h *Handler) HandleTemplateCloneRequest(w http.ResponseWriter, r *http.Request) {
	templateID := sysutils.SanitizeString(r.PathValue("id"))

	request, err := sysutils.DecodeJSONBody[CloneTemplateRequest](r)
	if err != nil {
		svcErr := ErrorInvalidTemplateRequest.WithDescription(err.Error())
		writeServiceError(w, &svcErr)
		return
	}

	clone, svcErr := h.service.CloneTemplate(templateID, *request)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusCreated, clone)
}

// HandleTemplatePublishRequest handles the publish template request.
func (h *Handler) HandleTemplatePublishRequest(w http.ResponseWriter, r *http.Request) {
	templateID := sysutils.SanitizeString(r.PathValue("id"))

	template, svcErr := h.service.PublishTemplate(templateID)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, template)
}

// HandleTemplateDeleteRequest handles the delete template request.
func (h *Handler) HandleTemplateDeleteRequest(w http.ResponseWriter, r *http.Request) {
	templateID := sysutils.SanitizeString(r.PathValue("id"))

	if svcErr := h.service.DeleteTemplate(templateID); svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeJSONResponse writes a JSON response with the given status code.
func writeJSONResponse(w http.ResponseWriter, statusCode int, payload any) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "TemplateHandler"))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeServiceError writes a service error as an API error response.
func writeServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "TemplateHandler"))

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	if svcErr.Type == serviceerror.ClientErrorType {
		switch svcErr.Code {
		case ErrorTemplateNotFound.Code:
			w.WriteHeader(http.StatusNotFound)
		case ErrorCampaignAlreadyHasTemplate.Code:
			w.WriteHeader(http.StatusConflict)
		default:
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
