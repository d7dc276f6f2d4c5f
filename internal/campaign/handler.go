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
	"encoding/json"
	"net/http"

	serverconst "github.com/veritag/veritag/internal/system/constants"
	"github.com/veritag/veritag/internal/system/error/apierror"
	"github.com/veritag/veritag/internal/system/error/serviceerror"
	"github.com/veritag/veritag/internal/system/log"
	sysutils "github.com/veritag/veritag/internal/system/utils"
)

// Handler handles campaign management HTTP requests.
type Handler struct {
	service ServiceInterface
}

// NewHandler creates a new campaign handler.
func NewHandler() *Handler {
	return &Handler{
		service: GetCampaignService(),
	}
}

// HandleCampaignListRequest handles the list campaigns request for a brand.
func (h *Handler) HandleCampaignListRequest(w http.ResponseWriter, r *http.Request) {
	brandID := sysutils.SanitizeString(r.URL.Query().Get("brandId"))

	campaigns, svcErr := h.service.ListCampaignsByBrand(brandID)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, campaigns)
}

// HandleCampaignGetRequest handles the get campaign request.
func (h *Handler) HandleCampaignGetRequest(w http.ResponseWriter, r *http.Request) {
	campaignID := sysutils.SanitizeString(r.PathValue("id"))

	campaign, svcErr := h.service.GetCampaign(campaignID)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, campaign)
}

// HandleCampaignCreateRequest handles the create campaign request.
func (h *Handler) HandleCampaignCreateRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[CreateCampaignRequest](r)
	if err != nil {
		svcErr := ErrorInvalidCampaignRequest.WithDescription(err.Error())
		writeServiceError(w, &svcErr)
		return
	}

	campaign, svcErr := h.service.CreateCampaign(*request)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusCreated, campaign)
}

// HandleCampaignUpdateRequest handles the update campaign request.
func (h *Handler) HandleCampaignUpdateRequest(w http.ResponseWriter, r *http.Request) {
	campaignID := sysutils.SanitizeString(r.PathValue("id"))

	request, err := sysutils.DecodeJSONBody[UpdateCampaignRequest](r)
	if err != nil {
		svcErr := ErrorInvalidCampaignRequest.WithDescription(err.Error())
		writeServiceError(w, &svcErr)
		return
	}

	campaign, svcErr := h.service.UpdateCampaign(campaignID, *request)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, campaign)
}

// HandleCampaignDeleteRequest handles the delete campaign request.
func (h *Handler) HandleCampaignDeleteRequest(w http.ResponseWriter, r *http.Request) {
	campaignID := sysutils.SanitizeString(r.PathValue("id"))

	if svcErr := h.service.DeleteCampaign(campaignID); svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeJSONResponse writes a JSON response with the given status code.
func writeJSONResponse(w http.ResponseWriter, statusCode int, payload any) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CampaignHandler"))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeServiceError writes a service error as an API error response.
func writeServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CampaignHandler"))

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	if svcErr.Type == serviceerror.ClientErrorType {
		if svcErr.Code == ErrorCampaignNotFound.Code {
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
