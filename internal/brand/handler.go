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
	"net/http"

	serverconst "github.com/veritag/veritag/internal/system/constants"
	"github.com/veritag/veritag/internal/system/error/apierror"
	"github.com/veritag/veritag/internal/system/error/serviceerror"
	"github.com/veritag/veritag/internal/system/log"
	sysutils "github.com/veritag/veritag/internal/system/utils"
)

// Handler handles brand management HTTP requests.
type Handler struct {
	service ServiceInterface
}

// NewHandler creates a new brand handler.
func NewHandler() *Handler {
	return &Handler{
		service: GetBrandService(),
	}
}

// HandleBrandListRequest handles the list brands request.
func (h *Handler) HandleBrandListRequest(w http.ResponseWriter, r *http.Request) {
	brands, svcErr := h.service.ListBrands()
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, brands)
}

// HandleBrandGetRequest handles the get brand request.
func (h *Handler) HandleBrandGetRequest(w http.ResponseWriter, r *http.Request) {
	brandID := sysutils.SanitizeString(r.PathValue("id"))

	brand, svcErr := h.service.GetBrand(brandID)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, brand)
}

// HandleBrandCreateRequest handles the create brand request.
func (h *Handler) HandleBrandCreateRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[CreateBrandRequest](r)
	if err != nil {
		svcErr := ErrorInvalidBrandRequest.WithDescription(err.Error())
		writeServiceError(w, &svcErr)
		return
	}

	brand, svcErr := h.service.CreateBrand(*request)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusCreated, brand)
}

// HandleBrandUpdateRequest handles the update brand request.
func (h *Handler) HandleBrandUpdateRequest(w http.ResponseWriter, r *http.Request) {
	brandID := sysutils.SanitizeString(r.PathValue("id"))

	request, err := sysutils.DecodeJSONBody[UpdateBrandRequest](r)
	if err != nil {
		svcErr := ErrorInvalidBrandRequest.WithDescription(err.Error())
		writeServiceError(w, &svcErr)
		return
	}

	brand, svcErr := h.service.UpdateBrand(brandID, *request)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, brand)
}

// HandleBrandDeleteRequest handles the delete brand request.
func (h *Handler) HandleBrandDeleteRequest(w http.ResponseWriter, r *http.Request) {
	brandID := sysutils.SanitizeString(r.PathValue("id"))

	if svcErr := h.service.DeleteBrand(brandID); svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeJSONResponse writes a JSON response with the given status code.
func writeJSONResponse(w http.ResponseWriter, statusCode int, payload any) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "BrandHandler"))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeServiceError writes a service error as an API error response.
func writeServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "BrandHandler"))

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	if svcErr.Type == serviceerror.ClientErrorType {
		if svcErr.Code == ErrorBrandNotFound.Code {
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
