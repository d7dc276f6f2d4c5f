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

package qrcode

import (
	"encoding/json"
	"net/http"

	serverconst "github.com/veritag/veritag/internal/system/constants"
	"github.com/veritag/veritag/internal/system/error/apierror"
	"github.com/veritag/veritag/internal/system/error/serviceerror"
	"github.com/veritag/veritag/internal/system/log"
	sysutils "github.com/veritag/veritag/internal/system/utils"
)

// Handler handles QR batch management HTTP requests.
type Handler struct {
	service ServiceInterface
}

// NewHandler creates a new QR code handler.
func NewHandler() *Handler {
	return &Handler{
		service: GetQRCodeService(),
	}
}

// batchCreateResponse is the response body for a batch creation request.
type batchCreateResponse struct {
	Batch Batch    `json:"batch"`
	Codes []QRCode `json:"codes"`
}

// HandleBatchCreateRequest handles the create QR batch request.
func (h *Handler) HandleBatchCreateRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[CreateBatchRequest](r)
	if err != nil {
		svcErr := ErrorInvalidBatchRequest.WithDescription(err.Error())
		writeServiceError(w, &svcErr)
		return
	}

	batch, codes, svcErr := h.service.CreateBatch(*request)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusCreated, batchCreateResponse{Batch: *batch, Codes: codes})
}

// HandleBatchGetRequest handles the get QR batch request.
func (h *Handler) HandleBatchGetRequest(w http.ResponseWriter, r *http.Request) {
	batchID := sysutils.SanitizeString(r.PathValue("id"))

	batch, svcErr := h.service.GetBatch(batchID)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, batch)
}

// HandleBatchListRequest handles the list QR batches request for a campaign.
func (h *Handler) HandleBatchListRequest(w http.ResponseWriter, r *http.Request) {
	campaignID := sysutils.SanitizeString(r.URL.Query().Get("campaignId"))

	batches, svcErr := h.service.ListBatchesByCampaign(campaignID)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, batches)
}

// writeJSONResponse writes a JSON response with the given status code.
func writeJSONResponse(w http.ResponseWriter, statusCode int, payload any) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "QRCodeHandler"))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeServiceError writes a service error as an API error response.
func writeServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "QRCodeHandler"))

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	if svcErr.Type == serviceerror.ClientErrorType {
		if svcErr.Code == ErrorBatchNotFound.Code || svcErr.Code == ErrorQRCodeNotFound.Code {
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
