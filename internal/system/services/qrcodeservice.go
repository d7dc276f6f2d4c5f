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

package services

import (
	"net/http"

	"github.com/veritag/veritag/internal/qrcode"
	"github.com/veritag/veritag/internal/system/middleware"
)

// QRCodeService defines the service for handling QR batch management requests.
type QRCodeService struct {
	qrCodeHandler *qrcode.Handler
}

// NewQRCodeService creates a new instance of QRCodeService.
func NewQRCodeService(mux *http.ServeMux) ServiceInterface {
	instance := &QRCodeService{
		qrCodeHandler: qrcode.NewHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the QRCodeService.
func (s *QRCodeService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /qr-batches",
		s.qrCodeHandler.HandleBatchCreateRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /qr-batches",
		s.qrCodeHandler.HandleBatchListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /qr-batches",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /qr-batches/{id}",
		s.qrCodeHandler.HandleBatchGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /qr-batches/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
