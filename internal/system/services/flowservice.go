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

	"github.com/veritag/veritag/internal/flow"
	"github.com/veritag/veritag/internal/system/middleware"
)

// FlowService defines the service for handling certification flow execution requests.
type FlowService struct {
	flowHandler *flow.Handler
}

// NewFlowService creates a new instance of FlowService.
func NewFlowService(mux *http.ServeMux) ServiceInterface {
	instance := &FlowService{
		flowHandler: flow.NewHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the FlowService.
func (s *FlowService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /flow/start",
		s.flowHandler.HandleFlowStartRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /flow/start",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /flow/sessions/{id}",
		s.flowHandler.HandleFlowSessionGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("POST /flow/sessions/{id}/store",
		s.flowHandler.HandleFlowStoreRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("POST /flow/sessions/{id}/login",
		s.flowHandler.HandleFlowLoginRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("POST /flow/sessions/{id}/verify",
		s.flowHandler.HandleFlowVerifyRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("POST /flow/sessions/{id}/step",
		s.flowHandler.HandleFlowStepRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("GET /flow/sessions/{id}/page",
		s.flowHandler.HandleFlowPageRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /flow/sessions/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
