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

	"github.com/veritag/veritag/internal/campaign"
	"github.com/veritag/veritag/internal/system/middleware"
)

// CampaignService defines the service for handling campaign management requests.
type CampaignService struct {
	campaignHandler *campaign.Handler
}

// NewCampaignService creates a new instance of CampaignService.
func NewCampaignService(mux *http.ServeMux) ServiceInterface {
	instance := &CampaignService{
		campaignHandler: campaign.NewHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the CampaignService.
func (s *CampaignService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /campaigns",
		s.campaignHandler.HandleCampaignCreateRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /campaigns",
		s.campaignHandler.HandleCampaignListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /campaigns",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /campaigns/{id}",
		s.campaignHandler.HandleCampaignGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /campaigns/{id}",
		s.campaignHandler.HandleCampaignUpdateRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /campaigns/{id}",
		s.campaignHandler.HandleCampaignDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /campaigns/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
