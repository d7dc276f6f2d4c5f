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
	"github.com/veritag/veritag/internal/system/database/model"
)

var (
	// QueryCreateCampaign is the query to create a new campaign.
	QueryCreateCampaign = model.DBQuery{
		ID: "CMQ-CAMPAIGN-01",
		Query: "INSERT INTO CAMPAIGN (CAMPAIGN_ID, BRAND_ID, NAME, STATUS, FINAL_REDIRECT_URL, " +
			"LOCKED_DESIGN_TOKENS) VALUES ($1, $2, $3, $4, $5, $6)",
	}

	// QueryGetCampaignByID is the query to get a campaign by id.
	QueryGetCampaignByID = model.DBQuery{
		ID: "CMQ-CAMPAIGN-02",
		Query: "SELECT CAMPAIGN_ID, BRAND_ID, NAME, STATUS, FINAL_REDIRECT_URL, LOCKED_DESIGN_TOKENS, " +
			"CREATED_AT, UPDATED_AT FROM CAMPAIGN WHERE CAMPAIGN_ID = $1",
	}

	// QueryGetCampaignListByBrand is the query to list the campaigns of a brand.
	QueryGetCampaignListByBrand = model.DBQuery{
		ID: "CMQ-CAMPAIGN-03",
		Query: "SELECT CAMPAIGN_ID, BRAND_ID, NAME, STATUS, FINAL_REDIRECT_URL, LOCKED_DESIGN_TOKENS, " +
			"CREATED_AT, UPDATED_AT FROM CAMPAIGN WHERE BRAND_ID = $1 ORDER BY CREATED_AT DESC",
	}

	// QueryUpdateCampaign is the query to update a campaign.
	QueryUpdateCampaign = model.DBQuery{
		ID: "CMQ-CAMPAIGN-04",
		Query: "UPDATE CAMPAIGN SET NAME = $2, STATUS = $3, FINAL_REDIRECT_URL = $4, " +
			"LOCKED_DESIGN_TOKENS = $5, UPDATED_AT = CURRENT_TIMESTAMP WHERE CAMPAIGN_ID = $1",
	}

	// QueryDeleteCampaign is the query to delete a campaign.
	QueryDeleteCampaign = model.DBQuery{
		ID:    "CMQ-CAMPAIGN-05",
		Query: "DELETE FROM CAMPAIGN WHERE CAMPAIGN_ID = $1",
	}
)
