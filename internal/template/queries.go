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
	"github.com/veritag/veritag/internal/system/database/model"
)

var (
	// QueryCreateTemplate is the query to create a new flow template.
	QueryCreateTemplate = model.DBQuery{
		ID: "TPQ-TEMPLATE-01",
		Query: "INSERT INTO FLOW_TEMPLATE (TEMPLATE_ID, CAMPAIGN_ID, NAME, TEMPLATE_FAMILY, " +
			"DESIGN_CONFIG, FLOW_CONFIG, PUBLISHED_SNAPSHOT, LATEST_PUBLISHED_VERSION) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
	}

	// QueryGetTemplateByID is the query to get a template by id.
	QueryGetTemplateByID = model.DBQuery{
		ID: "TPQ-TEMPLATE-02",
		Query: "SELECT TEMPLATE_ID, CAMPAIGN_ID, NAME, TEMPLATE_FAMILY, DESIGN_CONFIG, FLOW_CONFIG, " +
			"PUBLISHED_SNAPSHOT, LATEST_PUBLISHED_VERSION, CREATED_AT, UPDATED_AT " +
			"FROM FLOW_TEMPLATE WHERE TEMPLATE_ID = $1",
	}

	// QueryGetTemplateByCampaign is the query to get the template of a campaign.
	QueryGetTemplateByCampaign = model.DBQuery{
		ID: "TPQ-TEMPLATE-03",
		Query: "SELECT TEMPLATE_ID, CAMPAIGN_ID, NAME, TEMPLATE_FAMILY, DESIGN_CONFIG, FLOW_CONFIG, " +
			"PUBLISHED_SNAPSHOT, LATEST_PUBLISHED_VERSION, CREATED_AT, UPDATED_AT " +
			"FROM FLOW_TEMPLATE WHERE CAMPAIGN_ID = $1",
	}

	// QueryUpdateTemplateDraft is the query to update a template's draft and design config.
	QueryUpdateTemplateDraft = model.DBQuery{
		ID: "TPQ-TEMPLATE-04",
		Query: "UPDATE FLOW_TEMPLATE SET NAME = $2, DESIGN_CONFIG = $3, FLOW_CONFIG = $4, " +
			"UPDATED_AT = CURRENT_TIMESTAMP WHERE TEMPLATE_ID = $1",
	}

	// QueryPublishTemplate is the query to copy the draft into the published
	// snapshot and advance the version counter.
	QueryPublishTemplate = model.DBQuery{
		ID: "TPQ-TEMPLATE-05",
		Query: "UPDATE FLOW_TEMPLATE SET PUBLISHED_SNAPSHOT = $2, " +
			"LATEST_PUBLISHED_VERSION = LATEST_PUBLISHED_VERSION + 1, " +
			"UPDATED_AT = CURRENT_TIMESTAMP WHERE TEMPLATE_ID = $1",
	}

	// QueryDeleteTemplate is the query to delete a template.
	QueryDeleteTemplate = model.DBQuery{
		ID:    "TPQ-TEMPLATE-06",
		Query: "DELETE FROM FLOW_TEMPLATE WHERE TEMPLATE_ID = $1",
	}
)
