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

package content

import (
	"github.com/veritag/veritag/internal/system/database/model"
)

var (
	// QueryGetContentRecord is the query to get the flow content record for a campaign.
	QueryGetContentRecord = model.DBQuery{
		ID: "COQ-CONTENT-01",
		Query: "SELECT CAMPAIGN_ID, TEMPLATE_ID, TEMPLATE_FAMILY, DESIGN_CONFIG, FLOW_CONFIG, " +
			"PUBLISHED_SNAPSHOT, LATEST_PUBLISHED_VERSION FROM FLOW_TEMPLATE WHERE CAMPAIGN_ID = $1",
	}

	// QueryGetLegacyContentRows is the query to get the ordered legacy content rows for a campaign.
	QueryGetLegacyContentRows = model.DBQuery{
		ID: "COQ-CONTENT-02",
		Query: "SELECT PAGE_ID, PAGE_NAME, PAGE_TYPE, SECTION_ID, SECTION_TYPE, POSITION, CONFIG " +
			"FROM LEGACY_FLOW_CONTENT WHERE CAMPAIGN_ID = $1 ORDER BY POSITION ASC",
	}
)
