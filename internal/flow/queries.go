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

package flow

import (
	"github.com/veritag/veritag/internal/system/database/model"
)

var (
	// QueryCreateFlowSession is the query to create a new flow session.
	QueryCreateFlowSession = model.DBQuery{
		ID: "FLQ-SESSION-01",
		Query: "INSERT INTO FLOW_SESSION (SESSION_ID, QR_ID, STATUS, STEP, CAMPAIGN_ID, CAMPAIGN_NAME, " +
			"FINAL_REDIRECT_URL, BRAND_ID, BRAND_NAME, BRAND_LOGO_URL, BRAND_COLORS) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)",
	}

	// QueryGetFlowSessionByID is the query to get a flow session by id.
	QueryGetFlowSessionByID = model.DBQuery{
		ID: "FLQ-SESSION-02",
		Query: "SELECT SESSION_ID, QR_ID, STATUS, STEP, STORE_META, USER_ID, MARKETING_OPT_IN, CREATED_VIA, " +
			"CAMPAIGN_ID, CAMPAIGN_NAME, FINAL_REDIRECT_URL, BRAND_ID, BRAND_NAME, BRAND_LOGO_URL, " +
			"BRAND_COLORS, VERIFICATION, CREATED_AT, UPDATED_AT FROM FLOW_SESSION WHERE SESSION_ID = $1",
	}

	// QueryUpdateFlowSessionStore is the query to persist the session's store choice.
	QueryUpdateFlowSessionStore = model.DBQuery{
		ID: "FLQ-SESSION-03",
		Query: "UPDATE FLOW_SESSION SET STORE_META = $2, UPDATED_AT = CURRENT_TIMESTAMP " +
			"WHERE SESSION_ID = $1",
	}

	// QueryUpdateFlowSessionUser is the query to link a user to the session.
	QueryUpdateFlowSessionUser = model.DBQuery{
		ID: "FLQ-SESSION-04",
		Query: "UPDATE FLOW_SESSION SET USER_ID = $2, MARKETING_OPT_IN = $3, CREATED_VIA = $4, " +
			"UPDATED_AT = CURRENT_TIMESTAMP WHERE SESSION_ID = $1",
	}

	// QueryUpdateFlowSessionStep is the query to persist the session's step and status.
	QueryUpdateFlowSessionStep = model.DBQuery{
		ID: "FLQ-SESSION-05",
		Query: "UPDATE FLOW_SESSION SET STEP = $2, STATUS = $3, UPDATED_AT = CURRENT_TIMESTAMP " +
			"WHERE SESSION_ID = $1",
	}

	// QueryUpdateFlowSessionVerification is the query to persist the verification outcome.
	QueryUpdateFlowSessionVerification = model.DBQuery{
		ID: "FLQ-SESSION-06",
		Query: "UPDATE FLOW_SESSION SET VERIFICATION = $2, UPDATED_AT = CURRENT_TIMESTAMP " +
			"WHERE SESSION_ID = $1",
	}
)
