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
	"github.com/veritag/veritag/internal/system/database/model"
)

var (
	// QueryCreateBatch is the query to create a new QR batch.
	QueryCreateBatch = model.DBQuery{
		ID:    "QRQ-BATCH-01",
		Query: "INSERT INTO QR_BATCH (BATCH_ID, CAMPAIGN_ID, NAME, QUANTITY) VALUES ($1, $2, $3, $4)",
	}

	// QueryGetBatchByID is the query to get a QR batch by id.
	QueryGetBatchByID = model.DBQuery{
		ID: "QRQ-BATCH-02",
		Query: "SELECT BATCH_ID, CAMPAIGN_ID, NAME, QUANTITY, CREATED_AT FROM QR_BATCH " +
			"WHERE BATCH_ID = $1",
	}

	// QueryGetBatchListByCampaign is the query to list the batches of a campaign.
	QueryGetBatchListByCampaign = model.DBQuery{
		ID: "QRQ-BATCH-03",
		Query: "SELECT BATCH_ID, CAMPAIGN_ID, NAME, QUANTITY, CREATED_AT FROM QR_BATCH " +
			"WHERE CAMPAIGN_ID = $1 ORDER BY CREATED_AT DESC",
	}

	// QueryCreateQRCode is the query to create a new QR code.
	QueryCreateQRCode = model.DBQuery{
		ID:    "QRQ-CODE-01",
		Query: "INSERT INTO QR_CODE (QR_ID, BATCH_ID, CAMPAIGN_ID, SCAN_COUNT) VALUES ($1, $2, $3, 0)",
	}

	// QueryGetQRCodeByID is the query to get a QR code by id.
	QueryGetQRCodeByID = model.DBQuery{
		ID: "QRQ-CODE-02",
		Query: "SELECT QR_ID, BATCH_ID, CAMPAIGN_ID, SCAN_COUNT, CREATED_AT FROM QR_CODE " +
			"WHERE QR_ID = $1",
	}

	// QueryIncrementScanCount is the query to record one scan of a QR code.
	QueryIncrementScanCount = model.DBQuery{
		ID:    "QRQ-CODE-03",
		Query: "UPDATE QR_CODE SET SCAN_COUNT = SCAN_COUNT + 1 WHERE QR_ID = $1",
	}
)
