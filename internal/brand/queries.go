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
	"github.com/veritag/veritag/internal/system/database/model"
)

var (
	// QueryCreateBrand is the query to create a new brand.
	QueryCreateBrand = model.DBQuery{
		ID:    "BRQ-BRAND-01",
		Query: "INSERT INTO BRAND (BRAND_ID, NAME, LOGO_URL, BRAND_COLORS) VALUES ($1, $2, $3, $4)",
	}

	// QueryGetBrandByID is the query to get a brand by id.
	QueryGetBrandByID = model.DBQuery{
		ID:    "BRQ-BRAND-02",
		Query: "SELECT BRAND_ID, NAME, LOGO_URL, BRAND_COLORS, CREATED_AT, UPDATED_AT FROM BRAND WHERE BRAND_ID = $1",
	}

	// QueryGetBrandList is the query to list all brands.
	QueryGetBrandList = model.DBQuery{
		ID:    "BRQ-BRAND-03",
		Query: "SELECT BRAND_ID, NAME, LOGO_URL, BRAND_COLORS, CREATED_AT, UPDATED_AT FROM BRAND ORDER BY NAME ASC",
	}

	// QueryUpdateBrand is the query to update a brand.
	QueryUpdateBrand = model.DBQuery{
		ID: "BRQ-BRAND-04",
		Query: "UPDATE BRAND SET NAME = $2, LOGO_URL = $3, BRAND_COLORS = $4, " +
			"UPDATED_AT = CURRENT_TIMESTAMP WHERE BRAND_ID = $1",
	}

	// QueryDeleteBrand is the query to delete a brand.
	QueryDeleteBrand = model.DBQuery{
		ID:    "BRQ-BRAND-05",
		Query: "DELETE FROM BRAND WHERE BRAND_ID = $1",
	}
)
