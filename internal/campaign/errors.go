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

import "github.com/veritag/veritag/internal/system/error/serviceerror"

// Client errors for campaign operations.
var (
	// ErrorInvalidCampaignRequest is returned when the request body fails validation.
	ErrorInvalidCampaignRequest = serviceerror.ServiceError{
		Code:             "CMP-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request",
		ErrorDescription: "The campaign request body is malformed or fails validation",
	}
	// ErrorCampaignNotFound is returned when the requested campaign does not exist.
	ErrorCampaignNotFound = serviceerror.ServiceError{
		Code:             "CMP-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Campaign not found",
		ErrorDescription: "No campaign exists with the given id",
	}
	// ErrorCampaignNotActive is returned when a scan targets a campaign that is not live.
	ErrorCampaignNotActive = serviceerror.ServiceError{
		Code:             "CMP-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Campaign not active",
		ErrorDescription: "The campaign is not in active status",
	}
	// ErrorCampaignBrandMismatch is returned when the campaign belongs to another brand.
	ErrorCampaignBrandMismatch = serviceerror.ServiceError{
		Code:             "CMP-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Brand mismatch",
		ErrorDescription: "The campaign does not belong to the given brand",
	}
)

// Server errors for campaign operations.
var (
	// ErrorInternalServerError is returned for unexpected campaign persistence failures.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "CMP-5001",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the campaign",
	}
)
