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

import "github.com/veritag/veritag/internal/system/error/serviceerror"

// Client errors for the content loading service.
var (
	// ErrorContentNotFound is returned when no content record exists for the campaign.
	ErrorContentNotFound = serviceerror.ServiceError{
		Code:             "CNT-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Content not found",
		ErrorDescription: "No flow content record exists for the requested campaign",
	}
	// ErrorContentNotPublished is returned when the campaign has no published snapshot
	// and the caller is on the customer-facing path.
	ErrorContentNotPublished = serviceerror.ServiceError{
		Code:             "CNT-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Content not published",
		ErrorDescription: "The campaign has no published flow content",
	}
	// ErrorContentPermissionDenied is returned when draft content is requested but
	// draft serving is not permitted.
	ErrorContentPermissionDenied = serviceerror.ServiceError{
		Code:             "CNT-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Permission denied",
		ErrorDescription: "Draft content can only be served in debug mode",
	}
	// ErrorCampaignMismatch is returned when the content record belongs to a different
	// campaign than the one requested.
	ErrorCampaignMismatch = serviceerror.ServiceError{
		Code:             "CNT-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Campaign mismatch",
		ErrorDescription: "The content record does not belong to the requested campaign",
	}
)

// Server errors for the content loading service.
var (
	// ErrorContentRetrieval is returned when the content record cannot be read.
	ErrorContentRetrieval = serviceerror.ServiceError{
		Code:             "CNT-5001",
		Type:             serviceerror.ServerErrorType,
		Error:            "Content retrieval error",
		ErrorDescription: "Error while retrieving the flow content record",
	}
)
