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

import "github.com/veritag/veritag/internal/system/error/serviceerror"

// Client errors for template operations.
var (
	// ErrorInvalidTemplateRequest is returned when the request body fails validation.
	ErrorInvalidTemplateRequest = serviceerror.ServiceError{
		Code:             "TPL-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request",
		ErrorDescription: "The template request body is malformed or fails validation",
	}
	// ErrorTemplateNotFound is returned when the requested template does not exist.
	ErrorTemplateNotFound = serviceerror.ServiceError{
		Code:             "TPL-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Template not found",
		ErrorDescription: "No template exists with the given id",
	}
	// ErrorDraftSchemaViolation is returned when the draft document fails schema validation.
	ErrorDraftSchemaViolation = serviceerror.ServiceError{
		Code:             "TPL-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Draft schema violation",
		ErrorDescription: "The draft page document does not conform to the template schema",
	}
	// ErrorEmptyDraft is returned when publishing a template whose draft has no pages.
	ErrorEmptyDraft = serviceerror.ServiceError{
		Code:             "TPL-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Empty draft",
		ErrorDescription: "The draft has no pages to publish",
	}
	// ErrorCampaignAlreadyHasTemplate is returned when a campaign already owns a template.
	ErrorCampaignAlreadyHasTemplate = serviceerror.ServiceError{
		Code:             "TPL-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Campaign already has a template",
		ErrorDescription: "The target campaign already owns a flow template",
	}
)

// Server errors for template operations.
var (
	// ErrorTemplateServerError is returned for unexpected template persistence failures.
	ErrorTemplateServerError = serviceerror.ServiceError{
		Code:             "TPL-5001",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the template",
	}
)
