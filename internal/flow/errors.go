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
	"errors"

	"github.com/veritag/veritag/internal/system/error/serviceerror"
)

// Sentinel errors returned by the collaborator implementation.
var (
	// ErrQRCodeNotFound is returned when the scanned QR id resolves to nothing.
	ErrQRCodeNotFound = errors.New("QR code not found")
	// ErrCampaignNotActive is returned when the QR resolves to a campaign that is not live.
	ErrCampaignNotActive = errors.New("campaign is not active")
	// ErrSessionNotFound is returned when the session id resolves to nothing.
	ErrSessionNotFound = errors.New("flow session not found")
)

// Client errors for the flow API.
var (
	// ErrorInvalidFlowRequest is returned when the request body fails validation.
	ErrorInvalidFlowRequest = serviceerror.ServiceError{
		Code:             "FLW-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request",
		ErrorDescription: "The flow request body is malformed or fails validation",
	}
	// ErrorFlowSessionNotFound is returned when the requested session does not exist.
	ErrorFlowSessionNotFound = serviceerror.ServiceError{
		Code:             "FLW-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Session not found",
		ErrorDescription: "No flow session exists with the given id",
	}
	// ErrorFlowOperationFailed is returned when a flow operation could not be completed.
	ErrorFlowOperationFailed = serviceerror.ServiceError{
		Code:             "FLW-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Operation failed",
		ErrorDescription: "The flow operation could not be completed",
	}
	// ErrorAuthenticationFailed is returned when the authentication provider rejects the login.
	ErrorAuthenticationFailed = serviceerror.ServiceError{
		Code:             "FLW-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Authentication failed",
		ErrorDescription: "The authentication provider could not resolve an identity",
	}
)

// Server errors for the flow API.
var (
	// ErrorFlowServerError is returned for unexpected flow engine failures.
	ErrorFlowServerError = serviceerror.ServiceError{
		Code:             "FLW-5001",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the flow",
	}
)
