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

import "github.com/veritag/veritag/internal/system/error/serviceerror"

// Client errors for QR code operations.
var (
	// ErrorInvalidBatchRequest is returned when the batch request body fails validation.
	ErrorInvalidBatchRequest = serviceerror.ServiceError{
		Code:             "QRC-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request",
		ErrorDescription: "The QR batch request body is malformed or fails validation",
	}
	// ErrorBatchNotFound is returned when the requested batch does not exist.
	ErrorBatchNotFound = serviceerror.ServiceError{
		Code:             "QRC-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Batch not found",
		ErrorDescription: "No QR batch exists with the given id",
	}
	// ErrorQRCodeNotFound is returned when a scanned QR id resolves to nothing.
	ErrorQRCodeNotFound = serviceerror.ServiceError{
		Code:             "QRC-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "QR code not found",
		ErrorDescription: "No QR code exists with the given id",
	}
)

// Server errors for QR code operations.
var (
	// ErrorQRCodeServerError is returned for unexpected QR persistence failures.
	ErrorQRCodeServerError = serviceerror.ServiceError{
		Code:             "QRC-5001",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the QR code",
	}
)
