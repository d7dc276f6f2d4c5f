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

import "github.com/veritag/veritag/internal/system/error/serviceerror"

var (
	// ErrorBrandNotFound is returned when the requested brand does not exist.
	ErrorBrandNotFound = serviceerror.ServiceError{
		Code:             "BRD-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Brand not found",
		ErrorDescription: "No brand exists with the given id",
	}
	// ErrorInvalidBrandRequest is returned when the brand request payload is invalid.
	ErrorInvalidBrandRequest = serviceerror.ServiceError{
		Code:             "BRD-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid brand request",
		ErrorDescription: "The brand request payload failed validation",
	}
	// ErrorBrandServerError is returned when a brand operation fails unexpectedly.
	ErrorBrandServerError = serviceerror.ServiceError{
		Code:             "BRD-5001",
		Type:             serviceerror.ServerErrorType,
		Error:            "Brand server error",
		ErrorDescription: "Error while processing the brand operation",
	}
)
