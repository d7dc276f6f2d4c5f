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

// Package serviceerror defines the coded error values returned by the
// service layer.
package serviceerror

// ServiceErrorType classifies an error as caused by the caller or the server.
type ServiceErrorType string

const (
	// ClientErrorType marks errors caused by the request.
	ClientErrorType ServiceErrorType = "client_error"
	// ServerErrorType marks errors caused by the server.
	ServerErrorType ServiceErrorType = "server_error"
)

// ServiceError is the coded error value services return alongside results.
// Each domain package declares its errors as package-level vars.
type ServiceError struct {
	Code             string           `json:"code"`
	Type             ServiceErrorType `json:"type"`
	Error            string           `json:"error"`
	ErrorDescription string           `json:"error_description,omitempty"`
}

// WithDescription returns a copy of the error carrying a request-specific
// description. The package-level error value is never mutated.
func (e ServiceError) WithDescription(description string) ServiceError {
	e.ErrorDescription = description
	return e
}
