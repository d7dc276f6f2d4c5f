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

// Package constants defines server-wide constant values.
package constants

const (
	// LogLevelEnvironmentVariable is the environment variable used to set the log level.
	LogLevelEnvironmentVariable = "VERITAG_LOG_LEVEL"
	// LogFormatEnvironmentVariable selects the log output format, "text" or "json".
	LogFormatEnvironmentVariable = "VERITAG_LOG_FORMAT"
	// DefaultLogLevel is the default log level used when no log level is configured.
	DefaultLogLevel = "info"
)

const (
	// ContentTypeHeaderName is the name of the Content-Type HTTP header.
	ContentTypeHeaderName = "Content-Type"
	// ContentTypeJSON is the JSON content type value.
	ContentTypeJSON = "application/json"
)
