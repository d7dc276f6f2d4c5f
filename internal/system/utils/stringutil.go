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

package utils

import "strings"

// SanitizeString trims whitespace and strips control characters from user-provided input.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
}

// SanitizeStringMap sanitizes every key and value of a string map.
func SanitizeStringMap(input map[string]string) map[string]string {
	if input == nil {
		return nil
	}
	sanitized := make(map[string]string, len(input))
	for key, value := range input {
		sanitized[SanitizeString(key)] = SanitizeString(value)
	}
	return sanitized
}

// MergeStringMaps merges two string maps. Values in src take precedence over dst.
func MergeStringMaps(dst, src map[string]string) map[string]string {
	merged := make(map[string]string, len(dst)+len(src))
	for key, value := range dst {
		merged[key] = value
	}
	for key, value := range src {
		merged[key] = value
	}
	return merged
}

// GetAllowedOrigin returns the matching allowed origin for the request origin, or empty string.
func GetAllowedOrigin(allowedOrigins []string, requestOrigin string) string {
	for _, origin := range allowedOrigins {
		if origin == requestOrigin {
			return origin
		}
	}
	return ""
}
