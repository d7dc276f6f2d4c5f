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

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// pageDocumentSchema is the JSON schema every draft page document must satisfy
// before it can be published. Section config payloads stay open objects here;
// the renderer degrades unknown config fields on its own.
const pageDocumentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["pages"],
  "properties": {
    "pages": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "sections"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string"},
          "type": {"type": "string"},
          "sections": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id", "type"],
              "properties": {
                "id": {"type": "string", "minLength": 1},
                "type": {
                  "type": "string",
                  "enum": ["header", "hero", "features", "cta", "product_showcase", "text",
                           "image", "store_selector", "divider", "login_step", "footer",
                           "form", "card", "button"]
                },
                "order": {"type": "integer", "minimum": 0},
                "config": {"type": "object"}
              }
            }
          }
        }
      }
    },
    "designConfig": {"type": "object"}
  }
}`

var pageDocumentSchemaLoader = gojsonschema.NewStringLoader(pageDocumentSchema)

// validatePageDocument checks a raw page document against the template schema.
// Returns a joined, human-readable description of every violation.
func validatePageDocument(documentJSON []byte) error {
	result, err := gojsonschema.Validate(pageDocumentSchemaLoader,
		gojsonschema.NewBytesLoader(documentJSON))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, violation := range result.Errors() {
		violations = append(violations, violation.String())
	}
	return fmt.Errorf("draft document violates the page schema: %s", strings.Join(violations, "; "))
}
