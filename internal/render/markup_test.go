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

package render

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type MarkupTestSuite struct {
	suite.Suite
}

func TestMarkupSuite(t *testing.T) {
	suite.Run(t, new(MarkupTestSuite))
}

func (suite *MarkupTestSuite) TestParseInlineMarkup() {
	tests := []struct {
		name     string
		body     string
		expected []Span
	}{
		{
			name:     "Plain text",
			body:     "hello world",
			expected: []Span{{Text: "hello world"}},
		},
		{
			name:     "Empty body",
			body:     "",
			expected: nil,
		},
		{
			name: "Bold run",
			body: "certified **authentic** product",
			expected: []Span{
				{Text: "certified "},
				{Text: "authentic", Bold: true},
				{Text: " product"},
			},
		},
		{
			name: "Italic run",
			body: "an *emphasized* word",
			expected: []Span{
				{Text: "an "},
				{Text: "emphasized", Italic: true},
				{Text: " word"},
			},
		},
		{
			name: "Underline run",
			body: "read the __terms__ first",
			expected: []Span{
				{Text: "read the "},
				{Text: "terms", Underline: true},
				{Text: " first"},
			},
		},
		{
			name: "Link run",
			body: "see [our site](https://veritag.io) for details",
			expected: []Span{
				{Text: "see "},
				{Text: "our site", LinkURL: "https://veritag.io"},
				{Text: " for details"},
			},
		},
		{
			name: "Mixed runs",
			body: "**bold** and *italic*",
			expected: []Span{
				{Text: "bold", Bold: true},
				{Text: " and "},
				{Text: "italic", Italic: true},
			},
		},
		{
			name:     "Unterminated bold stays literal",
			body:     "broken **bold",
			expected: []Span{{Text: "broken **bold"}},
		},
		{
			name:     "Empty delimiters stay literal",
			body:     "stray **** marks",
			expected: []Span{{Text: "stray **** marks"}},
		},
		{
			name:     "Malformed link stays literal",
			body:     "[label without url]",
			expected: []Span{{Text: "[label without url]"}},
		},
		{
			name:     "Script scheme link stays literal",
			body:     "click [here](javascript:alert(1)) now",
			expected: []Span{{Text: "click [here](javascript:alert(1)) now"}},
		},
		{
			name:     "Data scheme link stays literal",
			body:     "[img](data:text/html;base64,AAAA)",
			expected: []Span{{Text: "[img](data:text/html;base64,AAAA)"}},
		},
		{
			name: "Relative link allowed",
			body: "see [terms](/legal/terms)",
			expected: []Span{
				{Text: "see "},
				{Text: "terms", LinkURL: "/legal/terms"},
			},
		},
		{
			name:     "HTML is not markup",
			body:     "<b>not bold</b>",
			expected: []Span{{Text: "<b>not bold</b>"}},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, parseInlineMarkup(tc.body))
		})
	}
}
