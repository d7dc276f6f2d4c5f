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

import "strings"

// Span is one styled run of text within a rendered text element.
type Span struct {
	Text      string `json:"text"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	LinkURL   string `json:"linkUrl,omitempty"`
}

// parseInlineMarkup applies the constrained inline markup whitelist to a text
// body: **bold**, *italic*, __underline__ and [label](url). Anything outside
// the whitelist stays literal text; embedded markup is never executed.
func parseInlineMarkup(body string) []Span {
	var spans []Span
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(body) {
		rest := body[i:]

		if strings.HasPrefix(rest, "**") {
			if inner, consumed, ok := matchDelimited(rest, "**"); ok {
				flushPlain()
				spans = append(spans, Span{Text: inner, Bold: true})
				i += consumed
				continue
			}
		}
		if strings.HasPrefix(rest, "__") {
			if inner, consumed, ok := matchDelimited(rest, "__"); ok {
				flushPlain()
				spans = append(spans, Span{Text: inner, Underline: true})
				i += consumed
				continue
			}
		}
		if strings.HasPrefix(rest, "*") {
			if inner, consumed, ok := matchDelimited(rest, "*"); ok {
				flushPlain()
				spans = append(spans, Span{Text: inner, Italic: true})
				i += consumed
				continue
			}
		}
		if strings.HasPrefix(rest, "[") {
			// Links with a non-http(s) scheme stay literal like any other
			// malformed markup.
			if label, url, consumed, ok := matchLink(rest); ok {
				if safe := safeLinkURL(url); safe != "" {
					flushPlain()
					spans = append(spans, Span{Text: label, LinkURL: safe})
					i += consumed
					continue
				}
			}
		}

		plain.WriteByte(body[i])
		i++
	}

	flushPlain()
	return spans
}

// matchDelimited matches "<delim>inner<delim>" at the start of the input.
// Empty inner runs do not match, so stray delimiters stay literal.
func matchDelimited(input, delim string) (inner string, consumed int, ok bool) {
	start := len(delim)
	end := strings.Index(input[start:], delim)
	if end <= 0 {
		return "", 0, false
	}
	return input[start : start+end], start + end + len(delim), true
}

// matchLink matches "[label](url)" at the start of the input.
func matchLink(input string) (label, url string, consumed int, ok bool) {
	labelEnd := strings.Index(input, "](")
	if labelEnd <= 0 {
		return "", "", 0, false
	}
	urlStart := labelEnd + 2
	urlEnd := strings.Index(input[urlStart:], ")")
	if urlEnd <= 0 {
		return "", "", 0, false
	}
	return input[1:labelEnd], input[urlStart : urlStart+urlEnd], urlStart + urlEnd + 1, true
}
