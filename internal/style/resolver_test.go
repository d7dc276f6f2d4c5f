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

package style

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/veritag/veritag/internal/campaign"
	"github.com/veritag/veritag/internal/content"
)

type ResolverTestSuite struct {
	suite.Suite
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

// assertTotal verifies that a resolved token set has no empty fields.
func (suite *ResolverTestSuite) assertTotal(tokens StyleTokens) {
	suite.NotEmpty(tokens.PrimaryColor)
	suite.NotEmpty(tokens.SecondaryColor)
	suite.NotEmpty(tokens.AccentColor)
	suite.NotEmpty(tokens.TextColor)
	suite.NotEmpty(tokens.BackgroundColor)
	suite.NotEmpty(tokens.BackgroundStyle)
	suite.NotEmpty(tokens.CardStyle)
	suite.NotEmpty(tokens.Spacing)
	suite.NotEmpty(tokens.BorderRadius)
	suite.NotEmpty(tokens.ShadowLevel)
	suite.NotEmpty(tokens.LogoSize)
}

func (suite *ResolverTestSuite) TestResolveDefaults() {
	tokens := Resolve(nil, nil, "")

	suite.Equal(baseTokens, tokens)
	suite.assertTotal(tokens)
}

func (suite *ResolverTestSuite) TestResolveUnknownTemplateIsNoOp() {
	tokens := Resolve(nil, nil, "brutalist-99")

	suite.Equal(baseTokens, tokens)
}

func (suite *ResolverTestSuite) TestResolveTemplateFamilyPresets() {
	tests := []struct {
		name              string
		templateID        string
		expectedCardStyle string
	}{
		{
			name:              "Exact family id",
			templateID:        "minimal",
			expectedCardStyle: "flat",
		},
		{
			name:              "Prefixed template id",
			templateID:        "modern-02",
			expectedCardStyle: "elevated",
		},
		{
			name:              "Classic template id",
			templateID:        "classic-01",
			expectedCardStyle: "bordered",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			tokens := Resolve(nil, nil, tc.templateID)

			suite.Equal(tc.expectedCardStyle, tokens.CardStyle)
			suite.assertTotal(tokens)
		})
	}
}

func (suite *ResolverTestSuite) TestResolvePresetKeepsUntouchedDefaults() {
	tokens := Resolve(nil, nil, "modern-01")

	// The modern preset provides no text color, so the base default survives.
	suite.Equal(baseTokens.TextColor, tokens.TextColor)
	suite.Equal("#06b6d4", tokens.AccentColor)
}

func (suite *ResolverTestSuite) TestResolveRecordOverridesPreset() {
	record := &content.Record{
		DesignConfig: &content.DesignConfig{
			PrimaryColor: "#FF0000",
			Spacing:      "relaxed",
		},
	}

	tokens := Resolve(nil, record, "classic-01")

	suite.Equal("#ff0000", tokens.PrimaryColor)
	suite.Equal("relaxed", tokens.Spacing)
	// Preset values the record does not touch stay in place.
	suite.Equal("#faf6f0", tokens.BackgroundColor)
}

func (suite *ResolverTestSuite) TestResolveLockedTokensWinOverEverything() {
	record := &content.Record{
		DesignConfig: &content.DesignConfig{
			PrimaryColor: "#ff0000",
		},
	}
	cmp := &campaign.Campaign{
		ID: "campaign-1",
		LockedDesignTokens: &content.DesignConfig{
			PrimaryColor: "#00ff00",
		},
	}

	tokens := Resolve(cmp, record, "modern-01")

	suite.Equal("#00ff00", tokens.PrimaryColor)
}

func (suite *ResolverTestSuite) TestResolveEmptyOverrideNeverDisplaces() {
	record := &content.Record{
		DesignConfig: &content.DesignConfig{
			PrimaryColor: "   ",
			AccentColor:  "#abcdef",
		},
	}

	tokens := Resolve(nil, record, "")

	suite.Equal(baseTokens.PrimaryColor, tokens.PrimaryColor)
	suite.Equal("#abcdef", tokens.AccentColor)
}

func (suite *ResolverTestSuite) TestResolveDoesNotMutateInputs() {
	locked := &content.DesignConfig{PrimaryColor: "#00Ff00"}
	cmp := &campaign.Campaign{ID: "campaign-1", LockedDesignTokens: locked}

	_ = Resolve(cmp, nil, "minimal")

	suite.Equal("#00Ff00", locked.PrimaryColor)
}

func (suite *ResolverTestSuite) TestNormalizeColor() {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Hex lowercased", input: "#AABBCC", expected: "#aabbcc"},
		{name: "HSL passthrough", input: "hsl(210, 40%, 50%)", expected: "hsl(210, 40%, 50%)"},
		{name: "Named color passthrough", input: "rebeccapurple", expected: "rebeccapurple"},
		{name: "Whitespace trimmed", input: "  #abc  ", expected: "#abc"},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, normalizeColor(tc.input))
		})
	}
}
