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

// Package style resolves the visual style tokens of a flow from its layered
// configuration sources.
package style

import (
	"strings"

	"github.com/veritag/veritag/internal/campaign"
	"github.com/veritag/veritag/internal/content"
	"github.com/veritag/veritag/internal/system/log"
)

const loggerComponentName = "StyleTokenResolver"

// StyleTokens is the fully resolved set of visual constants used to paint a
// flow's pages. Every field is always populated after resolution.
type StyleTokens struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AccentColor     string `json:"accentColor"`
	TextColor       string `json:"textColor"`
	BackgroundColor string `json:"backgroundColor"`
	BackgroundStyle string `json:"backgroundStyle"`
	CardStyle       string `json:"cardStyle"`
	Spacing         string `json:"spacing"`
	BorderRadius    string `json:"borderRadius"`
	ShadowLevel     string `json:"shadowLevel"`
	LogoSize        string `json:"logoSize"`
}

// baseTokens are the design system defaults. Every resolution starts from these,
// so callers never need a fallback of their own.
var baseTokens = StyleTokens{
	PrimaryColor:    "#1a73e8",
	SecondaryColor:  "#174ea6",
	AccentColor:     "#f9ab00",
	TextColor:       "#202124",
	BackgroundColor: "#ffffff",
	BackgroundStyle: "solid",
	CardStyle:       "elevated",
	Spacing:         "normal",
	BorderRadius:    "8px",
	ShadowLevel:     "medium",
	LogoSize:        "medium",
}

// templateFamilyPresets are per-family default overrides, keyed by template id
// prefix. An unknown template id is a no-op layer.
var templateFamilyPresets = map[string]content.DesignConfig{
	"classic": {
		PrimaryColor:    "#7b3f00",
		BackgroundColor: "#faf6f0",
		BackgroundStyle: "solid",
		CardStyle:       "bordered",
		BorderRadius:    "4px",
		ShadowLevel:     "low",
	},
	"modern": {
		PrimaryColor:    "#111827",
		AccentColor:     "#06b6d4",
		BackgroundStyle: "gradient",
		CardStyle:       "elevated",
		BorderRadius:    "16px",
		ShadowLevel:     "high",
	},
	"minimal": {
		PrimaryColor:    "#000000",
		BackgroundColor: "#ffffff",
		BackgroundStyle: "solid",
		CardStyle:       "flat",
		Spacing:         "compact",
		BorderRadius:    "0px",
		ShadowLevel:     "none",
	},
}

// Resolve merges the four style layers into one token set. Later layers win
// only for keys they explicitly provide: base defaults, then template family
// presets, then the content record's design config, then the campaign's locked
// design tokens. Pure; the inputs are never mutated.
func Resolve(cmp *campaign.Campaign, record *content.Record, templateID string) StyleTokens {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	tokens := baseTokens

	if preset, ok := lookupFamilyPreset(templateID); ok {
		applyOverrides(&tokens, preset)
	} else if templateID != "" && logger.IsDebugEnabled() {
		logger.Debug("No template family preset", log.String(log.LoggerKeyTemplateID, templateID))
	}

	if cfg := record.ResolveDesignConfig(); cfg != nil {
		applyOverrides(&tokens, *cfg)
	}

	if cmp != nil && cmp.LockedDesignTokens != nil {
		applyOverrides(&tokens, *cmp.LockedDesignTokens)
	}

	return tokens
}

// lookupFamilyPreset matches a template id against the preset table. Ids carry
// the family as a prefix ("modern-01"), so exact and prefix matches both hit.
func lookupFamilyPreset(templateID string) (content.DesignConfig, bool) {
	if templateID == "" {
		return content.DesignConfig{}, false
	}
	if preset, ok := templateFamilyPresets[templateID]; ok {
		return preset, true
	}
	for family, preset := range templateFamilyPresets {
		if strings.HasPrefix(templateID, family+"-") {
			return preset, true
		}
	}
	return content.DesignConfig{}, false
}

// applyOverrides copies each non-empty field of the override layer onto the
// token set. Empty fields never displace an earlier layer's value.
func applyOverrides(tokens *StyleTokens, overrides content.DesignConfig) {
	setIfPresent(&tokens.PrimaryColor, normalizeColor(overrides.PrimaryColor))
	setIfPresent(&tokens.SecondaryColor, normalizeColor(overrides.SecondaryColor))
	setIfPresent(&tokens.AccentColor, normalizeColor(overrides.AccentColor))
	setIfPresent(&tokens.TextColor, normalizeColor(overrides.TextColor))
	setIfPresent(&tokens.BackgroundColor, normalizeColor(overrides.BackgroundColor))
	setIfPresent(&tokens.BackgroundStyle, overrides.BackgroundStyle)
	setIfPresent(&tokens.CardStyle, overrides.CardStyle)
	setIfPresent(&tokens.Spacing, overrides.Spacing)
	setIfPresent(&tokens.BorderRadius, overrides.BorderRadius)
	setIfPresent(&tokens.ShadowLevel, overrides.ShadowLevel)
	setIfPresent(&tokens.LogoSize, overrides.LogoSize)
}

// setIfPresent overrides the target only with a non-empty value.
func setIfPresent(target *string, value string) {
	if strings.TrimSpace(value) != "" {
		*target = value
	}
}

// normalizeColor canonicalizes a color value. Hex and hsl() values pass through
// as given; no colorspace conversion is performed in this version.
func normalizeColor(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "#") {
		return strings.ToLower(value)
	}
	if strings.HasPrefix(strings.ToLower(value), "hsl(") {
		return value
	}
	return value
}
