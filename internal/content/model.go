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

// Package content defines the flow content documents and the loader that resolves
// which content snapshot a campaign serves.
package content

import (
	"encoding/json"
	"time"
)

// SectionType identifies the renderable variant of a page section.
type SectionType string

const (
	// SectionTypeHeader represents a page header section.
	SectionTypeHeader SectionType = "header"
	// SectionTypeHero represents a hero banner section.
	SectionTypeHero SectionType = "hero"
	// SectionTypeFeatures represents a feature list section.
	SectionTypeFeatures SectionType = "features"
	// SectionTypeCTA represents a call-to-action section.
	SectionTypeCTA SectionType = "cta"
	// SectionTypeProductShowcase represents a product showcase section.
	SectionTypeProductShowcase SectionType = "product_showcase"
	// SectionTypeText represents a rich text section.
	SectionTypeText SectionType = "text"
	// SectionTypeImage represents an image section.
	SectionTypeImage SectionType = "image"
	// SectionTypeStoreSelector represents the purchase channel and store selection section.
	SectionTypeStoreSelector SectionType = "store_selector"
	// SectionTypeDivider represents a visual divider section.
	SectionTypeDivider SectionType = "divider"
	// SectionTypeLoginStep represents the login step section.
	SectionTypeLoginStep SectionType = "login_step"
	// SectionTypeFooter represents a page footer section.
	SectionTypeFooter SectionType = "footer"
	// SectionTypeForm represents a form section.
	SectionTypeForm SectionType = "form"
	// SectionTypeCard represents a card section.
	SectionTypeCard SectionType = "card"
	// SectionTypeButton represents a standalone button section.
	SectionTypeButton SectionType = "button"
)

// SectionConfig is the closed set of per-type section configurations.
type SectionConfig interface {
	isSectionConfig()
}

// HeaderConfig holds the configuration for a header section.
type HeaderConfig struct {
	Title    string `json:"title,omitempty"`
	ShowLogo bool   `json:"showLogo,omitempty"`
	LogoURL  string `json:"logoUrl,omitempty"`
}

// HeroConfig holds the configuration for a hero section.
type HeroConfig struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	CTALabel string `json:"ctaLabel,omitempty"`
}

// FeatureItem is a single entry of a features section.
type FeatureItem struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// FeaturesConfig holds the configuration for a features section.
type FeaturesConfig struct {
	Title string        `json:"title,omitempty"`
	Items []FeatureItem `json:"items,omitempty"`
}

// CTAConfig holds the configuration for a call-to-action section.
type CTAConfig struct {
	Label     string `json:"label,omitempty"`
	TargetURL string `json:"targetUrl,omitempty"`
	Variant   string `json:"variant,omitempty"`
}

// ProductItem is a single entry of a product showcase section.
type ProductItem struct {
	Name        string `json:"name,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProductShowcaseConfig holds the configuration for a product showcase section.
type ProductShowcaseConfig struct {
	Title    string        `json:"title,omitempty"`
	Products []ProductItem `json:"products,omitempty"`
}

// TextConfig holds the configuration for a text section.
type TextConfig struct {
	Body      string `json:"body,omitempty"`
	Alignment string `json:"alignment,omitempty"`
}

// ImageConfig holds the configuration for an image section.
type ImageConfig struct {
	URL       string `json:"url,omitempty"`
	AltText   string `json:"altText,omitempty"`
	Caption   string `json:"caption,omitempty"`
	FullWidth bool   `json:"fullWidth,omitempty"`
}

// StoreSelectorConfig holds the configuration for a store selector section.
type StoreSelectorConfig struct {
	Prompt      string   `json:"prompt,omitempty"`
	Stores      []string `json:"stores,omitempty"`
	AllowOnline bool     `json:"allowOnline,omitempty"`
}

// DividerConfig holds the configuration for a divider section.
type DividerConfig struct {
	Variant string `json:"variant,omitempty"`
}

// LoginStepConfig holds the configuration for a login step section.
type LoginStepConfig struct {
	Heading             string   `json:"heading,omitempty"`
	Providers           []string `json:"providers,omitempty"`
	MarketingOptInLabel string   `json:"marketingOptInLabel,omitempty"`
}

// FooterLink is a single link of a footer section.
type FooterLink struct {
	Label string `json:"label,omitempty"`
	URL   string `json:"url,omitempty"`
}

// FooterConfig holds the configuration for a footer section.
type FooterConfig struct {
	Text  string       `json:"text,omitempty"`
	Links []FooterLink `json:"links,omitempty"`
}

// FormField is a single input field of a form section.
type FormField struct {
	Name     string `json:"name,omitempty"`
	Label    string `json:"label,omitempty"`
	Type     string `json:"type,omitempty"`
	Required bool   `json:"required,omitempty"`
}

// FormConfig holds the configuration for a form section.
type FormConfig struct {
	Title  string      `json:"title,omitempty"`
	Fields []FormField `json:"fields,omitempty"`
}

// CardConfig holds the configuration for a card section.
type CardConfig struct {
	Title    string `json:"title,omitempty"`
	Body     string `json:"body,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// ButtonConfig holds the configuration for a button section.
type ButtonConfig struct {
	Label     string `json:"label,omitempty"`
	Action    string `json:"action,omitempty"`
	TargetURL string `json:"targetUrl,omitempty"`
}

// UnknownConfig carries the raw configuration of a section whose type is not recognized.
type UnknownConfig struct {
	Raw json.RawMessage `json:"-"`
}

func (HeaderConfig) isSectionConfig()          {}
func (HeroConfig) isSectionConfig()            {}
func (FeaturesConfig) isSectionConfig()        {}
func (CTAConfig) isSectionConfig()             {}
func (ProductShowcaseConfig) isSectionConfig() {}
func (TextConfig) isSectionConfig()            {}
func (ImageConfig) isSectionConfig()           {}
func (StoreSelectorConfig) isSectionConfig()   {}
func (DividerConfig) isSectionConfig()         {}
func (LoginStepConfig) isSectionConfig()       {}
func (FooterConfig) isSectionConfig()          {}
func (FormConfig) isSectionConfig()            {}
func (CardConfig) isSectionConfig()            {}
func (ButtonConfig) isSectionConfig()          {}
func (UnknownConfig) isSectionConfig()         {}

// Section is one renderable block within a page. Its Type tag determines the
// concrete Config variant.
type Section struct {
	ID     string        `json:"id"`
	Type   SectionType   `json:"type"`
	Order  int           `json:"order"`
	Config SectionConfig `json:"config,omitempty"`
}

// sectionEnvelope mirrors the wire form of a section with the config left raw.
type sectionEnvelope struct {
	ID     string          `json:"id"`
	Type   SectionType     `json:"type"`
	Order  int             `json:"order"`
	Config json.RawMessage `json:"config,omitempty"`
}

// UnmarshalJSON decodes a section, resolving the config variant from the type tag.
// A malformed or missing config never fails the decode; the section falls back to
// the zero configuration of its variant so rendering can degrade instead of erroring.
func (s *Section) UnmarshalJSON(data []byte) error {
	var envelope sectionEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	s.ID = envelope.ID
	s.Type = envelope.Type
	s.Order = envelope.Order
	s.Config = decodeSectionConfig(envelope.Type, envelope.Config)
	return nil
}

// MarshalJSON encodes a section back into its wire form.
func (s Section) MarshalJSON() ([]byte, error) {
	envelope := struct {
		ID     string        `json:"id"`
		Type   SectionType   `json:"type"`
		Order  int           `json:"order"`
		Config SectionConfig `json:"config,omitempty"`
	}{
		ID:     s.ID,
		Type:   s.Type,
		Order:  s.Order,
		Config: s.Config,
	}
	return json.Marshal(envelope)
}

// decodeSectionConfig decodes the raw config into the variant matching the section type.
func decodeSectionConfig(sectionType SectionType, raw json.RawMessage) SectionConfig {
	decode := func(target SectionConfig) SectionConfig {
		if len(raw) == 0 {
			return target
		}
		// Decode errors leave the zero variant in place.
		_ = json.Unmarshal(raw, target)
		return target
	}

	switch sectionType {
	case SectionTypeHeader:
		return decode(&HeaderConfig{})
	case SectionTypeHero:
		return decode(&HeroConfig{})
	case SectionTypeFeatures:
		return decode(&FeaturesConfig{})
	case SectionTypeCTA:
		return decode(&CTAConfig{})
	case SectionTypeProductShowcase:
		return decode(&ProductShowcaseConfig{})
	case SectionTypeText:
		return decode(&TextConfig{})
	case SectionTypeImage:
		return decode(&ImageConfig{})
	case SectionTypeStoreSelector:
		return decode(&StoreSelectorConfig{})
	case SectionTypeDivider:
		return decode(&DividerConfig{})
	case SectionTypeLoginStep:
		return decode(&LoginStepConfig{})
	case SectionTypeFooter:
		return decode(&FooterConfig{})
	case SectionTypeForm:
		return decode(&FormConfig{})
	case SectionTypeCard:
		return decode(&CardConfig{})
	case SectionTypeButton:
		return decode(&ButtonConfig{})
	default:
		return &UnknownConfig{Raw: raw}
	}
}

// Page is one ordered screen of a flow, containing an ordered list of sections.
type Page struct {
	ID       string    `json:"id"`
	Name     string    `json:"name,omitempty"`
	Type     string    `json:"type,omitempty"`
	Sections []Section `json:"sections"`
}

// DesignConfig holds the style overrides a content document may carry. Empty
// fields mean "no override" and never displace a value from an earlier layer.
type DesignConfig struct {
	PrimaryColor    string `json:"primaryColor,omitempty"`
	SecondaryColor  string `json:"secondaryColor,omitempty"`
	AccentColor     string `json:"accentColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	BackgroundStyle string `json:"backgroundStyle,omitempty"`
	CardStyle       string `json:"cardStyle,omitempty"`
	Spacing         string `json:"spacing,omitempty"`
	BorderRadius    string `json:"borderRadius,omitempty"`
	ShadowLevel     string `json:"shadowLevel,omitempty"`
	LogoSize        string `json:"logoSize,omitempty"`
}

// Document is one versionable flow content document: an ordered page list plus
// optional design overrides.
type Document struct {
	Pages        []Page        `json:"pages"`
	DesignConfig *DesignConfig `json:"designConfig,omitempty"`
}

// IsEmpty reports whether the document carries no pages.
func (d *Document) IsEmpty() bool {
	return d == nil || len(d.Pages) == 0
}

// Record is the stored flow content for one campaign: the mutable draft, the
// immutable published snapshot, and version metadata.
type Record struct {
	CampaignID             string        `json:"campaign_id"`
	TemplateID             string        `json:"template_id,omitempty"`
	TemplateFamily         string        `json:"template_family,omitempty"`
	DesignConfig           *DesignConfig `json:"designConfig,omitempty"`
	FlowConfig             *Document     `json:"flow_config,omitempty"`
	PublishedSnapshot      *Document     `json:"published_snapshot,omitempty"`
	LatestPublishedVersion int           `json:"latest_published_version"`
	UpdatedAt              time.Time     `json:"updated_at,omitempty"`
}

// ResolveDesignConfig locates the design overrides of a record, checking the
// top-level config first, then the draft, then the published snapshot.
func (r *Record) ResolveDesignConfig() *DesignConfig {
	if r == nil {
		return nil
	}
	if r.DesignConfig != nil {
		return r.DesignConfig
	}
	if r.FlowConfig != nil && r.FlowConfig.DesignConfig != nil {
		return r.FlowConfig.DesignConfig
	}
	if r.PublishedSnapshot != nil && r.PublishedSnapshot.DesignConfig != nil {
		return r.PublishedSnapshot.DesignConfig
	}
	return nil
}
