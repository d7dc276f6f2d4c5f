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
	"strconv"
	"strings"

	"github.com/veritag/veritag/internal/content"
	"github.com/veritag/veritag/internal/style"
	"github.com/veritag/veritag/internal/system/log"
	sysutils "github.com/veritag/veritag/internal/system/utils"
)

const loggerComponentName = "SectionRenderer"

// OtherStoreOption is the canonical synthetic store slot appended to every
// store list, independent of the supplied options.
const OtherStoreOption = "Other Store"

// LocationTypeInStore and LocationTypeOnline are the two purchase channels of
// the store selector's first step.
const (
	LocationTypeInStore = "in-store"
	LocationTypeOnline  = "online"
)

// fallbackStores is the static store list used when neither the context nor the
// section config supplies one.
var fallbackStores = []string{"Official Brand Store", "Authorized Retailer", "Supermarket"}

// safeLinkURL vets a navigational URL from authored content. Only http, https
// and relative destinations pass; any other scheme is dropped.
func safeLinkURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parsed, err := sysutils.ParseURL(raw)
	if err != nil {
		return ""
	}
	switch parsed.Scheme {
	case "", "http", "https":
		return raw
	default:
		return ""
	}
}

// RenderSection renders one page section with the given resolved tokens and
// runtime bindings. Dispatch is a closed switch over the section type set; an
// unrecognized type renders a marked placeholder instead of failing. Missing or
// malformed config always degrades to per-field defaults.
func RenderSection(section content.Section, tokens style.StyleTokens, ctx *Context) RenderedSection {
	if ctx == nil {
		ctx = &Context{}
	}

	rendered := RenderedSection{
		SectionID: section.ID,
		Type:      section.Type,
		Style:     sectionStyle(tokens, section.Type),
	}

	switch cfg := section.Config.(type) {
	case *content.HeaderConfig:
		rendered.Elements = renderHeader(cfg, tokens)
	case *content.HeroConfig:
		rendered.Elements = renderHero(cfg)
	case *content.FeaturesConfig:
		rendered.Elements = renderFeatures(cfg)
	case *content.CTAConfig:
		rendered.Elements = renderCTA(cfg)
	case *content.ProductShowcaseConfig:
		rendered.Elements = renderProductShowcase(cfg)
	case *content.TextConfig:
		rendered.Elements = renderText(cfg)
	case *content.ImageConfig:
		rendered.Elements = renderImage(cfg)
	case *content.StoreSelectorConfig:
		rendered.Elements = renderStoreSelector(cfg, ctx)
	case *content.DividerConfig:
		rendered.Elements = renderDivider(cfg)
	case *content.LoginStepConfig:
		rendered.Elements = renderLoginStep(cfg, ctx)
	case *content.FooterConfig:
		rendered.Elements = renderFooter(cfg)
	case *content.FormConfig:
		rendered.Elements = renderForm(cfg)
	case *content.CardConfig:
		rendered.Elements = renderCard(cfg)
	case *content.ButtonConfig:
		rendered.Elements = renderButton(cfg)
	default:
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Warn("Unknown section type", log.String("sectionType", string(section.Type)),
			log.String("sectionId", section.ID))
		rendered.Elements = []Element{{
			Kind:  ElementKindPlaceholder,
			Text:  "Unknown section",
			Props: map[string]string{"sectionType": string(section.Type)},
		}}
	}

	return rendered
}

// RenderPage renders every section of a page in array order.
func RenderPage(page content.Page, tokens style.StyleTokens, ctx *Context) []RenderedSection {
	sections := make([]RenderedSection, 0, len(page.Sections))
	for _, section := range page.Sections {
		sections = append(sections, RenderSection(section, tokens, ctx))
	}
	return sections
}

// sectionStyle derives a section's frame style from the resolved tokens. Image
// sections strip the generic card background, border and shadow so image
// framing never doubles up with card framing.
func sectionStyle(tokens style.StyleTokens, sectionType content.SectionType) SectionStyle {
	frame := SectionStyle{
		BackgroundColor: tokens.BackgroundColor,
		BackgroundStyle: tokens.BackgroundStyle,
		CardStyle:       tokens.CardStyle,
		Spacing:         tokens.Spacing,
		BorderRadius:    tokens.BorderRadius,
		ShadowLevel:     tokens.ShadowLevel,
	}
	if sectionType == content.SectionTypeImage {
		frame.BackgroundColor = ""
		frame.BackgroundStyle = ""
		frame.CardStyle = ""
		frame.BorderRadius = ""
		frame.ShadowLevel = ""
	}
	return frame
}

func renderHeader(cfg *content.HeaderConfig, tokens style.StyleTokens) []Element {
	if cfg == nil {
		cfg = &content.HeaderConfig{}
	}
	elements := []Element{}
	if cfg.ShowLogo && cfg.LogoURL != "" {
		elements = append(elements, Element{
			Kind:  ElementKindImage,
			Props: map[string]string{"src": cfg.LogoURL, "size": tokens.LogoSize},
		})
	}
	elements = append(elements, Element{Kind: ElementKindHeading, Text: cfg.Title})
	return elements
}

func renderHero(cfg *content.HeroConfig) []Element {
	if cfg == nil {
		cfg = &content.HeroConfig{}
	}
	elements := []Element{{Kind: ElementKindHeading, Text: cfg.Title}}
	if cfg.Subtitle != "" {
		elements = append(elements, Element{Kind: ElementKindText, Text: cfg.Subtitle})
	}
	if cfg.ImageURL != "" {
		elements = append(elements, Element{
			Kind:  ElementKindImage,
			Props: map[string]string{"src": cfg.ImageURL},
		})
	}
	if cfg.CTALabel != "" {
		elements = append(elements, Element{Kind: ElementKindButton, Text: cfg.CTALabel})
	}
	return elements
}

func renderFeatures(cfg *content.FeaturesConfig) []Element {
	if cfg == nil {
		cfg = &content.FeaturesConfig{}
	}
	items := make([]Element, 0, len(cfg.Items))
	for _, item := range cfg.Items {
		items = append(items, Element{
			Kind:  ElementKindContainer,
			Props: map[string]string{"icon": item.Icon},
			Children: []Element{
				{Kind: ElementKindHeading, Text: item.Title},
				{Kind: ElementKindText, Text: item.Description},
			},
		})
	}
	elements := []Element{}
	if cfg.Title != "" {
		elements = append(elements, Element{Kind: ElementKindHeading, Text: cfg.Title})
	}
	return append(elements, Element{Kind: ElementKindContainer, Children: items})
}

func renderCTA(cfg *content.CTAConfig) []Element {
	if cfg == nil {
		cfg = &content.CTAConfig{}
	}
	label := cfg.Label
	if label == "" {
		label = "Continue"
	}
	return []Element{{
		Kind:  ElementKindButton,
		Text:  label,
		Props: map[string]string{"targetUrl": safeLinkURL(cfg.TargetURL), "variant": cfg.Variant},
	}}
}

func renderProductShowcase(cfg *content.ProductShowcaseConfig) []Element {
	if cfg == nil {
		cfg = &content.ProductShowcaseConfig{}
	}
	products := make([]Element, 0, len(cfg.Products))
	for _, product := range cfg.Products {
		products = append(products, Element{
			Kind:  ElementKindContainer,
			Props: map[string]string{"imageUrl": product.ImageURL},
			Children: []Element{
				{Kind: ElementKindHeading, Text: product.Name},
				{Kind: ElementKindText, Text: product.Description},
			},
		})
	}
	elements := []Element{}
	if cfg.Title != "" {
		elements = append(elements, Element{Kind: ElementKindHeading, Text: cfg.Title})
	}
	return append(elements, Element{Kind: ElementKindContainer, Children: products})
}

func renderText(cfg *content.TextConfig) []Element {
	if cfg == nil {
		cfg = &content.TextConfig{}
	}
	alignment := cfg.Alignment
	if alignment == "" {
		alignment = "left"
	}
	return []Element{{
		Kind:  ElementKindText,
		Spans: parseInlineMarkup(cfg.Body),
		Props: map[string]string{"alignment": alignment},
	}}
}

func renderImage(cfg *content.ImageConfig) []Element {
	if cfg == nil {
		cfg = &content.ImageConfig{}
	}
	elements := []Element{{
		Kind: ElementKindImage,
		Props: map[string]string{
			"src":       cfg.URL,
			"alt":       cfg.AltText,
			"fullWidth": strconv.FormatBool(cfg.FullWidth),
		},
	}}
	if cfg.Caption != "" {
		elements = append(elements, Element{Kind: ElementKindText, Text: cfg.Caption})
	}
	return elements
}

// renderStoreSelector renders the two-step store choice: purchase channel
// first, then the store list. The store list comes from the context options if
// provided, else the section config, else the static fallback list, and always
// carries exactly one synthetic "Other Store" slot regardless of the input.
func renderStoreSelector(cfg *content.StoreSelectorConfig, ctx *Context) []Element {
	if cfg == nil {
		cfg = &content.StoreSelectorConfig{}
	}

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = "Where did you purchase this product?"
	}

	mode := StoreSelectorModeUncontrolled
	selection := StoreSelection{}
	if ctx.storeSelectorControlled() {
		mode = StoreSelectorModeControlled
		selection = *ctx.StoreSelection
	}

	channels := []Element{{
		Kind:  ElementKindChoice,
		Text:  "In store",
		Props: map[string]string{"value": LocationTypeInStore},
	}}
	if cfg.AllowOnline {
		channels = append(channels, Element{
			Kind:  ElementKindChoice,
			Text:  "Online",
			Props: map[string]string{"value": LocationTypeOnline},
		})
	}

	stores := ctx.StoreOptions
	if len(stores) == 0 {
		stores = cfg.Stores
	}
	if len(stores) == 0 {
		stores = fallbackStores
	}

	storeChoices := make([]Element, 0, len(stores)+1)
	for _, store := range stores {
		storeChoices = append(storeChoices, Element{
			Kind:  ElementKindChoice,
			Text:  store,
			Props: map[string]string{"value": store},
		})
	}
	storeChoices = append(storeChoices, Element{
		Kind:  ElementKindChoice,
		Text:  OtherStoreOption,
		Props: map[string]string{"value": OtherStoreOption, "synthetic": "true"},
	})

	selector := Element{
		Kind: ElementKindContainer,
		Props: map[string]string{
			"mode":         string(mode),
			"locationType": selection.LocationType,
			"storeName":    selection.StoreName,
		},
		Children: []Element{
			{
				Kind:     ElementKindContainer,
				Props:    map[string]string{"step": "channel"},
				Children: channels,
			},
			{
				Kind:     ElementKindContainer,
				Props:    map[string]string{"step": "store"},
				Children: storeChoices,
			},
		},
	}

	return []Element{
		{Kind: ElementKindHeading, Text: prompt},
		selector,
	}
}

// renderLoginStep delegates to the client's authentication surface. The
// renderer forwards the available providers only; auth completion is observed
// through the context hooks by whoever owns the session.
func renderLoginStep(cfg *content.LoginStepConfig, ctx *Context) []Element {
	if cfg == nil {
		cfg = &content.LoginStepConfig{}
	}
	heading := cfg.Heading
	if heading == "" {
		heading = "Sign in to continue"
	}

	providers := cfg.Providers
	if len(providers) == 0 {
		providers = []string{"email", "google", "apple"}
	}
	providerChoices := make([]Element, 0, len(providers))
	for _, provider := range providers {
		providerChoices = append(providerChoices, Element{
			Kind:  ElementKindChoice,
			Text:  provider,
			Props: map[string]string{"value": provider},
		})
	}

	prompt := Element{
		Kind:     ElementKindAuthPrompt,
		Children: providerChoices,
	}
	props := make(map[string]string)
	if cfg.MarketingOptInLabel != "" {
		props["marketingOptInLabel"] = cfg.MarketingOptInLabel
	}
	// The brand palette rides along so the external auth surface can theme itself.
	for slot, color := range ctx.BrandColors {
		props["brandColor."+slot] = color
	}
	if len(props) > 0 {
		prompt.Props = props
	}

	return []Element{
		{Kind: ElementKindHeading, Text: heading},
		prompt,
	}
}

func renderDivider(cfg *content.DividerConfig) []Element {
	if cfg == nil {
		cfg = &content.DividerConfig{}
	}
	variant := cfg.Variant
	if variant == "" {
		variant = "line"
	}
	return []Element{{Kind: ElementKindDivider, Props: map[string]string{"variant": variant}}}
}

func renderFooter(cfg *content.FooterConfig) []Element {
	if cfg == nil {
		cfg = &content.FooterConfig{}
	}
	links := make([]Element, 0, len(cfg.Links))
	for _, link := range cfg.Links {
		links = append(links, Element{
			Kind:  ElementKindLink,
			Text:  link.Label,
			Props: map[string]string{"href": safeLinkURL(link.URL)},
		})
	}
	return []Element{{
		Kind:     ElementKindContainer,
		Children: append([]Element{{Kind: ElementKindText, Text: cfg.Text}}, links...),
	}}
}

func renderForm(cfg *content.FormConfig) []Element {
	if cfg == nil {
		cfg = &content.FormConfig{}
	}
	fields := make([]Element, 0, len(cfg.Fields))
	for _, field := range cfg.Fields {
		fieldType := field.Type
		if fieldType == "" {
			fieldType = "text"
		}
		fields = append(fields, Element{
			Kind: ElementKindInput,
			Text: field.Label,
			Props: map[string]string{
				"name":     field.Name,
				"type":     fieldType,
				"required": strconv.FormatBool(field.Required),
			},
		})
	}
	elements := []Element{}
	if cfg.Title != "" {
		elements = append(elements, Element{Kind: ElementKindHeading, Text: cfg.Title})
	}
	return append(elements, Element{Kind: ElementKindContainer, Children: fields})
}

func renderCard(cfg *content.CardConfig) []Element {
	if cfg == nil {
		cfg = &content.CardConfig{}
	}
	children := []Element{{Kind: ElementKindHeading, Text: cfg.Title}}
	if cfg.ImageURL != "" {
		children = append(children, Element{
			Kind:  ElementKindImage,
			Props: map[string]string{"src": cfg.ImageURL},
		})
	}
	children = append(children, Element{Kind: ElementKindText, Text: cfg.Body})
	return []Element{{Kind: ElementKindContainer, Children: children}}
}

func renderButton(cfg *content.ButtonConfig) []Element {
	if cfg == nil {
		cfg = &content.ButtonConfig{}
	}
	label := cfg.Label
	if label == "" {
		label = "Continue"
	}
	return []Element{{
		Kind:  ElementKindButton,
		Text:  label,
		Props: map[string]string{"action": cfg.Action, "targetUrl": safeLinkURL(cfg.TargetURL)},
	}}
}
