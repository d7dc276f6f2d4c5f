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

// Package render maps page sections and resolved style tokens into the typed
// element tree served to flow clients.
package render

import (
	"github.com/veritag/veritag/internal/content"
)

// ElementKind identifies the kind of a rendered element.
type ElementKind string

const (
	// ElementKindContainer groups child elements.
	ElementKindContainer ElementKind = "container"
	// ElementKindHeading is a heading text element.
	ElementKindHeading ElementKind = "heading"
	// ElementKindText is a body text element, optionally carrying styled spans.
	ElementKindText ElementKind = "text"
	// ElementKindImage is an image element.
	ElementKindImage ElementKind = "image"
	// ElementKindButton is an actionable button element.
	ElementKindButton ElementKind = "button"
	// ElementKindLink is a hyperlink element.
	ElementKindLink ElementKind = "link"
	// ElementKindDivider is a visual divider element.
	ElementKindDivider ElementKind = "divider"
	// ElementKindInput is a form input element.
	ElementKindInput ElementKind = "input"
	// ElementKindChoice is a selectable option element.
	ElementKindChoice ElementKind = "choice"
	// ElementKindAuthPrompt delegates to the client's authentication surface.
	ElementKindAuthPrompt ElementKind = "auth_prompt"
	// ElementKindPlaceholder marks an unrecognized section.
	ElementKindPlaceholder ElementKind = "placeholder"
)

// Element is one node of the rendered view-model tree.
type Element struct {
	Kind     ElementKind       `json:"kind"`
	Text     string            `json:"text,omitempty"`
	Spans    []Span            `json:"spans,omitempty"`
	Props    map[string]string `json:"props,omitempty"`
	Children []Element         `json:"children,omitempty"`
}

// SectionStyle carries the visual constants the client applies to a rendered
// section's frame.
type SectionStyle struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	BackgroundStyle string `json:"backgroundStyle,omitempty"`
	CardStyle       string `json:"cardStyle,omitempty"`
	Spacing         string `json:"spacing"`
	BorderRadius    string `json:"borderRadius,omitempty"`
	ShadowLevel     string `json:"shadowLevel,omitempty"`
}

// RenderedSection is the rendered form of one page section.
type RenderedSection struct {
	SectionID string              `json:"sectionId"`
	Type      content.SectionType `json:"type"`
	Style     SectionStyle        `json:"style"`
	Elements  []Element           `json:"elements"`
}

// StoreSelection is the two-step store choice state: purchase channel first,
// then the specific store.
type StoreSelection struct {
	LocationType string `json:"locationType,omitempty"`
	StoreName    string `json:"storeName,omitempty"`
}

// StoreSelectorMode reports where the store selection state lives.
type StoreSelectorMode string

const (
	// StoreSelectorModeControlled means the parent controller owns the selection state.
	StoreSelectorModeControlled StoreSelectorMode = "controlled"
	// StoreSelectorModeUncontrolled means the client keeps local selection state.
	StoreSelectorModeUncontrolled StoreSelectorMode = "uncontrolled"
)

// Context carries the runtime bindings a render pass needs beyond the section
// itself.
type Context struct {
	// PreviewMode renders for the template editor rather than a live session.
	PreviewMode bool
	// StoreOptions, when non-empty, overrides the section's own store list.
	StoreOptions []string
	// BrandColors are the raw brand palette entries, keyed by slot name. They
	// theme the auth prompt handed to the client's authentication surface.
	BrandColors map[string]string
	// StoreSelection is the controlled store-selector value, nil when uncontrolled.
	StoreSelection *StoreSelection
	// OnStoreChange receives controlled store-selector changes; supplying it
	// together with StoreSelection switches the selector into controlled mode.
	OnStoreChange func(StoreSelection)
}

// storeSelectorControlled reports whether both a value and a change handler were
// supplied, which switches the selector into controlled mode.
func (c *Context) storeSelectorControlled() bool {
	return c.StoreSelection != nil && c.OnStoreChange != nil
}
