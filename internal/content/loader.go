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

package content

import (
	"encoding/json"
	"sync"

	"github.com/veritag/veritag/internal/system/cache"
	"github.com/veritag/veritag/internal/system/config"
	"github.com/veritag/veritag/internal/system/error/serviceerror"
	"github.com/veritag/veritag/internal/system/log"
)

const loaderComponentName = "FlowContentLoader"

// SourceMode identifies which content source a load was served from.
type SourceMode string

const (
	// SourceModePublished indicates the published snapshot was served.
	SourceModePublished SourceMode = "published"
	// SourceModeDraft indicates the live draft config was served.
	SourceModeDraft SourceMode = "draft"
	// SourceModeLegacy indicates the content was reconstructed from legacy rows.
	SourceModeLegacy SourceMode = "legacy"
)

// LoadOptions controls how content is resolved.
type LoadOptions struct {
	// ForceDraft prefers the live draft config over the published snapshot.
	// Only honored when draft serving is permitted; never used on the customer path.
	ForceDraft bool
}

// Metadata describes the resolved content version.
type Metadata struct {
	CampaignID string `json:"campaignId"`
	TemplateID string `json:"templateId,omitempty"`
	Family     string `json:"family,omitempty"`
	Version    int    `json:"version"`
}

// LoadResult is the outcome of a successful content load.
type LoadResult struct {
	Content    *Document  `json:"content"`
	SourceMode SourceMode `json:"sourceMode"`
	Metadata   Metadata   `json:"metadata"`
}

// LoaderInterface resolves which content snapshot a campaign serves.
type LoaderInterface interface {
	Load(campaignID string, opts LoadOptions) (*LoadResult, *serviceerror.ServiceError)
}

// loader is the implementation of LoaderInterface.
type loader struct {
	store        StoreInterface
	recordCache  cache.CacheManagerInterface[*Record]
	draftAllowed bool
}

var (
	loaderInstance LoaderInterface
	loaderOnce     sync.Once
)

// GetContentLoader returns a singleton instance of the content loader.
func GetContentLoader() LoaderInterface {
	loaderOnce.Do(func() {
		loaderInstance = newLoader(
			NewStore(),
			cache.NewCacheManager[*Record]("contentRecord"),
			config.GetVeritagRuntime().Config.Flow.DebugModeEnabled,
		)
	})
	return loaderInstance
}

// newLoader creates a content loader with explicit dependencies.
func newLoader(store StoreInterface, recordCache cache.CacheManagerInterface[*Record],
	draftAllowed bool) LoaderInterface {
	return &loader{
		store:        store,
		recordCache:  recordCache,
		draftAllowed: draftAllowed,
	}
}

// Load resolves the content to serve for the given campaign.
//
// On the customer-facing path (ForceDraft false) only the published snapshot is
// ever served; a campaign without one fails with an explicit "not published"
// error rather than silently substituting the draft. The draft path prefers the
// live draft, falls back to the published snapshot, and reconstructs legacy rows
// as a last resort.
func (l *loader) Load(campaignID string, opts LoadOptions) (*LoadResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loaderComponentName),
		log.String(log.LoggerKeyCampaignID, campaignID))

	record, svcErr := l.getRecord(campaignID, opts.ForceDraft, logger)
	if svcErr != nil {
		return nil, svcErr
	}

	// A record served for a different campaign than requested is a content
	// leakage attempt and always fails, regardless of content validity.
	if record.CampaignID != campaignID {
		logger.Warn("Content record campaign mismatch",
			log.String("recordCampaignID", record.CampaignID))
		return nil, &ErrorCampaignMismatch
	}

	metadata := Metadata{
		CampaignID: record.CampaignID,
		TemplateID: record.TemplateID,
		Family:     record.TemplateFamily,
		Version:    record.LatestPublishedVersion,
	}

	if !opts.ForceDraft {
		if record.PublishedSnapshot == nil {
			logger.Debug("Campaign has no published snapshot")
			return nil, &ErrorContentNotPublished
		}
		return &LoadResult{
			Content:    normalizeDocument(record.PublishedSnapshot, logger),
			SourceMode: SourceModePublished,
			Metadata:   metadata,
		}, nil
	}

	if !l.draftAllowed {
		return nil, &ErrorContentPermissionDenied
	}

	if !record.FlowConfig.IsEmpty() {
		return &LoadResult{
			Content:    normalizeDocument(record.FlowConfig, logger),
			SourceMode: SourceModeDraft,
			Metadata:   metadata,
		}, nil
	}

	if !record.PublishedSnapshot.IsEmpty() {
		logger.Debug("Draft config is empty, falling back to published snapshot")
		return &LoadResult{
			Content:    normalizeDocument(record.PublishedSnapshot, logger),
			SourceMode: SourceModePublished,
			Metadata:   metadata,
		}, nil
	}

	legacyDoc, svcErr := l.reconstructFromLegacyRows(campaignID, logger)
	if svcErr != nil {
		return nil, svcErr
	}
	return &LoadResult{
		Content:    legacyDoc,
		SourceMode: SourceModeLegacy,
		Metadata:   metadata,
	}, nil
}

// getRecord retrieves the content record, serving cached records on the customer path.
func (l *loader) getRecord(campaignID string, forceDraft bool, logger *log.Logger) (*Record,
	*serviceerror.ServiceError) {
	cacheKey := cache.CacheKey{Key: campaignID}

	// Draft loads always bypass the cache so editors see their latest changes.
	if !forceDraft {
		if cached, ok := l.recordCache.Get(cacheKey); ok {
			return cached, nil
		}
	}

	record, err := l.store.GetRecord(campaignID)
	if err != nil {
		logger.Error("Failed to retrieve content record", log.Error(err))
		return nil, &ErrorContentRetrieval
	}
	if record == nil {
		return nil, &ErrorContentNotFound
	}

	if !forceDraft {
		l.recordCache.Set(cacheKey, record)
	}

	return record, nil
}

// reconstructFromLegacyRows assembles a document from the legacy content table.
func (l *loader) reconstructFromLegacyRows(campaignID string, logger *log.Logger) (*Document,
	*serviceerror.ServiceError) {
	rows, err := l.store.GetLegacyRows(campaignID)
	if err != nil {
		logger.Error("Failed to retrieve legacy content rows", log.Error(err))
		return nil, &ErrorContentRetrieval
	}
	if len(rows) == 0 {
		return nil, &ErrorContentNotFound
	}

	logger.Info("Reconstructing content from legacy rows", log.Int("rowCount", len(rows)))

	// Rows are ordered; group consecutive rows of the same page.
	var pages []Page
	pageIndex := map[string]int{}
	for _, row := range rows {
		index, seen := pageIndex[row.PageID]
		if !seen {
			pages = append(pages, Page{
				ID:   row.PageID,
				Name: row.PageName,
				Type: row.PageType,
			})
			index = len(pages) - 1
			pageIndex[row.PageID] = index
		}

		section := Section{
			ID:     row.SectionID,
			Type:   SectionType(row.SectionType),
			Order:  row.Position,
			Config: decodeSectionConfig(SectionType(row.SectionType), json.RawMessage(row.ConfigJSON)),
		}
		pages[index].Sections = append(pages[index].Sections, section)
	}

	return &Document{Pages: pages}, nil
}

// normalizeDocument guarantees the returned document exposes a pages array.
// A payload without one is treated as empty pages and reported, not an error.
func normalizeDocument(doc *Document, logger *log.Logger) *Document {
	if doc.Pages == nil {
		logger.Warn("Content document has no pages array, treating as empty")
		return &Document{Pages: []Page{}, DesignConfig: doc.DesignConfig}
	}
	return doc
}
