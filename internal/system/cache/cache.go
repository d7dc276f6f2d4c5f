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

// Package cache provides a TTL based in-memory cache with per-cache configuration.
package cache

import (
	"sync"
	"time"

	"github.com/veritag/veritag/internal/system/config"
	"github.com/veritag/veritag/internal/system/log"
)

const (
	defaultCacheSize       = 1000
	defaultCacheTTL        = 300 * time.Second
	defaultCleanupInterval = 60 * time.Second
)

// CacheKey represents a key used to identify a cache entry.
type CacheKey struct {
	Key string
}

// cacheEntry holds a cached value together with its expiry time.
type cacheEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// CacheManagerInterface defines the interface for cache operations.
type CacheManagerInterface[T any] interface {
	Set(key CacheKey, value T)
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey)
	Clear()
	IsEnabled() bool
}

// CacheManager is a TTL based in-memory cache implementation.
type CacheManager[T any] struct {
	name            string
	enabled         bool
	maxSize         int
	ttl             time.Duration
	cleanupInterval time.Duration
	entries         map[CacheKey]cacheEntry[T]
	mu              sync.RWMutex
}

// NewCacheManager creates a new cache manager for the given cache name using the server cache configuration.
func NewCacheManager[T any](cacheName string) CacheManagerInterface[T] {
	cacheConfig := config.GetVeritagRuntime().Config.Cache

	cm := &CacheManager[T]{
		name:            cacheName,
		enabled:         !cacheConfig.Disabled,
		maxSize:         defaultCacheSize,
		ttl:             defaultCacheTTL,
		cleanupInterval: defaultCleanupInterval,
		entries:         make(map[CacheKey]cacheEntry[T]),
	}

	if cacheConfig.Size > 0 {
		cm.maxSize = cacheConfig.Size
	}
	if cacheConfig.TTL > 0 {
		cm.ttl = time.Duration(cacheConfig.TTL) * time.Second
	}
	if cacheConfig.CleanupInterval > 0 {
		cm.cleanupInterval = time.Duration(cacheConfig.CleanupInterval) * time.Second
	}

	// Per-cache properties override the defaults.
	for _, property := range cacheConfig.Properties {
		if property.Name != cacheName {
			continue
		}
		if property.Disabled {
			cm.enabled = false
		}
		if property.Size > 0 {
			cm.maxSize = property.Size
		}
		if property.TTL > 0 {
			cm.ttl = time.Duration(property.TTL) * time.Second
		}
	}

	if cm.enabled {
		cm.startCleanupRoutine()
	}

	return cm
}

// IsEnabled returns whether the cache is enabled.
func (cm *CacheManager[T]) IsEnabled() bool {
	return cm.enabled
}

// Set stores a value in the cache. It is a no-op when the cache is disabled or full.
func (cm *CacheManager[T]) Set(key CacheKey, value T) {
	if !cm.enabled {
		return
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	if len(cm.entries) >= cm.maxSize {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheManager"))
		logger.Debug("Cache is full, skipping set", log.String("cacheName", cm.name))
		return
	}

	cm.entries[key] = cacheEntry[T]{
		value:     value,
		expiresAt: time.Now().Add(cm.ttl),
	}
}

// Get retrieves a value from the cache. Expired entries are treated as misses.
func (cm *CacheManager[T]) Get(key CacheKey) (T, bool) {
	var zero T
	if !cm.enabled {
		return zero, false
	}

	cm.mu.RLock()
	entry, ok := cm.entries[key]
	cm.mu.RUnlock()

	if !ok {
		return zero, false
	}
	if time.Now().After(entry.expiresAt) {
		cm.Delete(key)
		return zero, false
	}

	return entry.value, true
}

// Delete removes a value from the cache.
func (cm *CacheManager[T]) Delete(key CacheKey) {
	if !cm.enabled {
		return
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()
	delete(cm.entries, key)
}

// Clear removes all values from the cache.
func (cm *CacheManager[T]) Clear() {
	if !cm.enabled {
		return
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.entries = make(map[CacheKey]cacheEntry[T])
}

// startCleanupRoutine starts a background goroutine that evicts expired entries periodically.
func (cm *CacheManager[T]) startCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(cm.cleanupInterval)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()
			cm.mu.Lock()
			for key, entry := range cm.entries {
				if now.After(entry.expiresAt) {
					delete(cm.entries, key)
				}
			}
			cm.mu.Unlock()
		}
	}()
}
