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

// Package http provides the shared client for outbound HTTP requests.
package http

import (
	"net/http"
	"sync"
	"time"
)

// defaultTimeout bounds outbound calls so a stalled upstream cannot
// pin request handlers indefinitely.
const defaultTimeout = 30 * time.Second

// HTTPClientInterface is the contract consumed by packages that call
// external services, allowing tests to substitute a fake transport.
type HTTPClientInterface interface {
	Do(req *http.Request) (*http.Response, error)
	Get(url string) (*http.Response, error)
}

// HTTPClient wraps a configured net/http client.
type HTTPClient struct {
	client *http.Client
}

var (
	sharedClient HTTPClientInterface
	sharedOnce   sync.Once
)

// GetHTTPClient returns the shared outbound client.
func GetHTTPClient() HTTPClientInterface {
	sharedOnce.Do(func() {
		sharedClient = NewHTTPClient()
	})
	return sharedClient
}

// NewHTTPClient creates a client with the default timeout.
func NewHTTPClient() HTTPClientInterface {
	return NewHTTPClientWithTimeout(defaultTimeout)
}

// NewHTTPClientWithTimeout creates a client with an explicit timeout,
// used where the upstream budget is configured per service.
func NewHTTPClientWithTimeout(timeout time.Duration) HTTPClientInterface {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 8
	return &HTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Do executes the given request.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}

// Get issues a GET to the given URL.
func (c *HTTPClient) Get(url string) (*http.Response, error) {
	return c.client.Get(url)
}
