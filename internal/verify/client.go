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

// Package verify provides the client for the external verification decision service.
package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/veritag/veritag/internal/system/config"
	serverconst "github.com/veritag/veritag/internal/system/constants"
	httpservice "github.com/veritag/veritag/internal/system/http"
	"github.com/veritag/veritag/internal/system/log"
)

const loggerComponentName = "VerificationClient"

// Result is the verification outcome of a product authentication check.
type Result string

const (
	// ResultPass indicates the product checks out.
	ResultPass Result = "pass"
	// ResultWarn indicates the product checks out with caveats.
	ResultWarn Result = "warn"
	// ResultFail indicates the product failed verification.
	ResultFail Result = "fail"
)

// Decision is the full decision record returned by the verification service.
type Decision struct {
	Result   Result   `json:"result"`
	Reasons  []string `json:"reasons"`
	StoreOK  bool     `json:"store_ok"`
	ExpiryOK bool     `json:"expiry_ok"`
}

// DeciderInterface is the capability contract for the external verification
// decision service. The engine never implements the decision algorithm itself.
type DeciderInterface interface {
	Decide(ctx context.Context, sessionID string) (*Decision, error)
}

// remoteDecider calls the verification service over HTTP.
type remoteDecider struct {
	client   httpservice.HTTPClientInterface
	endpoint string
	apiKey   string
}

var (
	deciderInstance DeciderInterface
	deciderOnce     sync.Once
)

// GetDecider returns a singleton decider configured from the server configuration.
func GetDecider() DeciderInterface {
	deciderOnce.Do(func() {
		verificationConfig := config.GetVeritagRuntime().Config.Verification
		client := httpservice.GetHTTPClient()
		if verificationConfig.Timeout > 0 {
			client = httpservice.NewHTTPClientWithTimeout(
				time.Duration(verificationConfig.Timeout) * time.Second)
		}
		deciderInstance = newRemoteDecider(client, verificationConfig.Endpoint,
			verificationConfig.APIKey)
	})
	return deciderInstance
}

// newRemoteDecider creates a decider with explicit dependencies.
func newRemoteDecider(client httpservice.HTTPClientInterface, endpoint, apiKey string) DeciderInterface {
	return &remoteDecider{
		client:   client,
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

// decideRequest is the request body sent to the verification service.
type decideRequest struct {
	SessionID string `json:"session_id"`
}

// decideResponse is the response body of the verification service.
type decideResponse struct {
	Success  bool     `json:"success"`
	Result   string   `json:"result"`
	Reasons  []string `json:"reasons"`
	StoreOK  bool     `json:"store_ok"`
	ExpiryOK bool     `json:"expiry_ok"`
	Message  string   `json:"message"`
}

// Decide requests a verification decision for the given session.
func (d *remoteDecider) Decide(ctx context.Context, sessionID string) (*Decision, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	body, err := json.Marshal(decideRequest{SessionID: sessionID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal verification request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build verification request: %w", err)
	}
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	if d.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+d.apiKey)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verification request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close verification response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verification service returned status %d", resp.StatusCode)
	}

	var decoded decideResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode verification response: %w", err)
	}
	if !decoded.Success {
		return nil, fmt.Errorf("verification service rejected the request: %s", decoded.Message)
	}

	result := Result(decoded.Result)
	switch result {
	case ResultPass, ResultWarn, ResultFail:
	default:
		return nil, fmt.Errorf("verification service returned unknown result %q", decoded.Result)
	}

	return &Decision{
		Result:   result,
		Reasons:  decoded.Reasons,
		StoreOK:  decoded.StoreOK,
		ExpiryOK: decoded.ExpiryOK,
	}, nil
}
