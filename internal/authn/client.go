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

package authn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/veritag/veritag/internal/system/config"
	serverconst "github.com/veritag/veritag/internal/system/constants"
	httpservice "github.com/veritag/veritag/internal/system/http"
	"github.com/veritag/veritag/internal/system/log"
)

const loggerComponentName = "AuthnClient"

// remoteProvider resolves identities against the external authentication
// service over HTTP.
type remoteProvider struct {
	client   httpservice.HTTPClientInterface
	endpoint string
	apiKey   string
}

var (
	providerInstance ProviderInterface
	providerOnce     sync.Once
)

// GetProvider returns a singleton provider configured from the server configuration.
func GetProvider() ProviderInterface {
	providerOnce.Do(func() {
		authConfig := config.GetVeritagRuntime().Config.Authentication
		client := httpservice.GetHTTPClient()
		if authConfig.Timeout > 0 {
			client = httpservice.NewHTTPClientWithTimeout(
				time.Duration(authConfig.Timeout) * time.Second)
		}
		providerInstance = newRemoteProvider(client, authConfig.Endpoint, authConfig.APIKey)
	})
	return providerInstance
}

// newRemoteProvider creates a provider with explicit dependencies.
func newRemoteProvider(client httpservice.HTTPClientInterface, endpoint, apiKey string) ProviderInterface {
	return &remoteProvider{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
	}
}

// signInRequest is the request body for credential sign-in and sign-up.
type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// oauthRequest is the request body for social sign-in.
type oauthRequest struct {
	Provider string `json:"provider"`
	Token    string `json:"token"`
}

// identityResponse is the response body of the authentication service.
type identityResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SignIn resolves an identity from email and password credentials.
func (p *remoteProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	return p.post(ctx, "/signin", signInRequest{Email: email, Password: password})
}

// SignUp registers a new account and resolves its identity.
func (p *remoteProvider) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	return p.post(ctx, "/signup", signInRequest{Email: email, Password: password})
}

// SignInWithOAuth resolves an identity from a social login token.
func (p *remoteProvider) SignInWithOAuth(ctx context.Context, provider OAuthProvider,
	token string) (*Identity, error) {
	return p.post(ctx, "/oauth", oauthRequest{Provider: string(provider), Token: token})
}

func (p *remoteProvider) post(ctx context.Context, path string, payload any) (*Identity, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal authentication request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build authentication request: %w", err)
	}
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("authentication request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close authentication response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("authentication service returned status %d", resp.StatusCode)
	}

	var decoded identityResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode authentication response: %w", err)
	}
	if !decoded.Success || decoded.UserID == "" {
		return nil, fmt.Errorf("authentication rejected: %s", decoded.Message)
	}

	return &Identity{UserID: decoded.UserID, Email: decoded.Email}, nil
}
