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

// Package authn provides the client for the external authentication service.
// Credential checking and account storage stay external; the server only
// resolves identities through the provider contract.
package authn

import "context"

// OAuthProvider identifies a supported social login provider.
type OAuthProvider string

const (
	// OAuthProviderGoogle is Google social login.
	OAuthProviderGoogle OAuthProvider = "google"
	// OAuthProviderApple is Apple social login.
	OAuthProviderApple OAuthProvider = "apple"
)

// Identity is the authenticated user identity returned by a provider.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
}

// ProviderInterface is the capability contract for the external authentication
// provider.
type ProviderInterface interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	SignInWithOAuth(ctx context.Context, provider OAuthProvider, token string) (*Identity, error)
}
