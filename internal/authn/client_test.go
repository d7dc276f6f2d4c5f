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
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// fakeHTTPClient returns a canned response and captures the outgoing request.
type fakeHTTPClient struct {
	response *http.Response
	err      error
	lastReq  *http.Request
	lastBody []byte
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	f.lastReq = req
	if req.Body != nil {
		f.lastBody, _ = io.ReadAll(req.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *fakeHTTPClient) Get(url string) (*http.Response, error) {
	return f.response, f.err
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

type ProviderTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderTestSuite))
}

func (suite *ProviderTestSuite) SetupTest() {
	suite.ctx = context.Background()
}

func (suite *ProviderTestSuite) TestSignIn() {
	client := &fakeHTTPClient{
		response: jsonResponse(http.StatusOK,
			`{"success":true,"user_id":"user-42","email":"shopper@example.com"}`),
	}
	provider := newRemoteProvider(client, "https://auth.veritag.io/", "secret-key")

	identity, err := provider.SignIn(suite.ctx, "shopper@example.com", "hunter2")

	suite.Require().NoError(err)
	suite.Equal("user-42", identity.UserID)
	suite.Equal("shopper@example.com", identity.Email)

	suite.Require().NotNil(client.lastReq)
	suite.Equal(http.MethodPost, client.lastReq.Method)
	suite.Equal("https://auth.veritag.io/signin", client.lastReq.URL.String())
	suite.Equal("Bearer secret-key", client.lastReq.Header.Get("Authorization"))

	var sent map[string]string
	suite.Require().NoError(json.Unmarshal(client.lastBody, &sent))
	suite.Equal("shopper@example.com", sent["email"])
	suite.Equal("hunter2", sent["password"])
}

func (suite *ProviderTestSuite) TestSignUp() {
	client := &fakeHTTPClient{
		response: jsonResponse(http.StatusOK, `{"success":true,"user_id":"user-77"}`),
	}
	provider := newRemoteProvider(client, "https://auth.veritag.io", "")

	identity, err := provider.SignUp(suite.ctx, "new@example.com", "secret")

	suite.Require().NoError(err)
	suite.Equal("user-77", identity.UserID)
	suite.Equal("https://auth.veritag.io/signup", client.lastReq.URL.String())
	suite.Empty(client.lastReq.Header.Get("Authorization"))
}

func (suite *ProviderTestSuite) TestSignInWithOAuth() {
	client := &fakeHTTPClient{
		response: jsonResponse(http.StatusOK, `{"success":true,"user_id":"user-9"}`),
	}
	provider := newRemoteProvider(client, "https://auth.veritag.io", "secret-key")

	identity, err := provider.SignInWithOAuth(suite.ctx, OAuthProviderGoogle, "oauth-token-abc")

	suite.Require().NoError(err)
	suite.Equal("user-9", identity.UserID)
	suite.Equal("https://auth.veritag.io/oauth", client.lastReq.URL.String())

	var sent map[string]string
	suite.Require().NoError(json.Unmarshal(client.lastBody, &sent))
	suite.Equal("google", sent["provider"])
	suite.Equal("oauth-token-abc", sent["token"])
}

func (suite *ProviderTestSuite) TestSignInTransportError() {
	client := &fakeHTTPClient{err: errors.New("connection refused")}
	provider := newRemoteProvider(client, "https://auth.veritag.io", "")

	identity, err := provider.SignIn(suite.ctx, "shopper@example.com", "hunter2")

	suite.Nil(identity)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "authentication request failed")
}

func (suite *ProviderTestSuite) TestSignInRejectsFailureResponses() {
	tests := []struct {
		name     string
		response *http.Response
	}{
		{
			name:     "Non 200 status",
			response: jsonResponse(http.StatusUnauthorized, `{}`),
		},
		{
			name:     "Rejected credentials",
			response: jsonResponse(http.StatusOK, `{"success":false,"message":"bad password"}`),
		},
		{
			name:     "Missing user id",
			response: jsonResponse(http.StatusOK, `{"success":true}`),
		},
		{
			name:     "Malformed body",
			response: jsonResponse(http.StatusOK, `{not json`),
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			client := &fakeHTTPClient{response: tc.response}
			provider := newRemoteProvider(client, "https://auth.veritag.io", "")

			identity, err := provider.SignIn(suite.ctx, "shopper@example.com", "hunter2")

			suite.Nil(identity)
			suite.Error(err)
		})
	}
}
