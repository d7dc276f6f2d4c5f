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

package verify

import (
	"bytes"
	"context"
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
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	f.lastReq = req
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

type DeciderTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestDeciderSuite(t *testing.T) {
	suite.Run(t, new(DeciderTestSuite))
}

func (suite *DeciderTestSuite) SetupTest() {
	suite.ctx = context.Background()
}

func (suite *DeciderTestSuite) TestDecide() {
	client := &fakeHTTPClient{
		response: jsonResponse(http.StatusOK,
			`{"success":true,"result":"warn","reasons":["store mismatch"],"store_ok":false,"expiry_ok":true}`),
	}
	decider := newRemoteDecider(client, "https://decisions.veritag.io/decide", "secret-key")

	decision, err := decider.Decide(suite.ctx, "session-1")

	suite.Require().NoError(err)
	suite.Equal(ResultWarn, decision.Result)
	suite.Equal([]string{"store mismatch"}, decision.Reasons)
	suite.False(decision.StoreOK)
	suite.True(decision.ExpiryOK)

	suite.Require().NotNil(client.lastReq)
	suite.Equal(http.MethodPost, client.lastReq.Method)
	suite.Equal("Bearer secret-key", client.lastReq.Header.Get("Authorization"))
}

func (suite *DeciderTestSuite) TestDecideOmitsAuthWithoutKey() {
	client := &fakeHTTPClient{
		response: jsonResponse(http.StatusOK, `{"success":true,"result":"pass"}`),
	}
	decider := newRemoteDecider(client, "https://decisions.veritag.io/decide", "")

	decision, err := decider.Decide(suite.ctx, "session-1")

	suite.Require().NoError(err)
	suite.Equal(ResultPass, decision.Result)
	suite.Empty(client.lastReq.Header.Get("Authorization"))
}

func (suite *DeciderTestSuite) TestDecideTransportError() {
	client := &fakeHTTPClient{err: errors.New("connection refused")}
	decider := newRemoteDecider(client, "https://decisions.veritag.io/decide", "")

	decision, err := decider.Decide(suite.ctx, "session-1")

	suite.Nil(decision)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "connection refused")
}

func (suite *DeciderTestSuite) TestDecideRejectsFailureResponses() {
	tests := []struct {
		name     string
		response *http.Response
	}{
		{
			name:     "Non-200 status",
			response: jsonResponse(http.StatusBadGateway, `{}`),
		},
		{
			name:     "Unsuccessful response",
			response: jsonResponse(http.StatusOK, `{"success":false,"message":"session unknown"}`),
		},
		{
			name:     "Unknown result value",
			response: jsonResponse(http.StatusOK, `{"success":true,"result":"maybe"}`),
		},
		{
			name:     "Malformed body",
			response: jsonResponse(http.StatusOK, `{"success":`),
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			client := &fakeHTTPClient{response: tc.response}
			decider := newRemoteDecider(client, "https://decisions.veritag.io/decide", "")

			decision, err := decider.Decide(suite.ctx, "session-1")

			suite.Nil(decision)
			suite.Error(err)
		})
	}
}
