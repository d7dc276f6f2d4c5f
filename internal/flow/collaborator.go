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

package flow

import "context"

// Collaborator is the remote-procedure boundary of the flow engine. The engine
// only orchestrates these calls; session persistence, QR resolution and the
// verification decision all live behind this interface.
type Collaborator interface {
	// StartFlowSession resolves a QR id to its campaign and brand and creates a
	// new session.
	StartFlowSession(ctx context.Context, qrID string) (*StartFlowResult, error)
	// GetFlowSession fetches the full session state.
	GetFlowSession(ctx context.Context, sessionID string) (*FlowSession, error)
	// UpdateFlowStore persists the customer's store choice.
	UpdateFlowStore(ctx context.Context, sessionID string, storeMeta StoreMeta) error
	// LinkUserToFlow associates an authenticated user with the session.
	LinkUserToFlow(ctx context.Context, sessionID, userID string, marketingOptIn bool,
		createdVia LoginProvider) error
	// RunVerification triggers the external verification decision for the session.
	RunVerification(ctx context.Context, sessionID string) (*VerificationRecord, error)
	// UpdateFlowStep persists the session's current step.
	UpdateFlowStep(ctx context.Context, sessionID string, step FlowStep, status SessionStatus) error
}
