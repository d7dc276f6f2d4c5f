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

import (
	"context"

	"github.com/veritag/veritag/internal/authn"
	"github.com/veritag/veritag/internal/system/log"
	"github.com/veritag/veritag/internal/telemetry"
)

const controllerLoggerComponentName = "CertificationFlowController"

// Controller owns one session's traversal of a certification flow: the current
// step, the session state and the orchestration of collaborator calls.
//
// A Controller instance is owned by a single goroutine; all mutation funnels
// through its methods. Expected failures surface as booleans and nils plus
// logged detail, never as errors escaping to the caller. Concurrent calls are
// not de-duplicated: two overlapping RunVerification calls produce two in-flight
// requests.
type Controller struct {
	collaborator Collaborator
	telemetry    telemetry.ServiceInterface

	session       *FlowSession
	currentStep   FlowStep
	invalidReason string
	loading       bool
}

// NewController creates a flow controller over the given collaborator and
// telemetry sink. The controller starts at the scan step with no session.
func NewController(collaborator Collaborator, telemetrySvc telemetry.ServiceInterface) *Controller {
	return &Controller{
		collaborator: collaborator,
		telemetry:    telemetrySvc,
		currentStep:  StepScan,
	}
}

// Session returns the current session state, nil before StartFlow succeeds.
func (c *Controller) Session() *FlowSession {
	return c.session
}

// CurrentStep returns the step the flow is currently on.
func (c *Controller) CurrentStep() FlowStep {
	return c.currentStep
}

// InvalidReason returns the human-readable reason retained when the flow
// entered the invalid step, empty otherwise.
func (c *Controller) InvalidReason() string {
	return c.invalidReason
}

// IsLoading reports whether a collaborator call is in flight.
func (c *Controller) IsLoading() bool {
	return c.loading
}

// StartFlow initializes the session from exactly one of a QR id or an existing
// test session id. Resolution failure transitions to the invalid step with a
// retained reason and returns false; it never returns an error to the caller.
func (c *Controller) StartFlow(ctx context.Context, qrID, testSessionID string) bool {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, controllerLoggerComponentName))

	if (qrID == "") == (testSessionID == "") {
		c.enterInvalid("Exactly one of a QR code or a test session is required to start the flow")
		return false
	}

	c.loading = true
	defer func() { c.loading = false }()

	if qrID != "" {
		result, err := c.collaborator.StartFlowSession(ctx, qrID)
		if err != nil {
			logger.Warn("Failed to start flow session", log.String(log.LoggerKeyQRID, qrID),
				log.Error(err))
			c.enterInvalid("This QR code could not be verified")
			return false
		}

		session, err := c.collaborator.GetFlowSession(ctx, result.SessionID)
		if err != nil || session == nil {
			logger.Warn("Failed to fetch new flow session",
				log.String(log.LoggerKeySessionID, result.SessionID), log.Error(err))
			c.enterInvalid("The verification session could not be loaded")
			return false
		}

		c.session = session
		c.setStep(ctx, StepWelcome)
		c.TrackEvent(EventFlowStarted, map[string]any{
			"campaign_id": session.Campaign.ID,
			"brand_id":    session.Brand.ID,
		})
		return true
	}

	session, err := c.collaborator.GetFlowSession(ctx, testSessionID)
	if err != nil || session == nil {
		logger.Warn("Failed to rehydrate test session",
			log.String(log.LoggerKeySessionID, testSessionID), log.Error(err))
		c.enterInvalid("The test session could not be found")
		return false
	}

	c.session = session
	if stepIndex(session.Step) > stepIndex(StepScan) {
		c.currentStep = session.Step
	} else {
		c.setStep(ctx, StepWelcome)
	}
	return true
}

// UpdateStore persists the customer's store choice. Requires an active session;
// returns false on business failure without mutating local state, leaving the
// retry decision to the caller.
func (c *Controller) UpdateStore(ctx context.Context, storeMeta StoreMeta) bool {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, controllerLoggerComponentName))

	if c.session == nil {
		logger.Warn("Store update without an active session")
		return false
	}

	c.loading = true
	defer func() { c.loading = false }()

	if err := c.collaborator.UpdateFlowStore(ctx, c.session.ID, storeMeta); err != nil {
		logger.Warn("Failed to update store", log.String(log.LoggerKeySessionID, c.session.ID),
			log.Error(err))
		return false
	}

	c.session.StoreMeta = &storeMeta
	c.TrackEvent(EventStoreSelected, map[string]any{
		"location_type": storeMeta.LocationType,
		"store_name":    storeMeta.StoreName,
	})
	return true
}

// LinkUser associates an externally authenticated identity with the session and
// records the provider used and the marketing opt-in. Requires both an active
// session and a resolved identity.
func (c *Controller) LinkUser(ctx context.Context, identity *authn.Identity, provider LoginProvider,
	marketingOptIn bool) bool {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, controllerLoggerComponentName))

	if c.session == nil {
		logger.Warn("User link without an active session")
		return false
	}
	if identity == nil || identity.UserID == "" {
		logger.Warn("User link without a resolved identity",
			log.String(log.LoggerKeySessionID, c.session.ID))
		return false
	}

	c.loading = true
	defer func() { c.loading = false }()

	if err := c.collaborator.LinkUserToFlow(ctx, c.session.ID, identity.UserID, marketingOptIn,
		provider); err != nil {
		logger.Warn("Failed to link user", log.String(log.LoggerKeySessionID, c.session.ID),
			log.Error(err))
		return false
	}

	c.session.UserID = identity.UserID
	c.session.MarketingOptIn = marketingOptIn
	c.session.CreatedVia = provider
	c.TrackEvent(EventUserLinked, map[string]any{"provider": string(provider)})
	return true
}

// RunVerification triggers the external verification decision and records a
// verify_<result> telemetry event carrying the reasons list verbatim. Returns
// the full decision record, or nil on failure.
func (c *Controller) RunVerification(ctx context.Context) *VerificationRecord {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, controllerLoggerComponentName))

	if c.session == nil {
		logger.Warn("Verification without an active session")
		return nil
	}

	c.loading = true
	defer func() { c.loading = false }()

	record, err := c.collaborator.RunVerification(ctx, c.session.ID)
	if err != nil || record == nil {
		logger.Warn("Verification failed", log.String(log.LoggerKeySessionID, c.session.ID),
			log.Error(err))
		return nil
	}

	c.session.Verification = record
	c.TrackEvent(EventVerifyPrefix+string(record.Result), map[string]any{
		"verification_id": record.ID,
		"reasons":         record.Reasons,
		"store_ok":        record.StoreOK,
		"expiry_ok":       record.ExpiryOK,
	})
	return record
}

// RefreshSession re-fetches the session from the collaborator to reconcile
// local and server state. Idempotent; with no intervening mutation two calls
// yield identical state.
func (c *Controller) RefreshSession(ctx context.Context) bool {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, controllerLoggerComponentName))

	if c.session == nil {
		return false
	}

	c.loading = true
	defer func() { c.loading = false }()

	session, err := c.collaborator.GetFlowSession(ctx, c.session.ID)
	if err != nil || session == nil {
		logger.Warn("Failed to refresh session", log.String(log.LoggerKeySessionID, c.session.ID),
			log.Error(err))
		return false
	}

	c.session = session
	return true
}

// TrackEvent records a fire-and-forget telemetry event. The action is
// namespaced with the flow prefix; delivery failures never surface here.
func (c *Controller) TrackEvent(name string, metadata map[string]any) {
	actor := AnonymousActor
	objectID := ""
	if c.session != nil {
		objectID = c.session.ID
		if c.session.UserID != "" {
			actor = c.session.UserID
		}
	}
	c.telemetry.Track(actor, telemetry.FlowActionPrefix+name, ObjectTypeFlowSession, objectID, metadata)
}

// GoToNextStep advances one step forward, clamping at the final page.
func (c *Controller) GoToNextStep(ctx context.Context) {
	index := stepIndex(c.currentStep)
	if index < 0 || index >= len(StepOrder)-1 {
		return
	}
	c.setStep(ctx, StepOrder[index+1])
}

// GoToPrevStep moves one step back, clamping at the scan step.
func (c *Controller) GoToPrevStep(ctx context.Context) {
	index := stepIndex(c.currentStep)
	if index <= 0 {
		return
	}
	c.setStep(ctx, StepOrder[index-1])
}

// GoToStep jumps directly to a step. Jumps are not validated beyond the step
// set itself so operator and test tooling can resume a flow anywhere; customer
// navigation only ever uses next/prev.
func (c *Controller) GoToStep(ctx context.Context, step FlowStep) {
	if step == StepInvalid {
		c.enterInvalid("The flow was moved to the invalid step")
		return
	}
	if stepIndex(step) < 0 {
		return
	}
	c.setStep(ctx, step)
}

// setStep updates the local step pointer and persists it best-effort. A
// persistence failure keeps the local transition; the stored step catches up on
// the next successful update.
func (c *Controller) setStep(ctx context.Context, step FlowStep) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, controllerLoggerComponentName))

	c.currentStep = step
	if c.session == nil {
		return
	}

	status := c.session.Status
	if step == StepFinalPage {
		status = SessionStatusCompleted
	}

	if err := c.collaborator.UpdateFlowStep(ctx, c.session.ID, step, status); err != nil {
		logger.Warn("Failed to persist flow step", log.String(log.LoggerKeySessionID, c.session.ID),
			log.String("step", string(step)), log.Error(err))
		return
	}
	c.session.Step = step
	c.session.Status = status
}

// enterInvalid transitions to the terminal invalid step and retains the reason
// for display.
func (c *Controller) enterInvalid(reason string) {
	c.currentStep = StepInvalid
	c.invalidReason = reason
	if c.session != nil {
		c.session.Status = SessionStatusFailed
	}
}
