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
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/veritag/veritag/internal/authn"
	"github.com/veritag/veritag/internal/telemetry"
	"github.com/veritag/veritag/internal/verify"
)

// fakeCollaborator is an in-memory Collaborator for controller tests.
type fakeCollaborator struct {
	sessions map[string]*FlowSession

	startErr  error
	getErr    error
	storeErr  error
	linkErr   error
	verifyErr error
	stepErr   error

	verification *VerificationRecord
	stepUpdates  []FlowStep
}

func newFakeCollaborator() *fakeCollaborator {
	return &fakeCollaborator{sessions: make(map[string]*FlowSession)}
}

func (f *fakeCollaborator) seedSession(session *FlowSession) {
	f.sessions[session.ID] = session
}

func (f *fakeCollaborator) StartFlowSession(_ context.Context, qrID string) (*StartFlowResult, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	session := &FlowSession{
		ID:       "session-1",
		QRID:     qrID,
		Status:   SessionStatusActive,
		Step:     StepScan,
		Campaign: CampaignInfo{ID: "campaign-1", Name: "Spring Launch"},
		Brand:    BrandInfo{ID: "brand-1", Name: "Acme"},
	}
	f.sessions[session.ID] = session
	return &StartFlowResult{
		SessionID:    session.ID,
		CampaignID:   session.Campaign.ID,
		CampaignName: session.Campaign.Name,
		BrandID:      session.Brand.ID,
		BrandName:    session.Brand.Name,
	}, nil
}

func (f *fakeCollaborator) GetFlowSession(_ context.Context, sessionID string) (*FlowSession, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *fakeCollaborator) UpdateFlowStore(_ context.Context, sessionID string, storeMeta StoreMeta) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.sessions[sessionID].StoreMeta = &storeMeta
	return nil
}

func (f *fakeCollaborator) LinkUserToFlow(_ context.Context, sessionID, userID string,
	marketingOptIn bool, createdVia LoginProvider) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	session := f.sessions[sessionID]
	session.UserID = userID
	session.MarketingOptIn = marketingOptIn
	session.CreatedVia = createdVia
	return nil
}

func (f *fakeCollaborator) RunVerification(_ context.Context, sessionID string) (*VerificationRecord, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.verification, nil
}

func (f *fakeCollaborator) UpdateFlowStep(_ context.Context, sessionID string, step FlowStep,
	status SessionStatus) error {
	if f.stepErr != nil {
		return f.stepErr
	}
	f.stepUpdates = append(f.stepUpdates, step)
	if session, ok := f.sessions[sessionID]; ok {
		session.Step = step
		session.Status = status
	}
	return nil
}

// trackedEvent captures one telemetry call.
type trackedEvent struct {
	Actor      string
	Action     string
	ObjectType string
	ObjectID   string
	Metadata   map[string]any
}

// fakeTelemetry records tracked events; it can be marked failing to prove that
// sink failures never propagate.
type fakeTelemetry struct {
	events  []trackedEvent
	failing bool
}

func (f *fakeTelemetry) Track(actor, action, objectType, objectID string, metadata map[string]any) {
	if f.failing {
		// A failing sink swallows silently, same as the real service.
		return
	}
	f.events = append(f.events, trackedEvent{
		Actor:      actor,
		Action:     action,
		ObjectType: objectType,
		ObjectID:   objectID,
		Metadata:   metadata,
	})
}

func (f *fakeTelemetry) GetEventsByObject(objectType, objectID string) ([]telemetry.Event, error) {
	return nil, nil
}

type ControllerTestSuite struct {
	suite.Suite
	collaborator *fakeCollaborator
	telemetry    *fakeTelemetry
	controller   *Controller
	ctx          context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (suite *ControllerTestSuite) SetupTest() {
	suite.collaborator = newFakeCollaborator()
	suite.telemetry = &fakeTelemetry{}
	suite.controller = NewController(suite.collaborator, suite.telemetry)
	suite.ctx = context.Background()
}

func (suite *ControllerTestSuite) startFromQR() {
	suite.Require().True(suite.controller.StartFlow(suite.ctx, "qr-1", ""))
}

func (suite *ControllerTestSuite) TestStartFlowRequiresExactlyOneSource() {
	tests := []struct {
		name          string
		qrID          string
		testSessionID string
	}{
		{name: "Neither provided"},
		{name: "Both provided", qrID: "qr-1", testSessionID: "session-1"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			controller := NewController(suite.collaborator, suite.telemetry)

			ok := controller.StartFlow(suite.ctx, tc.qrID, tc.testSessionID)

			suite.False(ok)
			suite.Equal(StepInvalid, controller.CurrentStep())
			suite.NotEmpty(controller.InvalidReason())
		})
	}
}

func (suite *ControllerTestSuite) TestStartFlowFromQR() {
	ok := suite.controller.StartFlow(suite.ctx, "qr-1", "")

	suite.True(ok)
	suite.Equal(StepWelcome, suite.controller.CurrentStep())
	suite.Require().NotNil(suite.controller.Session())
	suite.Equal("session-1", suite.controller.Session().ID)

	suite.Require().Len(suite.telemetry.events, 1)
	event := suite.telemetry.events[0]
	suite.Equal(telemetry.FlowActionPrefix+EventFlowStarted, event.Action)
	suite.Equal(ObjectTypeFlowSession, event.ObjectType)
	suite.Equal(AnonymousActor, event.Actor)
	suite.Equal("campaign-1", event.Metadata["campaign_id"])
}

func (suite *ControllerTestSuite) TestStartFlowQRResolutionFailure() {
	suite.collaborator.startErr = ErrQRCodeNotFound

	ok := suite.controller.StartFlow(suite.ctx, "qr-unknown", "")

	suite.False(ok)
	suite.Equal(StepInvalid, suite.controller.CurrentStep())
	suite.NotEmpty(suite.controller.InvalidReason())
	suite.Nil(suite.controller.Session())
}

func (suite *ControllerTestSuite) TestStartFlowRehydratesTestSession() {
	suite.collaborator.seedSession(&FlowSession{
		ID:     "session-9",
		Status: SessionStatusActive,
		Step:   StepUserLogin,
	})

	ok := suite.controller.StartFlow(suite.ctx, "", "session-9")

	suite.True(ok)
	// A session past the scan step resumes where it left off.
	suite.Equal(StepUserLogin, suite.controller.CurrentStep())
}

func (suite *ControllerTestSuite) TestStartFlowRehydratesScanStepSession() {
	suite.collaborator.seedSession(&FlowSession{
		ID:     "session-9",
		Status: SessionStatusActive,
		Step:   StepScan,
	})

	ok := suite.controller.StartFlow(suite.ctx, "", "session-9")

	suite.True(ok)
	suite.Equal(StepWelcome, suite.controller.CurrentStep())
}

func (suite *ControllerTestSuite) TestNextStepClampsAtFinalPage() {
	suite.startFromQR()
	suite.controller.GoToStep(suite.ctx, StepFinalPage)

	for range 3 {
		suite.controller.GoToNextStep(suite.ctx)
	}

	suite.Equal(StepFinalPage, suite.controller.CurrentStep())
}

func (suite *ControllerTestSuite) TestPrevStepClampsAtScan() {
	suite.startFromQR()
	suite.controller.GoToStep(suite.ctx, StepScan)

	for range 3 {
		suite.controller.GoToPrevStep(suite.ctx)
	}

	suite.Equal(StepScan, suite.controller.CurrentStep())
}

func (suite *ControllerTestSuite) TestStepTraversalOrder() {
	suite.startFromQR()

	visited := []FlowStep{suite.controller.CurrentStep()}
	for range len(StepOrder) - 2 {
		suite.controller.GoToNextStep(suite.ctx)
		visited = append(visited, suite.controller.CurrentStep())
	}

	suite.Equal(StepOrder[1:], visited)
}

func (suite *ControllerTestSuite) TestGoToStepUnknownIsNoOp() {
	suite.startFromQR()

	suite.controller.GoToStep(suite.ctx, FlowStep("teleport"))

	suite.Equal(StepWelcome, suite.controller.CurrentStep())
}

func (suite *ControllerTestSuite) TestGoToInvalidStep() {
	suite.startFromQR()

	suite.controller.GoToStep(suite.ctx, StepInvalid)

	suite.Equal(StepInvalid, suite.controller.CurrentStep())
	suite.Equal(SessionStatusFailed, suite.controller.Session().Status)
}

func (suite *ControllerTestSuite) TestFinalPageCompletesSession() {
	suite.startFromQR()

	suite.controller.GoToStep(suite.ctx, StepFinalPage)

	suite.Equal(SessionStatusCompleted, suite.controller.Session().Status)
}

func (suite *ControllerTestSuite) TestStepPersistenceFailureKeepsLocalTransition() {
	suite.startFromQR()
	suite.collaborator.stepErr = errors.New("store offline")

	suite.controller.GoToNextStep(suite.ctx)

	suite.Equal(StepStoreSelector, suite.controller.CurrentStep())
	// The session's persisted step is left behind until the next successful update.
	suite.Equal(StepWelcome, suite.controller.Session().Step)
}

func (suite *ControllerTestSuite) TestUpdateStore() {
	suite.startFromQR()

	ok := suite.controller.UpdateStore(suite.ctx, StoreMeta{
		LocationType: "in-store",
		StoreName:    "Authorized Retailer",
	})

	suite.True(ok)
	suite.Require().NotNil(suite.controller.Session().StoreMeta)
	suite.Equal("Authorized Retailer", suite.controller.Session().StoreMeta.StoreName)

	last := suite.telemetry.events[len(suite.telemetry.events)-1]
	suite.Equal(telemetry.FlowActionPrefix+EventStoreSelected, last.Action)
	suite.Equal("Authorized Retailer", last.Metadata["store_name"])
}

func (suite *ControllerTestSuite) TestUpdateStoreFailureKeepsLocalState() {
	suite.startFromQR()
	suite.collaborator.storeErr = errors.New("store offline")

	ok := suite.controller.UpdateStore(suite.ctx, StoreMeta{LocationType: "online"})

	suite.False(ok)
	suite.Nil(suite.controller.Session().StoreMeta)
}

func (suite *ControllerTestSuite) TestUpdateStoreWithoutSession() {
	ok := suite.controller.UpdateStore(suite.ctx, StoreMeta{LocationType: "online"})

	suite.False(ok)
}

func (suite *ControllerTestSuite) TestLinkUser() {
	suite.startFromQR()

	ok := suite.controller.LinkUser(suite.ctx, &authn.Identity{UserID: "user-1"},
		LoginProviderGoogle, true)

	suite.True(ok)
	suite.Equal("user-1", suite.controller.Session().UserID)
	suite.True(suite.controller.Session().MarketingOptIn)
	suite.Equal(LoginProviderGoogle, suite.controller.Session().CreatedVia)

	last := suite.telemetry.events[len(suite.telemetry.events)-1]
	suite.Equal(telemetry.FlowActionPrefix+EventUserLinked, last.Action)
	// Once linked, subsequent events are attributed to the user.
	suite.controller.TrackEvent("page_viewed", nil)
	suite.Equal("user-1", suite.telemetry.events[len(suite.telemetry.events)-1].Actor)
}

func (suite *ControllerTestSuite) TestLinkUserRequiresIdentity() {
	suite.startFromQR()

	suite.False(suite.controller.LinkUser(suite.ctx, nil, LoginProviderEmail, false))
	suite.False(suite.controller.LinkUser(suite.ctx, &authn.Identity{}, LoginProviderEmail, false))
	suite.Empty(suite.controller.Session().UserID)
}

func (suite *ControllerTestSuite) TestRunVerification() {
	suite.startFromQR()
	suite.collaborator.verification = &VerificationRecord{
		ID:       "verification-1",
		Result:   verify.ResultWarn,
		Reasons:  []string{"store mismatch", "first scan in region"},
		StoreOK:  false,
		ExpiryOK: true,
	}

	record := suite.controller.RunVerification(suite.ctx)

	suite.Require().NotNil(record)
	suite.Equal(record, suite.controller.Session().Verification)

	last := suite.telemetry.events[len(suite.telemetry.events)-1]
	suite.Equal(telemetry.FlowActionPrefix+EventVerifyPrefix+"warn", last.Action)
	suite.Equal("verification-1", last.Metadata["verification_id"])
	// Reasons are carried verbatim, not joined or rewritten.
	suite.Equal([]string{"store mismatch", "first scan in region"}, last.Metadata["reasons"])
	suite.Equal(false, last.Metadata["store_ok"])
	suite.Equal(true, last.Metadata["expiry_ok"])
}

func (suite *ControllerTestSuite) TestRunVerificationFailure() {
	suite.startFromQR()
	suite.collaborator.verifyErr = errors.New("decision service timeout")

	record := suite.controller.RunVerification(suite.ctx)

	suite.Nil(record)
	suite.Nil(suite.controller.Session().Verification)
	suite.False(suite.controller.IsLoading())
}

func (suite *ControllerTestSuite) TestTelemetryFailureNeverFailsOperation() {
	suite.telemetry.failing = true
	suite.startFromQR()

	ok := suite.controller.UpdateStore(suite.ctx, StoreMeta{
		LocationType: "in-store",
		StoreName:    "Supermarket",
	})

	suite.True(ok)
	suite.Equal(StepWelcome, suite.controller.CurrentStep())
}

func (suite *ControllerTestSuite) TestRefreshSessionIsIdempotent() {
	suite.startFromQR()

	suite.Require().True(suite.controller.RefreshSession(suite.ctx))
	first := *suite.controller.Session()
	suite.Require().True(suite.controller.RefreshSession(suite.ctx))

	suite.Equal(first, *suite.controller.Session())
}

func (suite *ControllerTestSuite) TestRefreshSessionWithoutSession() {
	suite.False(suite.controller.RefreshSession(suite.ctx))
}

func (suite *ControllerTestSuite) TestLoadingResetsAfterCollaboratorCalls() {
	suite.startFromQR()
	suite.False(suite.controller.IsLoading())

	suite.collaborator.getErr = errors.New("store offline")
	suite.controller.RefreshSession(suite.ctx)

	suite.False(suite.controller.IsLoading())
}
