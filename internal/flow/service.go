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
	"fmt"
	"sync"
	"time"

	"github.com/veritag/veritag/internal/brand"
	"github.com/veritag/veritag/internal/campaign"
	"github.com/veritag/veritag/internal/qrcode"
	"github.com/veritag/veritag/internal/system/log"
	sysutils "github.com/veritag/veritag/internal/system/utils"
	"github.com/veritag/veritag/internal/verify"
)

const serviceLoggerComponentName = "FlowCollaborator"

// flowCollaborator is the default Collaborator, backed by the session store,
// QR resolution, campaign and brand lookups and the external verification
// decision service.
type flowCollaborator struct {
	store           StoreInterface
	qrStore         qrcode.StoreInterface
	qrService       qrcode.ServiceInterface
	campaignService campaign.ServiceInterface
	brandService    brand.ServiceInterface
	decider         verify.DeciderInterface
}

var (
	collaboratorInstance Collaborator
	collaboratorOnce     sync.Once
)

// GetFlowCollaborator returns a singleton instance of the default collaborator.
func GetFlowCollaborator() Collaborator {
	collaboratorOnce.Do(func() {
		collaboratorInstance = newCollaborator(NewStore(), qrcode.NewStore(),
			qrcode.GetQRCodeService(), campaign.GetCampaignService(), brand.GetBrandService(),
			verify.GetDecider())
	})
	return collaboratorInstance
}

// newCollaborator creates a collaborator with explicit dependencies.
func newCollaborator(store StoreInterface, qrStore qrcode.StoreInterface,
	qrService qrcode.ServiceInterface, campaignService campaign.ServiceInterface,
	brandService brand.ServiceInterface, decider verify.DeciderInterface) Collaborator {
	return &flowCollaborator{
		store:           store,
		qrStore:         qrStore,
		qrService:       qrService,
		campaignService: campaignService,
		brandService:    brandService,
		decider:         decider,
	}
}

// StartFlowSession resolves a QR scan to its campaign and brand and creates a
// new session at the scan step.
func (c *flowCollaborator) StartFlowSession(ctx context.Context, qrID string) (*StartFlowResult, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	code, svcErr := c.qrService.ResolveScan(qrID)
	if svcErr != nil {
		if svcErr.Code == qrcode.ErrorQRCodeNotFound.Code {
			return nil, ErrQRCodeNotFound
		}
		return nil, fmt.Errorf("failed to resolve QR code: %s", svcErr.ErrorDescription)
	}

	cmp, svcErr := c.campaignService.GetCampaign(code.CampaignID)
	if svcErr != nil {
		return nil, fmt.Errorf("failed to resolve campaign: %s", svcErr.ErrorDescription)
	}
	if cmp.Status != campaign.StatusActive {
		return nil, ErrCampaignNotActive
	}

	brd, svcErr := c.brandService.GetBrand(cmp.BrandID)
	if svcErr != nil {
		return nil, fmt.Errorf("failed to resolve brand: %s", svcErr.ErrorDescription)
	}

	session := FlowSession{
		ID:     sysutils.GenerateUUID(),
		QRID:   code.ID,
		Status: SessionStatusActive,
		Step:   StepScan,
		Campaign: CampaignInfo{
			ID:               cmp.ID,
			Name:             cmp.Name,
			FinalRedirectURL: cmp.FinalRedirectURL,
		},
		Brand: BrandInfo{
			ID:          brd.ID,
			Name:        brd.Name,
			LogoURL:     brd.LogoURL,
			BrandColors: brd.BrandColors,
		},
	}

	if err := c.store.CreateSession(session); err != nil {
		return nil, fmt.Errorf("failed to create flow session: %w", err)
	}

	logger.Debug("Flow session started", log.String(log.LoggerKeySessionID, session.ID),
		log.String(log.LoggerKeyCampaignID, cmp.ID))
	return &StartFlowResult{
		SessionID:    session.ID,
		CampaignID:   cmp.ID,
		CampaignName: cmp.Name,
		BrandID:      brd.ID,
		BrandName:    brd.Name,
	}, nil
}

// GetFlowSession fetches the full session state.
func (c *flowCollaborator) GetFlowSession(ctx context.Context, sessionID string) (*FlowSession, error) {
	session, err := c.store.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get flow session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// UpdateFlowStore persists the customer's store choice.
func (c *flowCollaborator) UpdateFlowStore(ctx context.Context, sessionID string,
	storeMeta StoreMeta) error {
	if _, err := c.GetFlowSession(ctx, sessionID); err != nil {
		return err
	}
	return c.store.UpdateSessionStore(sessionID, storeMeta)
}

// LinkUserToFlow associates an authenticated user with the session.
func (c *flowCollaborator) LinkUserToFlow(ctx context.Context, sessionID, userID string,
	marketingOptIn bool, createdVia LoginProvider) error {
	if _, err := c.GetFlowSession(ctx, sessionID); err != nil {
		return err
	}
	return c.store.UpdateSessionUser(sessionID, userID, marketingOptIn, createdVia)
}

// RunVerification requests a decision from the external verification service
// and persists the outcome on the session.
func (c *flowCollaborator) RunVerification(ctx context.Context, sessionID string) (*VerificationRecord,
	error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	session, err := c.GetFlowSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	decision, err := c.decider.Decide(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("verification decision failed: %w", err)
	}

	record := VerificationRecord{
		ID:        sysutils.GenerateUUID(),
		Result:    decision.Result,
		Reasons:   decision.Reasons,
		StoreOK:   decision.StoreOK,
		ExpiryOK:  decision.ExpiryOK,
		BatchInfo: c.lookupBatchInfo(session.QRID),
		CreatedAt: time.Now().UTC(),
	}

	if err := c.store.UpdateSessionVerification(sessionID, record); err != nil {
		return nil, fmt.Errorf("failed to persist verification: %w", err)
	}

	logger.Debug("Verification recorded", log.String(log.LoggerKeySessionID, sessionID),
		log.String("result", string(record.Result)))
	return &record, nil
}

// UpdateFlowStep persists the session's current step and status.
func (c *flowCollaborator) UpdateFlowStep(ctx context.Context, sessionID string, step FlowStep,
	status SessionStatus) error {
	return c.store.UpdateSessionStep(sessionID, step, status)
}

// lookupBatchInfo resolves the batch name behind a scanned code. Read-only;
// failures degrade to an empty batch info rather than failing the verification.
func (c *flowCollaborator) lookupBatchInfo(qrID string) string {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if qrID == "" {
		return ""
	}
	code, err := c.qrStore.GetQRCode(qrID)
	if err != nil || code == nil {
		logger.Warn("Failed to resolve QR batch", log.String(log.LoggerKeyQRID, qrID), log.Error(err))
		return ""
	}
	batch, err := c.qrStore.GetBatch(code.BatchID)
	if err != nil || batch == nil {
		logger.Warn("Failed to load QR batch", log.String(log.LoggerKeyQRID, qrID), log.Error(err))
		return ""
	}
	return batch.Name
}
