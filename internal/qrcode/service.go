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

package qrcode

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/veritag/veritag/internal/campaign"
	"github.com/veritag/veritag/internal/system/error/serviceerror"
	"github.com/veritag/veritag/internal/system/log"
	sysutils "github.com/veritag/veritag/internal/system/utils"
)

const serviceLoggerComponentName = "QRCodeService"

// ServiceInterface defines the QR batch and scan resolution operations.
type ServiceInterface interface {
	CreateBatch(request CreateBatchRequest) (*Batch, []QRCode, *serviceerror.ServiceError)
	GetBatch(batchID string) (*Batch, *serviceerror.ServiceError)
	ListBatchesByCampaign(campaignID string) ([]Batch, *serviceerror.ServiceError)
	// ResolveScan resolves a scanned QR id to its code record and records the scan.
	ResolveScan(qrID string) (*QRCode, *serviceerror.ServiceError)
}

// qrCodeService is the implementation of ServiceInterface.
type qrCodeService struct {
	store           StoreInterface
	campaignService campaign.ServiceInterface
	validate        *validator.Validate
}

var (
	serviceInstance ServiceInterface
	serviceOnce     sync.Once
)

// GetQRCodeService returns a singleton instance of the QR code service.
func GetQRCodeService() ServiceInterface {
	serviceOnce.Do(func() {
		serviceInstance = newService(NewStore(), campaign.GetCampaignService())
	})
	return serviceInstance
}

// newService creates a QR code service with explicit dependencies.
func newService(store StoreInterface, campaignService campaign.ServiceInterface) ServiceInterface {
	return &qrCodeService{
		store:           store,
		campaignService: campaignService,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateBatch creates a batch and generates its QR codes.
func (s *qrCodeService) CreateBatch(request CreateBatchRequest) (*Batch, []QRCode,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if err := s.validate.Struct(request); err != nil {
		svcErr := ErrorInvalidBatchRequest.WithDescription(err.Error())
		return nil, nil, &svcErr
	}

	if _, svcErr := s.campaignService.GetCampaign(request.CampaignID); svcErr != nil {
		return nil, nil, svcErr
	}

	batch := Batch{
		ID:         sysutils.GenerateUUID(),
		CampaignID: request.CampaignID,
		Name:       request.Name,
		Quantity:   request.Quantity,
	}

	codes := make([]QRCode, 0, request.Quantity)
	for range request.Quantity {
		codes = append(codes, QRCode{
			ID:         sysutils.GenerateUUID(),
			BatchID:    batch.ID,
			CampaignID: batch.CampaignID,
		})
	}

	if err := s.store.CreateBatch(batch, codes); err != nil {
		logger.Error("Failed to create QR batch", log.Error(err))
		return nil, nil, &ErrorQRCodeServerError
	}

	logger.Debug("QR batch created", log.String(log.LoggerKeyCampaignID, batch.CampaignID),
		log.Int("quantity", batch.Quantity))
	return &batch, codes, nil
}

// GetBatch retrieves a batch by id.
func (s *qrCodeService) GetBatch(batchID string) (*Batch, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	batch, err := s.store.GetBatch(batchID)
	if err != nil {
		logger.Error("Failed to retrieve QR batch", log.Error(err))
		return nil, &ErrorQRCodeServerError
	}
	if batch == nil {
		return nil, &ErrorBatchNotFound
	}
	return batch, nil
}

// ListBatchesByCampaign retrieves the batches of a campaign.
func (s *qrCodeService) ListBatchesByCampaign(campaignID string) ([]Batch, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if _, svcErr := s.campaignService.GetCampaign(campaignID); svcErr != nil {
		return nil, svcErr
	}

	batches, err := s.store.ListBatchesByCampaign(campaignID)
	if err != nil {
		logger.Error("Failed to list QR batches", log.Error(err))
		return nil, &ErrorQRCodeServerError
	}
	return batches, nil
}

// ResolveScan resolves a scanned QR id to its code record and increments the
// scan counter. Counter persistence failures are logged but do not fail the
// scan, so a customer is never blocked by bookkeeping.
func (s *qrCodeService) ResolveScan(qrID string) (*QRCode, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	code, err := s.store.GetQRCode(qrID)
	if err != nil {
		logger.Error("Failed to resolve QR code", log.Error(err))
		return nil, &ErrorQRCodeServerError
	}
	if code == nil {
		return nil, &ErrorQRCodeNotFound
	}

	if err := s.store.IncrementScanCount(code.ID); err != nil {
		logger.Warn("Failed to record QR scan", log.String(log.LoggerKeyQRID, code.ID), log.Error(err))
	} else {
		code.ScanCount++
	}
	return code, nil
}
