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
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/veritag/veritag/internal/campaign"
	"github.com/veritag/veritag/internal/system/error/serviceerror"
)

const testCampaignID = "0b6f1c7e-9d3a-4e5f-8a2b-1c4d6e8f0a2b"

// fakeQRStore keeps batches and codes in memory.
type fakeQRStore struct {
	batches       map[string]*Batch
	codes         map[string]*QRCode
	incrementErr  error
	createFailure error
}

func newFakeQRStore() *fakeQRStore {
	return &fakeQRStore{
		batches: make(map[string]*Batch),
		codes:   make(map[string]*QRCode),
	}
}

func (s *fakeQRStore) CreateBatch(batch Batch, codes []QRCode) error {
	if s.createFailure != nil {
		return s.createFailure
	}
	stored := batch
	s.batches[batch.ID] = &stored
	for _, code := range codes {
		storedCode := code
		s.codes[code.ID] = &storedCode
	}
	return nil
}

func (s *fakeQRStore) GetBatch(batchID string) (*Batch, error) {
	batch, ok := s.batches[batchID]
	if !ok {
		return nil, nil
	}
	copied := *batch
	return &copied, nil
}

func (s *fakeQRStore) ListBatchesByCampaign(campaignID string) ([]Batch, error) {
	var batches []Batch
	for _, batch := range s.batches {
		if batch.CampaignID == campaignID {
			batches = append(batches, *batch)
		}
	}
	return batches, nil
}

func (s *fakeQRStore) GetQRCode(qrID string) (*QRCode, error) {
	code, ok := s.codes[qrID]
	if !ok {
		return nil, nil
	}
	copied := *code
	return &copied, nil
}

func (s *fakeQRStore) IncrementScanCount(qrID string) error {
	if s.incrementErr != nil {
		return s.incrementErr
	}
	s.codes[qrID].ScanCount++
	return nil
}

// fakeCampaignService resolves a single known campaign id.
type fakeCampaignService struct {
	known string
}

func (f *fakeCampaignService) GetCampaign(campaignID string) (*campaign.Campaign,
	*serviceerror.ServiceError) {
	if campaignID != f.known {
		return nil, &campaign.ErrorCampaignNotFound
	}
	return &campaign.Campaign{ID: campaignID, Status: campaign.StatusActive}, nil
}

func (f *fakeCampaignService) CreateCampaign(campaign.CreateCampaignRequest) (*campaign.Campaign,
	*serviceerror.ServiceError) {
	return nil, nil
}

func (f *fakeCampaignService) ListCampaignsByBrand(string) ([]campaign.Campaign,
	*serviceerror.ServiceError) {
	return nil, nil
}

func (f *fakeCampaignService) UpdateCampaign(string, campaign.UpdateCampaignRequest) (
	*campaign.Campaign, *serviceerror.ServiceError) {
	return nil, nil
}

func (f *fakeCampaignService) DeleteCampaign(string) *serviceerror.ServiceError {
	return nil
}

type QRCodeServiceTestSuite struct {
	suite.Suite
	store   *fakeQRStore
	service ServiceInterface
}

func TestQRCodeServiceSuite(t *testing.T) {
	suite.Run(t, new(QRCodeServiceTestSuite))
}

func (suite *QRCodeServiceTestSuite) SetupTest() {
	suite.store = newFakeQRStore()
	suite.service = newService(suite.store, &fakeCampaignService{known: testCampaignID})
}

func (suite *QRCodeServiceTestSuite) TestCreateBatch() {
	batch, codes, svcErr := suite.service.CreateBatch(CreateBatchRequest{
		CampaignID: testCampaignID,
		Name:       "Spring print run",
		Quantity:   25,
	})

	suite.Require().Nil(svcErr)
	suite.NotEmpty(batch.ID)
	suite.Equal(25, batch.Quantity)
	suite.Require().Len(codes, 25)

	seen := map[string]bool{}
	for _, code := range codes {
		suite.Equal(batch.ID, code.BatchID)
		suite.Equal(testCampaignID, code.CampaignID)
		suite.False(seen[code.ID])
		seen[code.ID] = true
	}
}

func (suite *QRCodeServiceTestSuite) TestCreateBatchValidation() {
	tests := []struct {
		name    string
		request CreateBatchRequest
	}{
		{
			name:    "Zero quantity",
			request: CreateBatchRequest{CampaignID: testCampaignID, Name: "Run", Quantity: 0},
		},
		{
			name:    "Quantity above limit",
			request: CreateBatchRequest{CampaignID: testCampaignID, Name: "Run", Quantity: 10001},
		},
		{
			name:    "Missing name",
			request: CreateBatchRequest{CampaignID: testCampaignID, Quantity: 10},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			batch, codes, svcErr := suite.service.CreateBatch(tc.request)

			suite.Nil(batch)
			suite.Nil(codes)
			suite.Require().NotNil(svcErr)
			suite.Equal(ErrorInvalidBatchRequest.Code, svcErr.Code)
		})
	}
}

func (suite *QRCodeServiceTestSuite) TestCreateBatchUnknownCampaign() {
	batch, codes, svcErr := suite.service.CreateBatch(CreateBatchRequest{
		CampaignID: "9c8b7a6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d",
		Name:       "Run",
		Quantity:   5,
	})

	suite.Nil(batch)
	suite.Nil(codes)
	suite.Require().NotNil(svcErr)
	suite.Equal(campaign.ErrorCampaignNotFound.Code, svcErr.Code)
}

func (suite *QRCodeServiceTestSuite) TestCreateBatchStoreFailure() {
	suite.store.createFailure = errors.New("constraint violation")

	batch, codes, svcErr := suite.service.CreateBatch(CreateBatchRequest{
		CampaignID: testCampaignID,
		Name:       "Run",
		Quantity:   5,
	})

	suite.Nil(batch)
	suite.Nil(codes)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorQRCodeServerError.Code, svcErr.Code)
}

func (suite *QRCodeServiceTestSuite) TestResolveScan() {
	_, codes, svcErr := suite.service.CreateBatch(CreateBatchRequest{
		CampaignID: testCampaignID,
		Name:       "Run",
		Quantity:   1,
	})
	suite.Require().Nil(svcErr)

	code, svcErr := suite.service.ResolveScan(codes[0].ID)

	suite.Require().Nil(svcErr)
	suite.Equal(1, code.ScanCount)

	code, svcErr = suite.service.ResolveScan(codes[0].ID)
	suite.Require().Nil(svcErr)
	suite.Equal(2, code.ScanCount)
}

func (suite *QRCodeServiceTestSuite) TestResolveScanUnknownCode() {
	code, svcErr := suite.service.ResolveScan("qr-unknown")

	suite.Nil(code)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorQRCodeNotFound.Code, svcErr.Code)
}

func (suite *QRCodeServiceTestSuite) TestResolveScanCounterFailureNeverBlocks() {
	_, codes, svcErr := suite.service.CreateBatch(CreateBatchRequest{
		CampaignID: testCampaignID,
		Name:       "Run",
		Quantity:   1,
	})
	suite.Require().Nil(svcErr)
	suite.store.incrementErr = errors.New("counter table locked")

	code, svcErr := suite.service.ResolveScan(codes[0].ID)

	suite.Require().Nil(svcErr)
	suite.NotNil(code)
	// The counter did not move, and the scan still resolved.
	suite.Equal(0, code.ScanCount)
}

func (suite *QRCodeServiceTestSuite) TestGetBatchNotFound() {
	batch, svcErr := suite.service.GetBatch("missing")

	suite.Nil(batch)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorBatchNotFound.Code, svcErr.Code)
}

func (suite *QRCodeServiceTestSuite) TestListBatchesByCampaign() {
	for range 2 {
		_, _, svcErr := suite.service.CreateBatch(CreateBatchRequest{
			CampaignID: testCampaignID,
			Name:       "Run",
			Quantity:   1,
		})
		suite.Require().Nil(svcErr)
	}

	batches, svcErr := suite.service.ListBatchesByCampaign(testCampaignID)

	suite.Require().Nil(svcErr)
	suite.Len(batches, 2)
}
