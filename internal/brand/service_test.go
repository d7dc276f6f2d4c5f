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

package brand

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// fakeStore is an in-memory StoreInterface for service tests.
type fakeStore struct {
	brands map[string]Brand

	createErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{brands: make(map[string]Brand)}
}

func (f *fakeStore) CreateBrand(brand Brand) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.brands[brand.ID] = brand
	return nil
}

func (f *fakeStore) GetBrand(brandID string) (*Brand, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	brand, ok := f.brands[brandID]
	if !ok {
		return nil, nil
	}
	return &brand, nil
}

func (f *fakeStore) ListBrands() ([]Brand, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	brands := make([]Brand, 0, len(f.brands))
	for _, brand := range f.brands {
		brands = append(brands, brand)
	}
	return brands, nil
}

func (f *fakeStore) UpdateBrand(brand Brand) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.brands[brand.ID] = brand
	return nil
}

func (f *fakeStore) DeleteBrand(brandID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.brands, brandID)
	return nil
}

type BrandServiceTestSuite struct {
	suite.Suite
	store   *fakeStore
	service ServiceInterface
}

func TestBrandServiceSuite(t *testing.T) {
	suite.Run(t, new(BrandServiceTestSuite))
}

func (suite *BrandServiceTestSuite) SetupTest() {
	suite.store = newFakeStore()
	suite.service = newService(suite.store)
}

func (suite *BrandServiceTestSuite) TestCreateBrandSanitizesColors() {
	brand, svcErr := suite.service.CreateBrand(CreateBrandRequest{
		Name: "Acme",
		BrandColors: map[string]string{
			" primary ": " #FF0000\n",
			"accent":    "#22cc88",
		},
	})

	suite.Require().Nil(svcErr)
	suite.Equal("#FF0000", brand.BrandColors["primary"])
	suite.Equal("#22cc88", brand.BrandColors["accent"])
	suite.NotContains(brand.BrandColors, " primary ")

	stored := suite.store.brands[brand.ID]
	suite.Equal(brand.BrandColors, stored.BrandColors)
}

func (suite *BrandServiceTestSuite) TestCreateBrandValidation() {
	tests := []struct {
		name    string
		request CreateBrandRequest
	}{
		{name: "Missing name", request: CreateBrandRequest{}},
		{name: "Bad logo URL", request: CreateBrandRequest{Name: "Acme", LogoURL: "not-a-url"}},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			brand, svcErr := suite.service.CreateBrand(tc.request)
			suite.Nil(brand)
			suite.Require().NotNil(svcErr)
			suite.Equal(ErrorInvalidBrandRequest.Code, svcErr.Code)
		})
	}
}

func (suite *BrandServiceTestSuite) TestUpdateBrandSanitizesColors() {
	created, svcErr := suite.service.CreateBrand(CreateBrandRequest{Name: "Acme"})
	suite.Require().Nil(svcErr)

	updated, svcErr := suite.service.UpdateBrand(created.ID, UpdateBrandRequest{
		Name:        "Acme",
		BrandColors: map[string]string{"primary": "\t#111111 "},
	})

	suite.Require().Nil(svcErr)
	suite.Equal("#111111", updated.BrandColors["primary"])
}

func (suite *BrandServiceTestSuite) TestGetBrandNotFound() {
	brand, svcErr := suite.service.GetBrand("missing")
	suite.Nil(brand)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorBrandNotFound.Code, svcErr.Code)
}

func (suite *BrandServiceTestSuite) TestGetBrandStoreFailure() {
	suite.store.getErr = errors.New("connection reset")

	brand, svcErr := suite.service.GetBrand("brand-1")
	suite.Nil(brand)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorBrandServerError.Code, svcErr.Code)
}

func (suite *BrandServiceTestSuite) TestDeleteBrandRequiresExisting() {
	svcErr := suite.service.DeleteBrand("missing")
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorBrandNotFound.Code, svcErr.Code)
}
