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

package client

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/veritag/veritag/internal/system/database/model"
)

type DBClientTestSuite struct {
	suite.Suite
	mockDB   *sql.DB
	mock     sqlmock.Sqlmock
	dbClient DBClientInterface
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	db := model.NewDB(suite.mockDB)
	suite.dbClient = NewDBClient(db, "mock")
}

func (suite *DBClientTestSuite) TearDownTest() {
	if suite.mock != nil {
		if err := suite.mock.ExpectationsWereMet(); err != nil {
			suite.T().Fatalf("There were unfulfilled expectations: %v", err)
		}
	}
}

func (suite *DBClientTestSuite) TestQuerySuccess() {
	testQuery := model.DBQuery{
		ID:    "TST-BRAND-01",
		Query: "SELECT BRAND_ID, NAME FROM BRAND WHERE BRAND_ID = ?",
	}
	args := []any{"brand-1"}
	mockArgs := []driver.Value{"brand-1"}

	rows := sqlmock.NewRows([]string{"BRAND_ID", "NAME"}).
		AddRow("brand-1", "Acme")
	suite.mock.ExpectQuery("SELECT BRAND_ID, NAME FROM BRAND WHERE BRAND_ID = ?").
		WithArgs(mockArgs...).
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery, args...)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 1)
	// Column names come back lowercased regardless of the driver's casing.
	assert.Equal(suite.T(), "brand-1", results[0]["brand_id"])
	assert.Equal(suite.T(), "Acme", results[0]["name"])
}

func (suite *DBClientTestSuite) TestQueryEmptyResults() {
	testQuery := model.DBQuery{
		ID:    "TST-SESSION-01",
		Query: "SELECT SESSION_ID FROM FLOW_SESSION WHERE SESSION_ID = ?",
	}
	mockArgs := []driver.Value{"missing"}

	suite.mock.ExpectQuery("SELECT SESSION_ID FROM FLOW_SESSION WHERE SESSION_ID = ?").
		WithArgs(mockArgs...).
		WillReturnRows(sqlmock.NewRows([]string{"SESSION_ID"}))

	results, err := suite.dbClient.Query(testQuery, "missing")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

func (suite *DBClientTestSuite) TestQueryDatabaseError() {
	testQuery := model.DBQuery{
		ID:    "TST-CAMPAIGN-01",
		Query: "SELECT CAMPAIGN_ID FROM CAMPAIGN",
	}

	expectedErr := errors.New("relation does not exist")
	suite.mock.ExpectQuery("SELECT CAMPAIGN_ID FROM CAMPAIGN").
		WillReturnError(expectedErr)

	results, err := suite.dbClient.Query(testQuery)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), expectedErr, err)
	assert.Nil(suite.T(), results)
}

func (suite *DBClientTestSuite) TestExecuteSuccess() {
	testQuery := model.DBQuery{
		ID:    "TST-QRCODE-01",
		Query: "UPDATE QR_CODE SET SCAN_COUNT = SCAN_COUNT + 1 WHERE QR_ID = ?",
	}
	mockArgs := []driver.Value{"qr-1"}

	suite.mock.ExpectExec("UPDATE QR_CODE SET SCAN_COUNT = SCAN_COUNT \\+ 1 WHERE QR_ID = \\?").
		WithArgs(mockArgs...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rowsAffected, err := suite.dbClient.Execute(testQuery, "qr-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteZeroRowsAffected() {
	testQuery := model.DBQuery{
		ID:    "TST-SESSION-02",
		Query: "UPDATE FLOW_SESSION SET STEP = ? WHERE SESSION_ID = ?",
	}
	mockArgs := []driver.Value{"welcome", "missing"}

	suite.mock.ExpectExec("UPDATE FLOW_SESSION SET STEP = \\? WHERE SESSION_ID = \\?").
		WithArgs(mockArgs...).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rowsAffected, err := suite.dbClient.Execute(testQuery, "welcome", "missing")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteDatabaseError() {
	testQuery := model.DBQuery{
		ID:    "TST-SESSION-03",
		Query: "UPDATE FLOW_SESSION SET STEP = ? WHERE SESSION_ID = ?",
	}
	mockArgs := []driver.Value{"welcome", "session-1"}

	expectedErr := errors.New("connection reset")
	suite.mock.ExpectExec("UPDATE FLOW_SESSION SET STEP = \\? WHERE SESSION_ID = \\?").
		WithArgs(mockArgs...).
		WillReturnError(expectedErr)

	rowsAffected, err := suite.dbClient.Execute(testQuery, "welcome", "session-1")

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), expectedErr, err)
	assert.Equal(suite.T(), int64(0), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteRowsAffectedError() {
	testQuery := model.DBQuery{
		ID:    "TST-EVENT-01",
		Query: "INSERT INTO EVENT_LOG (ACTOR) VALUES (?)",
	}
	mockArgs := []driver.Value{"anonymous"}

	result := sqlmock.NewErrorResult(errors.New("rows affected error"))
	suite.mock.ExpectExec("INSERT INTO EVENT_LOG \\(ACTOR\\) VALUES \\(\\?\\)").
		WithArgs(mockArgs...).
		WillReturnResult(result)

	rowsAffected, err := suite.dbClient.Execute(testQuery, "anonymous")

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "rows affected error")
	assert.Equal(suite.T(), int64(0), rowsAffected)
}

func (suite *DBClientTestSuite) TestQueryUsesDriverVariant() {
	sqliteClient := NewDBClient(model.NewDB(suite.mockDB), "sqlite")
	testQuery := model.DBQuery{
		ID:          "TST-VARIANT-01",
		Query:       "SELECT NOW()",
		SQLiteQuery: "SELECT CURRENT_TIMESTAMP",
	}

	suite.mock.ExpectQuery("SELECT CURRENT_TIMESTAMP").
		WillReturnRows(sqlmock.NewRows([]string{"CURRENT_TIMESTAMP"}).AddRow("2026-01-01"))

	results, err := sqliteClient.Query(testQuery)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 1)
}

func (suite *DBClientTestSuite) TestBeginTxSuccess() {
	suite.mock.ExpectBegin()

	tx, err := suite.dbClient.BeginTx()

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), tx)
	assert.Implements(suite.T(), (*model.TxInterface)(nil), tx)
}

func (suite *DBClientTestSuite) TestBeginTxError() {
	expectedErr := errors.New("transaction error")
	suite.mock.ExpectBegin().WillReturnError(expectedErr)

	tx, err := suite.dbClient.BeginTx()

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), expectedErr, err)
	assert.Nil(suite.T(), tx)
}

func (suite *DBClientTestSuite) TestCloseSuccess() {
	suite.mock.ExpectClose()

	err := suite.dbClient.Close()

	assert.NoError(suite.T(), err)
}
