package handlers

import (
	"net/http"
	"testing"
	"time"

	"group-ledger/internal/dto"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"
	"group-ledger/internal/services"
	"group-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	transactionService *service_mocks.MockTransactionServiceInterface
	handler            *TransactionHandler
	e                  *echo.Echo

	userID  uuid.UUID
	groupID uuid.UUID
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.transactionService)
	s.e = newTestEcho()
	s.userID = uuid.New()
	s.groupID = uuid.New()
}

func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerSuite) transaction(amount string) *models.Transaction {
	a := decimal.RequireFromString(amount)
	return &models.Transaction{
		ID:           uuid.New(),
		GroupID:      s.groupID,
		CreatedBy:    s.userID,
		Amount:       a,
		Type:         models.EntryTypeExpense,
		Category:     models.CategoryGroceries,
		Description:  "Weekly shop",
		Date:         time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Participants: models.Participants{{UserID: s.userID, Share: a}},
	}
}

func (s *TransactionHandlerSuite) TestCreateTransaction() {
	s.transactionService.EXPECT().
		Create(gomock.Any(), gomock.Any(), s.groupID, gomock.Any()).
		DoAndReturn(func(_ interface{}, actor models.Actor, _ uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
			s.Equal(s.userID, actor.UserID)
			s.True(req.Amount.Equal(decimal.RequireFromString("42.5")))
			return s.transaction("42.5"), nil
		})

	c, rec := newJSONContext(s.e, http.MethodPost, "/", map[string]interface{}{
		"amount": "42.5", "type": "expense", "description": "Weekly shop",
	}, "groupId", s.groupID.String())
	withUser(c, s.userID)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.TransactionResponse
	decodeJSON(s.T(), rec, &resp)
	s.Equal("42.50", resp.Amount)
	s.Require().Len(resp.Participants, 1)
	s.Equal("42.50", resp.Participants[0].Share)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_ServiceErrors() {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unbalanced shares", models.ErrUnbalancedShares, http.StatusBadRequest, "TRANSACTION_002"},
		{"viewer", models.ErrInsufficientRole, http.StatusForbidden, "GROUP_003"},
		{"outsider participant", services.ErrParticipantNotMember, http.StatusUnprocessableEntity, "TRANSACTION_005"},
		{"repeated participant", services.ErrDuplicateParticipant, http.StatusUnprocessableEntity, "TRANSACTION_005"},
		{"unknown group", repositories.ErrGroupNotFound, http.StatusNotFound, "GROUP_001"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.transactionService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			c, rec := newJSONContext(s.e, http.MethodPost, "/", map[string]interface{}{
				"amount": "10", "type": "income", "description": "Invoice 7",
			}, "groupId", s.groupID.String())
			withUser(c, s.userID)

			s.Require().NoError(s.handler.CreateTransaction(c))
			s.Equal(tc.wantStatus, rec.Code)
			s.Equal(tc.wantCode, decodeError(s.T(), rec).Error.Code)
		})
	}
}

func (s *TransactionHandlerSuite) TestCreateTransaction_RejectsBadPayloads() {
	payloads := map[string]map[string]interface{}{
		"zero amount":      {"amount": "0", "type": "expense", "description": "x"},
		"unknown type":     {"amount": "1", "type": "transfer", "description": "x"},
		"missing describe": {"amount": "1", "type": "expense"},
	}
	for name, body := range payloads {
		s.Run(name, func() {
			c, _ := newJSONContext(s.e, http.MethodPost, "/", body, "groupId", s.groupID.String())
			withUser(c, s.userID)

			s.Error(s.handler.CreateTransaction(c))
		})
	}
}

func (s *TransactionHandlerSuite) TestListTransactions_ParsesFilters() {
	s.transactionService.EXPECT().
		List(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, f models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal(s.groupID, f.GroupID)
			s.Equal(models.EntryTypeExpense, f.Type)
			s.Equal("groceries", f.Category)
			s.Require().NotNil(f.MinAmount)
			s.Equal("5", f.MinAmount.String())
			s.Require().NotNil(f.Recurring)
			s.False(*f.Recurring)
			s.Require().NotNil(f.EndDate)
			s.Equal(23, f.EndDate.Hour())
			s.Equal(10, f.Offset)
			s.Equal(services.MaxPageLimit, f.Limit)
			return []models.Transaction{*s.transaction("12")}, 11, nil
		})

	target := "/?type=expense&category=groceries&min_amount=5&recurring=false&start_date=2024-03-01&end_date=2024-03-31&offset=10&limit=500"
	c, rec := newJSONContext(s.e, http.MethodGet, target, nil, "groupId", s.groupID.String())
	withUser(c, s.userID)

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Cache-Control"), "max-age=60")

	var resp dto.TransactionListResponse
	decodeJSON(s.T(), rec, &resp)
	s.Len(resp.Transactions, 1)
	s.Equal(int64(11), resp.Pagination.Total)
}

func (s *TransactionHandlerSuite) TestListTransactions_InvalidFilters() {
	targets := []string{
		"/?type=transfer",
		"/?min_amount=abc",
		"/?recurring=maybe",
		"/?start_date=03-01-2024",
		"/?start_date=2024-03-10&end_date=2024-03-01",
	}
	for _, target := range targets {
		s.Run(target, func() {
			c, rec := newJSONContext(s.e, http.MethodGet, target, nil, "groupId", s.groupID.String())
			withUser(c, s.userID)

			s.Require().NoError(s.handler.ListTransactions(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_001", decodeError(s.T(), rec).Error.Code)
		})
	}
}

func (s *TransactionHandlerSuite) TestGetTransaction_NotFound() {
	id := uuid.New()
	s.transactionService.EXPECT().Get(gomock.Any(), s.userID, s.groupID, id).Return(nil, repositories.ErrTransactionNotFound)

	c, rec := newJSONContext(s.e, http.MethodGet, "/", nil, "groupId", s.groupID.String(), "id", id.String())
	withUser(c, s.userID)

	s.Require().NoError(s.handler.GetTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("TRANSACTION_001", decodeError(s.T(), rec).Error.Code)
}

func (s *TransactionHandlerSuite) TestDeleteTransaction() {
	id := uuid.New()
	s.transactionService.EXPECT().Delete(gomock.Any(), gomock.Any(), s.groupID, id).Return(nil)

	c, rec := newJSONContext(s.e, http.MethodDelete, "/", nil, "groupId", s.groupID.String(), "id", id.String())
	withUser(c, s.userID)

	s.Require().NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *TransactionHandlerSuite) TestGetSummary() {
	rows := []models.CategorySummary{
		{Type: models.EntryTypeIncome, Category: "salary", TransactionCount: 1, TotalAmount: decimal.NewFromInt(3000), AverageAmount: decimal.NewFromInt(3000)},
		{Type: models.EntryTypeExpense, Category: "rent", TransactionCount: 1, TotalAmount: decimal.NewFromInt(1200), AverageAmount: decimal.NewFromInt(1200)},
	}
	s.transactionService.EXPECT().Summary(gomock.Any(), s.userID, s.groupID, gomock.Nil(), gomock.Nil()).Return(rows, nil)

	c, rec := newJSONContext(s.e, http.MethodGet, "/", nil, "groupId", s.groupID.String())
	withUser(c, s.userID)

	s.Require().NoError(s.handler.GetSummary(c))
	var resp dto.GroupSummaryResponse
	decodeJSON(s.T(), rec, &resp)
	s.Equal("3000.00", resp.TotalIncome)
	s.Equal("1200.00", resp.TotalExpense)
	s.Equal("1800.00", resp.Net)
	s.Len(resp.Categories, 2)
}

func (s *TransactionHandlerSuite) TestGetSummary_BadRange() {
	c, rec := newJSONContext(s.e, http.MethodGet, "/?start_date=2024-05-01&end_date=2024-04-01", nil, "groupId", s.groupID.String())
	withUser(c, s.userID)

	s.Require().NoError(s.handler.GetSummary(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_006", decodeError(s.T(), rec).Error.Code)
}
