package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"group-ledger/internal/database"
	"group-ledger/internal/dto"
	"group-ledger/internal/events"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// recordingPublisher keeps published events and can be told to fail.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.TransactionEvent
	err    error
}

func (p *recordingPublisher) PublishTransaction(ctx context.Context, event events.TransactionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []events.TransactionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.TransactionEvent(nil), p.events...)
}

type TransactionServiceTestSuite struct {
	suite.Suite
	db        *database.DB
	txRepo    repositories.TransactionRepositoryInterface
	publisher *recordingPublisher
	metrics   *countingMetrics
	service   *TransactionService

	ctx    context.Context
	group  *models.Group
	owner  *models.User
	editor *models.User
	viewer *models.User
	now    time.Time
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	s.owner = database.CreateTestUser(s.T(), s.db, "")
	s.editor = database.CreateTestUser(s.T(), s.db, "")
	s.viewer = database.CreateTestUser(s.T(), s.db, "")
	s.group = database.CreateTestGroup(s.T(), s.db, s.owner, map[uuid.UUID]models.GroupRole{
		s.editor.ID: models.GroupRoleEditor,
		s.viewer.ID: models.GroupRoleViewer,
	})

	auditLogger := NewAuditLogger(discardLogger())
	s.metrics = newCountingMetrics()
	s.publisher = &recordingPublisher{}
	s.txRepo = repositories.NewTransactionRepository(s.db.DB)
	groupRepo := repositories.NewGroupRepository(s.db.DB)

	s.service = NewTransactionService(
		s.txRepo,
		NewGroupAccessService(groupRepo, auditLogger, s.metrics),
		NewCategorizer(),
		s.publisher,
		NewAuditService(repositories.NewAuditLogRepository(s.db.DB), discardLogger()),
		auditLogger,
		s.metrics,
		discardLogger(),
	).(*TransactionService)
	s.service.now = func() time.Time { return s.now }
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) actor(u *models.User) models.Actor {
	return models.Actor{UserID: u.ID}
}

func (s *TransactionServiceTestSuite) TestCreate_SplitShares() {
	req := &dto.CreateTransactionRequest{
		Amount:      decimal.NewFromInt(100),
		Type:        models.EntryTypeExpense,
		Category:    "Utilities",
		Description: "Electricity bill",
		Participants: []dto.ParticipantRequest{
			{UserID: s.owner.ID, Share: decimal.RequireFromString("33.34")},
			{UserID: s.editor.ID, Share: decimal.RequireFromString("33.33")},
			{UserID: s.viewer.ID, Share: decimal.RequireFromString("33.33")},
		},
	}

	tx, err := s.service.Create(s.ctx, s.actor(s.editor), s.group.ID, req)

	s.Require().NoError(err)
	s.Equal("utilities", tx.Category)
	s.Equal(s.now, tx.Date)
	s.Len(tx.Participants, 3)

	stored, err := s.txRepo.GetByID(s.group.ID, tx.ID)
	s.Require().NoError(err)
	s.True(stored.Amount.Equal(decimal.NewFromInt(100)))
	s.Len(stored.Participants, 3)

	published := s.publisher.published()
	s.Require().Len(published, 1)
	s.Equal(events.EventTransactionCreated, published[0].Type)
	s.Equal(tx.ID, published[0].TransactionID)
	s.Equal(1, s.metrics.count(MetricTransactionCreated))
}

func (s *TransactionServiceTestSuite) TestCreate_UnbalancedShares() {
	req := &dto.CreateTransactionRequest{
		Amount:      decimal.NewFromInt(100),
		Type:        models.EntryTypeExpense,
		Description: "Dinner",
		Participants: []dto.ParticipantRequest{
			{UserID: s.owner.ID, Share: decimal.NewFromInt(50)},
			{UserID: s.editor.ID, Share: decimal.NewFromInt(49)},
		},
	}

	_, err := s.service.Create(s.ctx, s.actor(s.owner), s.group.ID, req)

	s.ErrorIs(err, models.ErrUnbalancedShares)
	s.Equal(1, s.metrics.count(MetricSharesRejected))
	s.Empty(s.publisher.published())
}

func (s *TransactionServiceTestSuite) TestCreate_ParticipantMustBeMember() {
	req := &dto.CreateTransactionRequest{
		Amount:      decimal.NewFromInt(10),
		Type:        models.EntryTypeExpense,
		Description: "Coffee",
		Participants: []dto.ParticipantRequest{
			{UserID: uuid.New(), Share: decimal.NewFromInt(10)},
		},
	}

	_, err := s.service.Create(s.ctx, s.actor(s.owner), s.group.ID, req)

	s.ErrorIs(err, ErrParticipantNotMember)
}

func (s *TransactionServiceTestSuite) TestCreate_RepeatedParticipantRejected() {
	req := &dto.CreateTransactionRequest{
		Amount:      decimal.NewFromInt(10),
		Type:        models.EntryTypeExpense,
		Description: "Coffee",
		Participants: []dto.ParticipantRequest{
			{UserID: s.editor.ID, Share: decimal.NewFromInt(5)},
			{UserID: s.editor.ID, Share: decimal.NewFromInt(5)},
		},
	}

	_, err := s.service.Create(s.ctx, s.actor(s.owner), s.group.ID, req)

	s.ErrorIs(err, ErrDuplicateParticipant)
	s.Empty(s.publisher.published())

	_, total, err := s.txRepo.GetWithFilters(models.TransactionFilters{GroupID: s.group.ID, Limit: 10})
	s.Require().NoError(err)
	s.Zero(total)
}

func (s *TransactionServiceTestSuite) TestCreate_DefaultsParticipantAndCategory() {
	date := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	req := &dto.CreateTransactionRequest{
		Amount:      decimal.RequireFromString("1200.00"),
		Type:        models.EntryTypeExpense,
		Description: "April rent",
		Date:        &date,
	}

	tx, err := s.service.Create(s.ctx, s.actor(s.owner), s.group.ID, req)

	s.Require().NoError(err)
	s.Equal(models.CategoryRent, tx.Category)
	s.Equal(date, tx.Date)
	s.Require().Len(tx.Participants, 1)
	s.Equal(s.owner.ID, tx.Participants[0].UserID)
	s.True(tx.Participants[0].Share.Equal(tx.Amount))
}

func (s *TransactionServiceTestSuite) TestCreate_ViewerDenied() {
	req := &dto.CreateTransactionRequest{Amount: decimal.NewFromInt(5), Type: models.EntryTypeIncome, Description: "Tip"}

	_, err := s.service.Create(s.ctx, s.actor(s.viewer), s.group.ID, req)

	s.ErrorIs(err, models.ErrInsufficientRole)
}

func (s *TransactionServiceTestSuite) TestCreate_PublishFailureDoesNotFail() {
	s.publisher.err = errors.New("broker down")
	req := &dto.CreateTransactionRequest{Amount: decimal.NewFromInt(5), Type: models.EntryTypeIncome, Description: "Refund"}

	tx, err := s.service.Create(s.ctx, s.actor(s.owner), s.group.ID, req)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, tx.ID)
	s.Equal(1, s.metrics.count(MetricEventPublishFailed))
}

func (s *TransactionServiceTestSuite) TestListAndSummary() {
	entries := []dto.CreateTransactionRequest{
		{Amount: decimal.NewFromInt(1000), Type: models.EntryTypeIncome, Category: "salary", Description: "Salary"},
		{Amount: decimal.NewFromInt(300), Type: models.EntryTypeExpense, Category: "rent", Description: "Rent"},
		{Amount: decimal.NewFromInt(50), Type: models.EntryTypeExpense, Category: "groceries", Description: "Market"},
	}
	for i := range entries {
		_, err := s.service.Create(s.ctx, s.actor(s.owner), s.group.ID, &entries[i])
		s.Require().NoError(err)
	}

	all, total, err := s.service.List(s.ctx, s.viewer.ID, models.TransactionFilters{GroupID: s.group.ID})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Len(all, 3)

	expenses, total, err := s.service.List(s.ctx, s.viewer.ID, models.TransactionFilters{GroupID: s.group.ID, Type: models.EntryTypeExpense, Limit: 1})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(expenses, 1)

	summary, err := s.service.Summary(s.ctx, s.viewer.ID, s.group.ID, nil, nil)
	s.Require().NoError(err)
	s.Len(summary, 3)

	_, _, err = s.service.List(s.ctx, uuid.New(), models.TransactionFilters{GroupID: s.group.ID})
	s.ErrorIs(err, models.ErrNotAMember)
}

func (s *TransactionServiceTestSuite) TestDelete() {
	tx, err := s.service.Create(s.ctx, s.actor(s.owner), s.group.ID, &dto.CreateTransactionRequest{
		Amount: decimal.NewFromInt(20), Type: models.EntryTypeExpense, Description: "Taxi",
	})
	s.Require().NoError(err)

	err = s.service.Delete(s.ctx, s.actor(s.viewer), s.group.ID, tx.ID)
	s.ErrorIs(err, models.ErrInsufficientRole)

	s.Require().NoError(s.service.Delete(s.ctx, s.actor(s.editor), s.group.ID, tx.ID))

	_, err = s.service.Get(s.ctx, s.owner.ID, s.group.ID, tx.ID)
	s.ErrorIs(err, repositories.ErrTransactionNotFound)

	published := s.publisher.published()
	s.Equal(events.EventTransactionDeleted, published[len(published)-1].Type)
}

func (s *TransactionServiceTestSuite) TestClampLimit() {
	s.Equal(DefaultPageLimit, clampLimit(0))
	s.Equal(DefaultPageLimit, clampLimit(-3))
	s.Equal(15, clampLimit(15))
	s.Equal(MaxPageLimit, clampLimit(5000))
}
