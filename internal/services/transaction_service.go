package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"group-ledger/internal/dto"
	"group-ledger/internal/events"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrParticipantNotMember = errors.New("every participant must be a member of the group")
	ErrDuplicateParticipant = errors.New("a user may appear only once among the participants")
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type TransactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	access          GroupAccessServiceInterface
	categorizer     CategorizerInterface
	publisher       events.Publisher
	audit           AuditServiceInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	access GroupAccessServiceInterface,
	categorizer CategorizerInterface,
	publisher events.Publisher,
	audit AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &TransactionService{
		transactionRepo: transactionRepo,
		access:          access,
		categorizer:     categorizer,
		publisher:       publisher,
		audit:           audit,
		auditLogger:     auditLogger,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// Create records a manual ledger entry. Owners and editors may write.
func (s *TransactionService) Create(ctx context.Context, actor models.Actor, groupID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	access, err := s.access.CheckRole(ctx, groupID, actor.UserID, WriterRoles...)
	if err != nil {
		return nil, err
	}

	amount := req.Amount.Round(2)
	participants, err := resolveParticipants(ctx, access.Group, actor.UserID, amount, dto.ToParticipants(req.Participants), s.auditLogger, s.metrics)
	if err != nil {
		return nil, err
	}

	date := s.now().UTC()
	if req.Date != nil {
		date = req.Date.UTC()
	}

	entryType := strings.ToLower(req.Type)
	category := strings.ToLower(strings.TrimSpace(req.Category))
	if category == "" {
		category = s.categorizer.Suggest(entryType, req.Description)
	}

	transaction := &models.Transaction{
		GroupID:      groupID,
		CreatedBy:    actor.UserID,
		Amount:       amount,
		Type:         entryType,
		Category:     category,
		Description:  strings.TrimSpace(req.Description),
		Date:         date,
		Participants: participants,
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.IncrementCounter(MetricTransactionCreated, map[string]string{
		"type":   transaction.Type,
		"source": "manual",
	})
	s.audit.Record(ctx, actor, models.AuditActionCreate, "transaction", transaction.ID.String(), models.Metadata{
		"group_id": groupID.String(),
		"amount":   transaction.Amount.StringFixed(2),
		"type":     transaction.Type,
	})
	publishTransactionEvent(ctx, s.publisher, s.auditLogger, s.metrics, events.EventTransactionCreated, transaction, s.now())

	return transaction, nil
}

// Get returns one entry. Any member may read.
func (s *TransactionService) Get(ctx context.Context, userID, groupID, id uuid.UUID) (*models.Transaction, error) {
	if _, err := s.access.CheckRole(ctx, groupID, userID, AnyRole...); err != nil {
		return nil, err
	}
	return s.transactionRepo.GetByID(groupID, id)
}

// List returns a page of the group's entries and the total match count.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if _, err := s.access.CheckRole(ctx, filters.GroupID, userID, AnyRole...); err != nil {
		return nil, 0, err
	}

	filters.Limit = clampLimit(filters.Limit)
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	transactions, total, err := s.transactionRepo.GetWithFilters(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, total, nil
}

// Summary aggregates the group's entries per category and type.
func (s *TransactionService) Summary(ctx context.Context, userID, groupID uuid.UUID, startDate, endDate *time.Time) ([]models.CategorySummary, error) {
	if _, err := s.access.CheckRole(ctx, groupID, userID, AnyRole...); err != nil {
		return nil, err
	}

	summary, err := s.transactionRepo.GetCategorySummary(groupID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}
	return summary, nil
}

// Delete removes an entry. Owners and editors may delete.
func (s *TransactionService) Delete(ctx context.Context, actor models.Actor, groupID, id uuid.UUID) error {
	if _, err := s.access.CheckRole(ctx, groupID, actor.UserID, WriterRoles...); err != nil {
		return err
	}

	transaction, err := s.transactionRepo.GetByID(groupID, id)
	if err != nil {
		return err
	}

	if err := s.transactionRepo.Delete(groupID, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, "transaction", id.String(), models.Metadata{
		"group_id": groupID.String(),
	})
	publishTransactionEvent(ctx, s.publisher, s.auditLogger, s.metrics, events.EventTransactionDeleted, transaction, s.now())
	return nil
}

// resolveParticipants defaults an empty split to the creator holding the full
// amount, then checks membership, uniqueness and share balance.
func resolveParticipants(
	ctx context.Context,
	group *models.Group,
	creator uuid.UUID,
	amount decimal.Decimal,
	participants models.Participants,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) (models.Participants, error) {
	if len(participants) == 0 {
		return models.Participants{{UserID: creator, Share: amount}}, nil
	}

	members := group.MemberIndex()
	seen := make(map[uuid.UUID]struct{}, len(participants))
	for i := range participants {
		userID := participants[i].UserID
		if _, ok := members[userID]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrParticipantNotMember, userID)
		}
		if _, dup := seen[userID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateParticipant, userID)
		}
		seen[userID] = struct{}{}
		participants[i].Share = participants[i].Share.Round(2)
	}

	if err := models.ValidateShares(amount, participants); err != nil {
		auditLogger.LogSharesRejected(ctx, group.ID, amount.StringFixed(2), len(participants))
		metrics.IncrementCounter(MetricSharesRejected, nil)
		return nil, err
	}
	return participants, nil
}

// publishTransactionEvent never fails the caller; the ledger row is already
// committed when it runs.
func publishTransactionEvent(
	ctx context.Context,
	publisher events.Publisher,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	eventType string,
	transaction *models.Transaction,
	occurredAt time.Time,
) {
	event := events.TransactionEvent{
		Type:                  eventType,
		GroupID:               transaction.GroupID,
		TransactionID:         transaction.ID,
		RecurringObligationID: transaction.RecurringObligationID,
		EntryType:             transaction.Type,
		Amount:                transaction.Amount,
		OccurredAt:            occurredAt.UTC(),
	}

	if err := publisher.PublishTransaction(ctx, event); err != nil {
		auditLogger.LogEventPublishFailed(ctx, eventType, transaction.ID, err.Error())
		metrics.IncrementCounter(MetricEventPublishFailed, map[string]string{"event_type": eventType})
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}
