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
	"group-ledger/internal/schedule"

	"github.com/google/uuid"
)

var (
	ErrRecurringNotDue   = errors.New("recurring obligation is not due")
	ErrRecurringInactive = errors.New("recurring obligation is inactive")
)

const (
	resourceRecurring     = "recurring_obligation"
	DefaultRecurringBatch = 100
)

type RecurringService struct {
	recurringRepo repositories.RecurringObligationRepositoryInterface
	clientRepo    repositories.ClientRepositoryInterface
	access        GroupAccessServiceInterface
	categorizer   CategorizerInterface
	publisher     events.Publisher
	audit         AuditServiceInterface
	auditLogger   AuditLoggerInterface
	metrics       MetricsRecorderInterface
	batchSize     int
	logger        *slog.Logger
}

func NewRecurringService(
	recurringRepo repositories.RecurringObligationRepositoryInterface,
	clientRepo repositories.ClientRepositoryInterface,
	access GroupAccessServiceInterface,
	categorizer CategorizerInterface,
	publisher events.Publisher,
	audit AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	batchSize int,
	logger *slog.Logger,
) RecurringServiceInterface {
	if batchSize <= 0 {
		batchSize = DefaultRecurringBatch
	}
	return &RecurringService{
		recurringRepo: recurringRepo,
		clientRepo:    clientRepo,
		access:        access,
		categorizer:   categorizer,
		publisher:     publisher,
		audit:         audit,
		auditLogger:   auditLogger,
		metrics:       metrics,
		batchSize:     batchSize,
		logger:        logger,
	}
}

// Create stores a new active obligation. Owners and editors may write.
func (s *RecurringService) Create(ctx context.Context, actor models.Actor, groupID uuid.UUID, req *dto.CreateRecurringRequest) (*models.RecurringObligation, error) {
	access, err := s.access.CheckRole(ctx, groupID, actor.UserID, WriterRoles...)
	if err != nil {
		return nil, err
	}

	frequency, err := models.ParseFrequency(req.Frequency)
	if err != nil {
		return nil, err
	}

	if err := s.checkClient(groupID, req.ClientID); err != nil {
		return nil, err
	}

	amount := req.Amount.Round(2)
	participants, err := resolveParticipants(ctx, access.Group, actor.UserID, amount, dto.ToParticipants(req.Participants), s.auditLogger, s.metrics)
	if err != nil {
		return nil, err
	}

	entryType := strings.ToLower(req.Type)
	category := s.categoryFor(entryType, req.Title, req.Category)

	obligation := &models.RecurringObligation{
		GroupID:      groupID,
		ClientID:     req.ClientID,
		CreatedBy:    actor.UserID,
		Title:        strings.TrimSpace(req.Title),
		Amount:       amount,
		Type:         entryType,
		Category:     category,
		Frequency:    frequency,
		StartDate:    req.StartDate.UTC(),
		EndDate:      utcPtr(req.EndDate),
		Participants: participants,
		Active:       true,
		Version:      1,
	}

	if err := obligation.Validate(); err != nil {
		return nil, err
	}

	if err := s.recurringRepo.Create(obligation); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, resourceRecurring, obligation.ID.String(), models.Metadata{
		"group_id":  groupID.String(),
		"frequency": string(frequency),
		"amount":    amount.StringFixed(2),
	})
	return obligation, nil
}

// Get returns one obligation. Any member may read.
func (s *RecurringService) Get(ctx context.Context, userID, groupID, id uuid.UUID) (*models.RecurringObligation, error) {
	if _, err := s.access.CheckRole(ctx, groupID, userID, AnyRole...); err != nil {
		return nil, err
	}
	return s.recurringRepo.GetByID(groupID, id)
}

// List returns the group's obligations ordered by start date.
func (s *RecurringService) List(ctx context.Context, userID, groupID uuid.UUID, activeOnly bool) ([]models.RecurringObligation, error) {
	if _, err := s.access.CheckRole(ctx, groupID, userID, AnyRole...); err != nil {
		return nil, err
	}
	return s.recurringRepo.ListByGroup(groupID, activeOnly)
}

// ListDue returns the group's obligations that are due at now.
func (s *RecurringService) ListDue(ctx context.Context, userID, groupID uuid.UUID, now time.Time) ([]models.DueObligation, error) {
	if _, err := s.access.CheckRole(ctx, groupID, userID, AnyRole...); err != nil {
		return nil, err
	}

	obligations, err := s.recurringRepo.ListByGroup(groupID, true)
	if err != nil {
		return nil, err
	}

	due := make([]models.DueObligation, 0, len(obligations))
	for i := range obligations {
		if !schedule.IsDue(&obligations[i], now) {
			continue
		}
		next, _ := schedule.NextRun(&obligations[i], now)
		due = append(due, models.DueObligation{Obligation: obligations[i], NextRun: next})
	}
	return due, nil
}

// Update replaces the editable fields when req.Version matches the stored
// version.
func (s *RecurringService) Update(ctx context.Context, actor models.Actor, groupID, id uuid.UUID, req *dto.UpdateRecurringRequest) (*models.RecurringObligation, error) {
	access, err := s.access.CheckRole(ctx, groupID, actor.UserID, WriterRoles...)
	if err != nil {
		return nil, err
	}

	obligation, err := s.recurringRepo.GetByID(groupID, id)
	if err != nil {
		return nil, err
	}

	frequency, err := models.ParseFrequency(req.Frequency)
	if err != nil {
		return nil, err
	}

	if err := s.checkClient(groupID, req.ClientID); err != nil {
		return nil, err
	}

	amount := req.Amount.Round(2)
	participants, err := resolveParticipants(ctx, access.Group, obligation.CreatedBy, amount, dto.ToParticipants(req.Participants), s.auditLogger, s.metrics)
	if err != nil {
		return nil, err
	}

	obligation.Title = strings.TrimSpace(req.Title)
	obligation.Amount = amount
	obligation.Category = s.categoryFor(obligation.Type, req.Title, req.Category)
	obligation.Frequency = frequency
	obligation.EndDate = utcPtr(req.EndDate)
	obligation.ClientID = req.ClientID
	obligation.Participants = participants
	if req.Active != nil {
		obligation.Active = *req.Active
	}

	if err := s.recurringRepo.UpdateWithOptimisticLock(obligation, req.Version); err != nil {
		if errors.Is(err, models.ErrOptimisticLockConflict) {
			s.auditLogger.LogOptimisticLockConflict(ctx, resourceRecurring, id, req.Version)
		}
		return nil, err
	}

	action := models.AuditActionUpdate
	if req.Active != nil && !*req.Active {
		action = models.AuditActionRecurringDisabled
	}
	s.audit.Record(ctx, actor, action, resourceRecurring, id.String(), models.Metadata{
		"group_id": groupID.String(),
		"version":  obligation.Version,
	})
	return obligation, nil
}

// Delete removes the obligation. Transactions it spawned stay in the ledger.
func (s *RecurringService) Delete(ctx context.Context, actor models.Actor, groupID, id uuid.UUID) error {
	if _, err := s.access.CheckRole(ctx, groupID, actor.UserID, WriterRoles...); err != nil {
		return err
	}

	if err := s.recurringRepo.Delete(groupID, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, resourceRecurring, id.String(), models.Metadata{
		"group_id": groupID.String(),
	})
	return nil
}

// Execute spawns the transaction of the current due occurrence. Owners and
// editors may execute.
func (s *RecurringService) Execute(ctx context.Context, actor models.Actor, groupID, id uuid.UUID, now time.Time) (*models.RecurringObligation, *models.Transaction, error) {
	if _, err := s.access.CheckRole(ctx, groupID, actor.UserID, WriterRoles...); err != nil {
		return nil, nil, err
	}

	obligation, err := s.recurringRepo.GetByID(groupID, id)
	if err != nil {
		return nil, nil, err
	}

	transaction, err := s.execute(ctx, actor, obligation, now)
	if err != nil {
		return nil, nil, err
	}
	return obligation, transaction, nil
}

// ProcessDue executes every due obligation across all groups, acting as the
// obligation's creator. Failures are logged and do not stop the sweep.
func (s *RecurringService) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	start := time.Now()
	executed, due := 0, 0
	afterID := uuid.Nil

	for {
		if err := ctx.Err(); err != nil {
			return executed, err
		}

		batch, err := s.recurringRepo.ListActive(afterID, s.batchSize)
		if err != nil {
			return executed, fmt.Errorf("failed to list active obligations: %w", err)
		}

		for i := range batch {
			obligation := &batch[i]
			if !schedule.IsDue(obligation, now) {
				continue
			}
			due++

			_, err := s.execute(ctx, SystemActor(obligation.CreatedBy), obligation, now)
			if err != nil {
				if !errors.Is(err, repositories.ErrAlreadyProcessed) {
					s.logger.ErrorContext(ctx, "recurring execution failed",
						slog.String("obligation_id", obligation.ID.String()),
						slog.String("group_id", obligation.GroupID.String()),
						slog.String("error", err.Error()),
					)
				}
				continue
			}
			executed++
		}

		if len(batch) < s.batchSize {
			break
		}
		afterID = batch[len(batch)-1].ID
	}

	s.metrics.RecordGauge(MetricRecurringDue, float64(due), nil)
	s.metrics.RecordProcessingTime(MetricRecurringSweepDuration, time.Since(start))
	s.logger.InfoContext(ctx, "recurring sweep finished",
		slog.Int("due", due),
		slog.Int("executed", executed),
	)
	return executed, nil
}

func (s *RecurringService) execute(ctx context.Context, actor models.Actor, obligation *models.RecurringObligation, now time.Time) (*models.Transaction, error) {
	start := time.Now()

	if !obligation.Active {
		return nil, ErrRecurringInactive
	}
	if !schedule.IsDue(obligation, now) {
		return nil, ErrRecurringNotDue
	}
	occurrence, _ := schedule.NextOccurrence(obligation, now)

	transaction := obligation.Spawn(occurrence, actor.UserID)
	expectedVersion := obligation.Version
	if err := s.recurringRepo.ExecuteOccurrence(obligation, now, transaction); err != nil {
		if errors.Is(err, repositories.ErrAlreadyProcessed) {
			s.auditLogger.LogRecurringClaimLost(ctx, obligation.ID, expectedVersion)
			s.metrics.IncrementCounter(MetricRecurringClaimLost, nil)
		}
		return nil, err
	}

	duration := time.Since(start)
	s.auditLogger.LogRecurringExecuted(ctx, obligation.ID, transaction.ID, occurrence, duration.Milliseconds())
	s.metrics.RecordProcessingTime(MetricRecurringDuration, duration)
	s.metrics.IncrementCounter(MetricRecurringExecuted, nil)
	s.metrics.IncrementCounter(MetricTransactionCreated, map[string]string{
		"type":   transaction.Type,
		"source": "recurring",
	})
	s.audit.Record(ctx, actor, models.AuditActionRecurringExecuted, resourceRecurring, obligation.ID.String(), models.Metadata{
		"group_id":       obligation.GroupID.String(),
		"transaction_id": transaction.ID.String(),
		"occurrence":     occurrence.Format(time.RFC3339),
	})
	publishTransactionEvent(ctx, s.publisher, s.auditLogger, s.metrics, events.EventTransactionCreated, transaction, now)

	return transaction, nil
}

func (s *RecurringService) checkClient(groupID uuid.UUID, clientID *uuid.UUID) error {
	if clientID == nil {
		return nil
	}
	_, err := s.clientRepo.GetByID(groupID, *clientID)
	return err
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// categoryFor normalizes the requested category, suggesting one from the
// title when none was given.
func (s *RecurringService) categoryFor(entryType, title, requested string) string {
	if category := strings.ToLower(strings.TrimSpace(requested)); category != "" {
		return category
	}
	return s.categorizer.Suggest(entryType, title)
}
