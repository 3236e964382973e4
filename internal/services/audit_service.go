package services

import (
	"context"
	"errors"
	"log/slog"

	"group-ledger/internal/models"
	"group-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID  = errors.New("invalid user ID")
	ErrInvalidGroupID = errors.New("invalid group ID")
)

// ResourceGroup is the audit resource of every action taken inside a group.
const ResourceGroup = "group"

// AuditService persists the audit trail that users can page through.
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
}

func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{repo: repo, logger: logger}
}

// Record stores one entry. A storage failure is logged and swallowed: the
// action being audited has already happened.
func (s *AuditService) Record(ctx context.Context, actor models.Actor, action, resource, resourceID string, metadata models.Metadata) {
	entry := &models.AuditLog{
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
		Metadata:   metadata,
	}
	if actor.UserID != uuid.Nil {
		entry.UserID = &actor.UserID
	}
	if traceID := traceIDFrom(ctx); traceID != "" {
		entry.SetMetadata("trace_id", traceID)
	}

	if err := s.repo.Create(entry); err != nil {
		s.logger.ErrorContext(ctx, "audit entry dropped",
			slog.Any("error", err),
			slog.String("action", action),
			slog.String("resource", resource),
			slog.String("resource_id", resourceID))
	}
}

// GroupActivity pages through one group's trail, newest first.
func (s *AuditService) GroupActivity(groupID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if groupID == uuid.Nil {
		return nil, 0, ErrInvalidGroupID
	}
	return s.repo.GetByResource(ResourceGroup, groupID.String(), offset, limit)
}

// UserActivity pages through everything userID did, newest first.
func (s *AuditService) UserActivity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}
	return s.repo.GetByUserID(userID, offset, limit)
}
