package services

import (
	"context"
	"errors"
	"fmt"

	"group-ledger/internal/models"
	"group-ledger/internal/repositories"

	"github.com/google/uuid"
)

// Role sets used by handlers and services.
var (
	AnyRole     = []models.GroupRole{models.GroupRoleOwner, models.GroupRoleEditor, models.GroupRoleViewer}
	WriterRoles = []models.GroupRole{models.GroupRoleOwner, models.GroupRoleEditor}
	OwnerOnly   = []models.GroupRole{models.GroupRoleOwner}
)

// GroupAccessService resolves groups and applies models.Authorize.
type GroupAccessService struct {
	groupRepo   repositories.GroupRepositoryInterface
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
}

func NewGroupAccessService(
	groupRepo repositories.GroupRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) GroupAccessServiceInterface {
	return &GroupAccessService{
		groupRepo:   groupRepo,
		auditLogger: auditLogger,
		metrics:     metrics,
	}
}

type resolvedAccessKey struct{}

type resolvedAccess struct {
	userID uuid.UUID
	group  *models.Group
}

// WithResolvedAccess returns a context carrying a group already loaded for
// userID in this request. CheckRole reuses it instead of reading the group
// again; roles are still checked against it.
func WithResolvedAccess(ctx context.Context, userID uuid.UUID, access *models.GroupAccess) context.Context {
	if access == nil || access.Group == nil {
		return ctx
	}
	return context.WithValue(ctx, resolvedAccessKey{}, resolvedAccess{userID: userID, group: access.Group})
}

func resolvedGroup(ctx context.Context, groupID, userID uuid.UUID) (*models.Group, bool) {
	resolved, ok := ctx.Value(resolvedAccessKey{}).(resolvedAccess)
	if !ok || resolved.userID != userID || resolved.group.ID != groupID {
		return nil, false
	}
	return resolved.group, true
}

// CheckRole loads the group and returns the caller's access when their role is
// one of allowed. Errors are repositories.ErrGroupNotFound,
// models.ErrNotAMember or models.ErrInsufficientRole.
func (s *GroupAccessService) CheckRole(ctx context.Context, groupID, userID uuid.UUID, allowed ...models.GroupRole) (*models.GroupAccess, error) {
	group, err := s.loadGroup(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}

	role, err := models.Authorize(group, userID, allowed...)
	if err != nil {
		reason := "not_a_member"
		if errors.Is(err, models.ErrInsufficientRole) {
			reason = "insufficient_role"
		}
		s.auditLogger.LogAuthorizationDenied(ctx, groupID, userID, reason)
		s.metrics.IncrementCounter(MetricAuthorizationDenied, map[string]string{"reason": reason})
		return nil, err
	}

	return &models.GroupAccess{Group: group, Role: role}, nil
}

// AttachContextIfMember never fails. It returns an empty access when groupID is
// absent, the group does not exist or the user is not a member.
func (s *GroupAccessService) AttachContextIfMember(ctx context.Context, groupID, userID uuid.UUID) *models.GroupAccess {
	if groupID == uuid.Nil || userID == uuid.Nil {
		return &models.GroupAccess{}
	}

	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		return &models.GroupAccess{}
	}

	member, ok := group.MemberFor(userID)
	if !ok {
		return &models.GroupAccess{}
	}
	return &models.GroupAccess{Group: group, Role: member.Role}
}

func (s *GroupAccessService) loadGroup(ctx context.Context, groupID, userID uuid.UUID) (*models.Group, error) {
	if group, ok := resolvedGroup(ctx, groupID, userID); ok {
		return group, nil
	}
	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load group: %w", err)
	}
	return group, nil
}
