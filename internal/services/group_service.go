package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"group-ledger/internal/dto"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidInviteKey = errors.New("invite key does not match any group")
	ErrOwnerCannotLeave = errors.New("the group owner must transfer ownership before leaving")
)

// GroupService manages groups and memberships. Every mutating call re-checks
// the caller's role so it is safe to use without the HTTP middleware.
type GroupService struct {
	groupRepo   repositories.GroupRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
	access      GroupAccessServiceInterface
	keys        InviteKeyGeneratorInterface
	audit       AuditServiceInterface
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
	now         func() time.Time
}

func NewGroupService(
	groupRepo repositories.GroupRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	access GroupAccessServiceInterface,
	keys InviteKeyGeneratorInterface,
	audit AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) GroupServiceInterface {
	return &GroupService{
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		access:      access,
		keys:        keys,
		audit:       audit,
		auditLogger: auditLogger,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// Create persists a new group owned by the actor. A key that passed the
// existence check can still lose an insert race; the unique index rejects it
// and a new key is drawn from the same attempt budget.
func (s *GroupService) Create(ctx context.Context, actor models.Actor, req *dto.CreateGroupRequest) (*models.Group, error) {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}

	group := models.NewGroup(strings.TrimSpace(req.Name), currency, req.TaxRate.Round(2), actor.UserID, s.now())
	if err := group.Validate(); err != nil {
		return nil, err
	}

	attempts := 0
	for {
		attempts++
		key, err := s.keys.Generate(s.groupRepo.InviteKeyExists)
		if err != nil {
			return nil, err
		}
		group.InviteKey = key

		err = s.groupRepo.Create(group)
		if err == nil {
			break
		}
		if !errors.Is(err, repositories.ErrInviteKeyTaken) {
			return nil, fmt.Errorf("failed to create group: %w", err)
		}
		s.auditLogger.LogInviteKeyCollision(ctx, attempts, s.keys.MaxAttempts())
		s.metrics.IncrementCounter(MetricInviteKeyCollision, nil)
		if attempts >= s.keys.MaxAttempts() {
			s.metrics.IncrementCounter(MetricInviteKeyExhausted, nil)
			return nil, ErrKeyGenerationExhausted
		}
	}

	s.auditLogger.LogGroupCreated(ctx, group.ID, actor.UserID, attempts)
	s.audit.Record(ctx, actor, models.AuditActionGroupCreated, ResourceGroup, group.ID.String(), models.Metadata{
		"name":     group.Name,
		"currency": group.Currency,
	})

	return group, nil
}

// ListForUser returns every group the user belongs to
func (s *GroupService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Group, error) {
	groups, err := s.groupRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// Get returns the group with the caller's role. Any member may read it.
func (s *GroupService) Get(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupAccess, error) {
	return s.access.CheckRole(ctx, groupID, userID, AnyRole...)
}

// Update changes the group settings. Owner only.
func (s *GroupService) Update(ctx context.Context, actor models.Actor, groupID uuid.UUID, req *dto.UpdateGroupRequest) (*models.Group, error) {
	access, err := s.access.CheckRole(ctx, groupID, actor.UserID, OwnerOnly...)
	if err != nil {
		return nil, err
	}

	group := access.Group
	changes := models.Metadata{}
	name := strings.TrimSpace(req.Name)
	if name != group.Name {
		changes["name"] = name
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency != group.Currency {
		changes["currency"] = currency
	}
	taxRate := req.TaxRate.Round(2)
	if !taxRate.Equal(group.TaxRate) {
		changes["tax_rate"] = taxRate.StringFixed(2)
	}

	group.Name = name
	group.Currency = currency
	group.TaxRate = taxRate
	if err := group.Validate(); err != nil {
		return nil, err
	}

	if len(changes) == 0 {
		return group, nil
	}

	if err := s.groupRepo.Update(group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, ResourceGroup, group.ID.String(), changes)
	return group, nil
}

// Delete soft-deletes the group. Owner only.
func (s *GroupService) Delete(ctx context.Context, actor models.Actor, groupID uuid.UUID) error {
	if _, err := s.access.CheckRole(ctx, groupID, actor.UserID, OwnerOnly...); err != nil {
		return err
	}

	if err := s.groupRepo.Delete(groupID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, ResourceGroup, groupID.String(), nil)
	return nil
}

// Join enrolls the actor as a viewer of the group owning inviteKey.
func (s *GroupService) Join(ctx context.Context, actor models.Actor, inviteKey string) (*models.Group, error) {
	key := strings.ToUpper(strings.TrimSpace(inviteKey))
	group, err := s.groupRepo.GetByInviteKey(key)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, ErrInvalidInviteKey
		}
		return nil, fmt.Errorf("failed to look up invite key: %w", err)
	}

	member, err := group.AddMember(actor.UserID, models.GroupRoleViewer, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.groupRepo.AddMember(&member); err != nil {
		return nil, err
	}

	s.membershipChanged(ctx, actor, group.ID, actor.UserID, models.AuditActionGroupJoined, member.Role)
	return group, nil
}

// RegenerateInviteKey replaces the invite key. Owner only. The old key stops
// working immediately.
func (s *GroupService) RegenerateInviteKey(ctx context.Context, actor models.Actor, groupID uuid.UUID) (string, error) {
	if _, err := s.access.CheckRole(ctx, groupID, actor.UserID, OwnerOnly...); err != nil {
		return "", err
	}

	attempts := 0
	for {
		attempts++
		key, err := s.keys.Generate(s.groupRepo.InviteKeyExists)
		if err != nil {
			return "", err
		}

		err = s.groupRepo.UpdateInviteKey(groupID, key)
		if err == nil {
			s.audit.Record(ctx, actor, models.AuditActionInviteKeyRotated, ResourceGroup, groupID.String(), nil)
			return key, nil
		}
		if !errors.Is(err, repositories.ErrInviteKeyTaken) {
			return "", fmt.Errorf("failed to update invite key: %w", err)
		}
		s.auditLogger.LogInviteKeyCollision(ctx, attempts, s.keys.MaxAttempts())
		s.metrics.IncrementCounter(MetricInviteKeyCollision, nil)
		if attempts >= s.keys.MaxAttempts() {
			s.metrics.IncrementCounter(MetricInviteKeyExhausted, nil)
			return "", ErrKeyGenerationExhausted
		}
	}
}

// AddMember enrolls an existing user by email. Owner only.
func (s *GroupService) AddMember(ctx context.Context, actor models.Actor, groupID uuid.UUID, req *dto.AddMemberRequest) (*models.GroupMember, error) {
	role, err := models.ParseGroupRole(req.Role)
	if err != nil {
		return nil, err
	}

	access, err := s.access.CheckRole(ctx, groupID, actor.UserID, OwnerOnly...)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		return nil, err
	}

	member, err := access.Group.AddMember(user.ID, role, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.groupRepo.AddMember(&member); err != nil {
		return nil, err
	}
	member.User = user

	s.membershipChanged(ctx, actor, groupID, user.ID, models.AuditActionMemberAdded, role)
	return &member, nil
}

// ChangeMemberRole sets a non-owner member's role. Owner only.
func (s *GroupService) ChangeMemberRole(ctx context.Context, actor models.Actor, groupID, userID uuid.UUID, role models.GroupRole) error {
	access, err := s.access.CheckRole(ctx, groupID, actor.UserID, OwnerOnly...)
	if err != nil {
		return err
	}

	if err := access.Group.ChangeRole(userID, role); err != nil {
		return err
	}

	if err := s.groupRepo.UpdateMemberRole(groupID, userID, role); err != nil {
		return err
	}

	s.membershipChanged(ctx, actor, groupID, userID, models.AuditActionRoleChanged, role)
	return nil
}

// RemoveMember drops a non-owner member. Owner only.
func (s *GroupService) RemoveMember(ctx context.Context, actor models.Actor, groupID, userID uuid.UUID) error {
	access, err := s.access.CheckRole(ctx, groupID, actor.UserID, OwnerOnly...)
	if err != nil {
		return err
	}

	previous, _ := access.Group.MemberFor(userID)
	if err := access.Group.RemoveMember(userID); err != nil {
		return err
	}

	if err := s.groupRepo.RemoveMember(groupID, userID); err != nil {
		return err
	}

	s.membershipChanged(ctx, actor, groupID, userID, models.AuditActionMemberRemoved, previous.Role)
	return nil
}

// Leave removes the actor from the group. The owner cannot leave.
func (s *GroupService) Leave(ctx context.Context, actor models.Actor, groupID uuid.UUID) error {
	access, err := s.access.CheckRole(ctx, groupID, actor.UserID, AnyRole...)
	if err != nil {
		return err
	}
	if access.Role == models.GroupRoleOwner {
		return ErrOwnerCannotLeave
	}

	if err := s.groupRepo.RemoveMember(groupID, actor.UserID); err != nil {
		return err
	}

	s.membershipChanged(ctx, actor, groupID, actor.UserID, models.AuditActionGroupLeft, access.Role)
	return nil
}

// TransferOwnership hands the group to another member. The previous owner
// stays on as editor. Owner only.
func (s *GroupService) TransferOwnership(ctx context.Context, actor models.Actor, groupID, newOwnerID uuid.UUID) error {
	access, err := s.access.CheckRole(ctx, groupID, actor.UserID, OwnerOnly...)
	if err != nil {
		return err
	}

	if err := access.Group.TransferOwnership(newOwnerID); err != nil {
		return err
	}

	if err := s.groupRepo.TransferOwnership(groupID, actor.UserID, newOwnerID); err != nil {
		return fmt.Errorf("failed to transfer ownership: %w", err)
	}

	s.membershipChanged(ctx, actor, groupID, newOwnerID, models.AuditActionOwnershipMoved, models.GroupRoleOwner)
	return nil
}

func (s *GroupService) membershipChanged(ctx context.Context, actor models.Actor, groupID, userID uuid.UUID, action string, role models.GroupRole) {
	s.auditLogger.LogMembershipChanged(ctx, groupID, userID, action, role)
	s.metrics.IncrementCounter(MetricMembershipChanged, map[string]string{"change": action})
	s.audit.Record(ctx, actor, action, ResourceGroup, groupID.String(), models.Metadata{
		"member_id": userID.String(),
		"role":      role.String(),
	})
}
