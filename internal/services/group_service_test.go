package services

import (
	"context"
	"strings"
	"testing"

	"group-ledger/internal/database"
	"group-ledger/internal/dto"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type GroupServiceTestSuite struct {
	suite.Suite
	db          *database.DB
	groupRepo   repositories.GroupRepositoryInterface
	auditRepo   repositories.AuditLogRepositoryInterface
	access      GroupAccessServiceInterface
	auditLogger AuditLoggerInterface
	metrics     *countingMetrics
	service     GroupServiceInterface

	ctx    context.Context
	owner  *models.User
	editor *models.User
	viewer *models.User
}

func (s *GroupServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.groupRepo = repositories.NewGroupRepository(s.db.DB)
	s.auditRepo = repositories.NewAuditLogRepository(s.db.DB)
	s.auditLogger = NewAuditLogger(discardLogger())
	s.metrics = newCountingMetrics()
	s.access = NewGroupAccessService(s.groupRepo, s.auditLogger, s.metrics)
	s.service = s.newService(NewInviteKeyGenerator(DefaultInviteKeyAttempts, s.auditLogger, s.metrics))

	s.ctx = context.Background()
	s.owner = database.CreateTestUser(s.T(), s.db, "owner@example.com")
	s.editor = database.CreateTestUser(s.T(), s.db, "editor@example.com")
	s.viewer = database.CreateTestUser(s.T(), s.db, "viewer@example.com")
}

func TestGroupServiceSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceTestSuite))
}

func (s *GroupServiceTestSuite) newService(keys InviteKeyGeneratorInterface) GroupServiceInterface {
	return NewGroupService(
		s.groupRepo,
		repositories.NewUserRepository(s.db.DB),
		s.access,
		keys,
		NewAuditService(s.auditRepo, discardLogger()),
		s.auditLogger,
		s.metrics,
		discardLogger(),
	)
}

func (s *GroupServiceTestSuite) actor(u *models.User) models.Actor {
	return models.Actor{UserID: u.ID, IPAddress: "127.0.0.1", UserAgent: "test"}
}

// createGroup builds a group owned by s.owner with s.editor and s.viewer enrolled.
func (s *GroupServiceTestSuite) createGroup() *models.Group {
	group, err := s.service.Create(s.ctx, s.actor(s.owner), &dto.CreateGroupRequest{Name: "Household", Currency: "eur", TaxRate: decimal.NewFromFloat(7.5)})
	s.Require().NoError(err)

	_, err = s.service.AddMember(s.ctx, s.actor(s.owner), group.ID, &dto.AddMemberRequest{Email: s.editor.Email, Role: "editor"})
	s.Require().NoError(err)
	_, err = s.service.AddMember(s.ctx, s.actor(s.owner), group.ID, &dto.AddMemberRequest{Email: s.viewer.Email, Role: "viewer"})
	s.Require().NoError(err)
	return group
}

func (s *GroupServiceTestSuite) roleOf(groupID, userID uuid.UUID) (models.GroupRole, bool) {
	group, err := s.groupRepo.GetByID(groupID)
	s.Require().NoError(err)
	m, ok := group.MemberFor(userID)
	return m.Role, ok
}

func (s *GroupServiceTestSuite) TestCreate_OwnerIsMember() {
	group, err := s.service.Create(s.ctx, s.actor(s.owner), &dto.CreateGroupRequest{Name: "  Trip to Lisbon "})

	s.Require().NoError(err)
	s.Equal("Trip to Lisbon", group.Name)
	s.Equal("USD", group.Currency)
	s.Regexp(inviteKeyPattern, group.InviteKey)

	role, ok := s.roleOf(group.ID, s.owner.ID)
	s.True(ok)
	s.Equal(models.GroupRoleOwner, role)

	logs, total, err := s.auditRepo.GetByResource(ResourceGroup, group.ID.String(), 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal(models.AuditActionGroupCreated, logs[0].Action)
}

func (s *GroupServiceTestSuite) TestCreate_InvalidCurrency() {
	_, err := s.service.Create(s.ctx, s.actor(s.owner), &dto.CreateGroupRequest{Name: "Bad", Currency: "XXX"})
	s.ErrorIs(err, models.ErrInvalidCurrency)
}

func (s *GroupServiceTestSuite) TestCreate_SeededCollisionRetries() {
	first := s.newService(seededGenerator(5, s.metrics, "AAAAAAAA"))
	existing, err := first.Create(s.ctx, s.actor(s.owner), &dto.CreateGroupRequest{Name: "First"})
	s.Require().NoError(err)
	s.Equal("AAAAAAAA", existing.InviteKey)

	second := s.newService(seededGenerator(5, s.metrics, "AAAAAAAA", "ZZZZ9999"))
	group, err := second.Create(s.ctx, s.actor(s.editor), &dto.CreateGroupRequest{Name: "Second"})

	s.Require().NoError(err)
	s.Equal("ZZZZ9999", group.InviteKey)
	s.NotEqual(existing.InviteKey, group.InviteKey)
	s.Equal(1, s.metrics.count(MetricInviteKeyCollision))
}

func (s *GroupServiceTestSuite) TestCreate_KeyGenerationExhausted() {
	first := s.newService(seededGenerator(5, s.metrics, "AAAAAAAA"))
	_, err := first.Create(s.ctx, s.actor(s.owner), &dto.CreateGroupRequest{Name: "First"})
	s.Require().NoError(err)

	stuck := s.newService(seededGenerator(2, s.metrics, "AAAAAAAA", "AAAAAAAA"))
	_, err = stuck.Create(s.ctx, s.actor(s.owner), &dto.CreateGroupRequest{Name: "Second"})

	s.ErrorIs(err, ErrKeyGenerationExhausted)
	groups, err := s.groupRepo.ListForUser(s.owner.ID)
	s.Require().NoError(err)
	s.Len(groups, 1)
}

// scriptedKeys hands out fixed keys without consulting the lookup, so every
// collision surfaces at insert time through the unique index.
type scriptedKeys struct {
	keys        []string
	maxAttempts int
	calls       int
}

func (k *scriptedKeys) Generate(models.InviteKeyLookup) (string, error) {
	key := k.keys[min(k.calls, len(k.keys)-1)]
	k.calls++
	return key, nil
}

func (k *scriptedKeys) MaxAttempts() int { return k.maxAttempts }

func (s *GroupServiceTestSuite) TestCreate_InsertCollisionRetries() {
	existing, err := s.newService(seededGenerator(5, s.metrics, "AAAAAAAA")).
		Create(s.ctx, s.actor(s.owner), &dto.CreateGroupRequest{Name: "First"})
	s.Require().NoError(err)

	keys := &scriptedKeys{keys: []string{existing.InviteKey, "BBBBBBBB"}, maxAttempts: 5}
	group, err := s.newService(keys).Create(s.ctx, s.actor(s.editor), &dto.CreateGroupRequest{Name: "Second"})

	s.Require().NoError(err)
	s.Equal("BBBBBBBB", group.InviteKey)
	s.Equal(2, keys.calls)
	s.Equal(1, s.metrics.count(MetricInviteKeyCollision))

	role, ok := s.roleOf(group.ID, s.editor.ID)
	s.True(ok)
	s.Equal(models.GroupRoleOwner, role)
}

func (s *GroupServiceTestSuite) TestCreate_InsertCollisionsExhaustBudget() {
	existing, err := s.newService(seededGenerator(5, s.metrics, "AAAAAAAA")).
		Create(s.ctx, s.actor(s.owner), &dto.CreateGroupRequest{Name: "First"})
	s.Require().NoError(err)

	keys := &scriptedKeys{keys: []string{existing.InviteKey}, maxAttempts: 3}
	_, err = s.newService(keys).Create(s.ctx, s.actor(s.editor), &dto.CreateGroupRequest{Name: "Second"})

	s.ErrorIs(err, ErrKeyGenerationExhausted)
	s.Equal(3, keys.calls)
	s.Equal(3, s.metrics.count(MetricInviteKeyCollision))
	s.Equal(1, s.metrics.count(MetricInviteKeyExhausted))

	groups, err := s.groupRepo.ListForUser(s.editor.ID)
	s.Require().NoError(err)
	s.Empty(groups)
}

func (s *GroupServiceTestSuite) TestRegenerateInviteKey_InsertCollisionRetries() {
	taken, err := s.service.Create(s.ctx, s.actor(s.editor), &dto.CreateGroupRequest{Name: "Taken"})
	s.Require().NoError(err)
	group, err := s.service.Create(s.ctx, s.actor(s.owner), &dto.CreateGroupRequest{Name: "Mine"})
	s.Require().NoError(err)

	keys := &scriptedKeys{keys: []string{taken.InviteKey, "CCCC2222"}, maxAttempts: 5}
	key, err := s.newService(keys).RegenerateInviteKey(s.ctx, s.actor(s.owner), group.ID)

	s.Require().NoError(err)
	s.Equal("CCCC2222", key)
	s.Equal(2, keys.calls)

	stored, err := s.groupRepo.GetByID(group.ID)
	s.Require().NoError(err)
	s.Equal("CCCC2222", stored.InviteKey)
}

func (s *GroupServiceTestSuite) TestRegenerateInviteKey_InsertCollisionsExhaustBudget() {
	taken, err := s.service.Create(s.ctx, s.actor(s.editor), &dto.CreateGroupRequest{Name: "Taken"})
	s.Require().NoError(err)
	group, err := s.service.Create(s.ctx, s.actor(s.owner), &dto.CreateGroupRequest{Name: "Mine"})
	s.Require().NoError(err)

	keys := &scriptedKeys{keys: []string{taken.InviteKey}, maxAttempts: 2}
	_, err = s.newService(keys).RegenerateInviteKey(s.ctx, s.actor(s.owner), group.ID)

	s.ErrorIs(err, ErrKeyGenerationExhausted)
	s.Equal(2, keys.calls)
	s.Equal(1, s.metrics.count(MetricInviteKeyExhausted))

	stored, err := s.groupRepo.GetByID(group.ID)
	s.Require().NoError(err)
	s.Equal(group.InviteKey, stored.InviteKey)
}

func (s *GroupServiceTestSuite) TestJoin_AddsViewer() {
	group, err := s.service.Create(s.ctx, s.actor(s.owner), &dto.CreateGroupRequest{Name: "Club"})
	s.Require().NoError(err)

	joined, err := s.service.Join(s.ctx, s.actor(s.viewer), "  "+strings.ToLower(group.InviteKey)+" ")
	s.Require().NoError(err)
	s.Equal(group.ID, joined.ID)

	role, ok := s.roleOf(group.ID, s.viewer.ID)
	s.True(ok)
	s.Equal(models.GroupRoleViewer, role)

	_, err = s.service.Join(s.ctx, s.actor(s.viewer), group.InviteKey)
	s.ErrorIs(err, models.ErrAlreadyMember)
}

func (s *GroupServiceTestSuite) TestJoin_UnknownKey() {
	_, err := s.service.Join(s.ctx, s.actor(s.viewer), "NOPE0000")
	s.ErrorIs(err, ErrInvalidInviteKey)
}

func (s *GroupServiceTestSuite) TestAddMember() {
	group := s.createGroup()

	role, ok := s.roleOf(group.ID, s.editor.ID)
	s.True(ok)
	s.Equal(models.GroupRoleEditor, role)

	_, err := s.service.AddMember(s.ctx, s.actor(s.owner), group.ID, &dto.AddMemberRequest{Email: s.editor.Email, Role: "viewer"})
	s.ErrorIs(err, models.ErrAlreadyMember)

	_, err = s.service.AddMember(s.ctx, s.actor(s.owner), group.ID, &dto.AddMemberRequest{Email: "ghost@example.com", Role: "viewer"})
	s.ErrorIs(err, repositories.ErrUserNotFound)

	_, err = s.service.AddMember(s.ctx, s.actor(s.owner), group.ID, &dto.AddMemberRequest{Email: s.editor.Email, Role: "owner"})
	s.ErrorIs(err, models.ErrInvalidGroupRole)

	_, err = s.service.AddMember(s.ctx, s.actor(s.editor), group.ID, &dto.AddMemberRequest{Email: "x@example.com", Role: "viewer"})
	s.ErrorIs(err, models.ErrInsufficientRole)
}

func (s *GroupServiceTestSuite) TestChangeMemberRole() {
	group := s.createGroup()

	s.Require().NoError(s.service.ChangeMemberRole(s.ctx, s.actor(s.owner), group.ID, s.viewer.ID, models.GroupRoleEditor))
	role, _ := s.roleOf(group.ID, s.viewer.ID)
	s.Equal(models.GroupRoleEditor, role)

	err := s.service.ChangeMemberRole(s.ctx, s.actor(s.owner), group.ID, s.owner.ID, models.GroupRoleViewer)
	s.ErrorIs(err, models.ErrOwnerImmutable)

	err = s.service.ChangeMemberRole(s.ctx, s.actor(s.editor), group.ID, s.viewer.ID, models.GroupRoleViewer)
	s.ErrorIs(err, models.ErrInsufficientRole)
}

func (s *GroupServiceTestSuite) TestRemoveMember() {
	group := s.createGroup()

	s.Require().NoError(s.service.RemoveMember(s.ctx, s.actor(s.owner), group.ID, s.viewer.ID))
	_, ok := s.roleOf(group.ID, s.viewer.ID)
	s.False(ok)

	err := s.service.RemoveMember(s.ctx, s.actor(s.owner), group.ID, s.owner.ID)
	s.ErrorIs(err, models.ErrOwnerImmutable)

	err = s.service.RemoveMember(s.ctx, s.actor(s.owner), group.ID, uuid.New())
	s.ErrorIs(err, models.ErrNotAMember)
}

func (s *GroupServiceTestSuite) TestLeave() {
	group := s.createGroup()

	err := s.service.Leave(s.ctx, s.actor(s.owner), group.ID)
	s.ErrorIs(err, ErrOwnerCannotLeave)

	s.Require().NoError(s.service.Leave(s.ctx, s.actor(s.viewer), group.ID))
	_, ok := s.roleOf(group.ID, s.viewer.ID)
	s.False(ok)

	err = s.service.Leave(s.ctx, s.actor(s.viewer), group.ID)
	s.ErrorIs(err, models.ErrNotAMember)
}

func (s *GroupServiceTestSuite) TestTransferOwnership() {
	group := s.createGroup()

	s.Require().NoError(s.service.TransferOwnership(s.ctx, s.actor(s.owner), group.ID, s.editor.ID))

	reloaded, err := s.groupRepo.GetByID(group.ID)
	s.Require().NoError(err)
	s.Equal(s.editor.ID, reloaded.OwnerID)
	newRole, _ := reloaded.MemberFor(s.editor.ID)
	oldRole, _ := reloaded.MemberFor(s.owner.ID)
	s.Equal(models.GroupRoleOwner, newRole.Role)
	s.Equal(models.GroupRoleEditor, oldRole.Role)

	err = s.service.TransferOwnership(s.ctx, s.actor(s.owner), group.ID, s.viewer.ID)
	s.ErrorIs(err, models.ErrInsufficientRole)

	err = s.service.TransferOwnership(s.ctx, s.actor(s.editor), group.ID, uuid.New())
	s.ErrorIs(err, models.ErrInvalidOwnerChange)
}

func (s *GroupServiceTestSuite) TestRegenerateInviteKey() {
	group := s.createGroup()
	oldKey := group.InviteKey

	newKey, err := s.service.RegenerateInviteKey(s.ctx, s.actor(s.owner), group.ID)
	s.Require().NoError(err)
	s.NotEqual(oldKey, newKey)
	s.Regexp(inviteKeyPattern, newKey)

	outsider := database.CreateTestUser(s.T(), s.db, "")
	_, err = s.service.Join(s.ctx, s.actor(outsider), oldKey)
	s.ErrorIs(err, ErrInvalidInviteKey)

	_, err = s.service.Join(s.ctx, s.actor(outsider), newKey)
	s.NoError(err)

	_, err = s.service.RegenerateInviteKey(s.ctx, s.actor(s.editor), group.ID)
	s.ErrorIs(err, models.ErrInsufficientRole)
}

func (s *GroupServiceTestSuite) TestUpdate() {
	group := s.createGroup()

	updated, err := s.service.Update(s.ctx, s.actor(s.owner), group.ID, &dto.UpdateGroupRequest{Name: "Home", Currency: "gbp", TaxRate: decimal.NewFromInt(20)})
	s.Require().NoError(err)
	s.Equal("Home", updated.Name)
	s.Equal("GBP", updated.Currency)
	s.True(updated.TaxRate.Equal(decimal.NewFromInt(20)))

	_, err = s.service.Update(s.ctx, s.actor(s.editor), group.ID, &dto.UpdateGroupRequest{Name: "Mine", Currency: "USD"})
	s.ErrorIs(err, models.ErrInsufficientRole)
}

func (s *GroupServiceTestSuite) TestDelete() {
	group := s.createGroup()

	err := s.service.Delete(s.ctx, s.actor(s.editor), group.ID)
	s.ErrorIs(err, models.ErrInsufficientRole)

	s.Require().NoError(s.service.Delete(s.ctx, s.actor(s.owner), group.ID))

	_, err = s.service.Get(s.ctx, group.ID, s.owner.ID)
	s.ErrorIs(err, repositories.ErrGroupNotFound)
}

func (s *GroupServiceTestSuite) TestGetAndList() {
	group := s.createGroup()

	access, err := s.service.Get(s.ctx, group.ID, s.viewer.ID)
	s.Require().NoError(err)
	s.Equal(models.GroupRoleViewer, access.Role)

	outsider := uuid.New()
	_, err = s.service.Get(s.ctx, group.ID, outsider)
	s.ErrorIs(err, models.ErrNotAMember)

	groups, err := s.service.ListForUser(s.ctx, s.editor.ID)
	s.Require().NoError(err)
	s.Len(groups, 1)
}
