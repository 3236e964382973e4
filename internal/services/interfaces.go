package services

import (
	"context"
	"time"

	"group-ledger/internal/dto"
	"group-ledger/internal/models"

	"github.com/google/uuid"
)

// SystemActor is used for work triggered by the recurring processor.
func SystemActor(userID uuid.UUID) models.Actor {
	return models.Actor{UserID: userID, UserAgent: "recurring-processor"}
}

// GroupAccessServiceInterface decides what a user may do inside a group
type GroupAccessServiceInterface interface {
	CheckRole(ctx context.Context, groupID, userID uuid.UUID, allowed ...models.GroupRole) (*models.GroupAccess, error)
	AttachContextIfMember(ctx context.Context, groupID, userID uuid.UUID) *models.GroupAccess
}

// InviteKeyGeneratorInterface allocates invite keys that are not yet in use
type InviteKeyGeneratorInterface interface {
	Generate(exists models.InviteKeyLookup) (string, error)
	MaxAttempts() int
}

// GroupServiceInterface defines group and membership operations
type GroupServiceInterface interface {
	Create(ctx context.Context, actor models.Actor, req *dto.CreateGroupRequest) (*models.Group, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Group, error)
	Get(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupAccess, error)
	Update(ctx context.Context, actor models.Actor, groupID uuid.UUID, req *dto.UpdateGroupRequest) (*models.Group, error)
	Delete(ctx context.Context, actor models.Actor, groupID uuid.UUID) error
	Join(ctx context.Context, actor models.Actor, inviteKey string) (*models.Group, error)
	RegenerateInviteKey(ctx context.Context, actor models.Actor, groupID uuid.UUID) (string, error)
	AddMember(ctx context.Context, actor models.Actor, groupID uuid.UUID, req *dto.AddMemberRequest) (*models.GroupMember, error)
	ChangeMemberRole(ctx context.Context, actor models.Actor, groupID, userID uuid.UUID, role models.GroupRole) error
	RemoveMember(ctx context.Context, actor models.Actor, groupID, userID uuid.UUID) error
	Leave(ctx context.Context, actor models.Actor, groupID uuid.UUID) error
	TransferOwnership(ctx context.Context, actor models.Actor, groupID, newOwnerID uuid.UUID) error
}

// TransactionServiceInterface defines ledger entry operations
type TransactionServiceInterface interface {
	Create(ctx context.Context, actor models.Actor, groupID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	Get(ctx context.Context, userID, groupID, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	Summary(ctx context.Context, userID, groupID uuid.UUID, startDate, endDate *time.Time) ([]models.CategorySummary, error)
	Delete(ctx context.Context, actor models.Actor, groupID, id uuid.UUID) error
}

// RecurringServiceInterface defines recurring obligation operations
type RecurringServiceInterface interface {
	Create(ctx context.Context, actor models.Actor, groupID uuid.UUID, req *dto.CreateRecurringRequest) (*models.RecurringObligation, error)
	Get(ctx context.Context, userID, groupID, id uuid.UUID) (*models.RecurringObligation, error)
	List(ctx context.Context, userID, groupID uuid.UUID, activeOnly bool) ([]models.RecurringObligation, error)
	ListDue(ctx context.Context, userID, groupID uuid.UUID, now time.Time) ([]models.DueObligation, error)
	Update(ctx context.Context, actor models.Actor, groupID, id uuid.UUID, req *dto.UpdateRecurringRequest) (*models.RecurringObligation, error)
	Delete(ctx context.Context, actor models.Actor, groupID, id uuid.UUID) error
	Execute(ctx context.Context, actor models.Actor, groupID, id uuid.UUID, now time.Time) (*models.RecurringObligation, *models.Transaction, error)
	ProcessDue(ctx context.Context, now time.Time) (int, error)
}

// ClientServiceInterface defines client bookkeeping operations
type ClientServiceInterface interface {
	Create(ctx context.Context, actor models.Actor, groupID uuid.UUID, req *dto.ClientRequest) (*models.Client, error)
	Get(ctx context.Context, userID, groupID, id uuid.UUID) (*models.Client, error)
	List(ctx context.Context, userID, groupID uuid.UUID, search string) ([]models.Client, error)
	Update(ctx context.Context, actor models.Actor, groupID, id uuid.UUID, req *dto.ClientRequest) (*models.Client, error)
	Delete(ctx context.Context, actor models.Actor, groupID, id uuid.UUID) error
}

// DemoDataGeneratorInterface produces plausible ledger entries for seeding a
// development group
type DemoDataGeneratorInterface interface {
	Generate(members []uuid.UUID, startDate, endDate time.Time, count int) []dto.CreateTransactionRequest
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	Record(ctx context.Context, actor models.Actor, action, resource, resourceID string, metadata models.Metadata)
	GroupActivity(groupID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	UserActivity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}

// CategorizerInterface suggests a category for entries submitted without one
type CategorizerInterface interface {
	Suggest(entryType, description string) string
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest, actor models.Actor) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest, actor models.Actor) (*dto.TokenResponse, error)
	RefreshTokens(ctx context.Context, refreshToken string, actor models.Actor) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessToken string, actor models.Actor) error
	GetProfile(userID uuid.UUID) (*models.User, error)
}

// TokenServiceInterface issues and verifies signed access and refresh tokens
type TokenServiceInterface interface {
	IssueAccessToken(user *models.User) (string, time.Time, error)
	IssueRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ParseAccessToken(tokenString string) (*models.Claims, error)
	ParseRefreshToken(tokenString string) (*models.Claims, error)
	BearerToken(authHeader string) (string, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

type AuditLoggerInterface interface {
	LogGroupCreated(ctx context.Context, groupID, ownerID uuid.UUID, keyAttempts int)
	LogMembershipChanged(ctx context.Context, groupID, userID uuid.UUID, change string, role models.GroupRole)
	LogAuthorizationDenied(ctx context.Context, groupID, userID uuid.UUID, reason string)
	LogInviteKeyCollision(ctx context.Context, attempt, maxAttempts int)
	LogSharesRejected(ctx context.Context, groupID uuid.UUID, amount string, participants int)
	LogRecurringExecuted(ctx context.Context, obligationID, transactionID uuid.UUID, occurrence time.Time, durationMs int64)
	LogRecurringClaimLost(ctx context.Context, obligationID uuid.UUID, expectedVersion int)
	LogOptimisticLockConflict(ctx context.Context, entityType string, entityID uuid.UUID, expectedVersion int)
	LogEventPublishFailed(ctx context.Context, eventType string, entityID uuid.UUID, errorMsg string)
}
