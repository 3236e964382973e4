package repositories

import (
	"time"

	"group-ledger/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	UpdateFailedLoginAttempts(user *models.User) error
	ResetFailedLoginAttempts(userID uuid.UUID) error
	UpdateLastLogin(userID uuid.UUID, at time.Time) error
}

// GroupRepositoryInterface defines the contract for group and membership persistence
type GroupRepositoryInterface interface {
	Create(group *models.Group) error
	GetByID(id uuid.UUID) (*models.Group, error)
	GetByInviteKey(key string) (*models.Group, error)
	ListForUser(userID uuid.UUID) ([]models.Group, error)
	Update(group *models.Group) error
	Delete(id uuid.UUID) error
	InviteKeyExists(key string) (bool, error)
	UpdateInviteKey(groupID uuid.UUID, key string) error
	AddMember(member *models.GroupMember) error
	UpdateMemberRole(groupID, userID uuid.UUID, role models.GroupRole) error
	RemoveMember(groupID, userID uuid.UUID) error
	TransferOwnership(groupID, fromUserID, toUserID uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(groupID, id uuid.UUID) (*models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetCategorySummary(groupID uuid.UUID, startDate, endDate *time.Time) ([]models.CategorySummary, error)
	Delete(groupID, id uuid.UUID) error
}

// RecurringObligationRepositoryInterface defines the contract for recurring obligation persistence
type RecurringObligationRepositoryInterface interface {
	Create(obligation *models.RecurringObligation) error
	GetByID(groupID, id uuid.UUID) (*models.RecurringObligation, error)
	ListByGroup(groupID uuid.UUID, activeOnly bool) ([]models.RecurringObligation, error)
	ListActive(afterID uuid.UUID, limit int) ([]models.RecurringObligation, error)
	UpdateWithOptimisticLock(obligation *models.RecurringObligation, expectedVersion int) error
	Delete(groupID, id uuid.UUID) error
	ExecuteOccurrence(obligation *models.RecurringObligation, executedAt time.Time, transaction *models.Transaction) error
}

// ClientRepositoryInterface defines the contract for client repository operations
type ClientRepositoryInterface interface {
	Create(client *models.Client) error
	GetByID(groupID, id uuid.UUID) (*models.Client, error)
	ListByGroup(groupID uuid.UUID, search string) ([]models.Client, error)
	Update(client *models.Client) error
	Delete(groupID, id uuid.UUID) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByResource(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteBefore(cutoff time.Time) (int64, error)
}

// RefreshTokenRepositoryInterface defines the contract for refresh token persistence
type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Revoke(tokenID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired(before time.Time) (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	IsBlacklisted(jti string) (bool, error)
	DeleteExpired(before time.Time) (int64, error)
}
