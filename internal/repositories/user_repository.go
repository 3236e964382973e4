package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"group-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("inserting user %s: %w", user.Email, err)
	}
	return nil
}

func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	return r.take("id = ?", id)
}

// GetByEmail matches case-insensitively; emails are stored normalized but
// older rows may not be.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	return r.take("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}

// GetByIDs loads the users that exist among ids.
func (r *UserRepository) GetByIDs(ids []uuid.UUID) ([]models.User, error) {
	users := []models.User{}
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.Where("id IN ?", ids).Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("loading %d users: %w", len(ids), err)
	}
	return users, nil
}

// UpdateFailedLoginAttempts persists the lockout counter and lock time.
func (r *UserRepository) UpdateFailedLoginAttempts(user *models.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	return r.updateColumns(user.ID, map[string]any{
		"failed_login_attempts": user.FailedLoginAttempts,
		"locked_at":             user.LockedAt,
	})
}

// ResetFailedLoginAttempts clears the counter and any lock.
func (r *UserRepository) ResetFailedLoginAttempts(userID uuid.UUID) error {
	return r.updateColumns(userID, map[string]any{
		"failed_login_attempts": 0,
		"locked_at":             nil,
	})
}

func (r *UserRepository) UpdateLastLogin(userID uuid.UUID, at time.Time) error {
	return r.updateColumns(userID, map[string]any{"last_login_at": at})
}

func (r *UserRepository) take(query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.Where(query, arg).Take(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) updateColumns(userID uuid.UUID, columns map[string]any) error {
	res := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(columns)
	if res.Error != nil {
		return fmt.Errorf("updating user %s: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// isDuplicateKeyError reports a unique violation. The gorm translation covers
// both drivers; the message checks catch errors from raw Exec calls.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "UNIQUE constraint failed")
}
