package repositories

import (
	"errors"
	"fmt"
	"time"

	"group-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository stores login sessions keyed by refresh token hash.
type RefreshTokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepositoryInterface {
	return &RefreshTokenRepository{db: db, now: time.Now}
}

func (r *RefreshTokenRepository) Create(token *models.RefreshToken) error {
	if token == nil {
		return errors.New("refresh token cannot be nil")
	}
	if err := r.db.Create(token).Error; err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByTokenHash(tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.Where("token_hash = ?", tokenHash).Take(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRefreshTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &token, nil
}

// Revoke closes one live session. A session that is already revoked reports
// ErrRefreshTokenNotFound so rotation races are visible to the caller.
func (r *RefreshTokenRepository) Revoke(tokenID uuid.UUID) error {
	n, err := r.revokeWhere("id = ?", tokenID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRefreshTokenNotFound
	}
	return nil
}

func (r *RefreshTokenRepository) RevokeAllForUser(userID uuid.UUID) error {
	_, err := r.revokeWhere("user_id = ?", userID)
	return err
}

// DeleteExpired purges sessions that expired before the cutoff.
func (r *RefreshTokenRepository) DeleteExpired(before time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", before).Delete(&models.RefreshToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *RefreshTokenRepository) revokeWhere(query string, arg interface{}) (int64, error) {
	result := r.db.Model(&models.RefreshToken{}).
		Where(query, arg).
		Where("revoked_at IS NULL").
		Update("revoked_at", r.now())
	if result.Error != nil {
		return 0, fmt.Errorf("failed to revoke session: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// BlacklistedTokenRepository stores revoked access token ids until they expire.
type BlacklistedTokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewBlacklistedTokenRepository(db *gorm.DB) BlacklistedTokenRepositoryInterface {
	return &BlacklistedTokenRepository{db: db, now: time.Now}
}

// Create revokes a token id. Revoking the same id twice is a no-op.
func (r *BlacklistedTokenRepository) Create(token *models.BlacklistedToken) error {
	if token == nil {
		return errors.New("blacklisted token cannot be nil")
	}
	if token.BlacklistedAt.IsZero() {
		token.BlacklistedAt = r.now()
	}
	if err := r.db.Create(token).Error; err != nil && !isDuplicateKeyError(err) {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsBlacklisted reports whether jti is revoked and not yet past its expiry.
func (r *BlacklistedTokenRepository) IsBlacklisted(jti string) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlacklistedToken{}).
		Where("jti = ? AND expires_at > ?", jti, r.now()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return count > 0, nil
}

// DeleteExpired purges entries whose token expired before the cutoff.
func (r *BlacklistedTokenRepository) DeleteExpired(before time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", before).Delete(&models.BlacklistedToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge blacklist: %w", result.Error)
	}
	return result.RowsAffected, nil
}
