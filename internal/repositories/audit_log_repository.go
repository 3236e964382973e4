package repositories

import (
	"errors"
	"fmt"
	"time"

	"group-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 200
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{db: db}
}

// Create appends one entry. Entries are never updated.
func (r *AuditLogRepository) Create(entry *models.AuditLog) error {
	if entry == nil {
		return errors.New("audit entry is nil")
	}
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("inserting audit entry %q: %w", entry.Action, err)
	}
	return nil
}

// GetByUserID pages through everything one user did, newest first.
func (r *AuditLogRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	return r.list(func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ?", userID)
	}, offset, limit)
}

// GetByResource pages through the trail of one resource, newest first.
func (r *AuditLogRepository) GetByResource(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	return r.list(func(q *gorm.DB) *gorm.DB {
		return q.Where("resource = ?", resource).Where("resource_id = ?", resourceID)
	}, offset, limit)
}

// DeleteBefore prunes entries created before cutoff and reports how many went.
func (r *AuditLogRepository) DeleteBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
	if res.Error != nil {
		return 0, fmt.Errorf("pruning audit entries before %s: %w", cutoff.Format(time.RFC3339), res.Error)
	}
	return res.RowsAffected, nil
}

func (r *AuditLogRepository) list(scope func(*gorm.DB) *gorm.DB, offset, limit int) ([]*models.AuditLog, int64, error) {
	offset, limit = clampAuditPage(offset, limit)

	var total int64
	if err := scope(r.db.Model(&models.AuditLog{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting audit entries: %w", err)
	}
	if total == 0 {
		return []*models.AuditLog{}, 0, nil
	}

	entries := make([]*models.AuditLog, 0, limit)
	err := scope(r.db.Model(&models.AuditLog{})).
		Order("created_at DESC").Order("id").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing audit entries: %w", err)
	}
	return entries, total, nil
}

func clampAuditPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	switch {
	case limit <= 0:
		limit = defaultAuditPageSize
	case limit > maxAuditPageSize:
		limit = maxAuditPageSize
	}
	return offset, limit
}
