package repositories

import (
	"errors"
	"fmt"
	"time"

	"group-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRecurringObligationNotFound = errors.New("recurring obligation not found")
	ErrAlreadyProcessed            = errors.New("recurring obligation occurrence already processed")
)

type recurringObligationRepository struct {
	db *gorm.DB
}

// NewRecurringObligationRepository creates a new recurring obligation repository
func NewRecurringObligationRepository(db *gorm.DB) RecurringObligationRepositoryInterface {
	return &recurringObligationRepository{db: db}
}

// Create creates a new recurring obligation
func (r *recurringObligationRepository) Create(obligation *models.RecurringObligation) error {
	if obligation == nil {
		return errors.New("recurring obligation cannot be nil")
	}
	if err := r.db.Create(obligation).Error; err != nil {
		return fmt.Errorf("failed to create recurring obligation: %w", err)
	}
	return nil
}

// GetByID retrieves a recurring obligation scoped to its group
func (r *recurringObligationRepository) GetByID(groupID, id uuid.UUID) (*models.RecurringObligation, error) {
	var obligation models.RecurringObligation
	if err := r.db.Where("id = ? AND group_id = ?", id, groupID).First(&obligation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecurringObligationNotFound
		}
		return nil, fmt.Errorf("failed to get recurring obligation: %w", err)
	}
	return &obligation, nil
}

// ListByGroup returns a group's obligations ordered by start date
func (r *recurringObligationRepository) ListByGroup(groupID uuid.UUID, activeOnly bool) ([]models.RecurringObligation, error) {
	var obligations []models.RecurringObligation

	query := r.db.Where("group_id = ?", groupID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Order("start_date ASC, id ASC").Find(&obligations).Error; err != nil {
		return nil, fmt.Errorf("failed to list recurring obligations: %w", err)
	}
	return obligations, nil
}

// ListActive pages through active obligations of every group using keyset
// pagination on id. Pass uuid.Nil to start from the beginning.
func (r *recurringObligationRepository) ListActive(afterID uuid.UUID, limit int) ([]models.RecurringObligation, error) {
	var obligations []models.RecurringObligation

	query := r.db.Where("active = ?", true)
	if afterID != uuid.Nil {
		query = query.Where("id > ?", afterID)
	}
	if err := query.Order("id ASC").Limit(limit).Find(&obligations).Error; err != nil {
		return nil, fmt.Errorf("failed to list active recurring obligations: %w", err)
	}
	return obligations, nil
}

// UpdateWithOptimisticLock saves the editable fields when the stored version
// still equals expectedVersion, bumping the version on success.
func (r *recurringObligationRepository) UpdateWithOptimisticLock(obligation *models.RecurringObligation, expectedVersion int) error {
	if obligation == nil {
		return errors.New("recurring obligation cannot be nil")
	}
	if err := obligation.Validate(); err != nil {
		return err
	}

	participants, err := obligation.Participants.Value()
	if err != nil {
		return fmt.Errorf("failed to encode participants: %w", err)
	}

	result := r.db.Model(&models.RecurringObligation{}).
		Where("id = ? AND group_id = ? AND version = ?", obligation.ID, obligation.GroupID, expectedVersion).
		Updates(map[string]interface{}{
			"title":        obligation.Title,
			"amount":       obligation.Amount,
			"type":         obligation.Type,
			"category":     obligation.Category,
			"frequency":    obligation.Frequency,
			"start_date":   obligation.StartDate,
			"end_date":     obligation.EndDate,
			"client_id":    obligation.ClientID,
			"participants": participants,
			"active":       obligation.Active,
			"version":      gorm.Expr("version + 1"),
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update recurring obligation with optimistic lock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrOptimisticLockConflict
	}

	obligation.Version = expectedVersion + 1
	return nil
}

// Delete removes a recurring obligation. Transactions it spawned keep their
// dangling reference.
func (r *recurringObligationRepository) Delete(groupID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND group_id = ?", id, groupID).Delete(&models.RecurringObligation{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete recurring obligation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecurringObligationNotFound
	}
	return nil
}

// ExecuteOccurrence claims the obligation's current version and records the
// spawned transaction in one database transaction. Losing the claim means a
// concurrent executor already processed this occurrence.
func (r *recurringObligationRepository) ExecuteOccurrence(obligation *models.RecurringObligation, executedAt time.Time, transaction *models.Transaction) error {
	if obligation == nil || transaction == nil {
		return errors.New("obligation and transaction are required")
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		claim := tx.Exec(
			`UPDATE recurring_obligations SET last_processed_at = ?, version = version + 1, updated_at = ? WHERE id = ? AND version = ? AND active = ?`,
			executedAt, time.Now(), obligation.ID, obligation.Version, true,
		)
		if claim.Error != nil {
			return fmt.Errorf("failed to claim recurring obligation: %w", claim.Error)
		}
		if claim.RowsAffected == 0 {
			return ErrAlreadyProcessed
		}

		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to record recurring transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	obligation.LastProcessedAt = &executedAt
	obligation.Version++
	return nil
}
