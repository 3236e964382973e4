package repositories

import (
	"errors"
	"fmt"
	"time"

	"group-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

const (
	defaultTransactionPageSize = 20
	maxTransactionPageSize     = 100
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("nil transaction")
	}
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

// GetByID only finds the entry inside groupID; an id from another group is
// reported as not found.
func (r *transactionRepository) GetByID(groupID, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.Scopes(inGroup(groupID)).Where("id = ?", id).Take(&transaction).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrTransactionNotFound
	case err != nil:
		return nil, fmt.Errorf("loading transaction %s: %w", id, err)
	}
	return &transaction, nil
}

// GetWithFilters pages through a group's ledger, newest first. total counts
// every matching row regardless of the page.
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.GroupID == uuid.Nil {
		return nil, 0, models.ErrGroupRequired
	}

	query := r.db.Model(&models.Transaction{}).Scopes(
		inGroup(filters.GroupID),
		inDateRange(filters.StartDate, filters.EndDate),
		matchingFilters(filters),
	)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting transactions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > maxTransactionPageSize {
		limit = defaultTransactionPageSize
	}

	transactions := []models.Transaction{}
	if total == 0 {
		return transactions, 0, nil
	}
	err := query.Order("date DESC").Order("created_at DESC").
		Offset(filters.Offset).Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing transactions: %w", err)
	}
	return transactions, total, nil
}

// GetCategorySummary totals a group's ledger per entry type and category.
// Within a type the largest categories come first.
func (r *transactionRepository) GetCategorySummary(groupID uuid.UUID, startDate, endDate *time.Time) ([]models.CategorySummary, error) {
	summaries := []models.CategorySummary{}
	err := r.db.Model(&models.Transaction{}).
		Select("type, category, COUNT(*) AS transaction_count, SUM(amount) AS total_amount, AVG(amount) AS average_amount").
		Scopes(inGroup(groupID), inDateRange(startDate, endDate)).
		Group("type, category").
		Order("type").Order("total_amount DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("summarising transactions: %w", err)
	}
	return summaries, nil
}

func (r *transactionRepository) Delete(groupID, id uuid.UUID) error {
	result := r.db.Scopes(inGroup(groupID)).Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("deleting transaction %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func inGroup(groupID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("group_id = ?", groupID)
	}
}

// inDateRange bounds the date column inclusively; nil ends are open.
func inDateRange(start, end *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != nil {
			db = db.Where("date >= ?", *start)
		}
		if end != nil {
			db = db.Where("date <= ?", *end)
		}
		return db
	}
}

func matchingFilters(f models.TransactionFilters) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Type != "" {
			db = db.Where("type = ?", f.Type)
		}
		if f.Category != "" {
			db = db.Where("category = ?", f.Category)
		}
		if f.MinAmount != nil {
			db = db.Where("amount >= ?", *f.MinAmount)
		}
		if f.MaxAmount != nil {
			db = db.Where("amount <= ?", *f.MaxAmount)
		}
		switch {
		case f.Recurring == nil:
		case *f.Recurring:
			db = db.Where("recurring_obligation_id IS NOT NULL")
		default:
			db = db.Where("recurring_obligation_id IS NULL")
		}
		return db
	}
}
