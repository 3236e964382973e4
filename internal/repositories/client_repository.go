package repositories

import (
	"errors"
	"fmt"
	"strings"

	"group-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrClientNotFound = errors.New("client not found")

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepositoryInterface {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(client *models.Client) error {
	if client == nil {
		return errors.New("client cannot be nil")
	}
	if err := r.db.Create(client).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *clientRepository) GetByID(groupID, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := r.db.Where("id = ? AND group_id = ?", id, groupID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

// ListByGroup lists a group's clients by name. A non-empty search matches
// name or email case-insensitively.
func (r *clientRepository) ListByGroup(groupID uuid.UUID, search string) ([]models.Client, error) {
	var clients []models.Client

	query := r.db.Where("group_id = ?", groupID)
	if term := strings.TrimSpace(search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	if err := query.Order("name ASC").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (r *clientRepository) Update(client *models.Client) error {
	if client == nil {
		return errors.New("client cannot be nil")
	}
	if err := client.Validate(); err != nil {
		return err
	}

	result := r.db.Model(&models.Client{}).
		Where("id = ? AND group_id = ?", client.ID, client.GroupID).
		Updates(map[string]interface{}{
			"name":  client.Name,
			"email": client.Email,
			"notes": client.Notes,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *clientRepository) Delete(groupID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND group_id = ?", id, groupID).Delete(&models.Client{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
