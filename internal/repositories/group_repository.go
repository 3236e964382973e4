package repositories

import (
	"errors"
	"fmt"

	"group-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrMemberNotFound = errors.New("group member not found")
	ErrInviteKeyTaken = errors.New("invite key already in use")
)

// GroupRepository persists groups together with their memberships
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) GroupRepositoryInterface {
	return &GroupRepository{
		db: db,
	}
}

// Create inserts the group and its initial members.
// A unique violation on the invite key surfaces as ErrInviteKeyTaken.
func (r *GroupRepository) Create(group *models.Group) error {
	if group == nil {
		return errors.New("group cannot be nil")
	}

	if err := r.db.Create(group).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrInviteKeyTaken
		}
		return fmt.Errorf("failed to create group: %w", err)
	}

	return nil
}

// GetByID retrieves a group with its members
func (r *GroupRepository) GetByID(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("joined_at ASC")
	}).Where("id = ?", id).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group by ID: %w", err)
	}

	return &group, nil
}

// GetByInviteKey retrieves a group with its members by invite key
func (r *GroupRepository) GetByInviteKey(key string) (*models.Group, error) {
	var group models.Group
	err := r.db.Preload("Members").Where("invite_key = ?", key).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group by invite key: %w", err)
	}

	return &group, nil
}

// ListForUser returns every group userID belongs to, oldest first
func (r *GroupRepository) ListForUser(userID uuid.UUID) ([]models.Group, error) {
	var groups []models.Group

	memberOf := r.db.Model(&models.GroupMember{}).Select("group_id").Where("user_id = ?", userID)
	if err := r.db.Preload("Members").
		Where("id IN (?)", memberOf).
		Order("created_at ASC").
		Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to list groups for user: %w", err)
	}

	return groups, nil
}

// Update saves the group's own columns. Members are managed through the
// dedicated member operations.
func (r *GroupRepository) Update(group *models.Group) error {
	if group == nil {
		return errors.New("group cannot be nil")
	}

	result := r.db.Model(group).Updates(map[string]interface{}{
		"name":     group.Name,
		"currency": group.Currency,
		"tax_rate": group.TaxRate,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update group: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// Delete soft deletes the group and drops its memberships
func (r *GroupRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Group{ID: id})
		if result.Error != nil {
			return fmt.Errorf("failed to delete group: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrGroupNotFound
		}
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupMember{}).Error; err != nil {
			return fmt.Errorf("failed to delete group members: %w", err)
		}
		return nil
	})
}

// InviteKeyExists reports whether any group, including soft deleted ones, holds key
func (r *GroupRepository) InviteKeyExists(key string) (bool, error) {
	var count int64
	if err := r.db.Unscoped().Model(&models.Group{}).Where("invite_key = ?", key).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check invite key: %w", err)
	}
	return count > 0, nil
}

// UpdateInviteKey replaces the group's invite key
func (r *GroupRepository) UpdateInviteKey(groupID uuid.UUID, key string) error {
	result := r.db.Model(&models.Group{ID: groupID}).Updates(map[string]interface{}{"invite_key": key})
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrInviteKeyTaken
		}
		return fmt.Errorf("failed to update invite key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}
	return nil
}

// AddMember inserts a membership row
func (r *GroupRepository) AddMember(member *models.GroupMember) error {
	if member == nil {
		return errors.New("member cannot be nil")
	}

	if err := r.db.Create(member).Error; err != nil {
		if isDuplicateKeyError(err) {
			return models.ErrAlreadyMember
		}
		return fmt.Errorf("failed to add group member: %w", err)
	}
	return nil
}

// UpdateMemberRole changes the role of an existing membership
func (r *GroupRepository) UpdateMemberRole(groupID, userID uuid.UUID, role models.GroupRole) error {
	result := r.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Update("role", role)
	if result.Error != nil {
		return fmt.Errorf("failed to update member role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// RemoveMember deletes a membership row
func (r *GroupRepository) RemoveMember(groupID, userID uuid.UUID) error {
	result := r.db.Where("group_id = ? AND user_id = ?", groupID, userID).Delete(&models.GroupMember{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove group member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// TransferOwnership swaps owner and editor roles and repoints owner_id atomically
func (r *GroupRepository) TransferOwnership(groupID, fromUserID, toUserID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		promote := tx.Model(&models.GroupMember{}).
			Where("group_id = ? AND user_id = ?", groupID, toUserID).
			Update("role", models.GroupRoleOwner)
		if promote.Error != nil {
			return fmt.Errorf("failed to promote new owner: %w", promote.Error)
		}
		if promote.RowsAffected == 0 {
			return ErrMemberNotFound
		}

		demote := tx.Model(&models.GroupMember{}).
			Where("group_id = ? AND user_id = ?", groupID, fromUserID).
			Update("role", models.GroupRoleEditor)
		if demote.Error != nil {
			return fmt.Errorf("failed to demote previous owner: %w", demote.Error)
		}
		if demote.RowsAffected == 0 {
			return ErrMemberNotFound
		}

		result := tx.Model(&models.Group{}).
			Where("id = ? AND owner_id = ?", groupID, fromUserID).
			Update("owner_id", toUserID)
		if result.Error != nil {
			return fmt.Errorf("failed to update group owner: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrGroupNotFound
		}
		return nil
	})
}
