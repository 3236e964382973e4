package dto

import (
	"time"

	"group-ledger/internal/models"

	"github.com/google/uuid"
)

// ActivityResponse is one audit entry
type ActivityResponse struct {
	ID         uuid.UUID              `json:"id"`
	UserID     *uuid.UUID             `json:"userId,omitempty"`
	Action     string                 `json:"action"`
	Resource   string                 `json:"resource"`
	ResourceID string                 `json:"resourceId,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}

// ActivityListResponse is a page of audit entries
type ActivityListResponse struct {
	Activity   []ActivityResponse `json:"activity"`
	Pagination PaginationMeta     `json:"pagination"`
}

// NewActivityListResponse converts audit logs into a page.
func NewActivityListResponse(logs []*models.AuditLog, total int64, offset, limit int) ActivityListResponse {
	resp := ActivityListResponse{
		Activity:   make([]ActivityResponse, 0, len(logs)),
		Pagination: PaginationMeta{Offset: offset, Limit: limit, Total: total},
	}
	for _, l := range logs {
		resp.Activity = append(resp.Activity, ActivityResponse{
			ID:         l.ID,
			UserID:     l.UserID,
			Action:     l.Action,
			Resource:   l.Resource,
			ResourceID: l.ResourceID,
			Metadata:   l.Metadata,
			CreatedAt:  l.CreatedAt,
		})
	}
	return resp
}
