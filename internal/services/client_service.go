package services

import (
	"context"
	"strings"

	"group-ledger/internal/dto"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"

	"github.com/google/uuid"
)

const resourceClient = "client"

type ClientService struct {
	clientRepo repositories.ClientRepositoryInterface
	access     GroupAccessServiceInterface
	audit      AuditServiceInterface
}

func NewClientService(
	clientRepo repositories.ClientRepositoryInterface,
	access GroupAccessServiceInterface,
	audit AuditServiceInterface,
) ClientServiceInterface {
	return &ClientService{
		clientRepo: clientRepo,
		access:     access,
		audit:      audit,
	}
}

func (s *ClientService) Create(ctx context.Context, actor models.Actor, groupID uuid.UUID, req *dto.ClientRequest) (*models.Client, error) {
	if _, err := s.access.CheckRole(ctx, groupID, actor.UserID, WriterRoles...); err != nil {
		return nil, err
	}

	client := &models.Client{
		GroupID: groupID,
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Notes:   strings.TrimSpace(req.Notes),
	}
	if err := client.Validate(); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Create(client); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, resourceClient, client.ID.String(), models.Metadata{
		"group_id": groupID.String(),
		"name":     client.Name,
	})
	return client, nil
}

func (s *ClientService) Get(ctx context.Context, userID, groupID, id uuid.UUID) (*models.Client, error) {
	if _, err := s.access.CheckRole(ctx, groupID, userID, AnyRole...); err != nil {
		return nil, err
	}
	return s.clientRepo.GetByID(groupID, id)
}

// List returns the group's clients, optionally filtered by a name or email
// fragment.
func (s *ClientService) List(ctx context.Context, userID, groupID uuid.UUID, search string) ([]models.Client, error) {
	if _, err := s.access.CheckRole(ctx, groupID, userID, AnyRole...); err != nil {
		return nil, err
	}
	return s.clientRepo.ListByGroup(groupID, strings.TrimSpace(search))
}

func (s *ClientService) Update(ctx context.Context, actor models.Actor, groupID, id uuid.UUID, req *dto.ClientRequest) (*models.Client, error) {
	if _, err := s.access.CheckRole(ctx, groupID, actor.UserID, WriterRoles...); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(groupID, id)
	if err != nil {
		return nil, err
	}

	client.Name = strings.TrimSpace(req.Name)
	client.Email = strings.ToLower(strings.TrimSpace(req.Email))
	client.Notes = strings.TrimSpace(req.Notes)
	if err := client.Validate(); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Update(client); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, resourceClient, id.String(), models.Metadata{
		"group_id": groupID.String(),
	})
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, actor models.Actor, groupID, id uuid.UUID) error {
	if _, err := s.access.CheckRole(ctx, groupID, actor.UserID, WriterRoles...); err != nil {
		return err
	}

	if err := s.clientRepo.Delete(groupID, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, resourceClient, id.String(), models.Metadata{
		"group_id": groupID.String(),
	})
	return nil
}
