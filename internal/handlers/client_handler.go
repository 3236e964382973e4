package handlers

import (
	"net/http"

	"group-ledger/internal/dto"
	"group-ledger/internal/errors"
	"group-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ClientHandler handles the group's client book
type ClientHandler struct {
	clientService services.ClientServiceInterface
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService services.ClientServiceInterface) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// ListClients lists clients, optionally filtered by name or email
// @Summary List clients
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Group ID"
// @Param q query string false "Search by name or email"
// @Success 200 {array} dto.ClientResponse
// @Router /groups/{groupId}/clients [get]
func (h *ClientHandler) ListClients(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	clients, err := h.clientService.List(c.Request().Context(), userID, groupID, c.QueryParam("q"))
	if err != nil {
		return sendServiceError(c, err)
	}

	resp := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		resp = append(resp, dto.NewClientResponse(&clients[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateClient adds a client
// @Summary Create client
// @Tags Clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param groupId path string true "Group ID"
// @Param request body dto.ClientRequest true "Client"
// @Success 201 {object} dto.ClientResponse
// @Router /groups/{groupId}/clients [post]
func (h *ClientHandler) CreateClient(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	var req dto.ClientRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	client, err := h.clientService.Create(c.Request().Context(), actor, groupID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewClientResponse(client))
}

// GetClient returns one client
// @Summary Get client
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Group ID"
// @Param id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} errors.ErrorResponse "CLIENT_001 - Client not found"
// @Router /groups/{groupId}/clients/{id} [get]
func (h *ClientHandler) GetClient(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return sendInvalidID(c, "client ID")
	}

	client, err := h.clientService.Get(c.Request().Context(), userID, groupID, id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewClientResponse(client))
}

// UpdateClient replaces a client's details
// @Summary Update client
// @Tags Clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param groupId path string true "Group ID"
// @Param id path string true "Client ID"
// @Param request body dto.ClientRequest true "Client"
// @Success 200 {object} dto.ClientResponse
// @Router /groups/{groupId}/clients/{id} [put]
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return sendInvalidID(c, "client ID")
	}

	var req dto.ClientRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	client, err := h.clientService.Update(c.Request().Context(), actor, groupID, id, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewClientResponse(client))
}

// DeleteClient removes a client
// @Summary Delete client
// @Tags Clients
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param id path string true "Client ID"
// @Success 204
// @Router /groups/{groupId}/clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return sendInvalidID(c, "client ID")
	}

	if err := h.clientService.Delete(c.Request().Context(), actor, groupID, id); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
