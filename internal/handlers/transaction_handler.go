package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"group-ledger/internal/dto"
	"group-ledger/internal/errors"
	"group-ledger/internal/models"
	"group-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	dateLayout = "2006-01-02"
	cacheTTL   = time.Minute
)

// TransactionHandler handles ledger entry requests inside a group
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction records a manual income or expense
// @Summary Create transaction
// @Description Participants default to the caller holding the full amount. Shares must add up to the amount within 0.01.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param groupId path string true "Group ID"
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Shares do not add up"
// @Failure 403 {object} errors.ErrorResponse "GROUP_003 - Viewers cannot write"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_005 - Participant is not a member"
// @Router /groups/{groupId}/transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Create(c.Request().Context(), actor, groupID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// ListTransactions returns a filtered page of the group's entries, newest first
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Group ID"
// @Param start_date query string false "From date (YYYY-MM-DD)"
// @Param end_date query string false "To date inclusive (YYYY-MM-DD)"
// @Param type query string false "Entry type" Enums(income, expense)
// @Param category query string false "Category"
// @Param min_amount query string false "Minimum amount"
// @Param max_amount query string false "Maximum amount"
// @Param recurring query bool false "Only entries spawned by (true) or not spawned by (false) recurring obligations"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.TransactionListResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid filter"
// @Failure 403 {object} errors.ErrorResponse "GROUP_002 - Not a member"
// @Router /groups/{groupId}/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	filters.GroupID = groupID

	transactions, total, err := h.transactionService.List(c.Request().Context(), userID, filters)
	if err != nil {
		return sendServiceError(c, err)
	}

	resp := dto.TransactionListResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
		Pagination: dto.PaginationMeta{
			Offset: filters.Offset,
			Limit:  filters.Limit,
			Total:  total,
		},
	}
	for i := range transactions {
		resp.Transactions = append(resp.Transactions, dto.NewTransactionResponse(&transactions[i]))
	}

	c.Response().Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(cacheTTL.Seconds())))

	return c.JSON(http.StatusOK, resp)
}

// GetTransaction returns one entry of the group
// @Summary Get transaction
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Group ID"
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /groups/{groupId}/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
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
		return sendInvalidID(c, "transaction ID")
	}

	transaction, err := h.transactionService.Get(c.Request().Context(), userID, groupID, id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// DeleteTransaction removes an entry
// @Summary Delete transaction
// @Tags Transactions
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse "GROUP_003 - Viewers cannot write"
// @Router /groups/{groupId}/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
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
		return sendInvalidID(c, "transaction ID")
	}

	if err := h.transactionService.Delete(c.Request().Context(), actor, groupID, id); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetSummary aggregates the group's entries per type and category
// @Summary Group summary
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Group ID"
// @Param start_date query string false "From date (YYYY-MM-DD)"
// @Param end_date query string false "To date inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.GroupSummaryResponse
// @Router /groups/{groupId}/summary [get]
func (h *TransactionHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return sendInvalidID(c, "group ID")
	}

	startDate, endDate, err := parseDateRange(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	rows, err := h.transactionService.Summary(c.Request().Context(), userID, groupID, startDate, endDate)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGroupSummaryResponse(rows))
}

// parseDateRange reads start_date and end_date. The end date covers its whole day.
func parseDateRange(c echo.Context) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if startDateStr := c.QueryParam("start_date"); startDateStr != "" {
		startDate, err := time.Parse(dateLayout, startDateStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid start_date format, use YYYY-MM-DD")
		}
		start = &startDate
	}

	if endDateStr := c.QueryParam("end_date"); endDateStr != "" {
		endDate, err := time.Parse(dateLayout, endDateStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid end_date format, use YYYY-MM-DD")
		}
		endOfDay := endDate.Add(24*time.Hour - time.Nanosecond)
		end = &endOfDay
	}

	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, fmt.Errorf("end_date must not be before start_date")
	}

	return start, end, nil
}

// parseTransactionFilters parses and validates transaction filter parameters
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	var filters models.TransactionFilters

	start, end, err := parseDateRange(c)
	if err != nil {
		return filters, err
	}
	filters.StartDate, filters.EndDate = start, end

	if entryType := c.QueryParam("type"); entryType != "" {
		if !models.IsValidEntryType(entryType) {
			return filters, fmt.Errorf("invalid type, must be 'income' or 'expense'")
		}
		filters.Type = entryType
	}

	filters.Category = c.QueryParam("category")

	if minAmountStr := c.QueryParam("min_amount"); minAmountStr != "" {
		minAmount, err := decimal.NewFromString(minAmountStr)
		if err != nil {
			return filters, fmt.Errorf("invalid min_amount format")
		}
		filters.MinAmount = &minAmount
	}

	if maxAmountStr := c.QueryParam("max_amount"); maxAmountStr != "" {
		maxAmount, err := decimal.NewFromString(maxAmountStr)
		if err != nil {
			return filters, fmt.Errorf("invalid max_amount format")
		}
		filters.MaxAmount = &maxAmount
	}

	if recurringStr := c.QueryParam("recurring"); recurringStr != "" {
		recurring, err := strconv.ParseBool(recurringStr)
		if err != nil {
			return filters, fmt.Errorf("invalid recurring flag")
		}
		filters.Recurring = &recurring
	}

	filters.Offset, filters.Limit = pageParams(c)

	return filters, nil
}
