package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"group-ledger/internal/dto"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"
	"group-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type meMocks struct {
	auth  *service_mocks.MockAuthServiceInterface
	group *service_mocks.MockGroupServiceInterface
	audit *service_mocks.MockAuditServiceInterface
}

func setupMeHandler(t *testing.T) (*MeHandler, meMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := meMocks{
		auth:  service_mocks.NewMockAuthServiceInterface(ctrl),
		group: service_mocks.NewMockGroupServiceInterface(ctrl),
		audit: service_mocks.NewMockAuditServiceInterface(ctrl),
	}
	return NewMeHandler(m.auth, m.group, m.audit), m
}

func TestMeHandler_GetMe(t *testing.T) {
	handler, m := setupMeHandler(t)
	e := newTestEcho()

	userID := uuid.New()
	user := &models.User{ID: userID, Email: "ada@example.com", FirstName: "Ada", LastName: "King", Role: models.RoleUser, CreatedAt: time.Now()}
	group := models.Group{
		ID:        uuid.New(),
		Name:      "Studio",
		Currency:  "USD",
		OwnerID:   userID,
		InviteKey: "QWER1234",
		Members:   []models.GroupMember{{UserID: userID, Role: models.GroupRoleOwner}},
	}

	m.auth.EXPECT().GetProfile(userID).Return(user, nil)
	m.group.EXPECT().ListForUser(gomock.Any(), userID).Return([]models.Group{group}, nil)

	t.Run("without group context", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/me", nil)
		withUser(c, userID)

		require.NoError(t, handler.GetMe(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp dto.MeResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, "ada@example.com", resp.User.Email)
		require.Len(t, resp.Groups, 1)
		assert.Equal(t, "owner", resp.Groups[0].Role)
		assert.Nil(t, resp.CurrentGroup)
	})

	m.auth.EXPECT().GetProfile(userID).Return(user, nil)
	m.group.EXPECT().ListForUser(gomock.Any(), userID).Return([]models.Group{group}, nil)

	t.Run("with group context", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/me?group_id="+group.ID.String(), nil)
		withUser(c, userID)
		c.Set(GroupContextKey, &group)
		c.Set(GroupRoleContextKey, models.GroupRoleOwner)

		require.NoError(t, handler.GetMe(c))

		var resp dto.MeResponse
		decodeJSON(t, rec, &resp)
		require.NotNil(t, resp.CurrentGroup)
		assert.Equal(t, group.ID, resp.CurrentGroup.ID)
		assert.Equal(t, "QWER1234", resp.CurrentGroup.InviteKey)
	})
}

func TestMeHandler_GetMe_DeletedUser(t *testing.T) {
	handler, m := setupMeHandler(t)
	e := newTestEcho()
	userID := uuid.New()

	m.auth.EXPECT().GetProfile(userID).Return(nil, repositories.ErrUserNotFound)

	c, rec := newJSONContext(e, http.MethodGet, "/me", nil)
	withUser(c, userID)

	require.NoError(t, handler.GetMe(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_004", decodeError(t, rec).Error.Code)
}

func TestMeHandler_GetMe_Unauthenticated(t *testing.T) {
	handler, _ := setupMeHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodGet, "/me", nil)

	require.NoError(t, handler.GetMe(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_002", decodeError(t, rec).Error.Code)
}

func TestMeHandler_GetMyActivity(t *testing.T) {
	handler, m := setupMeHandler(t)
	e := newTestEcho()
	userID := uuid.New()

	m.audit.EXPECT().UserActivity(userID, 20, 20).
		Return([]*models.AuditLog{{ID: uuid.New(), UserID: &userID, Action: models.AuditActionLogin, Resource: "user"}}, int64(21), nil)

	c, rec := newJSONContext(e, http.MethodGet, "/me/activity?offset=20", nil)
	withUser(c, userID)

	require.NoError(t, handler.GetMyActivity(c))
	var resp dto.ActivityListResponse
	decodeJSON(t, rec, &resp)
	assert.Len(t, resp.Activity, 1)
	assert.Equal(t, 20, resp.Pagination.Offset)
}

func TestMeHandler_GetMyActivity_Failure(t *testing.T) {
	handler, m := setupMeHandler(t)
	e := newTestEcho()
	userID := uuid.New()

	m.audit.EXPECT().UserActivity(userID, 0, 20).Return(nil, int64(0), errors.New("db down"))

	c, rec := newJSONContext(e, http.MethodGet, "/me/activity", nil)
	withUser(c, userID)

	require.NoError(t, handler.GetMyActivity(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
