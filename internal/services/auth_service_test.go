package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"group-ledger/internal/dto"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"
	"group-ledger/internal/repositories/repository_mocks"
	"group-ledger/internal/services/service_mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	users       *repository_mocks.MockUserRepositoryInterface
	sessions    *repository_mocks.MockRefreshTokenRepositoryInterface
	revocations *repository_mocks.MockBlacklistedTokenRepositoryInterface
	passwords   *service_mocks.MockPasswordServiceInterface
	tokens      *service_mocks.MockTokenServiceInterface
	audit       *service_mocks.MockAuditServiceInterface

	now     time.Time
	ctx     context.Context
	client  models.Actor
	service *AuthService
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.sessions = repository_mocks.NewMockRefreshTokenRepositoryInterface(s.ctrl)
	s.revocations = repository_mocks.NewMockBlacklistedTokenRepositoryInterface(s.ctrl)
	s.passwords = service_mocks.NewMockPasswordServiceInterface(s.ctrl)
	s.tokens = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.audit = service_mocks.NewMockAuditServiceInterface(s.ctrl)

	s.now = time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	s.ctx = context.Background()
	s.client = models.Actor{IPAddress: "192.168.1.1", UserAgent: "Mozilla/5.0"}

	s.service = NewAuthService(s.users, s.sessions, s.revocations, s.passwords, s.tokens, s.audit,
		NoopMetrics{}, discardLogger()).(*AuthService)
	s.service.now = func() time.Time { return s.now }
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthServiceTestSuite) newUser() *models.User {
	return &models.User{
		ID:           uuid.New(),
		Email:        "member@example.com",
		PasswordHash: "hashed_password",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Role:         models.RoleUser,
	}
}

func (s *AuthServiceTestSuite) claimsFor(userID uuid.UUID, jti string) *models.Claims {
	return &models.Claims{RegisteredClaims: jwt.RegisteredClaims{
		ID:        jti,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(s.now.Add(15 * time.Minute)),
	}}
}

// expectAudit asserts the next audit entry carries the given action and, when
// non-empty, the rejection reason.
func (s *AuthServiceTestSuite) expectAudit(action, reason string) {
	s.audit.EXPECT().Record(gomock.Any(), gomock.Any(), action, resourceUser, gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, actor models.Actor, _, _, _ string, meta models.Metadata) {
			s.Equal(s.client.IPAddress, actor.IPAddress)
			if reason != "" {
				s.Equal(reason, meta["reason"])
			}
		})
}

// expectSession asserts a session is opened for user and persisted with the
// requesting client attached.
func (s *AuthServiceTestSuite) expectSession(user *models.User) {
	s.tokens.EXPECT().IssueAccessToken(user).Return("access_token", s.now.Add(15*time.Minute), nil)
	s.tokens.EXPECT().IssueRefreshToken(user.ID).Return("refresh_token", s.now.Add(7*24*time.Hour), nil)
	s.sessions.EXPECT().Create(gomock.Any()).DoAndReturn(func(token *models.RefreshToken) error {
		s.Equal(user.ID, token.UserID)
		s.Equal(hashToken("refresh_token"), token.TokenHash)
		s.Len(token.TokenHash, 64)
		s.Equal("192.168.1.1", token.IPAddress)
		s.Equal("Mozilla/5.0", token.UserAgent)
		return nil
	})
}

func (s *AuthServiceTestSuite) TestRegister_NormalizesInput() {
	req := &dto.RegisterRequest{Email: "  New@Example.COM ", Password: "SecurePass123!", FirstName: " Grace ", LastName: "Hopper"}

	s.users.EXPECT().GetByEmail("new@example.com").Return(nil, repositories.ErrUserNotFound)
	s.passwords.EXPECT().HashPassword(req.Password).Return("hashed_password", nil)
	s.users.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		u.ID = uuid.New()
		return nil
	})
	s.expectAudit(models.AuditActionRegister, "")

	user, err := s.service.Register(s.ctx, req, s.client)
	s.Require().NoError(err)
	s.Equal("new@example.com", user.Email)
	s.Equal("Grace", user.FirstName)
	s.Equal(models.RoleUser, user.Role)
}

func (s *AuthServiceTestSuite) TestRegister_Conflicts() {
	req := &dto.RegisterRequest{Email: "member@example.com", Password: "SecurePass123!", FirstName: "A", LastName: "B"}

	s.Run("existing email", func() {
		s.users.EXPECT().GetByEmail(req.Email).Return(s.newUser(), nil)
		s.expectAudit(models.AuditActionRegister, "email_already_exists")

		_, err := s.service.Register(s.ctx, req, s.client)
		s.ErrorIs(err, ErrUserAlreadyExists)
	})

	s.Run("lost insert race", func() {
		s.users.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound)
		s.passwords.EXPECT().HashPassword(req.Password).Return("hashed_password", nil)
		s.users.EXPECT().Create(gomock.Any()).Return(repositories.ErrUserAlreadyExists)

		_, err := s.service.Register(s.ctx, req, s.client)
		s.ErrorIs(err, ErrUserAlreadyExists)
	})

	s.Run("weak password", func() {
		s.users.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound)
		s.passwords.EXPECT().HashPassword(req.Password).Return("", ErrPasswordTooShort)

		user, err := s.service.Register(s.ctx, req, s.client)
		s.ErrorIs(err, ErrPasswordTooShort)
		s.Nil(user)
	})
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	user := s.newUser()
	user.FailedLoginAttempts = 2
	req := &dto.LoginRequest{Email: "MEMBER@example.com", Password: "SecurePass123!@#"}

	s.users.EXPECT().GetByEmail(user.Email).Return(user, nil)
	s.passwords.EXPECT().ComparePassword(req.Password, user.PasswordHash).Return(true)
	s.users.EXPECT().ResetFailedLoginAttempts(user.ID).Return(nil)
	s.users.EXPECT().UpdateLastLogin(user.ID, s.now).Return(errors.New("replica lag"))
	s.expectSession(user)
	s.expectAudit(models.AuditActionLogin, "")

	tokens, err := s.service.Login(s.ctx, req, s.client)
	s.Require().NoError(err)
	s.Equal("access_token", tokens.AccessToken)
	s.Equal("refresh_token", tokens.RefreshToken)
	s.Equal("Bearer", tokens.TokenType)
	s.Equal(s.now.Add(15*time.Minute), tokens.ExpiresAt)
	s.Zero(user.FailedLoginAttempts)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownUser() {
	req := &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"}

	s.users.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound)
	s.audit.EXPECT().Record(gomock.Any(), gomock.Any(), models.AuditActionFailedLogin, resourceUser, "", gomock.Any()).
		Do(func(_ context.Context, actor models.Actor, _, _, _ string, meta models.Metadata) {
			s.Equal(uuid.Nil, actor.UserID)
			s.Equal("user_not_found", meta["reason"])
			s.Equal("nobody@example.com", meta["email"])
		})

	_, err := s.service.Login(s.ctx, req, s.client)
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_LockoutPolicy() {
	user := s.newUser()
	user.FailedLoginAttempts = models.MaxFailedLoginAttempts - 1
	req := &dto.LoginRequest{Email: user.Email, Password: "WrongPassword"}

	s.users.EXPECT().GetByEmail(user.Email).Return(user, nil)
	s.passwords.EXPECT().ComparePassword(req.Password, user.PasswordHash).Return(false)
	s.users.EXPECT().UpdateFailedLoginAttempts(user).Return(nil)
	s.expectAudit(models.AuditActionAccountLocked, "")
	s.expectAudit(models.AuditActionFailedLogin, "invalid_password")

	_, err := s.service.Login(s.ctx, req, s.client)
	s.ErrorIs(err, ErrInvalidCredentials)
	s.True(user.IsLocked())

	s.users.EXPECT().GetByEmail(user.Email).Return(user, nil)
	s.expectAudit(models.AuditActionFailedLogin, "account_locked")

	_, err = s.service.Login(s.ctx, req, s.client)
	s.ErrorIs(err, ErrAccountLocked)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_RotatesSession() {
	user := s.newUser()
	stored := &models.RefreshToken{ID: uuid.New(), UserID: user.ID, ExpiresAt: s.now.Add(time.Hour)}

	s.tokens.EXPECT().ParseRefreshToken("old_refresh").Return(s.claimsFor(user.ID, "r1"), nil)
	s.sessions.EXPECT().GetByTokenHash(hashToken("old_refresh")).Return(stored, nil)
	s.users.EXPECT().GetByID(user.ID).Return(user, nil)
	s.sessions.EXPECT().Revoke(stored.ID).Return(nil)
	s.expectSession(user)
	s.expectAudit(models.AuditActionTokenRefresh, "")

	tokens, err := s.service.RefreshTokens(s.ctx, "old_refresh", s.client)
	s.Require().NoError(err)
	s.Equal("refresh_token", tokens.RefreshToken)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_Rejections() {
	user := s.newUser()
	revokedAt := s.now.Add(-time.Minute)

	cases := []struct {
		name   string
		stored *models.RefreshToken
		err    error
		reason string
	}{
		{"unknown session", nil, repositories.ErrRefreshTokenNotFound, "token_not_found"},
		{"revoked", &models.RefreshToken{UserID: user.ID, ExpiresAt: s.now.Add(time.Hour), RevokedAt: &revokedAt}, nil, "token_expired_or_revoked"},
		{"expired", &models.RefreshToken{UserID: user.ID, ExpiresAt: s.now.Add(-time.Second)}, nil, "token_expired_or_revoked"},
		{"another user", &models.RefreshToken{UserID: uuid.New(), ExpiresAt: s.now.Add(time.Hour)}, nil, "token_user_mismatch"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.tokens.EXPECT().ParseRefreshToken("old_refresh").Return(s.claimsFor(user.ID, "r1"), nil)
			s.sessions.EXPECT().GetByTokenHash(gomock.Any()).Return(tc.stored, tc.err)
			s.expectAudit(models.AuditActionTokenRefresh, tc.reason)

			tokens, err := s.service.RefreshTokens(s.ctx, "old_refresh", s.client)
			s.ErrorIs(err, ErrInvalidRefreshToken)
			s.Nil(tokens)
		})
	}

	s.Run("unparseable token", func() {
		s.tokens.EXPECT().ParseRefreshToken("bad").Return(nil, ErrInvalidToken)
		s.expectAudit(models.AuditActionTokenRefresh, "invalid_token")

		_, err := s.service.RefreshTokens(s.ctx, "bad", s.client)
		s.ErrorIs(err, ErrInvalidRefreshToken)
	})
}

func (s *AuthServiceTestSuite) TestLogout_RevokesTokenAndSessions() {
	userID := uuid.New()

	s.tokens.EXPECT().ParseAccessToken("access").Return(s.claimsFor(userID, "jti-123"), nil)
	s.revocations.EXPECT().Create(gomock.Any()).DoAndReturn(func(token *models.BlacklistedToken) error {
		s.Equal("jti-123", token.JTI)
		s.Equal(userID, token.UserID)
		s.Equal(s.now.Add(15*time.Minute), token.ExpiresAt)
		s.Equal(s.now, token.BlacklistedAt)
		return errors.New("duplicate jti")
	})
	s.sessions.EXPECT().RevokeAllForUser(userID).Return(nil)
	s.expectAudit(models.AuditActionLogout, "")

	s.NoError(s.service.Logout(s.ctx, "access", s.client))
}

func (s *AuthServiceTestSuite) TestLogout_UnusableTokenIsNoop() {
	s.tokens.EXPECT().ParseAccessToken("expired").Return(nil, ErrExpiredToken)

	s.NoError(s.service.Logout(s.ctx, "expired", s.client))
}

func (s *AuthServiceTestSuite) TestGetProfile() {
	user := s.newUser()
	s.users.EXPECT().GetByID(user.ID).Return(user, nil)

	got, err := s.service.GetProfile(user.ID)
	s.NoError(err)
	s.Equal(user, got)

	missing := uuid.New()
	s.users.EXPECT().GetByID(missing).Return(nil, repositories.ErrUserNotFound)
	_, err = s.service.GetProfile(missing)
	s.ErrorIs(err, repositories.ErrUserNotFound)
}
