package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"group-ledger/internal/dto"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountLocked       = errors.New("account is locked due to too many failed attempts")
	ErrUserAlreadyExists   = errors.New("user with this email already exists")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

const resourceUser = "user"

// AuthService owns platform accounts and their sessions. Group roles are
// handled by GroupAccessService; this service only proves who the caller is.
type AuthService struct {
	users       repositories.UserRepositoryInterface
	sessions    repositories.RefreshTokenRepositoryInterface
	revocations repositories.BlacklistedTokenRepositoryInterface
	passwords   PasswordServiceInterface
	tokens      TokenServiceInterface
	audit       AuditServiceInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
	now         func() time.Time
}

func NewAuthService(
	users repositories.UserRepositoryInterface,
	sessions repositories.RefreshTokenRepositoryInterface,
	revocations repositories.BlacklistedTokenRepositoryInterface,
	passwords PasswordServiceInterface,
	tokens TokenServiceInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		users:       users,
		sessions:    sessions,
		revocations: revocations,
		passwords:   passwords,
		tokens:      tokens,
		audit:       audit,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// Register creates a platform user with the default role.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, actor models.Actor) (*models.User, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.users.GetByEmail(email)
	switch {
	case err != nil && !errors.Is(err, repositories.ErrUserNotFound):
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	case existing != nil:
		s.reject(ctx, actor, models.AuditActionRegister, "email_already_exists", email)
		return nil, ErrUserAlreadyExists
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if errors.Is(err, ErrWeakPassword) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         models.RoleUser,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	actor.UserID = user.ID
	s.audit.Record(ctx, actor, models.AuditActionRegister, resourceUser, user.ID.String(), nil)
	s.count("register")
	return user, nil
}

// Login verifies the password, applies the lockout policy and opens a session.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest, actor models.Actor) (*dto.TokenResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.users.GetByEmail(email)
	if errors.Is(err, repositories.ErrUserNotFound) {
		s.reject(ctx, actor, models.AuditActionFailedLogin, "user_not_found", email)
		s.count("login_failed")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	actor.UserID = user.ID
	if user.IsLocked() {
		s.reject(ctx, actor, models.AuditActionFailedLogin, "account_locked", email)
		s.count("login_locked")
		return nil, ErrAccountLocked
	}

	if !s.passwords.ComparePassword(req.Password, user.PasswordHash) {
		s.recordFailedAttempt(ctx, user, actor)
		s.reject(ctx, actor, models.AuditActionFailedLogin, "invalid_password", email)
		s.count("login_failed")
		return nil, ErrInvalidCredentials
	}

	if user.FailedLoginAttempts > 0 {
		if err := s.users.ResetFailedLoginAttempts(user.ID); err != nil {
			s.logger.WarnContext(ctx, "failed to reset login attempts", "error", err, "user_id", user.ID)
		}
		user.ClearFailedLogins()
	}
	if err := s.users.UpdateLastLogin(user.ID, s.now()); err != nil {
		s.logger.WarnContext(ctx, "failed to record last login", "error", err, "user_id", user.ID)
	}

	resp, err := s.openSession(user, actor)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, models.AuditActionLogin, resourceUser, user.ID.String(), nil)
	s.count("login")
	return resp, nil
}

// RefreshTokens rotates a session: the presented refresh token is revoked and
// a new pair is issued. Every failure looks the same to the caller.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string, actor models.Actor) (*dto.TokenResponse, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		s.reject(ctx, actor, models.AuditActionTokenRefresh, "invalid_token", "")
		return nil, ErrInvalidRefreshToken
	}
	userID, _ := claims.UserID()
	actor.UserID = userID

	session, err := s.sessions.GetByTokenHash(hashToken(refreshToken))
	reason := ""
	switch {
	case err != nil:
		reason = "token_not_found"
	case !session.UsableAt(s.now()):
		reason = "token_expired_or_revoked"
	case session.UserID != userID:
		reason = "token_user_mismatch"
	}
	if reason != "" {
		s.reject(ctx, actor, models.AuditActionTokenRefresh, reason, "")
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.IsLocked() {
		s.reject(ctx, actor, models.AuditActionTokenRefresh, "account_locked", "")
		return nil, ErrAccountLocked
	}

	if err := s.sessions.Revoke(session.ID); err != nil {
		s.logger.WarnContext(ctx, "failed to revoke rotated session",
			"error", err, "user_id", user.ID, "session_id", session.ID)
	}

	resp, err := s.openSession(user, actor)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, models.AuditActionTokenRefresh, resourceUser, user.ID.String(), nil)
	s.count("token_refresh")
	return resp, nil
}

// Logout revokes the access token by its jti and closes every session of its
// user. A token that no longer parses is already unusable, so it is ignored.
func (s *AuthService) Logout(ctx context.Context, accessToken string, actor models.Actor) error {
	claims, err := s.tokens.ParseAccessToken(accessToken)
	if err != nil {
		return nil
	}
	userID, _ := claims.UserID()
	actor.UserID = userID

	revoked := &models.BlacklistedToken{
		JTI:           claims.ID,
		UserID:        userID,
		ExpiresAt:     claims.Expiry(),
		BlacklistedAt: s.now(),
	}
	if err := s.revocations.Create(revoked); err != nil {
		s.logger.ErrorContext(ctx, "failed to blacklist token", "error", err, "jti", claims.ID, "user_id", userID)
	}
	if err := s.sessions.RevokeAllForUser(userID); err != nil {
		s.logger.WarnContext(ctx, "failed to revoke sessions", "error", err, "user_id", userID)
	}

	s.audit.Record(ctx, actor, models.AuditActionLogout, resourceUser, userID.String(), nil)
	s.count("logout")
	return nil
}

func (s *AuthService) GetProfile(userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, err
}

// openSession issues an access/refresh pair and persists the refresh token hash
// together with the client that requested it.
func (s *AuthService) openSession(user *models.User, actor models.Actor) (*dto.TokenResponse, error) {
	access, accessExpiry, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, refreshExpiry, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	session := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refresh),
		ExpiresAt: refreshExpiry,
		IPAddress: actor.IPAddress,
		UserAgent: actor.UserAgent,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresAt:    accessExpiry,
	}, nil
}

func (s *AuthService) recordFailedAttempt(ctx context.Context, user *models.User, actor models.Actor) {
	locked := user.RegisterFailedLogin(s.now())
	if err := s.users.UpdateFailedLoginAttempts(user); err != nil {
		s.logger.ErrorContext(ctx, "failed to update login attempts", "error", err, "user_id", user.ID)
	}
	if locked {
		s.audit.Record(ctx, actor, models.AuditActionAccountLocked, resourceUser, user.ID.String(), nil)
	}
}

// reject audits a refused authentication attempt.
func (s *AuthService) reject(ctx context.Context, actor models.Actor, action, reason, email string) {
	meta := models.Metadata{"reason": reason}
	if email != "" {
		meta["email"] = email
	}
	resourceID := ""
	if actor.UserID != uuid.Nil {
		resourceID = actor.UserID.String()
	}
	s.audit.Record(ctx, actor, action, resourceUser, resourceID, meta)
}

func (s *AuthService) count(event string) {
	s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": event})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
