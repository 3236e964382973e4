package services

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"group-ledger/internal/config"
	"group-ledger/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenAudience is the only audience the API accepts
	TokenAudience = "group-ledger-api"

	clockSkewLeeway = 30 * time.Second
	bearerPrefix    = "bearer "
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrInvalidTokenType  = errors.New("invalid token type")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrInvalidAudience   = errors.New("invalid audience")
)

// TokenService issues and verifies RS256 JWTs for ledger users.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
	ttl        map[string]time.Duration
	parser     *jwt.Parser
	now        func() time.Time
}

func NewTokenService(jwtConfig *config.JWTConfig) TokenServiceInterface {
	return newTokenService(jwtConfig, time.Now)
}

func newTokenService(jwtConfig *config.JWTConfig, now func() time.Time) *TokenService {
	return &TokenService{
		privateKey: jwtConfig.PrivateKey,
		publicKey:  jwtConfig.PublicKey,
		issuer:     jwtConfig.Issuer,
		ttl: map[string]time.Duration{
			models.TokenKindAccess:  jwtConfig.AccessTokenDuration,
			models.TokenKindRefresh: jwtConfig.RefreshTokenDuration,
		},
		parser: jwt.NewParser(
			jwt.WithLeeway(clockSkewLeeway),
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithIssuer(jwtConfig.Issuer),
			jwt.WithAudience(TokenAudience),
			jwt.WithTimeFunc(now),
		),
		now: now,
	}
}

// IssueAccessToken signs a short-lived token carrying the user's email and
// platform role.
func (ts *TokenService) IssueAccessToken(user *models.User) (string, time.Time, error) {
	if user == nil {
		return "", time.Time{}, errors.New("user cannot be nil")
	}
	return ts.issue(user.ID, models.TokenKindAccess, func(c *models.Claims) {
		c.Email = user.Email
		c.Role = user.Role
	})
}

// IssueRefreshToken signs a long-lived token that can only be exchanged for
// new tokens.
func (ts *TokenService) IssueRefreshToken(userID uuid.UUID) (string, time.Time, error) {
	return ts.issue(userID, models.TokenKindRefresh, nil)
}

func (ts *TokenService) ParseAccessToken(tokenString string) (*models.Claims, error) {
	return ts.parse(tokenString, models.TokenKindAccess)
}

func (ts *TokenService) ParseRefreshToken(tokenString string) (*models.Claims, error) {
	return ts.parse(tokenString, models.TokenKindRefresh)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is case-insensitive.
func (ts *TokenService) BearerToken(authHeader string) (string, error) {
	if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}
	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}

func (ts *TokenService) issue(userID uuid.UUID, kind string, decorate func(*models.Claims)) (string, time.Time, error) {
	if userID == uuid.Nil {
		return "", time.Time{}, errors.New("user ID cannot be nil")
	}

	issuedAt := ts.now()
	expiresAt := issuedAt.Add(ts.ttl[kind])
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{TokenAudience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Kind: kind,
	}
	if decorate != nil {
		decorate(&claims)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.privateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign %s token: %w", kind, err)
	}
	return signed, expiresAt, nil
}

func (ts *TokenService) parse(tokenString, kind string) (*models.Claims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.Claims{}
	_, err := ts.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return ts.publicKey, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return nil, ErrInvalidIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return nil, ErrInvalidAudience
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Kind != kind {
		return nil, ErrInvalidTokenType
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: malformed subject", ErrInvalidToken)
	}
	return claims, nil
}
