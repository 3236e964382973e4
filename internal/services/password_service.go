package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"group-ledger/internal/config"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultBCryptCost = 12
	MinPasswordLength = 12
	MaxPasswordLength = 72 // bcrypt ignores anything longer
)

// ErrWeakPassword is wrapped by every password policy violation.
var ErrWeakPassword = errors.New("password does not meet the policy")

var (
	ErrPasswordEmpty       = fmt.Errorf("%w: password is empty", ErrWeakPassword)
	ErrPasswordTooShort    = fmt.Errorf("%w: password is too short", ErrWeakPassword)
	ErrPasswordTooLong     = fmt.Errorf("%w: password exceeds %d bytes", ErrWeakPassword, MaxPasswordLength)
	ErrPasswordNoUppercase = fmt.Errorf("%w: an uppercase letter is required", ErrWeakPassword)
	ErrPasswordNoLowercase = fmt.Errorf("%w: a lowercase letter is required", ErrWeakPassword)
	ErrPasswordNoNumber    = fmt.Errorf("%w: a digit is required", ErrWeakPassword)
	ErrPasswordNoSpecial   = fmt.Errorf("%w: a symbol is required", ErrWeakPassword)
)

const passwordSymbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"

type characterRule struct {
	enabled func(config.SecurityConfig) bool
	matches func(rune) bool
	err     error
}

var characterRules = []characterRule{
	{func(p config.SecurityConfig) bool { return p.RequireUppercase }, unicode.IsUpper, ErrPasswordNoUppercase},
	{func(p config.SecurityConfig) bool { return p.RequireLowercase }, unicode.IsLower, ErrPasswordNoLowercase},
	{func(p config.SecurityConfig) bool { return p.RequireNumbers }, unicode.IsDigit, ErrPasswordNoNumber},
	{func(p config.SecurityConfig) bool { return p.RequireSpecialChars }, func(r rune) bool { return strings.ContainsRune(passwordSymbols, r) }, ErrPasswordNoSpecial},
}

// PasswordService enforces the configured password policy and hashes with
// bcrypt.
type PasswordService struct {
	cost   int
	policy config.SecurityConfig
}

func NewPasswordService(policy config.SecurityConfig) PasswordServiceInterface {
	cost := policy.BCryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBCryptCost
	}
	if policy.PasswordMinLength <= 0 {
		policy.PasswordMinLength = MinPasswordLength
	}
	return &PasswordService{cost: cost, policy: policy}
}

// ValidatePassword returns the first policy rule the password breaks.
func (ps *PasswordService) ValidatePassword(password string) error {
	switch {
	case password == "":
		return ErrPasswordEmpty
	case len(password) < ps.policy.PasswordMinLength:
		return fmt.Errorf("%w (minimum %d)", ErrPasswordTooShort, ps.policy.PasswordMinLength)
	case len(password) > MaxPasswordLength:
		return ErrPasswordTooLong
	}
	for _, rule := range characterRules {
		if rule.enabled(ps.policy) && !strings.ContainsFunc(password, rule.matches) {
			return rule.err
		}
	}
	return nil
}

func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePassword(password); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), ps.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

func (ps *PasswordService) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
