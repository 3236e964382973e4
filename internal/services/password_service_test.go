package services

import (
	"strings"
	"testing"

	"group-ledger/internal/config"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func strictPolicy() config.SecurityConfig {
	return config.SecurityConfig{
		BCryptCost:          bcrypt.MinCost,
		PasswordMinLength:   12,
		RequireUppercase:    true,
		RequireLowercase:    true,
		RequireNumbers:      true,
		RequireSpecialChars: true,
	}
}

func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService(strictPolicy())
}

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestValidatePassword_ValidPassword() {
	s.NoError(s.service.ValidatePassword("SecurePass123!@#"))
	s.NoError(s.service.ValidatePassword("Secure Pass123!"))
	s.NoError(s.service.ValidatePassword("Aa1!Aa1!Aa1!"))
}

func (s *PasswordServiceTestSuite) TestValidatePassword_Rules() {
	cases := map[string]struct {
		password string
		want     error
	}{
		"empty":             {password: "", want: ErrPasswordEmpty},
		"too short":         {password: "Short1!", want: ErrPasswordTooShort},
		"too long":          {password: strings.Repeat("Aa1!", 19), want: ErrPasswordTooLong},
		"missing uppercase": {password: "securepass123!@#", want: ErrPasswordNoUppercase},
		"missing lowercase": {password: "SECUREPASS123!@#", want: ErrPasswordNoLowercase},
		"missing number":    {password: "SecurePass!@#", want: ErrPasswordNoNumber},
		"missing special":   {password: "SecurePass123", want: ErrPasswordNoSpecial},
	}

	for name, tc := range cases {
		s.Run(name, func() {
			err := s.service.ValidatePassword(tc.password)
			s.ErrorIs(err, tc.want)
			s.ErrorIs(err, ErrWeakPassword)
		})
	}
}

func (s *PasswordServiceTestSuite) TestValidatePassword_RelaxedPolicy() {
	service := NewPasswordService(config.SecurityConfig{PasswordMinLength: 8})

	s.NoError(service.ValidatePassword("lowercaseonly"))
	s.ErrorIs(service.ValidatePassword("short"), ErrPasswordTooShort)
}

func (s *PasswordServiceTestSuite) TestHashPassword() {
	hash, err := s.service.HashPassword("SecurePass123!@#")
	s.NoError(err)
	s.NotEqual("SecurePass123!@#", hash)
	s.True(strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$"))
}

func (s *PasswordServiceTestSuite) TestHashPassword_InvalidPassword() {
	hash, err := s.service.HashPassword("short")
	s.Error(err)
	s.Empty(hash)
}

func (s *PasswordServiceTestSuite) TestComparePassword() {
	hash, err := s.service.HashPassword("SecurePass123!@#")
	s.Require().NoError(err)

	s.True(s.service.ComparePassword("SecurePass123!@#", hash))
	s.False(s.service.ComparePassword("WrongPass123!@#", hash))
	s.False(s.service.ComparePassword("", hash))
	s.False(s.service.ComparePassword("SecurePass123!@#", "not-a-hash"))
}
