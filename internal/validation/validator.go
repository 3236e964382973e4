package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"group-ledger/internal/models"
)

// Validator is the request validator with the ledger's custom tags. Field
// names in errors are the json names.
type Validator struct {
	validate *validator.Validate
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// Struct is Validate under the go-playground name.
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// Default returns the process-wide validator. Building one compiles every
// rule, so it is done once.
var Default = sync.OnceValue(NewValidator)

var inviteKeyPattern = regexp.MustCompile(`^[0-9A-Z]{8}$`)

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimals are validated through their string form
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("positive_money", validatePositiveMoney)
	_ = v.RegisterValidation("percent", validatePercent)
	_ = v.RegisterValidation("group_role", validateGroupRole)
	_ = v.RegisterValidation("member_role", validateMemberRole)
	_ = v.RegisterValidation("frequency", validateFrequency)
	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("entry_type", validateEntryType)
	_ = v.RegisterValidation("invite_key", validateInviteKey)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func parseDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// validateMoney accepts non-negative amounts with at most 2 decimal places
func validateMoney(fl validator.FieldLevel) bool {
	d, ok := parseDecimal(fl)
	if !ok {
		return false
	}
	return !d.IsNegative() && d.Equal(d.Truncate(2))
}

// validatePositiveMoney is money that must also be greater than 0
func validatePositiveMoney(fl validator.FieldLevel) bool {
	d, ok := parseDecimal(fl)
	if !ok || !d.IsPositive() {
		return false
	}
	return validateMoney(fl)
}

// validatePercent accepts values between 0 and 100 inclusive
func validatePercent(fl validator.FieldLevel) bool {
	d, ok := parseDecimal(fl)
	if !ok {
		return false
	}
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(100))
}

func validateGroupRole(fl validator.FieldLevel) bool {
	_, err := models.ParseGroupRole(fl.Field().String())
	return err == nil
}

// validateMemberRole is a group role that can be assigned directly (not owner)
func validateMemberRole(fl validator.FieldLevel) bool {
	role, err := models.ParseGroupRole(fl.Field().String())
	return err == nil && role != models.GroupRoleOwner
}

func validateFrequency(fl validator.FieldLevel) bool {
	_, err := models.ParseFrequency(fl.Field().String())
	return err == nil
}

func validateCurrency(fl validator.FieldLevel) bool {
	return models.IsValidCurrency(strings.ToUpper(fl.Field().String()))
}

func validateEntryType(fl validator.FieldLevel) bool {
	return models.IsValidEntryType(strings.ToLower(fl.Field().String()))
}

func validateInviteKey(fl validator.FieldLevel) bool {
	return inviteKeyPattern.MatchString(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
}
