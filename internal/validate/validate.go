// ABOUTME: Client-side form validation for login, registration, transactions
// ABOUTME: Struct tags via go-playground/validator plus cross-field rules

package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/milhasdev/milhas-cli/internal/api"
)

var v = validator.New()

// LoginForm mirrors the login screen's required fields.
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// RegisterForm mirrors the registration screen. Password confirmation must
// match and the password has a minimum length of 6.
type RegisterForm struct {
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	Username        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// WalletForm validates wallet create/update input.
type WalletForm struct {
	WalletName string `validate:"required,max=100"`
}

// ProgramForm validates loyalty program creation.
type ProgramForm struct {
	Name         string `validate:"required,max=100"`
	CurrencyType int    `validate:"required,oneof=1 2"`
}

// AccountForm validates loyalty account creation inside a wallet.
type AccountForm struct {
	Program        int     `validate:"required,gt=0"`
	AccountNumber  string  `validate:"required,max=100"`
	Name           string  `validate:"required,max=100"`
	CurrentBalance float64 `validate:"gte=0"`
	AverageCost    float64 `validate:"gte=0"`
}

// TransactionForm validates transaction creation before dispatch. Which of
// origin/destination is required depends on the transaction type; see Check.
type TransactionForm struct {
	Type        int      `validate:"required,min=1,max=6"`
	Amount      float64  `validate:"required,gt=0"`
	Cost        *float64 `validate:"omitempty,gte=0"`
	Bonus       *float64 `validate:"omitempty,gte=0"`
	Origin      *int
	Destination *int
	Date        string `validate:"required"`
}

// Check validates f's tagged fields and then the type-dependent account
// rules, the same rules the server enforces. Returns nil when the form can
// be submitted.
func (f TransactionForm) Check() error {
	if err := Struct(f); err != nil {
		return err
	}

	switch f.Type {
	case api.TxManualCredit:
		if f.Destination == nil {
			return errors.New("a destination account is required for a manual credit")
		}
		if f.Origin != nil {
			return errors.New("a manual credit must not have an origin account")
		}
	case api.TxTransfer:
		if f.Origin == nil || f.Destination == nil {
			return errors.New("origin and destination accounts are required for a transfer")
		}
		if *f.Origin == *f.Destination {
			return errors.New("origin and destination accounts must differ")
		}
	case api.TxRedemption, api.TxSale, api.TxExpiration:
		if f.Origin == nil {
			return fmt.Errorf("an origin account is required for a %s", strings.ToLower(api.TransactionTypeLabel(f.Type)))
		}
		if f.Destination != nil {
			return fmt.Errorf("a %s must not have a destination account", strings.ToLower(api.TransactionTypeLabel(f.Type)))
		}
	case api.TxAdjustment:
		if f.Origin == nil && f.Destination == nil {
			return errors.New("an adjustment needs an origin or a destination account")
		}
		if f.Origin != nil && f.Destination != nil {
			return errors.New("an adjustment takes exactly one account, origin or destination")
		}
	}
	return nil
}

// Struct validates any tagged struct, converting validator errors into
// human-readable, field-prefixed messages.
func Struct(i interface{}) error {
	err := v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return err
}

// fieldError converts a single ValidationError into a readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
