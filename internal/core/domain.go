package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Transaction is one recorded expense. Amounts are exact decimals and the
	// date is the moment the expense occurred, not when it was recorded.
	Transaction struct {
		ID          int64           `json:"id"`
		Amount      decimal.Decimal `json:"amount"`
		Description string          `json:"description"`
		Category    Category        `json:"category"`
		Date        time.Time       `json:"date"`
	}

	// Draft holds the caller-supplied fields for a new transaction. ID
	// assignment and date defaulting happen in the expense service.
	Draft struct {
		Amount      decimal.Decimal
		Description string
		Category    Category
		Date        time.Time // zero means "now"
	}
)

// ErrInvalidTransaction wraps every validation failure so callers can match
// the whole family with errors.Is.
var (
	ErrInvalidTransaction = errors.New("invalid transaction")

	ErrInvalidAmount    = fmt.Errorf("%w: amount must be a non-negative decimal", ErrInvalidTransaction)
	ErrEmptyDescription = fmt.Errorf("%w: empty description", ErrInvalidTransaction)
	ErrUnknownCategory  = fmt.Errorf("%w: unknown category", ErrInvalidTransaction)
)

func (d Draft) Validate() error {
	if d.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(d.Description) == "" {
		return ErrEmptyDescription
	}
	if !d.Category.Valid() {
		return ErrUnknownCategory
	}
	return nil
}
