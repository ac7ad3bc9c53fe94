package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a shared cost paid by one user on behalf of a set of
// participants. Each participant owes an equal share of the amount.
//
// Invariants enforced at creation time:
//   - Amount > 0
//   - Description is non-empty after trimming
//   - Participants is non-empty and every participant exists
//
// The payer need not be a participant (but commonly is).
type Expense struct {
	// ID is the unique numeric identifier assigned by the store.
	ID int64 `json:"id"`

	// Description is the human-readable reason for the cost.
	Description string `json:"description"`

	// Amount is the total cost, always positive.
	Amount decimal.Decimal `json:"amount"`

	// Date is when the expense occurred.
	Date time.Time `json:"date"`

	// PayerID references the paying user.
	PayerID int64 `json:"payerId"`

	// Payer is the resolved paying user.
	Payer User `json:"payer"`

	// Participants are the resolved users who owe a share. Never empty for
	// a persisted expense.
	Participants []User `json:"participants"`
}

// ExpenseDetail is an expense together with the equal share each
// participant owes, rounded to cents for display.
type ExpenseDetail struct {
	Expense

	// SharePerParticipant is Amount divided by the number of participants.
	SharePerParticipant decimal.Decimal `json:"sharePerParticipant"`
}

// CreateExpenseInput is the validated input shape for creating an expense.
// Payer may reference a user by id or by name; participants are always ids.
type CreateExpenseInput struct {
	Description    string
	Amount         decimal.Decimal
	Date           time.Time // zero means "now"
	Payer          UserRef
	ParticipantIDs []int64
}
