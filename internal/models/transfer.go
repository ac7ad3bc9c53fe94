package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer represents a direct payment from one user (source) to another
// (target), typically to settle up after shared expenses.
//
// Invariants enforced at creation time:
//   - Amount > 0
//   - Source and target exist and differ
//
// Unlike expenses, the description is optional: a transfer is pure money
// movement and needs no justification.
type Transfer struct {
	// ID is the unique numeric identifier assigned by the store.
	ID int64 `json:"id"`

	// Amount is the transferred sum, always positive.
	Amount decimal.Decimal `json:"amount"`

	// Description is optional free text, may be empty.
	Description string `json:"description,omitempty"`

	// Date is when the transfer happened.
	Date time.Time `json:"date"`

	// SourceID references the paying user.
	SourceID int64 `json:"sourceId"`

	// TargetID references the receiving user.
	TargetID int64 `json:"targetId"`

	// Source is the resolved paying user.
	Source User `json:"source"`

	// Target is the resolved receiving user.
	Target User `json:"target"`
}

// CreateTransferInput is the validated input shape for creating a transfer.
// Source and target may each reference a user by id or by name.
type CreateTransferInput struct {
	Amount      decimal.Decimal
	Description string
	Date        time.Time // zero means "now"
	Source      UserRef
	Target      UserRef
}
