package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes the origin of a feed entry.
type TransactionKind string

const (
	KindExpense  TransactionKind = "expense"
	KindTransfer TransactionKind = "transfer"
)

// Transaction is the unified, derived view over expenses and transfers.
// It is constructed on demand per read request and never persisted.
//
// The composite ID is "expense-{id}" or "transfer-{id}", which keeps ids
// collision-free across the two source types and makes the origin
// recoverable. For an expense the participants are its full participant
// set; for a transfer the participants are exactly [target].
type Transaction struct {
	ID           string          `json:"id"`
	Kind         TransactionKind `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	Payer        User            `json:"payer"`
	Participants []User          `json:"participants"`
}
