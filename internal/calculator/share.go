// Package calculator holds the pure domain math: merging the two record
// types into one feed and computing per-participant shares. Nothing in this
// package touches storage, so every function is safe to call concurrently.
package calculator

import (
	"github.com/shopspring/decimal"

	"splittab/internal/models"
)

// ShareOf computes the equal share each participant owes for an expense:
// amount / len(participants), at full decimal precision. Rounding to cents
// is a presentation concern and is left to the caller.
//
// An expense without participants is a data integrity violation; the
// calculator fails rather than dividing by zero or falling back to
// "participants = {payer}".
func ShareOf(e models.Expense) (decimal.Decimal, error) {
	if len(e.Participants) == 0 {
		return decimal.Decimal{}, models.ErrInvalidParticipantSet
	}
	return e.Amount.Div(decimal.NewFromInt(int64(len(e.Participants)))), nil
}

// ShareOfTransfer is the trivial counterpart for transfers: the full amount
// is attributed to the single target, no division occurs.
func ShareOfTransfer(t models.Transfer) decimal.Decimal {
	return t.Amount
}
