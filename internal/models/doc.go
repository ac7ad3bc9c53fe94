// Package models defines the core domain models for splittab.
//
// # Models
//
//   - User: A person who can pay, owe, or transfer money
//   - Expense: A shared cost paid by one user and owed by a set of participants
//   - Transfer: A direct payment from one user to another
//   - Transaction: The unified read-only view merging expenses and transfers
//
// Expenses and transfers are the two persisted record types. Transactions
// are derived on every read and never stored: recomputing the feed from the
// same rows always yields the same result.
//
// # Design Principles
//
//  1. **Positive money only**: amounts are validated to be > 0 before any
//     record is persisted, so the feed can never show a zero or negative
//     amount.
//  2. **Resolved references**: loaded records carry their users inline
//     (payer, participants, source, target). Handlers and calculators never
//     chase ids.
//  3. **Decimal arithmetic**: amounts are shopspring decimals. Division
//     keeps full precision internally; rounding to cents happens only at
//     the API boundary.
package models

import "github.com/shopspring/decimal"

func init() {
	// API clients expect amounts as plain JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
