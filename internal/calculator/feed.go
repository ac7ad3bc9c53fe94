package calculator

import (
	"fmt"
	"sort"

	"splittab/internal/models"
)

// BuildFeed merges expenses and transfers into the unified transaction
// feed, sorted by date descending (most recent first).
//
// The result is total: every input record appears exactly once. The sort is
// stable and keyed on date only, so records sharing a timestamp keep their
// input order and repeated calls over the same rows yield identical output.
func BuildFeed(expenses []models.Expense, transfers []models.Transfer) []models.Transaction {
	feed := make([]models.Transaction, 0, len(expenses)+len(transfers))
	for _, e := range expenses {
		feed = append(feed, FromExpense(e))
	}
	for _, t := range transfers {
		feed = append(feed, FromTransfer(t))
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date.After(feed[j].Date)
	})

	return feed
}

// FromExpense maps an expense to its feed representation.
func FromExpense(e models.Expense) models.Transaction {
	return models.Transaction{
		ID:           fmt.Sprintf("expense-%d", e.ID),
		Kind:         models.KindExpense,
		Amount:       e.Amount,
		Description:  e.Description,
		Date:         e.Date,
		Payer:        e.Payer,
		Participants: e.Participants,
	}
}

// FromTransfer maps a transfer to its feed representation. The payer is the
// source and the participant list is exactly the target.
func FromTransfer(t models.Transfer) models.Transaction {
	return models.Transaction{
		ID:           fmt.Sprintf("transfer-%d", t.ID),
		Kind:         models.KindTransfer,
		Amount:       t.Amount,
		Description:  t.Description,
		Date:         t.Date,
		Payer:        t.Source,
		Participants: []models.User{t.Target},
	}
}
