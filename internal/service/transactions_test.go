package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splittab/internal/models"
)

func TestListTransactions(t *testing.T) {
	svc, alice, bob, charlie := newTestService(t)
	ctx := context.Background()

	// One expense dated Jan 15, one transfer dated Jan 16.
	_, err := svc.CreateExpense(ctx, models.CreateExpenseInput{
		Description:    "Movie tickets",
		Amount:         amt("35.00"),
		Date:           jan(15),
		Payer:          models.RefByID(bob.ID),
		ParticipantIDs: []int64{alice.ID, bob.ID},
	})
	require.NoError(t, err)

	_, err = svc.CreateTransfer(ctx, models.CreateTransferInput{
		Amount: amt("1.75"),
		Date:   jan(16),
		Source: models.RefByID(bob.ID),
		Target: models.RefByID(alice.ID),
	})
	require.NoError(t, err)

	_, err = svc.CreateExpense(ctx, models.CreateExpenseInput{
		Description:    "Groceries for dinner party",
		Amount:         amt("85.50"),
		Date:           jan(17),
		Payer:          models.RefByID(alice.ID),
		ParticipantIDs: []int64{alice.ID, bob.ID, charlie.ID},
	})
	require.NoError(t, err)

	feed, err := svc.ListTransactions(ctx)
	require.NoError(t, err)

	// Total: every persisted record appears exactly once.
	require.Len(t, feed, 3)

	// Date descending: groceries (17th), transfer (16th), movies (15th).
	assert.Equal(t, "Groceries for dinner party", feed[0].Description)
	assert.Equal(t, models.KindTransfer, feed[1].Kind)
	assert.Equal(t, "Movie tickets", feed[2].Description)
	for i := 0; i < len(feed)-1; i++ {
		assert.False(t, feed[i].Date.Before(feed[i+1].Date), "feed out of order at %d", i)
	}

	// Ids are tagged and unique; transfer entries carry exactly the target.
	idPattern := regexp.MustCompile(`^(expense|transfer)-\d+$`)
	seen := make(map[string]bool)
	for _, tx := range feed {
		assert.Regexp(t, idPattern, tx.ID)
		assert.False(t, seen[tx.ID], "duplicate id %s", tx.ID)
		seen[tx.ID] = true
		assert.True(t, tx.Amount.IsPositive())

		if tx.Kind == models.KindTransfer {
			require.Len(t, tx.Participants, 1)
			assert.Equal(t, alice.ID, tx.Participants[0].ID)
			assert.Equal(t, bob.ID, tx.Payer.ID)
		}
	}
}

func TestListTransactions_Empty(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	feed, err := svc.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestListTransactions_Idempotent(t *testing.T) {
	svc, alice, bob, _ := newTestService(t)
	ctx := context.Background()

	// Two records sharing one date exercise the stable tie-break.
	for _, desc := range []string{"First", "Second"} {
		_, err := svc.CreateExpense(ctx, models.CreateExpenseInput{
			Description:    desc,
			Amount:         amt("10.00"),
			Date:           jan(10),
			Payer:          models.RefByID(alice.ID),
			ParticipantIDs: []int64{alice.ID, bob.ID},
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateTransfer(ctx, models.CreateTransferInput{
		Amount: amt("5.00"),
		Date:   jan(10),
		Source: models.RefByID(bob.ID),
		Target: models.RefByID(alice.ID),
	})
	require.NoError(t, err)

	first, err := svc.ListTransactions(ctx)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := svc.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, again, len(first))
		for j := range first {
			assert.Equal(t, first[j].ID, again[j].ID, "order changed between calls at %d", j)
		}
	}
}
