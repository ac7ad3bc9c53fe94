package calculator

import (
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"splittab/internal/models"
)

var (
	alice = models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	bob   = models.User{ID: 2, Name: "Bob", Email: "bob@example.com"}
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func expense(id int64, amount string, date time.Time) models.Expense {
	return models.Expense{
		ID:           id,
		Description:  "Groceries",
		Amount:       decimal.RequireFromString(amount),
		Date:         date,
		PayerID:      alice.ID,
		Payer:        alice,
		Participants: []models.User{alice, bob},
	}
}

func transfer(id int64, amount string, date time.Time) models.Transfer {
	return models.Transfer{
		ID:       id,
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
		SourceID: bob.ID,
		TargetID: alice.ID,
		Source:   bob,
		Target:   alice,
	}
}

func TestBuildFeed_Total(t *testing.T) {
	expenses := []models.Expense{expense(1, "10.00", day(1)), expense(2, "20.00", day(2))}
	transfers := []models.Transfer{transfer(1, "5.00", day(3))}

	feed := BuildFeed(expenses, transfers)
	if len(feed) != len(expenses)+len(transfers) {
		t.Fatalf("feed length = %d, want %d", len(feed), len(expenses)+len(transfers))
	}
}

func TestBuildFeed_SortedByDateDescending(t *testing.T) {
	// One expense dated Jan 15, one transfer dated Jan 16: transfer first.
	feed := BuildFeed(
		[]models.Expense{expense(1, "10.00", day(15))},
		[]models.Transfer{transfer(1, "5.00", day(16))},
	)

	if feed[0].Kind != models.KindTransfer {
		t.Errorf("feed[0].Kind = %s, want transfer", feed[0].Kind)
	}
	for i := 0; i < len(feed)-1; i++ {
		if feed[i].Date.Before(feed[i+1].Date) {
			t.Errorf("feed not sorted descending at %d: %s before %s", i, feed[i].Date, feed[i+1].Date)
		}
	}
}

func TestBuildFeed_IDTagging(t *testing.T) {
	feed := BuildFeed(
		[]models.Expense{expense(7, "10.00", day(1))},
		[]models.Transfer{transfer(7, "5.00", day(2))},
	)

	idPattern := regexp.MustCompile(`^(expense|transfer)-\d+$`)
	seen := make(map[string]bool)
	for _, tx := range feed {
		if !idPattern.MatchString(tx.ID) {
			t.Errorf("transaction id %q does not match pattern", tx.ID)
		}
		if seen[tx.ID] {
			t.Errorf("duplicate transaction id %q", tx.ID)
		}
		seen[tx.ID] = true
	}

	// Same numeric id on both source types must not collide.
	if !seen["expense-7"] || !seen["transfer-7"] {
		t.Errorf("expected ids expense-7 and transfer-7, got %v", seen)
	}
}

func TestBuildFeed_TransferShape(t *testing.T) {
	tr := transfer(1, "1.75", day(1))
	tx := FromTransfer(tr)

	if tx.Kind != models.KindTransfer {
		t.Errorf("Kind = %s, want transfer", tx.Kind)
	}
	if tx.Payer.ID != bob.ID {
		t.Errorf("Payer = %v, want source %v", tx.Payer, bob)
	}
	if len(tx.Participants) != 1 || tx.Participants[0].ID != alice.ID {
		t.Errorf("Participants = %v, want exactly [target]", tx.Participants)
	}
	if !tx.Amount.Equal(tr.Amount) {
		t.Errorf("Amount = %s, want %s", tx.Amount, tr.Amount)
	}
}

func TestBuildFeed_StableOnEqualDates(t *testing.T) {
	// Three records sharing one timestamp: repeated calls over the same
	// input must keep the same relative order.
	sameDay := day(10)
	expenses := []models.Expense{expense(1, "1.00", sameDay), expense(2, "2.00", sameDay)}
	transfers := []models.Transfer{transfer(1, "3.00", sameDay)}

	first := BuildFeed(expenses, transfers)
	for i := 0; i < 5; i++ {
		again := BuildFeed(expenses, transfers)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("feed order changed between identical calls:\nfirst: %v\nagain: %v", first, again)
		}
	}
}
