package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"splittab/internal/models"
)

func users(names ...string) []models.User {
	us := make([]models.User, len(names))
	for i, n := range names {
		us[i] = models.User{ID: int64(i + 1), Name: n}
	}
	return us
}

func TestShareOf(t *testing.T) {
	tests := []struct {
		name         string
		amount       string
		participants []models.User
		want         string
		wantErr      error
	}{
		{
			name:         "coffee split two ways",
			amount:       "3.50",
			participants: users("Alice", "Bob"),
			want:         "1.75",
		},
		{
			name:         "single participant owes everything",
			amount:       "42.00",
			participants: users("Alice"),
			want:         "42.00",
		},
		{
			name:         "three-way split keeps precision",
			amount:       "100",
			participants: users("Alice", "Bob", "Charlie"),
			want:         "33.3333333333333333",
		},
		{
			name:         "no participants is a data integrity violation",
			amount:       "10.00",
			participants: nil,
			wantErr:      models.ErrInvalidParticipantSet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := models.Expense{
				Amount:       decimal.RequireFromString(tt.amount),
				Participants: tt.participants,
			}
			share, err := ShareOf(e)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ShareOf() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ShareOf() unexpected error: %v", err)
			}
			if want := decimal.RequireFromString(tt.want); !share.Equal(want) {
				t.Errorf("ShareOf() = %s, want %s", share, want)
			}
		})
	}
}

// The shares of an expense must add back up to its amount within one cent
// per participant once rounded for display.
func TestShareOf_SumWithinRoundingTolerance(t *testing.T) {
	amounts := []string{"100", "0.01", "3.50", "99.99", "10"}
	for _, amt := range amounts {
		for n := 1; n <= 7; n++ {
			e := models.Expense{
				Amount:       decimal.RequireFromString(amt),
				Participants: users(make([]string, n)...),
			}
			share, err := ShareOf(e)
			if err != nil {
				t.Fatalf("ShareOf(%s/%d) error: %v", amt, n, err)
			}

			// Shares are computed at 16-decimal division precision, so
			// their sum reconstructs the amount up to that precision
			// (100/3 cannot sum back exactly).
			sum := share.Mul(decimal.NewFromInt(int64(n)))
			if sum.Sub(e.Amount).Abs().GreaterThan(decimal.New(1, -14)) {
				t.Errorf("amount %s, %d participants: shares sum to %s", amt, n, sum)
			}

			// Display-rounded shares stay within a cent per participant.
			roundedSum := share.Round(2).Mul(decimal.NewFromInt(int64(n)))
			tolerance := decimal.New(int64(n), -2)
			if roundedSum.Sub(e.Amount).Abs().GreaterThan(tolerance) {
				t.Errorf("amount %s, %d participants: rounded shares sum to %s, off by more than %s",
					amt, n, roundedSum, tolerance)
			}
		}
	}
}

func TestShareOfTransfer(t *testing.T) {
	tr := models.Transfer{
		Amount: decimal.RequireFromString("1.75"),
		Source: models.User{ID: 2, Name: "Bob"},
		Target: models.User{ID: 1, Name: "Alice"},
	}
	if got := ShareOfTransfer(tr); !got.Equal(tr.Amount) {
		t.Errorf("ShareOfTransfer() = %s, want %s", got, tr.Amount)
	}
}
