package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"splittab/internal/calculator"
	"splittab/internal/models"
)

// CreateExpense validates the input, resolves the payer and every
// participant, and persists the expense. Validation failures surface
// before anything is written; no partial records.
func (s *Service) CreateExpense(ctx context.Context, input models.CreateExpenseInput) (*models.Expense, error) {
	amount, err := validAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description must not be empty", models.ErrInvalidDescription)
	}

	payer, err := s.resolveUser(ctx, "payer", input.Payer)
	if err != nil {
		return nil, err
	}

	if len(input.ParticipantIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one participant is required", models.ErrInvalidParticipantSet)
	}
	participants := make([]models.User, 0, len(input.ParticipantIDs))
	seen := make(map[int64]bool, len(input.ParticipantIDs))
	for _, id := range input.ParticipantIDs {
		if seen[id] {
			return nil, fmt.Errorf("%w: participant %d listed twice", models.ErrInvalidParticipantSet, id)
		}
		seen[id] = true

		user, err := s.resolveUser(ctx, "participant", models.RefByID(id))
		if err != nil {
			return nil, err
		}
		participants = append(participants, *user)
	}

	expense := &models.Expense{
		Description:  description,
		Amount:       amount,
		Date:         input.Date,
		PayerID:      payer.ID,
		Payer:        *payer,
		Participants: participants,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.ErrorContext(ctx, "failed to persist expense",
			"description", expense.Description,
			"payer_id", expense.PayerID,
			"error", err,
		)
		return nil, storeErr(err)
	}

	slog.InfoContext(ctx, "expense created",
		"expense_id", expense.ID,
		"amount", expense.Amount,
		"payer_id", expense.PayerID,
		"participants", len(expense.Participants),
	)
	return expense, nil
}

// ListExpenses returns all expenses, newest first.
func (s *Service) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	expenses, err := s.store.GetAllExpenses(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return expenses, nil
}

// GetExpenseDetail returns one expense together with the equal share each
// participant owes, rounded to cents for display.
func (s *Service) GetExpenseDetail(ctx context.Context, id int64) (*models.ExpenseDetail, error) {
	expense, err := s.store.GetExpenseByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}

	share, err := calculator.ShareOf(*expense)
	if err != nil {
		// A persisted expense without participants means the write-path
		// invariant was broken; surface it, never divide by zero.
		return nil, fmt.Errorf("expense %d: %w", id, err)
	}

	return &models.ExpenseDetail{
		Expense:             *expense,
		SharePerParticipant: share.Round(2),
	}, nil
}

// validAmount checks that an amount is positive and normalizes it to cents
// precision, rounding half-up on the third decimal.
func validAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return amount, fmt.Errorf("%w: amount must be greater than zero", models.ErrInvalidAmount)
	}
	rounded := amount.Round(2)
	if !rounded.IsPositive() {
		return amount, fmt.Errorf("%w: amount rounds to zero", models.ErrInvalidAmount)
	}
	return rounded, nil
}
