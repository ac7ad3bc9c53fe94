package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"splittab/internal/models"
)

// CreateExpense persists an expense and its participant set in one
// transaction, populating expense.ID. The caller passes the expense with
// payer and participants already resolved; only ids are written here.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.Date.IsZero() {
		expense.Date = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO expenses (description, amount_cents, date, payer_id) VALUES (?, ?, ?, ?)",
		expense.Description, toCents(expense.Amount), expense.Date.Unix(), expense.PayerID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense id: %w", err)
	}
	expense.ID = id

	for _, p := range expense.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_participants (expense_id, user_id) VALUES (?, ?)",
			expense.ID, p.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetExpenseByID retrieves an expense with payer and participants resolved.
func (s *SQLiteStore) GetExpenseByID(ctx context.Context, id int64) (*models.Expense, error) {
	expense := &models.Expense{}
	var cents, date int64
	var payerBank sql.NullString

	err := s.db.QueryRowContext(ctx,
		`SELECT e.id, e.description, e.amount_cents, e.date, e.payer_id,
		        u.name, u.email, u.bank_account
		 FROM expenses e JOIN users u ON u.id = e.payer_id
		 WHERE e.id = ?`,
		id,
	).Scan(&expense.ID, &expense.Description, &cents, &date, &expense.PayerID,
		&expense.Payer.Name, &expense.Payer.Email, &payerBank)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	expense.Amount = fromCents(cents)
	expense.Date = time.Unix(date, 0).UTC()
	expense.Payer.ID = expense.PayerID
	if payerBank.Valid {
		expense.Payer.BankAccount = payerBank.String
	}

	participants, err := s.expenseParticipants(ctx, expense.ID)
	if err != nil {
		return nil, err
	}
	expense.Participants = participants

	return expense, nil
}

// GetAllExpenses retrieves all expenses with payer and participants
// resolved, ordered by date descending.
func (s *SQLiteStore) GetAllExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT e.id, e.description, e.amount_cents, e.date, e.payer_id,
		        u.name, u.email, u.bank_account
		 FROM expenses e JOIN users u ON u.id = e.payer_id
		 ORDER BY e.date DESC, e.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		var cents, date int64
		var payerBank sql.NullString
		if err := rows.Scan(&expense.ID, &expense.Description, &cents, &date, &expense.PayerID,
			&expense.Payer.Name, &expense.Payer.Email, &payerBank); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Amount = fromCents(cents)
		expense.Date = time.Unix(date, 0).UTC()
		expense.Payer.ID = expense.PayerID
		if payerBank.Valid {
			expense.Payer.BankAccount = payerBank.String
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for i := range expenses {
		participants, err := s.expenseParticipants(ctx, expenses[i].ID)
		if err != nil {
			return nil, err
		}
		expenses[i].Participants = participants
	}

	return expenses, nil
}

// expenseParticipants loads the resolved participant set of one expense,
// ordered by user id for deterministic output.
func (s *SQLiteStore) expenseParticipants(ctx context.Context, expenseID int64) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT u.id, u.name, u.email, u.bank_account
		 FROM expense_participants ep JOIN users u ON u.id = ep.user_id
		 WHERE ep.expense_id = ?
		 ORDER BY u.id`,
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []models.User
	for rows.Next() {
		var user models.User
		var bankAccount sql.NullString
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &bankAccount); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		if bankAccount.Valid {
			user.BankAccount = bankAccount.String
		}
		participants = append(participants, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}
