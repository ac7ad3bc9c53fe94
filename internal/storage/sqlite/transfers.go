package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"splittab/internal/models"
)

const transferColumns = `
	t.id, t.amount_cents, t.description, t.date, t.source_id, t.target_id,
	su.name, su.email, su.bank_account,
	tu.name, tu.email, tu.bank_account`

const transferJoins = `
	FROM transfers t
	JOIN users su ON su.id = t.source_id
	JOIN users tu ON tu.id = t.target_id`

// CreateTransfer persists a transfer, populating transfer.ID. Source and
// target are already resolved by the caller; only ids are written here.
func (s *SQLiteStore) CreateTransfer(ctx context.Context, transfer *models.Transfer) error {
	if transfer.Date.IsZero() {
		transfer.Date = time.Now().UTC()
	}

	var description interface{}
	if transfer.Description != "" {
		description = transfer.Description
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO transfers (amount_cents, description, date, source_id, target_id) VALUES (?, ?, ?, ?, ?)",
		toCents(transfer.Amount), description, transfer.Date.Unix(), transfer.SourceID, transfer.TargetID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transfer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read transfer id: %w", err)
	}
	transfer.ID = id

	return nil
}

// GetTransferByID retrieves a transfer with source and target resolved.
func (s *SQLiteStore) GetTransferByID(ctx context.Context, id int64) (*models.Transfer, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT"+transferColumns+transferJoins+" WHERE t.id = ?",
		id,
	)

	transfer, err := scanTransfer(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transfer %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}

	return transfer, nil
}

// GetAllTransfers retrieves all transfers with source and target resolved,
// ordered by date descending.
func (s *SQLiteStore) GetAllTransfers(ctx context.Context) ([]models.Transfer, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT"+transferColumns+transferJoins+" ORDER BY t.date DESC, t.id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	defer rows.Close()

	var transfers []models.Transfer
	for rows.Next() {
		transfer, err := scanTransfer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}
		transfers = append(transfers, *transfer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transfers: %w", err)
	}

	return transfers, nil
}

// scanTransfer reads one transfer row, resolving the nullable description
// and bank account columns and the stored cents/unix representations.
func scanTransfer(scan func(dest ...any) error) (*models.Transfer, error) {
	transfer := &models.Transfer{}
	var cents, date int64
	var description, sourceBank, targetBank sql.NullString

	err := scan(&transfer.ID, &cents, &description, &date, &transfer.SourceID, &transfer.TargetID,
		&transfer.Source.Name, &transfer.Source.Email, &sourceBank,
		&transfer.Target.Name, &transfer.Target.Email, &targetBank)
	if err != nil {
		return nil, err
	}

	transfer.Amount = fromCents(cents)
	transfer.Date = time.Unix(date, 0).UTC()
	transfer.Source.ID = transfer.SourceID
	transfer.Target.ID = transfer.TargetID
	if description.Valid {
		transfer.Description = description.String
	}
	if sourceBank.Valid {
		transfer.Source.BankAccount = sourceBank.String
	}
	if targetBank.Valid {
		transfer.Target.BankAccount = targetBank.String
	}

	return transfer, nil
}
