// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"splittab/internal/models"
)

// Store defines the record store gateway the core depends on. The
// abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// and substituting fakes in tests without changing the service layer.
//
// Reads return fully resolved records: expenses carry their payer and
// participants, transfers carry source and target. Lookups that find
// nothing return an error wrapping models.ErrNotFound; a name lookup that
// matches more than one user returns an error wrapping
// models.ErrAmbiguousUser.
type Store interface {
	// CreateUser persists a new user. The user.ID field is populated by
	// the store.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user by id.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// FindUserByName retrieves the single user with the given display name.
	FindUserByName(ctx context.Context, name string) (*models.User, error)

	// GetAllUsers retrieves all users ordered by id.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// CreateExpense persists a new expense and its participant set in one
	// transaction. The expense.ID field is populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpenseByID retrieves an expense with payer and participants
	// resolved.
	GetExpenseByID(ctx context.Context, id int64) (*models.Expense, error)

	// GetAllExpenses retrieves all expenses with payer and participants
	// resolved.
	GetAllExpenses(ctx context.Context) ([]models.Expense, error)

	// CreateTransfer persists a new transfer. The transfer.ID field is
	// populated by the store.
	CreateTransfer(ctx context.Context, transfer *models.Transfer) error

	// GetTransferByID retrieves a transfer with source and target resolved.
	GetTransferByID(ctx context.Context, id int64) (*models.Transfer, error)

	// GetAllTransfers retrieves all transfers with source and target
	// resolved.
	GetAllTransfers(ctx context.Context) ([]models.Transfer, error)

	// Close releases any resources held by the store.
	Close() error
}
