package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"splittab/internal/models"
)

// CreateUser inserts a new user and populates user.ID.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	var bankAccount interface{}
	if user.BankAccount != "" {
		bankAccount = user.BankAccount
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (name, email, bank_account) VALUES (?, ?, ?)",
		user.Name, user.Email, bankAccount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetUserByID retrieves a user by id.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	var bankAccount sql.NullString

	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, bank_account FROM users WHERE id = ?",
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &bankAccount)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if bankAccount.Valid {
		user.BankAccount = bankAccount.String
	}

	return user, nil
}

// FindUserByName retrieves the single user with the given display name.
// Zero matches is a not-found error; more than one match is ambiguous and
// never resolved by picking an arbitrary row.
func (s *SQLiteStore) FindUserByName(ctx context.Context, name string) (*models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, bank_account FROM users WHERE name = ? LIMIT 2",
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by name: %w", err)
	}
	defer rows.Close()

	var matches []*models.User
	for rows.Next() {
		user := &models.User{}
		var bankAccount sql.NullString
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &bankAccount); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if bankAccount.Valid {
			user.BankAccount = bankAccount.String
		}
		matches = append(matches, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("user %q: %w", name, models.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("user %q: %w", name, models.ErrAmbiguousUser)
	}
}

// GetAllUsers retrieves all users ordered by id.
func (s *SQLiteStore) GetAllUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, bank_account FROM users ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		var bankAccount sql.NullString
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &bankAccount); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if bankAccount.Valid {
			user.BankAccount = bankAccount.String
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
