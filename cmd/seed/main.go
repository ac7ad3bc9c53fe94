// Command seed populates the database with demo users, expenses, and
// transfers so the app has something to show on first run.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"splittab/internal/config"
	"splittab/internal/models"
	"splittab/internal/storage/sqlite"
	"splittab/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	existing, err := store.GetAllUsers(ctx)
	if err != nil {
		slog.Error("failed to check users", "error", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		slog.Info("database already seeded", "users", len(existing))
		return
	}

	alice := &models.User{Name: "Alice", Email: "alice@example.com", BankAccount: "BE12 3456 7890 1234"}
	bob := &models.User{Name: "Bob", Email: "bob@example.com", BankAccount: "BE98 7654 3210 9876"}
	charlie := &models.User{Name: "Charlie", Email: "charlie@example.com"}
	for _, u := range []*models.User{alice, bob, charlie} {
		if err := store.CreateUser(ctx, u); err != nil {
			slog.Error("failed to create user", "name", u.Name, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("created users", "count", 3)

	expenses := []*models.Expense{
		{
			Description:  "Groceries for dinner party",
			Amount:       decimal.RequireFromString("85.50"),
			Date:         time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
			PayerID:      alice.ID,
			Payer:        *alice,
			Participants: []models.User{*alice, *bob, *charlie},
		},
		{
			Description:  "Movie tickets",
			Amount:       decimal.RequireFromString("35.00"),
			Date:         time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			PayerID:      bob.ID,
			Payer:        *bob,
			Participants: []models.User{*alice, *bob},
		},
	}
	for _, e := range expenses {
		if err := store.CreateExpense(ctx, e); err != nil {
			slog.Error("failed to create expense", "description", e.Description, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("created expenses", "count", len(expenses))

	transfer := &models.Transfer{
		Amount:      decimal.RequireFromString("28.50"),
		Description: "Dinner party share",
		Date:        time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC),
		SourceID:    bob.ID,
		TargetID:    alice.ID,
		Source:      *bob,
		Target:      *alice,
	}
	if err := store.CreateTransfer(ctx, transfer); err != nil {
		slog.Error("failed to create transfer", "error", err)
		os.Exit(1)
	}
	slog.Info("created transfers", "count", 1)

	slog.Info("seed complete", "database", cfg.DBPath)
}
