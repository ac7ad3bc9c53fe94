package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splittab/internal/models"
)

func TestCreateTransfer(t *testing.T) {
	svc, alice, bob, _ := newTestService(t)

	transfer, err := svc.CreateTransfer(context.Background(), models.CreateTransferInput{
		Amount: amt("1.75"),
		Date:   jan(16),
		Source: models.RefByID(bob.ID),
		Target: models.RefByID(alice.ID),
	})
	require.NoError(t, err)
	require.NotZero(t, transfer.ID)
	assert.Equal(t, bob.ID, transfer.Source.ID)
	assert.Equal(t, alice.ID, transfer.Target.ID)
	assert.Empty(t, transfer.Description)
}

func TestCreateTransfer_ByNames(t *testing.T) {
	svc, alice, bob, _ := newTestService(t)

	transfer, err := svc.CreateTransfer(context.Background(), models.CreateTransferInput{
		Amount:      amt("20"),
		Description: "Settling up",
		Source:      models.RefByName("Bob"),
		Target:      models.RefByName("Alice"),
	})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, transfer.SourceID)
	assert.Equal(t, alice.ID, transfer.TargetID)
	assert.Equal(t, "Settling up", transfer.Description)
}

func TestCreateTransfer_SameUser(t *testing.T) {
	svc, alice, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateTransfer(ctx, models.CreateTransferInput{
		Amount: amt("10"),
		Source: models.RefByID(alice.ID),
		Target: models.RefByID(alice.ID),
	})
	require.ErrorIs(t, err, models.ErrSameUser)

	// Also when the same person is referenced two different ways.
	_, err = svc.CreateTransfer(ctx, models.CreateTransferInput{
		Amount: amt("10"),
		Source: models.RefByID(alice.ID),
		Target: models.RefByName("Alice"),
	})
	require.ErrorIs(t, err, models.ErrSameUser)

	// Nothing persisted.
	transfers, err := svc.ListTransfers(ctx)
	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestCreateTransfer_ValidationFailures(t *testing.T) {
	svc, alice, bob, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   models.CreateTransferInput
		wantErr error
	}{
		{
			name: "zero amount",
			input: models.CreateTransferInput{
				Amount: amt("0"),
				Source: models.RefByID(bob.ID),
				Target: models.RefByID(alice.ID),
			},
			wantErr: models.ErrInvalidAmount,
		},
		{
			name: "unknown source",
			input: models.CreateTransferInput{
				Amount: amt("5"),
				Source: models.RefByID(999),
				Target: models.RefByID(alice.ID),
			},
			wantErr: models.ErrUnknownUser,
		},
		{
			name: "unknown target name",
			input: models.CreateTransferInput{
				Amount: amt("5"),
				Source: models.RefByID(bob.ID),
				Target: models.RefByName("Nobody"),
			},
			wantErr: models.ErrUnknownUser,
		},
		{
			name: "missing target",
			input: models.CreateTransferInput{
				Amount: amt("5"),
				Source: models.RefByID(bob.ID),
			},
			wantErr: models.ErrUnknownUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTransfer(ctx, tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetTransfer(t *testing.T) {
	svc, alice, bob, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTransfer(ctx, models.CreateTransferInput{
		Amount: amt("12.50"),
		Source: models.RefByID(bob.ID),
		Target: models.RefByID(alice.ID),
	})
	require.NoError(t, err)

	got, err := svc.GetTransfer(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(amt("12.50")))

	_, err = svc.GetTransfer(ctx, 404)
	require.ErrorIs(t, err, models.ErrNotFound)
}
