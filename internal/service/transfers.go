package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"splittab/internal/models"
)

// CreateTransfer validates the input, resolves source and target, and
// persists the transfer. Source and target must be different users; the
// description is optional.
func (s *Service) CreateTransfer(ctx context.Context, input models.CreateTransferInput) (*models.Transfer, error) {
	amount, err := validAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	source, err := s.resolveUser(ctx, "source", input.Source)
	if err != nil {
		return nil, err
	}
	target, err := s.resolveUser(ctx, "target", input.Target)
	if err != nil {
		return nil, err
	}
	if source.ID == target.ID {
		return nil, fmt.Errorf("%w: %q cannot transfer to themselves", models.ErrSameUser, source.Name)
	}

	transfer := &models.Transfer{
		Amount:      amount,
		Description: strings.TrimSpace(input.Description),
		Date:        input.Date,
		SourceID:    source.ID,
		TargetID:    target.ID,
		Source:      *source,
		Target:      *target,
	}
	if err := s.store.CreateTransfer(ctx, transfer); err != nil {
		slog.ErrorContext(ctx, "failed to persist transfer",
			"source_id", transfer.SourceID,
			"target_id", transfer.TargetID,
			"error", err,
		)
		return nil, storeErr(err)
	}

	slog.InfoContext(ctx, "transfer created",
		"transfer_id", transfer.ID,
		"amount", transfer.Amount,
		"source_id", transfer.SourceID,
		"target_id", transfer.TargetID,
	)
	return transfer, nil
}

// ListTransfers returns all transfers, newest first.
func (s *Service) ListTransfers(ctx context.Context) ([]models.Transfer, error) {
	transfers, err := s.store.GetAllTransfers(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return transfers, nil
}

// GetTransfer returns one transfer by id.
func (s *Service) GetTransfer(ctx context.Context, id int64) (*models.Transfer, error) {
	transfer, err := s.store.GetTransferByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return transfer, nil
}
