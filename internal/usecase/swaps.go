package usecase

import (
	"context"
	"fmt"

	"SolPulse/internal/domain/models"
	drepo "SolPulse/internal/domain/repository"
)

// SwapsFetcher exposes a wallet's recent swap history.
type SwapsFetcher struct {
	source drepo.AssetSource
}

// NewSwapsFetcher creates a SwapsFetcher.
func NewSwapsFetcher(source drepo.AssetSource) *SwapsFetcher {
	return &SwapsFetcher{source: source}
}

// History returns owner's decoded swap transactions.
func (s *SwapsFetcher) History(ctx context.Context, owner string) ([]models.SwapRecord, error) {
	swaps, err := s.source.SwapHistory(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("swap history: %w", err)
	}
	if swaps == nil {
		swaps = []models.SwapRecord{}
	}
	return swaps, nil
}
