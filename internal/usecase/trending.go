package usecase

import (
	"context"
	"fmt"

	"SolPulse/internal/domain/models"
	drepo "SolPulse/internal/domain/repository"
)

// TrendingLister exposes the most-traded token ranking.
type TrendingLister struct {
	source drepo.TradeSource
}

// NewTrendingLister creates a TrendingLister.
func NewTrendingLister(source drepo.TradeSource) *TrendingLister {
	return &TrendingLister{source: source}
}

// List returns the current trending ranking.
func (t *TrendingLister) List(ctx context.Context) ([]models.TrendingToken, error) {
	tokens, err := t.source.TrendingTokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("trending tokens: %w", err)
	}
	if tokens == nil {
		tokens = []models.TrendingToken{}
	}
	return tokens, nil
}
