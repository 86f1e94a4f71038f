package usecase

import (
	"context"

	"SolPulse/internal/domain/models"
	drepo "SolPulse/internal/domain/repository"
	applogger "SolPulse/pkg/logger"
)

// AssetsFetcher reads wallet portfolios. Upstream failures degrade to
// an empty portfolio so that downstream aggregation keeps going.
type AssetsFetcher struct {
	source drepo.AssetSource
	log    *applogger.Logger
}

// NewAssetsFetcher creates an AssetsFetcher.
func NewAssetsFetcher(source drepo.AssetSource, l *applogger.Logger) *AssetsFetcher {
	return &AssetsFetcher{source: source, log: l}
}

// Fetch returns owner's holdings, or an empty slice when the upstream
// call fails.
func (f *AssetsFetcher) Fetch(ctx context.Context, owner string) []models.AssetHolding {
	assets, err := f.source.WalletAssets(ctx, owner)
	if err != nil {
		f.log.Warn("wallet assets fetch failed",
			applogger.String("owner", owner),
			applogger.Error(err),
		)
		return []models.AssetHolding{}
	}
	if assets == nil {
		return []models.AssetHolding{}
	}
	return assets
}
