package usecase

import (
	"context"
	"fmt"
	"sort"

	"SolPulse/internal/domain/models"
	drepo "SolPulse/internal/domain/repository"
	"SolPulse/pkg/fanout"
	applogger "SolPulse/pkg/logger"
)

const (
	defaultTopN      = 20
	maxTopN          = 100
	maxTopTokens     = 5
	maxTopHolders    = 5
	gmgnAddressBase  = "https://gmgn.ai/sol/address/"
	gmgnReferralLink = "https://gmgn.ai/?ref=WtaAO4Jn&chain=sol"
)

// HolderAnalyzer finds what a token's largest holders also hold.
// Wallet lookups fan out concurrently; a failed wallet contributes
// nothing instead of failing the whole analysis.
type HolderAnalyzer struct {
	holders drepo.HolderSource
	assets  drepo.AssetSource
	log     *applogger.Logger
}

// NewHolderAnalyzer creates a HolderAnalyzer.
func NewHolderAnalyzer(holders drepo.HolderSource, assets drepo.AssetSource, l *applogger.Logger) *HolderAnalyzer {
	return &HolderAnalyzer{holders: holders, assets: assets, log: l}
}

// Analyze aggregates the cross holdings of mint's top holders and
// returns the five most valuable tokens with their top contributors.
func (a *HolderAnalyzer) Analyze(ctx context.Context, mint string, topN int) (*models.HolderAnalysis, error) {
	if topN <= 0 {
		topN = defaultTopN
	}
	if topN > maxTopN {
		topN = maxTopN
	}

	holders, err := a.holders.TokenHolders(ctx, mint, topN)
	if err != nil {
		return nil, fmt.Errorf("analyze holders: %w", err)
	}

	// drop protocol wallets that would dominate every aggregate
	filtered := holders[:0:0]
	for _, h := range holders {
		if h.Address != models.RaydiumAuthority {
			filtered = append(filtered, h)
		}
	}

	analysis := &models.HolderAnalysis{
		TokenAddress:   mint,
		HoldersChecked: len(filtered),
		TopTokens:      []models.TokenAggregate{},
	}
	if len(filtered) == 0 {
		return analysis, nil
	}

	results := fanout.Map(ctx, filtered, func(ctx context.Context, h models.HolderRecord) ([]models.AssetHolding, error) {
		return a.assets.WalletAssets(ctx, h.Address)
	})

	byToken := make(map[string]*models.TokenAggregate)
	for i, res := range results {
		holder := filtered[i]
		if res.Err != nil {
			a.log.Warn("holder wallet lookup failed",
				applogger.String("holder", holder.Address),
				applogger.Error(res.Err),
			)
			continue
		}
		for _, asset := range res.Value {
			agg, ok := byToken[asset.TokenAddress]
			if !ok {
				agg = &models.TokenAggregate{
					TokenAddress:  asset.TokenAddress,
					Symbol:        asset.Symbol,
					ImageURL:      asset.ImageURL,
					PricePerToken: asset.PricePerToken,
				}
				byToken[asset.TokenAddress] = agg
			}
			agg.TotalHoldingValue += asset.TotalValue
			agg.Holders = append(agg.Holders, models.HolderContribution{
				Address:    holder.Address,
				TotalValue: asset.TotalValue,
				Percentage: holder.Percentage,
				GMGNLink:   gmgnAddressBase + holder.Address,
			})
		}
	}

	aggregates := make([]models.TokenAggregate, 0, len(byToken))
	for _, agg := range byToken {
		aggregates = append(aggregates, *agg)
	}
	sort.Slice(aggregates, func(i, j int) bool {
		if aggregates[i].TotalHoldingValue != aggregates[j].TotalHoldingValue {
			return aggregates[i].TotalHoldingValue > aggregates[j].TotalHoldingValue
		}
		return aggregates[i].TokenAddress < aggregates[j].TokenAddress
	})
	if len(aggregates) > maxTopTokens {
		aggregates = aggregates[:maxTopTokens]
	}

	for i := range aggregates {
		hs := aggregates[i].Holders
		sort.Slice(hs, func(a, b int) bool {
			if hs[a].TotalValue != hs[b].TotalValue {
				return hs[a].TotalValue > hs[b].TotalValue
			}
			return hs[a].Address < hs[b].Address
		})
		if len(hs) > maxTopHolders {
			hs = hs[:maxTopHolders]
		}
		aggregates[i].Holders = hs
		aggregates[i].GMGNReferralLink = gmgnReferralLink
	}

	analysis.TopTokens = aggregates
	return analysis, nil
}
