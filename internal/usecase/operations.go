package usecase

import (
	"context"

	drepo "SolPulse/internal/domain/repository"
	"SolPulse/internal/tools"
	"SolPulse/pkg/cache"
	"SolPulse/pkg/config"
	applogger "SolPulse/pkg/logger"
)

// Usecases bundles the operation implementations behind the registry.
type Usecases struct {
	Assets   *AssetsFetcher
	Holders  *HolderAnalyzer
	Trades   *TradeOrganizer
	Trending *TrendingLister
	Swaps    *SwapsFetcher
}

// NewUsecases wires the operation implementations to their sources.
func NewUsecases(holders drepo.HolderSource, assets drepo.AssetSource, trades drepo.TradeSource, l *applogger.Logger) *Usecases {
	return &Usecases{
		Assets:   NewAssetsFetcher(assets, l),
		Holders:  NewHolderAnalyzer(holders, assets, l),
		Trades:   NewTradeOrganizer(trades, l),
		Trending: NewTrendingLister(trades),
		Swaps:    NewSwapsFetcher(assets),
	}
}

// BuildRegistry registers every operation, each wrapped with metrics
// and result caching. Wallet data shares the Helius TTL; trade data
// uses the shorter Bitquery TTL.
func BuildRegistry(uc *Usecases, c cache.Service, m drepo.Metrics, cfg *config.Config, l *applogger.Logger) *tools.Registry {
	reg := tools.NewRegistry()

	register := func(op *tools.Operation) {
		op.Handler = tools.Chain(op.Handler,
			tools.WithMetrics(m, op.Name()),
			tools.WithCache(c, m, op.Name(), op.TTL, l),
		)
		reg.Register(op)
	}

	register(&tools.Operation{
		Definition: tools.WalletAssetsTool(),
		TTL:        cfg.Cache.TTL.Helius,
		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			owner, err := tools.StringArg(args, "owner_address")
			if err != nil {
				return nil, err
			}
			return uc.Assets.Fetch(ctx, owner), nil
		},
	})

	register(&tools.Operation{
		Definition: tools.HolderAnalysisTool(),
		TTL:        cfg.Cache.TTL.Helius,
		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			mint, err := tools.StringArg(args, "token_address")
			if err != nil {
				return nil, err
			}
			topN := tools.IntArg(args, "top_n", 0)
			return uc.Holders.Analyze(ctx, mint, topN)
		},
	})

	register(&tools.Operation{
		Definition: tools.WalletSwapsTool(),
		TTL:        cfg.Cache.TTL.Helius,
		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			owner, err := tools.StringArg(args, "owner_address")
			if err != nil {
				return nil, err
			}
			return uc.Swaps.History(ctx, owner)
		},
	})

	register(&tools.Operation{
		Definition: tools.TradingInfoTool(),
		TTL:        cfg.Cache.TTL.Bitquery,
		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			mint, err := tools.StringArg(args, "token_address")
			if err != nil {
				return nil, err
			}
			return uc.Trades.TradingInfo(ctx, mint)
		},
	})

	register(&tools.Operation{
		Definition: tools.TrendingTokensTool(),
		TTL:        cfg.Cache.TTL.Bitquery,
		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			tokens, err := uc.Trending.List(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{"trending_tokens": tokens}, nil
		},
	})

	return reg
}
