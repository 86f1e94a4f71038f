package di

import (
	"fmt"

	drepo "SolPulse/internal/domain/repository"
	"SolPulse/internal/handler/api"
	"SolPulse/internal/service/bitquery"
	"SolPulse/internal/service/helius"
	"SolPulse/internal/service/llm"
	"SolPulse/internal/tools"
	"SolPulse/internal/usecase"
	"SolPulse/pkg/cache"
	"SolPulse/pkg/config"
	xhttp "SolPulse/pkg/http"
	applogger "SolPulse/pkg/logger"
	"SolPulse/pkg/metrics"
	"SolPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideCache creates the result cache. With Redis enabled a layered
// memory-over-Redis cache is used; otherwise memory only.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Cache.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(
			cache.WithRedisAddr(cfg.Cache.Redis.Addr),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return cache.NewLayeredCache(redisCache,
			cache.WithLayeredMemorySize(cfg.Cache.MemoryMaxSize),
		), nil
	}
	return cache.NewMemoryCache(
		cache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize),
	), nil
}

// ProvideHeliusClient creates the Helius API client.
func ProvideHeliusClient(cfg *config.Config, l *applogger.Logger, m drepo.Metrics) *helius.Client {
	return helius.New(cfg, l, m)
}

// ProvideHolderSource exposes the Helius client as a HolderSource.
func ProvideHolderSource(c *helius.Client) drepo.HolderSource {
	return c
}

// ProvideAssetSource exposes the Helius client as an AssetSource.
func ProvideAssetSource(c *helius.Client) drepo.AssetSource {
	return c
}

// ProvideTradeSource creates the Bitquery trade source.
func ProvideTradeSource(cfg *config.Config, l *applogger.Logger, m drepo.Metrics) drepo.TradeSource {
	return bitquery.New(cfg, l, m)
}

// ProvideLLM creates the language model collaborator.
func ProvideLLM(cfg *config.Config, l *applogger.Logger, m drepo.Metrics) drepo.ToolLLM {
	return llm.New(cfg, l, m)
}

// ProvideUsecases wires the operation implementations.
func ProvideUsecases(holders drepo.HolderSource, assets drepo.AssetSource, trades drepo.TradeSource, l *applogger.Logger) *usecase.Usecases {
	return usecase.NewUsecases(holders, assets, trades, l)
}

// ProvideRegistry builds the tool registry with middleware applied.
func ProvideRegistry(uc *usecase.Usecases, c cache.Service, m drepo.Metrics, cfg *config.Config, l *applogger.Logger) *tools.Registry {
	return usecase.BuildRegistry(uc, c, m, cfg, l)
}

// ProvideDispatcher creates the request dispatcher.
func ProvideDispatcher(reg *tools.Registry, model drepo.ToolLLM, l *applogger.Logger, m drepo.Metrics) *usecase.Dispatcher {
	return usecase.NewDispatcher(reg, model, l, m)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(l *applogger.Logger, d *usecase.Dispatcher) xhttp.Handler {
	return api.NewAgentEchoHandler(l, d)
}

// ProvideApp assembles the application.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler, c cache.Service) *server.App {
	return server.New(cfg, l, h, c)
}
