//go:build wireinject
// +build wireinject

package di

import (
	"SolPulse/pkg/config"
	"SolPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Upstream clients
		ProvideHeliusClient,
		ProvideHolderSource,
		ProvideAssetSource,
		ProvideTradeSource,
		ProvideLLM,

		// Use cases
		ProvideUsecases,
		ProvideRegistry,
		ProvideDispatcher,

		// HTTP surface
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
