package repository

import (
	"context"

	"SolPulse/internal/domain/models"

	openai "github.com/sashabaranov/go-openai"
)

// HolderSource reads holder and asset data from the Solana RPC provider.
type HolderSource interface {
	// TokenHolders returns holders of mint ordered by descending amount,
	// capped at limit, with supply percentages precomputed.
	TokenHolders(ctx context.Context, mint string, limit int) ([]models.HolderRecord, error)
}

// AssetSource reads wallet portfolio and transaction data.
type AssetSource interface {
	// WalletAssets returns priced, non-dust, immutable fungible holdings
	// of owner, native SOL first.
	WalletAssets(ctx context.Context, owner string) ([]models.AssetHolding, error)
	// SwapHistory returns decoded swap transactions of owner, newest first.
	SwapHistory(ctx context.Context, owner string) ([]models.SwapRecord, error)
}

// TradeSource reads DEX trade data from the streaming analytics provider.
type TradeSource interface {
	// TradeBuckets returns OHLCV intervals for mint over the recent
	// window, oldest first.
	TradeBuckets(ctx context.Context, mint string) ([]models.TradeBucket, error)
	// TrendingTokens returns the most-traded tokens over the recent window.
	TrendingTokens(ctx context.Context) ([]models.TrendingToken, error)
}

// ToolSelection is the routing decision extracted from a model response.
type ToolSelection struct {
	ID        string
	Name      string
	Arguments string
}

// ToolLLM is the language model collaborator for routing and narration.
type ToolLLM interface {
	// SelectTool asks the model to pick a tool for query. When the model
	// answers in free text instead, selection is nil and the text is
	// returned as the second value.
	SelectTool(ctx context.Context, system, query string, tools []openai.Tool) (*ToolSelection, string, error)
	// Narrate turns a tool result into a natural language answer.
	Narrate(ctx context.Context, system, query, toolCallID string, data interface{}) (string, error)
}

// Metrics records operational counters and latencies.
type Metrics interface {
	RecordOperation(operation, outcome string)
	RecordError(kind string)
	RecordUpstreamError(api, kind string)
	RecordLLMCall(kind, outcome string)
	RecordCache(operation, outcome string)
	RecordLatency(op string, seconds float64)
}
