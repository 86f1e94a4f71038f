package tools

import (
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"
)

// Operation names exposed through the registry.
const (
	OpWalletAssets  = "get_wallet_assets"
	OpHolderTokens  = "analyze_token_holders"
	OpWalletSwaps   = "get_wallet_swaps"
	OpTradingInfo   = "get_token_trading_info"
	OpTrendingBoard = "get_trending_tokens"
)

// WalletAssetsTool describes the wallet portfolio snapshot operation.
func WalletAssetsTool() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name: OpWalletAssets,
			Description: "Query all token holdings for a Solana wallet address, including SOL balance, " +
				"current market prices, and total value in USD. Returns only the current snapshot of assets, " +
				"ordered with native SOL first. Small-value and mutable tokens are excluded.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"owner_address": {
						"type": "string",
						"description": "The Solana wallet address to query (base58 public key)"
					}
				},
				"required": ["owner_address"]
			}`),
		},
	}
}

// HolderAnalysisTool describes the top-holder cross-holding analysis.
func HolderAnalysisTool() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name: OpHolderTokens,
			Description: "Analyze the top holders of a Solana token and find which other tokens those " +
				"holders commonly own. Protocol wallets such as Raydium are excluded. Results include each " +
				"holder's supply percentage, USD holding values, and GMGN explorer links.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"token_address": {
						"type": "string",
						"description": "The SPL token mint address to analyze (base58)"
					},
					"top_n": {
						"type": "integer",
						"description": "Number of top holders to analyze (default: 20, max: 100)",
						"default": 20
					}
				},
				"required": ["token_address"]
			}`),
		},
	}
}

// WalletSwapsTool describes the recent swap history operation.
func WalletSwapsTool() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name: OpWalletSwaps,
			Description: "Fetch the most recent SWAP transactions for a Solana wallet, classified as BUY " +
				"when SOL buys a token, SELL when a token converts to SOL, and SWAP for token-to-token " +
				"exchanges. Limited to the 100 most recent swaps; other transaction types are not included.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"owner_address": {
						"type": "string",
						"description": "The Solana wallet address to query swap history for (base58 public key)"
					}
				},
				"required": ["owner_address"]
			}`),
		},
	}
}

// TradingInfoTool describes the OHLCV trading window operation.
func TradingInfoTool() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name: OpTradingInfo,
			Description: "Get the last hour of DEX trading activity for a Solana token in five minute " +
				"OHLCV buckets, plus a summary with current price, price change, high, low, and volume.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"token_address": {
						"type": "string",
						"description": "The SPL token mint address to query (base58)"
					}
				},
				"required": ["token_address"]
			}`),
		},
	}
}

// TrendingTokensTool describes the trending ranking operation.
func TrendingTokensTool() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name: OpTrendingBoard,
			Description: "Get the ten most actively traded Solana tokens over the last hour, ranked by " +
				"trade count, with price movement, maker counts, and buy/sell volume breakdowns.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {}
			}`),
		},
	}
}
