package models

import "time"

const (
	// NativeSOLMint is the wrapped SOL mint address used to represent
	// native balances and to classify swap direction.
	NativeSOLMint = "So11111111111111111111111111111111111111112"

	// RaydiumAuthority is the Raydium protocol wallet excluded from
	// holder analysis because it would dominate every token's results.
	RaydiumAuthority = "5Q544fKrFoe6tsEbD7S8EmxGTJYAKtTVhAW5Q5pge4j1"
)

// HolderRecord is a single holder of a token, as reported by the RPC
// token-accounts index. Percentage is of total supply, formatted with
// two decimal places.
type HolderRecord struct {
	Address    string `json:"address"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
}

// AssetHolding is one fungible token held by a wallet, after filtering
// out unpriced, dust, and mutable assets.
type AssetHolding struct {
	TokenAddress  string  `json:"token_address"`
	Symbol        string  `json:"symbol"`
	ImageURL      string  `json:"image_url,omitempty"`
	PricePerToken float64 `json:"price_per_token"`
	TotalValue    float64 `json:"total_value"`
}

// HolderContribution is one holder's stake in an aggregated token.
type HolderContribution struct {
	Address    string  `json:"address"`
	TotalValue float64 `json:"total_value"`
	Percentage string  `json:"percentage"`
	GMGNLink   string  `json:"gmgn_link"`
}

// TokenAggregate is a token held across the analyzed holder set,
// with per-holder contributions capped at the top five.
type TokenAggregate struct {
	TokenAddress      string               `json:"token_address"`
	Symbol            string               `json:"symbol"`
	ImageURL          string               `json:"image_url,omitempty"`
	PricePerToken     float64              `json:"price_per_token"`
	TotalHoldingValue float64              `json:"total_holding_value"`
	Holders           []HolderContribution `json:"holders"`
	GMGNReferralLink  string               `json:"gmgn_referral_link"`
}

// HolderAnalysis is the full result of analyzing a token's top holders.
type HolderAnalysis struct {
	TokenAddress   string           `json:"token_address"`
	HoldersChecked int              `json:"holders_checked"`
	TopTokens      []TokenAggregate `json:"top_tokens"`
}

// TradeBucket is one OHLCV interval of DEX trade data.
type TradeBucket struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// TradeSummary condenses a bucket series into headline numbers.
// PriceChangePct is zero when the window's opening price is zero.
type TradeSummary struct {
	CurrentPrice   float64   `json:"current_price"`
	PriceChange    float64   `json:"price_change"`
	PriceChangePct float64   `json:"price_change_percent"`
	High           float64   `json:"high"`
	Low            float64   `json:"low"`
	TotalVolume    float64   `json:"total_volume"`
	ComputedAt     time.Time `json:"computed_at"`
}

// TradingInfo pairs the summary with the raw bucket series.
type TradingInfo struct {
	Summary      TradeSummary  `json:"summary"`
	DetailedData []TradeBucket `json:"detailed_data"`
}

// TrendingCurrency identifies a token appearing in trending results.
type TrendingCurrency struct {
	Name        string `json:"name"`
	MintAddress string `json:"mint_address"`
	Symbol      string `json:"symbol"`
}

// TrendingPrice holds the window's start, recent, and end prices in USD.
type TrendingPrice struct {
	Start float64 `json:"start"`
	Min5  float64 `json:"min5"`
	End   float64 `json:"end"`
}

// TrendingDex identifies the venue of the dominant market.
type TrendingDex struct {
	ProtocolName   string `json:"protocol_name"`
	ProtocolFamily string `json:"protocol_family"`
	ProgramAddress string `json:"program_address"`
}

// TrendingToken is one entry of the trending ranking, ordered by
// trade count over the lookback window.
type TrendingToken struct {
	Currency          TrendingCurrency `json:"currency"`
	Price             TrendingPrice    `json:"price"`
	Dex               TrendingDex      `json:"dex"`
	MarketAddress     string           `json:"market_address"`
	SideCurrency      TrendingCurrency `json:"side_currency"`
	Makers            int              `json:"makers"`
	TotalTrades       int              `json:"total_trades"`
	TotalTradedVolume float64          `json:"total_traded_volume"`
	TotalBuyVolume    float64          `json:"total_buy_volume"`
	TotalSellVolume   float64          `json:"total_sell_volume"`
	TotalBuys         int              `json:"total_buys"`
	TotalSells        int              `json:"total_sells"`
}

// SwapRecord is one decoded swap transaction of a wallet.
type SwapRecord struct {
	Account         string  `json:"account"`
	Timestamp       int64   `json:"timestamp"`
	Description     string  `json:"description,omitempty"`
	TokenInAddress  string  `json:"token_in_address"`
	TokenInAmount   float64 `json:"token_in_amount"`
	TokenOutAddress string  `json:"token_out_address"`
	TokenOutAmount  float64 `json:"token_out_amount"`
	Type            string  `json:"type"`
}
