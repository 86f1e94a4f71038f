package bitquery

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   *responseData  `json:"data"`
	Errors []graphqlError `json:"errors,omitempty"`
}

type responseData struct {
	Solana *solanaData `json:"Solana"`
}

type solanaData struct {
	DEXTradeByTokens []tradeEntry `json:"DEXTradeByTokens"`
}

// tradeEntry covers both the OHLCV and the trending query shapes; each
// query populates its own subset of fields.
type tradeEntry struct {
	Block *blockTime `json:"Block"`

	Min    interface{} `json:"min"`
	Max    interface{} `json:"max"`
	Open   interface{} `json:"open"`
	Close  interface{} `json:"close"`
	Volume interface{} `json:"volume"`

	Trade             *tradeInfo  `json:"Trade"`
	Makers            interface{} `json:"makers"`
	TotalTrades       interface{} `json:"total_trades"`
	TotalTradedVolume interface{} `json:"total_traded_volume"`
	TotalBuyVolume    interface{} `json:"total_buy_volume"`
	TotalSellVolume   interface{} `json:"total_sell_volume"`
	TotalBuys         interface{} `json:"total_buys"`
	TotalSells        interface{} `json:"total_sells"`
}

type blockTime struct {
	Time string `json:"Time"`
}

type tradeInfo struct {
	Currency *currencyInfo `json:"Currency"`
	Start    interface{}   `json:"start"`
	Min5     interface{}   `json:"min5"`
	End      interface{}   `json:"end"`
	Dex      *dexInfo      `json:"Dex"`
	Market   *marketInfo   `json:"Market"`
	Side     *sideInfo     `json:"Side"`
}

type currencyInfo struct {
	Name        string `json:"Name"`
	MintAddress string `json:"MintAddress"`
	Symbol      string `json:"Symbol"`
}

type dexInfo struct {
	ProtocolName   string `json:"ProtocolName"`
	ProtocolFamily string `json:"ProtocolFamily"`
	ProgramAddress string `json:"ProgramAddress"`
}

type marketInfo struct {
	MarketAddress string `json:"MarketAddress"`
}

type sideInfo struct {
	Currency *currencyInfo `json:"Currency"`
}
