package helius

import "encoding/json"

type rpcRequest struct {
	Jsonrpc string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error,omitempty"`
}

// getTokenAccounts

type tokenAccountsParams struct {
	Mint   string `json:"mint"`
	Limit  int    `json:"limit"`
	Cursor string `json:"cursor,omitempty"`
}

type tokenAccountsResult struct {
	TokenAccounts []tokenAccount `json:"token_accounts"`
	Cursor        string         `json:"cursor"`
}

type tokenAccount struct {
	Owner  string      `json:"owner"`
	Amount interface{} `json:"amount"`
}

// searchAssets

type searchAssetsParams struct {
	OwnerAddress string             `json:"ownerAddress"`
	TokenType    string             `json:"tokenType"`
	Page         int                `json:"page"`
	Limit        int                `json:"limit"`
	SortBy       searchSortBy       `json:"sortBy"`
	Options      searchAssetOptions `json:"options"`
}

type searchSortBy struct {
	SortBy        string `json:"sortBy"`
	SortDirection string `json:"sortDirection"`
}

type searchAssetOptions struct {
	ShowNativeBalance bool `json:"showNativeBalance"`
}

type searchAssetsResult struct {
	Items         []assetItem    `json:"items"`
	NativeBalance *nativeBalance `json:"nativeBalance"`
}

type assetItem struct {
	ID        string        `json:"id"`
	Mutable   bool          `json:"mutable"`
	Content   *assetContent `json:"content"`
	TokenInfo *tokenInfo    `json:"token_info"`
}

type assetContent struct {
	Files []assetFile `json:"files"`
}

type assetFile struct {
	CDNURI string `json:"cdn_uri"`
}

type tokenInfo struct {
	Symbol    string     `json:"symbol"`
	PriceInfo *priceInfo `json:"price_info"`
}

type priceInfo struct {
	PricePerToken float64 `json:"price_per_token"`
	TotalPrice    float64 `json:"total_price"`
}

type nativeBalance struct {
	PricePerSOL float64 `json:"price_per_sol"`
	TotalPrice  float64 `json:"total_price"`
}

// enhanced transactions API

type transaction struct {
	Type        string    `json:"type"`
	FeePayer    string    `json:"feePayer"`
	Timestamp   int64     `json:"timestamp"`
	Description string    `json:"description"`
	Events      txnEvents `json:"events"`
}

type txnEvents struct {
	Swap *swapEvent `json:"swap"`
}

type swapEvent struct {
	NativeInput  *nativeAmount   `json:"nativeInput"`
	NativeOutput *nativeAmount   `json:"nativeOutput"`
	TokenInputs  []tokenTransfer `json:"tokenInputs"`
	TokenOutputs []tokenTransfer `json:"tokenOutputs"`
}

type nativeAmount struct {
	Amount interface{} `json:"amount"`
}

type tokenTransfer struct {
	Mint           string    `json:"mint"`
	RawTokenAmount rawAmount `json:"rawTokenAmount"`
}

type rawAmount struct {
	TokenAmount interface{} `json:"tokenAmount"`
	Decimals    int         `json:"decimals"`
}
