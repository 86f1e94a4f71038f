// Package helius reads Solana wallet and token data from the Helius
// RPC and enhanced transactions APIs.
package helius

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"SolPulse/internal/domain/models"
	drepo "SolPulse/internal/domain/repository"
	"SolPulse/internal/service/ratelimit"
	"SolPulse/pkg/config"
	xhttp "SolPulse/pkg/http"
	applogger "SolPulse/pkg/logger"
	"SolPulse/pkg/retry"
	"SolPulse/pkg/util"
)

const (
	pageLimit      = 1000
	assetPageLimit = 100
	swapLimit      = 100
	limiterKey     = "helius"
)

// Client implements HolderSource and AssetSource backed by Helius.
type Client struct {
	apiKey  string
	rpcURL  string
	apiURL  string
	http    *xhttp.Client
	log     *applogger.Logger
	limiter *ratelimit.Limiter
	rate    config.RateConfig
	retry   retry.Config
	metrics drepo.Metrics
}

// New creates a Helius client.
func New(cfg *config.Config, l *applogger.Logger, m drepo.Metrics) *Client {
	return &Client{
		apiKey:  cfg.Helius.APIKey,
		rpcURL:  cfg.Helius.RPCURL,
		apiURL:  cfg.Helius.APIURL,
		http:    xhttp.NewClient(xhttp.WithTimeout(cfg.Helius.Timeout)),
		log:     l,
		limiter: ratelimit.New(),
		rate:    cfg.Helius.Rate,
		retry: retry.Config{
			MaxAttempts:     cfg.Retry.MaxAttempts,
			InitialInterval: cfg.Retry.InitialInterval,
			MaxInterval:     cfg.Retry.MaxInterval,
		},
		metrics: m,
	}
}

var (
	_ drepo.HolderSource = (*Client)(nil)
	_ drepo.AssetSource  = (*Client)(nil)
)

// TokenHolders pages through all token accounts of mint, computes each
// owner's share of the observed supply, and returns the top holders by
// descending amount.
func (c *Client) TokenHolders(ctx context.Context, mint string, limit int) ([]models.HolderRecord, error) {
	var accounts []tokenAccount
	cursor := ""

	for {
		var result tokenAccountsResult
		req := rpcRequest{
			Jsonrpc: "2.0",
			ID:      "get-token-accounts",
			Method:  "getTokenAccounts",
			Params:  tokenAccountsParams{Mint: mint, Limit: pageLimit, Cursor: cursor},
		}
		if err := c.rpcCall(ctx, req, &result); err != nil {
			return nil, fmt.Errorf("token holders %s: %w", mint, err)
		}

		if len(result.TokenAccounts) == 0 {
			break
		}
		accounts = append(accounts, result.TokenAccounts...)

		cursor = result.Cursor
		if cursor == "" {
			break
		}
	}

	if len(accounts) == 0 {
		return nil, nil
	}

	var totalSupply float64
	amounts := make([]float64, len(accounts))
	for i, a := range accounts {
		amounts[i] = util.ParseFloat(a.Amount, 0)
		totalSupply += amounts[i]
	}

	holders := make([]models.HolderRecord, len(accounts))
	for i, a := range accounts {
		holders[i] = models.HolderRecord{
			Address:    a.Owner,
			Amount:     strconv.FormatFloat(amounts[i], 'f', -1, 64),
			Percentage: util.FormatRatio(amounts[i], totalSupply),
		}
	}

	sortHoldersByAmount(holders)

	if limit > 0 && len(holders) > limit {
		holders = holders[:limit]
	}
	return holders, nil
}

func sortHoldersByAmount(holders []models.HolderRecord) {
	sort.SliceStable(holders, func(i, j int) bool {
		ai, _ := strconv.ParseFloat(holders[i].Amount, 64)
		aj, _ := strconv.ParseFloat(holders[j].Amount, 64)
		if ai != aj {
			return ai > aj
		}
		return holders[i].Address < holders[j].Address
	})
}

// WalletAssets returns owner's priced fungible holdings worth more than
// $100, excluding mutable assets, with native SOL first when present.
func (c *Client) WalletAssets(ctx context.Context, owner string) ([]models.AssetHolding, error) {
	var result searchAssetsResult
	req := rpcRequest{
		Jsonrpc: "2.0",
		ID:      "search-assets",
		Method:  "searchAssets",
		Params: searchAssetsParams{
			OwnerAddress: owner,
			TokenType:    "fungible",
			Page:         1,
			Limit:        assetPageLimit,
			SortBy:       searchSortBy{SortBy: "recent_action", SortDirection: "desc"},
			Options:      searchAssetOptions{ShowNativeBalance: true},
		},
	}
	if err := c.rpcCall(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("wallet assets %s: %w", owner, err)
	}

	var holdings []models.AssetHolding

	if nb := result.NativeBalance; nb != nil {
		holdings = append(holdings, models.AssetHolding{
			TokenAddress:  models.NativeSOLMint,
			Symbol:        "SOL",
			PricePerToken: nb.PricePerSOL,
			TotalValue:    nb.TotalPrice,
		})
	}

	for _, item := range result.Items {
		if item.Mutable || item.TokenInfo == nil || item.TokenInfo.PriceInfo == nil {
			continue
		}
		pi := item.TokenInfo.PriceInfo
		if pi.TotalPrice <= 100 {
			continue
		}
		h := models.AssetHolding{
			TokenAddress:  item.ID,
			Symbol:        item.TokenInfo.Symbol,
			PricePerToken: pi.PricePerToken,
			TotalValue:    pi.TotalPrice,
		}
		if item.Content != nil && len(item.Content.Files) > 0 {
			h.ImageURL = item.Content.Files[0].CDNURI
		}
		holdings = append(holdings, h)
	}

	return holdings, nil
}

// SwapHistory returns owner's recent swap transactions decoded from the
// enhanced transactions API, newest first.
func (c *Client) SwapHistory(ctx context.Context, owner string) ([]models.SwapRecord, error) {
	var txs []transaction
	url := fmt.Sprintf("%s/v0/addresses/%s/transactions", c.apiURL, owner)

	err := c.call(ctx, "swap history", func(ctx context.Context) error {
		return c.http.SendAndParse(ctx, &xhttp.RequestOptions{
			Method: xhttp.MethodGet,
			URL:    url,
			QueryParams: map[string][]string{
				"api-key": {c.apiKey},
				"type":    {"SWAP"},
				"limit":   {strconv.Itoa(swapLimit)},
			},
		}, &txs)
	})
	if err != nil {
		return nil, fmt.Errorf("swap history %s: %w", owner, err)
	}

	swaps := make([]models.SwapRecord, 0, len(txs))
	for _, tx := range txs {
		if tx.Type != "SWAP" || tx.Events.Swap == nil {
			continue
		}
		swaps = append(swaps, decodeSwap(tx))
	}
	return swaps, nil
}

func decodeSwap(tx transaction) models.SwapRecord {
	ev := tx.Events.Swap
	rec := models.SwapRecord{
		Account:     tx.FeePayer,
		Timestamp:   tx.Timestamp,
		Description: tx.Description,
	}

	switch {
	case ev.NativeInput != nil && util.ParseFloat(ev.NativeInput.Amount, 0) > 0:
		rec.TokenInAddress = models.NativeSOLMint
		rec.TokenInAmount = scaleAmount(ev.NativeInput.Amount, 9)
	case len(ev.TokenInputs) > 0:
		in := ev.TokenInputs[0]
		rec.TokenInAddress = in.Mint
		rec.TokenInAmount = scaleAmount(in.RawTokenAmount.TokenAmount, in.RawTokenAmount.Decimals)
	}

	switch {
	case ev.NativeOutput != nil && util.ParseFloat(ev.NativeOutput.Amount, 0) > 0:
		rec.TokenOutAddress = models.NativeSOLMint
		rec.TokenOutAmount = scaleAmount(ev.NativeOutput.Amount, 9)
	case len(ev.TokenOutputs) > 0:
		out := ev.TokenOutputs[0]
		rec.TokenOutAddress = out.Mint
		rec.TokenOutAmount = scaleAmount(out.RawTokenAmount.TokenAmount, out.RawTokenAmount.Decimals)
	}

	switch {
	case rec.TokenInAddress == models.NativeSOLMint:
		rec.Type = "BUY"
	case rec.TokenOutAddress == models.NativeSOLMint:
		rec.Type = "SELL"
	default:
		rec.Type = "SWAP"
	}
	return rec
}

func scaleAmount(v interface{}, decimals int) float64 {
	return util.ParseFloat(v, 0) / math.Pow10(decimals)
}

// rpcCall executes a JSON-RPC request with rate limiting and retries.
func (c *Client) rpcCall(ctx context.Context, req rpcRequest, dest interface{}) error {
	url := fmt.Sprintf("%s/?api-key=%s", c.rpcURL, c.apiKey)

	return c.call(ctx, req.Method, func(ctx context.Context) error {
		var env rpcEnvelope
		if err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
			Method: xhttp.MethodPost,
			URL:    url,
			Body:   req,
		}, &env); err != nil {
			return err
		}
		if env.Error != nil {
			return models.NewDataShapeError("helius", "rpc error %d: %s", env.Error.Code, env.Error.Message)
		}
		if len(env.Result) == 0 {
			return models.NewDataShapeError("helius", "empty result for %s", req.Method)
		}
		if err := json.Unmarshal(env.Result, dest); err != nil {
			return models.NewDataShapeError("helius", "decode %s result: %v", req.Method, err)
		}
		return nil
	})
}

// call wraps op with the token bucket and the retry policy. Exhausted
// buckets and retryable HTTP statuses are surfaced as transient so the
// backoff loop waits them out; shape errors pass through untouched.
func (c *Client) call(ctx context.Context, op string, fn func(context.Context) error) error {
	return retry.Do(ctx, c.retry, func() error {
		if !c.limiter.Allow(limiterKey, c.rate.Capacity, c.rate.RefillPerSec) {
			return retry.Transient(fmt.Errorf("helius: local rate limit exceeded"))
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}

		if models.IsDataShapeError(err) {
			c.metrics.RecordUpstreamError("helius", "shape")
			return err
		}
		if xhttp.IsRetryableStatus(err) || xhttp.IsNetworkError(err) {
			c.metrics.RecordUpstreamError("helius", "transport")
			c.log.Warn("helius request failed, retrying",
				applogger.String("op", op),
				applogger.Error(err),
			)
			return retry.Transient(err)
		}
		c.metrics.RecordUpstreamError("helius", "request")
		return err
	})
}
