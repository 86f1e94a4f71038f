// Package bitquery reads Solana DEX trade data from the Bitquery
// streaming GraphQL API.
package bitquery

import (
	"context"
	"fmt"
	"sort"
	"time"

	"SolPulse/internal/domain/models"
	drepo "SolPulse/internal/domain/repository"
	"SolPulse/pkg/config"
	xhttp "SolPulse/pkg/http"
	applogger "SolPulse/pkg/logger"
	"SolPulse/pkg/retry"
	"SolPulse/pkg/util"
)

const (
	lookbackWindow = time.Hour
	bucketInterval = 5
	trendingLimit  = 10
	quoteTokenUSDC = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	quoteTokenUSDT = "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"
)

const tradeBucketsQuery = `
query (
  $tokens: [String!],
  $base: String,
  $dataset: dataset_arg_enum,
  $time_ago: DateTime,
  $interval: Int
) {
  Solana(dataset: $dataset) {
    DEXTradeByTokens(
      orderBy: { ascendingByField: "Block_Time" }
      where: {
        Transaction: { Result: { Success: true } },
        Trade: {
          Side: {
            Amount: { gt: "0" },
            Currency: { MintAddress: { in: $tokens } }
          },
          Currency: { MintAddress: { is: $base } }
        },
        Block: { Time: { after: $time_ago } }
      }
    ) {
      Block {
        Time(interval: { count: $interval, in: minutes })
      }
      min: quantile(of: Trade_PriceInUSD, level: 0.05)
      max: quantile(of: Trade_PriceInUSD, level: 0.95)
      close: median(of: Trade_PriceInUSD)
      open: median(of: Trade_PriceInUSD)
      volume: sum(of: Trade_Side_AmountInUSD)
    }
  }
}`

const trendingTokensQuery = `
query ($time_since: DateTime, $limit: Int) {
  Solana {
    DEXTradeByTokens(
      where: {
        Transaction: { Result: { Success: true } },
        Trade: { Side: { Currency: { MintAddress: { is: "So11111111111111111111111111111111111111112" } } } },
        Block: { Time: { since: $time_since } }
      }
      orderBy: { descendingByField: "total_trades" }
      limit: { count: $limit }
    ) {
      Trade {
        Currency {
          Name
          MintAddress
          Symbol
        }
        start: PriceInUSD(minimum: Block_Time)
        min5: PriceInUSD(
          minimum: Block_Time,
          if: { Block: { Time: { after: $time_since } } }
        )
        end: PriceInUSD(maximum: Block_Time)
        Dex {
          ProtocolName
          ProtocolFamily
          ProgramAddress
        }
        Market {
          MarketAddress
        }
        Side {
          Currency {
            Symbol
            Name
            MintAddress
          }
        }
      }
      makers: count(distinct: Transaction_Signer)
      total_trades: count
      total_traded_volume: sum(of: Trade_Side_AmountInUSD)
      total_buy_volume: sum(
        of: Trade_Side_AmountInUSD,
        if: { Trade: { Side: { Type: { is: buy } } } }
      )
      total_sell_volume: sum(
        of: Trade_Side_AmountInUSD,
        if: { Trade: { Side: { Type: { is: sell } } } }
      )
      total_buys: count(if: { Trade: { Side: { Type: { is: buy } } } })
      total_sells: count(if: { Trade: { Side: { Type: { is: sell } } } })
    }
  }
}`

// Client implements TradeSource backed by Bitquery.
type Client struct {
	apiKey  string
	url     string
	http    *xhttp.Client
	log     *applogger.Logger
	retry   retry.Config
	metrics drepo.Metrics
	now     func() time.Time
}

// New creates a Bitquery client.
func New(cfg *config.Config, l *applogger.Logger, m drepo.Metrics) *Client {
	return &Client{
		apiKey: cfg.Bitquery.APIKey,
		url:    cfg.Bitquery.URL,
		http:   xhttp.NewClient(xhttp.WithTimeout(cfg.Bitquery.Timeout)),
		log:    l,
		retry: retry.Config{
			MaxAttempts:     cfg.Retry.MaxAttempts,
			InitialInterval: cfg.Retry.InitialInterval,
			MaxInterval:     cfg.Retry.MaxInterval,
		},
		metrics: m,
		now:     time.Now,
	}
}

var _ drepo.TradeSource = (*Client)(nil)

// TradeBuckets returns the last hour of five minute OHLCV intervals for
// mint traded against SOL, USDC, or USDT, oldest first.
func (c *Client) TradeBuckets(ctx context.Context, mint string) ([]models.TradeBucket, error) {
	timeAgo := c.now().UTC().Add(-lookbackWindow).Format("2006-01-02T15:04:05Z")
	variables := map[string]interface{}{
		"tokens":   []string{models.NativeSOLMint, quoteTokenUSDC, quoteTokenUSDT},
		"base":     mint,
		"dataset":  "combined",
		"time_ago": timeAgo,
		"interval": bucketInterval,
	}

	entries, err := c.query(ctx, "trade buckets", tradeBucketsQuery, variables)
	if err != nil {
		return nil, fmt.Errorf("trade buckets %s: %w", mint, err)
	}

	buckets := make([]models.TradeBucket, 0, len(entries))
	for _, e := range entries {
		b := models.TradeBucket{
			Open:   util.ParseFloat(e.Open, 0),
			High:   util.ParseFloat(e.Max, 0),
			Low:    util.ParseFloat(e.Min, 0),
			Close:  util.ParseFloat(e.Close, 0),
			Volume: util.ParseFloat(e.Volume, 0),
		}
		if e.Block != nil {
			if t, ok := util.ParseTime(e.Block.Time); ok {
				b.Time = t
			}
		}
		buckets = append(buckets, b)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Time.Before(buckets[j].Time)
	})
	return buckets, nil
}

// TrendingTokens returns the ten most traded tokens against SOL over
// the last hour, ordered by trade count.
func (c *Client) TrendingTokens(ctx context.Context) ([]models.TrendingToken, error) {
	timeSince := c.now().UTC().Add(-lookbackWindow).Format("2006-01-02T15:04:05Z")
	variables := map[string]interface{}{
		"time_since": timeSince,
		"limit":      trendingLimit,
	}

	entries, err := c.query(ctx, "trending tokens", trendingTokensQuery, variables)
	if err != nil {
		return nil, fmt.Errorf("trending tokens: %w", err)
	}

	tokens := make([]models.TrendingToken, 0, len(entries))
	for _, e := range entries {
		t := models.TrendingToken{
			Makers:            util.ParseInt(e.Makers, 0),
			TotalTrades:       util.ParseInt(e.TotalTrades, 0),
			TotalTradedVolume: util.ParseFloat(e.TotalTradedVolume, 0),
			TotalBuyVolume:    util.ParseFloat(e.TotalBuyVolume, 0),
			TotalSellVolume:   util.ParseFloat(e.TotalSellVolume, 0),
			TotalBuys:         util.ParseInt(e.TotalBuys, 0),
			TotalSells:        util.ParseInt(e.TotalSells, 0),
		}
		if ti := e.Trade; ti != nil {
			if ti.Currency != nil {
				t.Currency = models.TrendingCurrency{
					Name:        ti.Currency.Name,
					MintAddress: ti.Currency.MintAddress,
					Symbol:      ti.Currency.Symbol,
				}
			}
			t.Price = models.TrendingPrice{
				Start: util.ParseFloat(ti.Start, 0),
				Min5:  util.ParseFloat(ti.Min5, 0),
				End:   util.ParseFloat(ti.End, 0),
			}
			if ti.Dex != nil {
				t.Dex = models.TrendingDex{
					ProtocolName:   ti.Dex.ProtocolName,
					ProtocolFamily: ti.Dex.ProtocolFamily,
					ProgramAddress: ti.Dex.ProgramAddress,
				}
			}
			if ti.Market != nil {
				t.MarketAddress = ti.Market.MarketAddress
			}
			if ti.Side != nil && ti.Side.Currency != nil {
				t.SideCurrency = models.TrendingCurrency{
					Name:        ti.Side.Currency.Name,
					MintAddress: ti.Side.Currency.MintAddress,
					Symbol:      ti.Side.Currency.Symbol,
				}
			}
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// query posts a GraphQL document and returns the trade entries, with
// transport failures retried and shape failures surfaced as permanent.
func (c *Client) query(ctx context.Context, op, document string, variables map[string]interface{}) ([]tradeEntry, error) {
	var entries []tradeEntry

	err := retry.Do(ctx, c.retry, func() error {
		var resp graphqlResponse
		err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
			Method: xhttp.MethodPost,
			URL:    c.url,
			Headers: map[string]string{
				"Authorization": "Bearer " + c.apiKey,
			},
			Body: graphqlRequest{Query: document, Variables: variables},
		}, &resp)
		if err != nil {
			if xhttp.IsRetryableStatus(err) || xhttp.IsNetworkError(err) {
				c.metrics.RecordUpstreamError("bitquery", "transport")
				c.log.Warn("bitquery request failed, retrying",
					applogger.String("op", op),
					applogger.Error(err),
				)
				return retry.Transient(err)
			}
			c.metrics.RecordUpstreamError("bitquery", "request")
			return err
		}

		if len(resp.Errors) > 0 {
			c.metrics.RecordUpstreamError("bitquery", "graphql")
			return models.NewDataShapeError("bitquery", "graphql error: %s", resp.Errors[0].Message)
		}
		if resp.Data == nil || resp.Data.Solana == nil {
			c.metrics.RecordUpstreamError("bitquery", "shape")
			return models.NewDataShapeError("bitquery", "missing Solana data for %s", op)
		}

		entries = resp.Data.Solana.DEXTradeByTokens
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
