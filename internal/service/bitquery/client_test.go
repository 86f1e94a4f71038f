package bitquery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"SolPulse/internal/domain/models"
	"SolPulse/pkg/config"
	applogger "SolPulse/pkg/logger"
)

type noopMetrics struct{}

func (noopMetrics) RecordOperation(string, string)     {}
func (noopMetrics) RecordError(string)                 {}
func (noopMetrics) RecordUpstreamError(string, string) {}
func (noopMetrics) RecordLLMCall(string, string)       {}
func (noopMetrics) RecordCache(string, string)         {}
func (noopMetrics) RecordLatency(string, float64)      {}

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Bitquery.APIKey = "test-key"
	cfg.Bitquery.URL = srv.URL
	cfg.Bitquery.Timeout = 5 * time.Second
	cfg.Retry.MaxAttempts = 1
	cfg.Retry.InitialInterval = time.Millisecond
	cfg.Retry.MaxInterval = time.Millisecond

	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return New(cfg, l, noopMetrics{}), srv
}

func TestTradeBucketsParsing(t *testing.T) {
	payload := `{"data":{"Solana":{"DEXTradeByTokens":[
		{"Block":{"Time":"2026-08-28T12:05:00Z"},"open":1.1,"max":1.3,"min":1.0,"close":1.2,"volume":"500.5"},
		{"Block":{"Time":"2026-08-28T12:00:00Z"},"open":1.0,"max":1.2,"min":0.9,"close":1.1,"volume":"1000"}
	]}}}`

	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		var req graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Variables["base"] != "mint" {
			t.Errorf("base = %v", req.Variables["base"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	})

	buckets, err := c.TradeBuckets(context.Background(), "mint")
	if err != nil {
		t.Fatalf("trade buckets: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("buckets = %d, want 2", len(buckets))
	}
	// ascending time order regardless of response order
	if !buckets[0].Time.Before(buckets[1].Time) {
		t.Fatalf("buckets not sorted ascending: %v, %v", buckets[0].Time, buckets[1].Time)
	}
	if buckets[0].Volume != 1000 || buckets[1].Volume != 500.5 {
		t.Fatalf("volumes = %v, %v", buckets[0].Volume, buckets[1].Volume)
	}
}

func TestTradeBucketsShapeError(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	})

	_, err := c.TradeBuckets(context.Background(), "mint")
	if !models.IsDataShapeError(err) {
		t.Fatalf("err = %v, want data shape error", err)
	}
}

func TestTrendingTokensParsing(t *testing.T) {
	payload := `{"data":{"Solana":{"DEXTradeByTokens":[
		{
			"Trade":{
				"Currency":{"Name":"Token A","MintAddress":"mint-a","Symbol":"TKA"},
				"start":1.0,"min5":0.9,"end":1.5,
				"Dex":{"ProtocolName":"raydium","ProtocolFamily":"Raydium","ProgramAddress":"prog"},
				"Market":{"MarketAddress":"market-a"},
				"Side":{"Currency":{"Name":"Wrapped Solana","MintAddress":"So11111111111111111111111111111111111111112","Symbol":"WSOL"}}
			},
			"makers":"42","total_trades":"1000",
			"total_traded_volume":"123456.7","total_buy_volume":"100000","total_sell_volume":"23456.7",
			"total_buys":"600","total_sells":"400"
		}
	]}}}`

	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	})

	tokens, err := c.TrendingTokens(context.Background())
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("tokens = %d, want 1", len(tokens))
	}
	tok := tokens[0]
	if tok.Currency.MintAddress != "mint-a" || tok.Currency.Symbol != "TKA" {
		t.Fatalf("currency = %+v", tok.Currency)
	}
	if tok.Makers != 42 || tok.TotalTrades != 1000 || tok.TotalBuys != 600 || tok.TotalSells != 400 {
		t.Fatalf("counts = %+v", tok)
	}
	if tok.TotalTradedVolume != 123456.7 {
		t.Fatalf("volume = %v", tok.TotalTradedVolume)
	}
	if tok.Price.End != 1.5 {
		t.Fatalf("price end = %v", tok.Price.End)
	}
	if tok.MarketAddress != "market-a" {
		t.Fatalf("market = %s", tok.MarketAddress)
	}
}

func TestTransportErrorRetried(t *testing.T) {
	attempts := 0
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"Solana":{"DEXTradeByTokens":[]}}}`))
	})
	c.retry.MaxAttempts = 3

	buckets, err := c.TradeBuckets(context.Background(), "mint")
	if err != nil {
		t.Fatalf("trade buckets: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("attempts = %d, want 2", attempts)
	}
	if len(buckets) != 0 {
		t.Fatalf("buckets = %d, want 0", len(buckets))
	}
}
