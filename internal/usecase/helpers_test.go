package usecase

import (
	"context"
	"testing"
	"time"

	"SolPulse/internal/domain/models"
	applogger "SolPulse/pkg/logger"
)

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

type noopMetrics struct{}

func (noopMetrics) RecordOperation(string, string)     {}
func (noopMetrics) RecordError(string)                 {}
func (noopMetrics) RecordUpstreamError(string, string) {}
func (noopMetrics) RecordLLMCall(string, string)       {}
func (noopMetrics) RecordCache(string, string)         {}
func (noopMetrics) RecordLatency(string, float64)      {}

type fakeHolderSource struct {
	holders []models.HolderRecord
	err     error
}

func (f *fakeHolderSource) TokenHolders(_ context.Context, _ string, limit int) ([]models.HolderRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.holders) > limit {
		return f.holders[:limit], nil
	}
	return f.holders, nil
}

type fakeAssetSource struct {
	assets map[string][]models.AssetHolding
	errs   map[string]error
	delays map[string]time.Duration
	swaps  []models.SwapRecord
	swapsE error
}

func (f *fakeAssetSource) WalletAssets(ctx context.Context, owner string) ([]models.AssetHolding, error) {
	if d, ok := f.delays[owner]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err, ok := f.errs[owner]; ok {
		return nil, err
	}
	return f.assets[owner], nil
}

func (f *fakeAssetSource) SwapHistory(_ context.Context, _ string) ([]models.SwapRecord, error) {
	if f.swapsE != nil {
		return nil, f.swapsE
	}
	return f.swaps, nil
}

type fakeTradeSource struct {
	buckets  []models.TradeBucket
	trending []models.TrendingToken
	err      error
}

func (f *fakeTradeSource) TradeBuckets(_ context.Context, _ string) ([]models.TradeBucket, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.buckets, nil
}

func (f *fakeTradeSource) TrendingTokens(_ context.Context) ([]models.TrendingToken, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.trending, nil
}
