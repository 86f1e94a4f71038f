package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"SolPulse/internal/domain/models"
)

func holding(token string, value float64) models.AssetHolding {
	return models.AssetHolding{
		TokenAddress:  token,
		Symbol:        token[:3],
		PricePerToken: 1,
		TotalValue:    value,
	}
}

func TestAnalyzeMergesIdenticalHoldings(t *testing.T) {
	holders := []models.HolderRecord{
		{Address: "wallet-a", Amount: "300", Percentage: "50.00"},
		{Address: "wallet-b", Amount: "200", Percentage: "33.33"},
		{Address: "wallet-c", Amount: "100", Percentage: "16.67"},
	}
	shared := []models.AssetHolding{
		holding("tokenX", 100),
		holding("tokenY", 100),
		holding("tokenZ", 100),
	}
	assets := &fakeAssetSource{assets: map[string][]models.AssetHolding{
		"wallet-a": shared,
		"wallet-b": shared,
		"wallet-c": shared,
	}}

	a := NewHolderAnalyzer(&fakeHolderSource{holders: holders}, assets, testLogger(t))
	res, err := a.Analyze(context.Background(), "mint", 20)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if res.HoldersChecked != 3 {
		t.Fatalf("holders checked = %d, want 3", res.HoldersChecked)
	}
	if len(res.TopTokens) != 3 {
		t.Fatalf("top tokens = %d, want 3", len(res.TopTokens))
	}
	for _, agg := range res.TopTokens {
		if agg.TotalHoldingValue != 300 {
			t.Fatalf("token %s total = %v, want 300", agg.TokenAddress, agg.TotalHoldingValue)
		}
		if len(agg.Holders) != 3 {
			t.Fatalf("token %s holders = %d, want 3", agg.TokenAddress, len(agg.Holders))
		}
		if agg.GMGNReferralLink == "" {
			t.Fatalf("token %s missing referral link", agg.TokenAddress)
		}
	}
}

func TestAnalyzeAbsorbsWalletErrors(t *testing.T) {
	holders := []models.HolderRecord{
		{Address: "wallet-a", Amount: "300", Percentage: "60.00"},
		{Address: "wallet-b", Amount: "200", Percentage: "40.00"},
	}
	assets := &fakeAssetSource{
		assets: map[string][]models.AssetHolding{
			"wallet-a": {holding("tokenX", 150)},
		},
		errs: map[string]error{
			"wallet-b": errors.New("rpc timeout"),
		},
	}

	a := NewHolderAnalyzer(&fakeHolderSource{holders: holders}, assets, testLogger(t))
	res, err := a.Analyze(context.Background(), "mint", 20)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if len(res.TopTokens) != 1 {
		t.Fatalf("top tokens = %d, want 1", len(res.TopTokens))
	}
	agg := res.TopTokens[0]
	if agg.TotalHoldingValue != 150 || len(agg.Holders) != 1 {
		t.Fatalf("failed wallet contributed: total=%v holders=%d", agg.TotalHoldingValue, len(agg.Holders))
	}
	if agg.Holders[0].Address != "wallet-a" {
		t.Fatalf("holder = %s, want wallet-a", agg.Holders[0].Address)
	}
}

func TestAnalyzeDeterministicUnderLatency(t *testing.T) {
	holders := make([]models.HolderRecord, 6)
	assetMap := make(map[string][]models.AssetHolding)
	delays := map[string]time.Duration{}
	for i := range holders {
		addr := fmt.Sprintf("wallet-%d", i)
		holders[i] = models.HolderRecord{Address: addr, Amount: "100", Percentage: "16.67"}
		assetMap[addr] = []models.AssetHolding{holding("tokenX", float64(10*(i+1)))}
		delays[addr] = time.Duration(5-i) * 3 * time.Millisecond
	}
	assets := &fakeAssetSource{assets: assetMap, delays: delays}

	a := NewHolderAnalyzer(&fakeHolderSource{holders: holders}, assets, testLogger(t))

	var baseline *models.HolderAnalysis
	for run := 0; run < 3; run++ {
		res, err := a.Analyze(context.Background(), "mint", 20)
		if err != nil {
			t.Fatalf("analyze run %d: %v", run, err)
		}
		if baseline == nil {
			baseline = res
			continue
		}
		if len(res.TopTokens) != len(baseline.TopTokens) {
			t.Fatalf("run %d token count differs", run)
		}
		for i, agg := range res.TopTokens {
			want := baseline.TopTokens[i]
			if agg.TokenAddress != want.TokenAddress || agg.TotalHoldingValue != want.TotalHoldingValue {
				t.Fatalf("run %d aggregate %d differs: %+v vs %+v", run, i, agg, want)
			}
			for j, h := range agg.Holders {
				if h != want.Holders[j] {
					t.Fatalf("run %d holder order differs at %d: %+v vs %+v", run, j, h, want.Holders[j])
				}
			}
		}
	}
}

func TestAnalyzeCapsTopTokensAndHolders(t *testing.T) {
	holders := make([]models.HolderRecord, 8)
	assetMap := make(map[string][]models.AssetHolding)
	for i := range holders {
		addr := fmt.Sprintf("wallet-%d", i)
		holders[i] = models.HolderRecord{Address: addr, Amount: "100", Percentage: "12.50"}
		var hs []models.AssetHolding
		for tok := 0; tok < 7; tok++ {
			hs = append(hs, holding(fmt.Sprintf("token-%d", tok), float64(100+tok)))
		}
		assetMap[addr] = hs
	}

	a := NewHolderAnalyzer(&fakeHolderSource{holders: holders}, &fakeAssetSource{assets: assetMap}, testLogger(t))
	res, err := a.Analyze(context.Background(), "mint", 20)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if len(res.TopTokens) != 5 {
		t.Fatalf("top tokens = %d, want 5", len(res.TopTokens))
	}
	for _, agg := range res.TopTokens {
		if len(agg.Holders) != 5 {
			t.Fatalf("token %s holders = %d, want 5", agg.TokenAddress, len(agg.Holders))
		}
	}
}

func TestAnalyzeExcludesRaydium(t *testing.T) {
	holders := []models.HolderRecord{
		{Address: models.RaydiumAuthority, Amount: "900", Percentage: "90.00"},
		{Address: "wallet-a", Amount: "100", Percentage: "10.00"},
	}
	assets := &fakeAssetSource{assets: map[string][]models.AssetHolding{
		models.RaydiumAuthority: {holding("tokenX", 9000)},
		"wallet-a":              {holding("tokenX", 100)},
	}}

	a := NewHolderAnalyzer(&fakeHolderSource{holders: holders}, assets, testLogger(t))
	res, err := a.Analyze(context.Background(), "mint", 20)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if res.HoldersChecked != 1 {
		t.Fatalf("holders checked = %d, want 1", res.HoldersChecked)
	}
	if res.TopTokens[0].TotalHoldingValue != 100 {
		t.Fatalf("raydium contribution not excluded: %v", res.TopTokens[0].TotalHoldingValue)
	}
}

func TestAnalyzeEmptyHolders(t *testing.T) {
	a := NewHolderAnalyzer(&fakeHolderSource{}, &fakeAssetSource{}, testLogger(t))
	res, err := a.Analyze(context.Background(), "mint", 20)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.HoldersChecked != 0 || len(res.TopTokens) != 0 {
		t.Fatalf("want empty analysis, got %+v", res)
	}
}

func TestAnalyzeClampsTopN(t *testing.T) {
	holders := make([]models.HolderRecord, 150)
	for i := range holders {
		holders[i] = models.HolderRecord{Address: fmt.Sprintf("wallet-%d", i), Amount: "1", Percentage: "0.67"}
	}
	src := &fakeHolderSource{holders: holders}
	a := NewHolderAnalyzer(src, &fakeAssetSource{}, testLogger(t))

	res, err := a.Analyze(context.Background(), "mint", 500)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.HoldersChecked != 100 {
		t.Fatalf("holders checked = %d, want clamp to 100", res.HoldersChecked)
	}

	res, err = a.Analyze(context.Background(), "mint", 0)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.HoldersChecked != 20 {
		t.Fatalf("holders checked = %d, want default 20", res.HoldersChecked)
	}
}
