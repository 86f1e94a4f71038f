package helius

import (
	"testing"

	"SolPulse/internal/domain/models"
)

func swapTx(ev *swapEvent) transaction {
	return transaction{
		Type:      "SWAP",
		FeePayer:  "payer",
		Timestamp: 1724800000,
		Events:    txnEvents{Swap: ev},
	}
}

func TestDecodeSwapBuy(t *testing.T) {
	rec := decodeSwap(swapTx(&swapEvent{
		NativeInput: &nativeAmount{Amount: float64(1500000000)},
		TokenOutputs: []tokenTransfer{{
			Mint:           "mint-out",
			RawTokenAmount: rawAmount{TokenAmount: float64(250000), Decimals: 3},
		}},
	}))

	if rec.Type != "BUY" {
		t.Fatalf("type = %s, want BUY", rec.Type)
	}
	if rec.TokenInAddress != models.NativeSOLMint {
		t.Fatalf("token in = %s", rec.TokenInAddress)
	}
	if rec.TokenInAmount != 1.5 {
		t.Fatalf("token in amount = %v, want 1.5", rec.TokenInAmount)
	}
	if rec.TokenOutAddress != "mint-out" || rec.TokenOutAmount != 250 {
		t.Fatalf("token out = %s/%v", rec.TokenOutAddress, rec.TokenOutAmount)
	}
}

func TestDecodeSwapSell(t *testing.T) {
	rec := decodeSwap(swapTx(&swapEvent{
		TokenInputs: []tokenTransfer{{
			Mint:           "mint-in",
			RawTokenAmount: rawAmount{TokenAmount: "1000000", Decimals: 6},
		}},
		NativeOutput: &nativeAmount{Amount: "2000000000"},
	}))

	if rec.Type != "SELL" {
		t.Fatalf("type = %s, want SELL", rec.Type)
	}
	if rec.TokenInAddress != "mint-in" || rec.TokenInAmount != 1 {
		t.Fatalf("token in = %s/%v", rec.TokenInAddress, rec.TokenInAmount)
	}
	if rec.TokenOutAddress != models.NativeSOLMint || rec.TokenOutAmount != 2 {
		t.Fatalf("token out = %s/%v", rec.TokenOutAddress, rec.TokenOutAmount)
	}
}

func TestDecodeSwapTokenToToken(t *testing.T) {
	rec := decodeSwap(swapTx(&swapEvent{
		TokenInputs: []tokenTransfer{{
			Mint:           "mint-in",
			RawTokenAmount: rawAmount{TokenAmount: float64(10), Decimals: 0},
		}},
		TokenOutputs: []tokenTransfer{{
			Mint:           "mint-out",
			RawTokenAmount: rawAmount{TokenAmount: float64(20), Decimals: 0},
		}},
	}))

	if rec.Type != "SWAP" {
		t.Fatalf("type = %s, want SWAP", rec.Type)
	}
}

func TestSortHoldersByAmount(t *testing.T) {
	holders := []models.HolderRecord{
		{Address: "b", Amount: "100"},
		{Address: "c", Amount: "300"},
		{Address: "a", Amount: "100"},
	}
	sortHoldersByAmount(holders)

	if holders[0].Address != "c" {
		t.Fatalf("holders[0] = %s, want c", holders[0].Address)
	}
	// equal amounts fall back to address order for determinism
	if holders[1].Address != "a" || holders[2].Address != "b" {
		t.Fatalf("tie break order = %s,%s", holders[1].Address, holders[2].Address)
	}
}
