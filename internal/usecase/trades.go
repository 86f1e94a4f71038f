package usecase

import (
	"context"
	"fmt"
	"time"

	"SolPulse/internal/domain/models"
	drepo "SolPulse/internal/domain/repository"
	applogger "SolPulse/pkg/logger"
)

// TradeOrganizer turns raw OHLCV buckets into a trading summary.
type TradeOrganizer struct {
	source drepo.TradeSource
	log    *applogger.Logger
	now    func() time.Time
}

// NewTradeOrganizer creates a TradeOrganizer.
func NewTradeOrganizer(source drepo.TradeSource, l *applogger.Logger) *TradeOrganizer {
	return &TradeOrganizer{source: source, log: l, now: time.Now}
}

// TradingInfo fetches mint's recent buckets and computes the summary.
// An empty window is reported as ErrNoDataAvailable.
func (o *TradeOrganizer) TradingInfo(ctx context.Context, mint string) (*models.TradingInfo, error) {
	buckets, err := o.source.TradeBuckets(ctx, mint)
	if err != nil {
		return nil, fmt.Errorf("trading info: %w", err)
	}
	if len(buckets) == 0 {
		return nil, models.ErrNoDataAvailable
	}

	return &models.TradingInfo{
		Summary:      Summarize(buckets, o.now().UTC()),
		DetailedData: buckets,
	}, nil
}

// Summarize condenses an ascending bucket series into headline numbers.
// The percentage change is zero when the opening price is zero.
func Summarize(buckets []models.TradeBucket, at time.Time) models.TradeSummary {
	first := buckets[0]
	last := buckets[len(buckets)-1]

	change := last.Close - first.Open
	changePct := 0.0
	if first.Open != 0 {
		changePct = change / first.Open * 100
	}

	s := models.TradeSummary{
		CurrentPrice:   last.Close,
		PriceChange:    change,
		PriceChangePct: changePct,
		High:           buckets[0].High,
		Low:            buckets[0].Low,
		ComputedAt:     at,
	}
	for _, b := range buckets {
		if b.High > s.High {
			s.High = b.High
		}
		if b.Low < s.Low {
			s.Low = b.Low
		}
		s.TotalVolume += b.Volume
	}
	return s
}
