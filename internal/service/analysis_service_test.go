package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnalysisService_Analyze_Defaults(t *testing.T) {
	service := NewAnalysisService(nil)

	result, err := service.Analyze(context.Background(), AnalysisRequest{Symbol: "aapl"})
	assert.NoError(t, err)

	assert.Equal(t, "AAPL", result.Symbol)
	assert.Equal(t, "1D", result.Timeframe)
	assert.Equal(t, "SMA", result.Strategy)
	assert.Contains(t, []string{"buy", "sell"}, result.Signal)
}

func TestAnalysisService_Analyze_SignalConfidence(t *testing.T) {
	service := NewAnalysisService(nil)

	for i := 0; i < 20; i++ {
		result, err := service.Analyze(context.Background(), AnalysisRequest{Symbol: "BTC", Lookback: 20})
		assert.NoError(t, err)
		if result.Signal == "buy" {
			assert.Equal(t, 0.62, result.Confidence)
		} else {
			assert.Equal(t, "sell", result.Signal)
			assert.Equal(t, 0.55, result.Confidence)
		}
	}
}

func TestAnalysisService_Analyze_PriceBounds(t *testing.T) {
	service := NewAnalysisService(nil)

	// Series is 100 + sin*5 + jitter of at most 1, so every value and every
	// average stays inside [94, 106].
	low := decimal.NewFromInt(94)
	high := decimal.NewFromInt(106)

	result, err := service.Analyze(context.Background(), AnalysisRequest{Symbol: "ETH", Lookback: 50})
	assert.NoError(t, err)
	for _, v := range []decimal.Decimal{result.SMA, result.Last} {
		assert.True(t, v.GreaterThanOrEqual(low), "value %s below bound", v)
		assert.True(t, v.LessThanOrEqual(high), "value %s above bound", v)
	}
}

func TestAnalysisService_Analyze_LookbackBeyondSeries(t *testing.T) {
	service := NewAnalysisService(nil)

	// Lookback larger than the synthesized series falls back to the whole
	// series instead of failing.
	result, err := service.Analyze(context.Background(), AnalysisRequest{Symbol: "MSFT", Lookback: 500})
	assert.NoError(t, err)
	assert.False(t, result.SMA.IsZero())
}
