package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"wolfstreet/internal/cache"
)

const (
	analysisCacheTTL  = time.Minute
	analysisSeriesLen = 60
	defaultLookback   = 50
)

// AnalysisRequest describes a market analysis query.
type AnalysisRequest struct {
	Symbol    string
	Timeframe string
	Strategy  string
	Lookback  int
}

// AnalysisResult is the computed signal for a symbol. Price values are
// rounded to two decimal places.
type AnalysisResult struct {
	Symbol     string          `json:"symbol"`
	Timeframe  string          `json:"timeframe"`
	Strategy   string          `json:"strategy"`
	SMA        decimal.Decimal `json:"sma"`
	Last       decimal.Decimal `json:"last"`
	Signal     string          `json:"signal"`
	Confidence float64         `json:"confidence"`
}

// AnalysisService produces placeholder market analysis. The price series is
// synthesized, not ingested; only the moving-average arithmetic is real.
type AnalysisService interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
}

type analysisService struct {
	cache *cache.Client
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(cache *cache.Client) AnalysisService {
	return &analysisService{cache: cache}
}

func analysisCacheKey(req AnalysisRequest) string {
	return fmt.Sprintf("analysis:%s:%s:%s:%d", req.Symbol, req.Timeframe, req.Strategy, req.Lookback)
}

// Analyze synthesizes a price series and computes a simple moving-average
// signal. Results are cached briefly so repeated queries for the same symbol
// return a stable snapshot within the window.
func (s *analysisService) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	req.Symbol = strings.ToUpper(req.Symbol)
	if req.Timeframe == "" {
		req.Timeframe = "1D"
	}
	if req.Strategy == "" {
		req.Strategy = "SMA"
	}
	if req.Lookback <= 0 {
		req.Lookback = defaultLookback
	}

	if data, _ := s.cache.Get(ctx, analysisCacheKey(req)); data != nil {
		var cached AnalysisResult
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	prices := synthesizePrices(analysisSeriesLen)

	window := req.Lookback
	if window > len(prices) {
		window = len(prices)
	}
	var sum float64
	for _, p := range prices[len(prices)-window:] {
		sum += p
	}
	sma := sum / float64(window)
	last := prices[len(prices)-1]

	signal := "sell"
	confidence := 0.55
	if last > sma {
		signal = "buy"
		confidence = 0.62
	}

	result := &AnalysisResult{
		Symbol:     req.Symbol,
		Timeframe:  req.Timeframe,
		Strategy:   req.Strategy,
		SMA:        decimal.NewFromFloat(sma).Round(2),
		Last:       decimal.NewFromFloat(last).Round(2),
		Signal:     signal,
		Confidence: confidence,
	}

	if payload, err := json.Marshal(result); err == nil {
		_ = s.cache.Set(ctx, analysisCacheKey(req), payload, analysisCacheTTL)
	}
	return result, nil
}

// synthesizePrices builds a drifting sine series with jitter around 100.
func synthesizePrices(n int) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = 100 + math.Sin(float64(i)/3)*5 + (rand.Float64()*2 - 1)
	}
	return prices
}
