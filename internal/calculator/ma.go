package calculator

import (
	"math"

	"StockScout/internal/model"
)

// RollingSMA computes the simple moving average at every index.
// Indices before the warmup period hold NaN.
func RollingSMA(prices []float64, period int) []float64 {
	out := make([]float64, len(prices))
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// BuildSeries wraps daily bars into a PriceSeries with the 5/20/60
// moving averages computed once and cached alongside the bars.
func BuildSeries(symbol string, bars []model.Bar) *model.PriceSeries {
	closes := extractCloses(bars)
	return &model.PriceSeries{
		Symbol: symbol,
		Bars:   bars,
		MA5:    RollingSMA(closes, 5),
		MA20:   RollingSMA(closes, 20),
		MA60:   RollingSMA(closes, 60),
	}
}

func extractCloses(bars []model.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
