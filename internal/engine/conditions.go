package engine

import (
	"errors"
	"fmt"
	"math"

	"StockScout/internal/model"
)

// Condition weights. A is the price band, B..G are the technical conditions.
const (
	weightA = 10.0
	weightB = 15.0
	weightC = 15.0
	weightD = 15.0
	weightE = 15.0
	weightG = 15.0
)

// Condition F splits its 15 points into a base award for a bullish MA
// stack and a capped bonus for the MA5 angle.
const (
	alignBase     = 10.0
	alignBonusCap = 5.0
)

// Liquidity thresholds for condition B, in KRW.
const (
	liquidityFloor = 10_000_000_000
	liquidityFull  = 20_000_000_000
)

// condPriceBand (A) gives full credit for a close inside [1000, 50000] KRW.
// Above the ceiling the credit decays by 1 point per 5000 KRW, reaching
// zero at 100000. Below the floor there is no credit.
func condPriceBand(s *model.PriceSeries) (float64, string, *model.Marker, error) {
	c := s.Last().Close
	detail := fmt.Sprintf("close %.0f", c)
	switch {
	case c < 1000:
		return 0, detail, nil, nil
	case c <= 50000:
		return weightA, detail, nil, nil
	default:
		score := weightA - (c-50000)/5000
		if score < 0 {
			score = 0
		}
		return score, detail, nil, nil
	}
}

// condLiquidity (B) scores the maximum single-session traded value
// (volume x close) over the last 5 sessions: no credit below 10B KRW,
// full credit at 20B, linear in between.
func condLiquidity(s *model.PriceSeries) (float64, string, *model.Marker, error) {
	n := s.Len()
	if n < 5 {
		return 0, "", nil, errors.New("fewer than 5 sessions")
	}
	best := -1
	maxVal := 0.0
	for i := n - 5; i < n; i++ {
		v := s.Bars[i].Volume * s.Bars[i].Close
		if best == -1 || v > maxVal {
			maxVal = v
			best = i
		}
	}
	detail := fmt.Sprintf("peak value %.1fB", maxVal/1e9)
	marker := &model.Marker{
		Date:  s.Bars[best].Date,
		Price: s.Bars[best].Close,
		Label: detail,
	}
	var score float64
	switch {
	case maxVal < liquidityFloor:
		score = 0
	case maxVal >= liquidityFull:
		score = weightB
	default:
		score = weightB * (maxVal - liquidityFloor) / (liquidityFull - liquidityFloor)
	}
	return score, detail, marker, nil
}

// condBase (C) measures how far the close has risen above the minimum
// low of the 20-session window ending 5 sessions back. Full credit when
// still at the base, decaying linearly to zero at a 35% rise.
func condBase(s *model.PriceSeries) (float64, string, *model.Marker, error) {
	n := s.Len()
	if n < 25 {
		return 0, "", nil, errors.New("fewer than 25 sessions")
	}
	best := n - 25
	minLow := s.Bars[best].Low
	for i := n - 25; i < n-5; i++ {
		if s.Bars[i].Low < minLow {
			minLow = s.Bars[i].Low
			best = i
		}
	}
	if minLow <= 0 {
		return 0, "", nil, errors.New("non-positive period low")
	}
	rise := (s.Last().Close - minLow) / minLow
	detail := fmt.Sprintf("rise %.1f%% off low %.0f", rise*100, minLow)
	marker := &model.Marker{
		Date:  s.Bars[best].Date,
		Price: minLow,
		Label: "period low",
	}
	score := weightC * (1 - rise/0.35)
	if score < 0 {
		score = 0
	}
	if score > weightC {
		score = weightC
	}
	return score, detail, marker, nil
}

// condSpike (D) looks for a momentum spike in the last 11 sessions: the
// maximum ratio of a session's high to the previous close. No credit
// below 1.10, full credit at 1.25, linear in between. A spike marker is
// recorded once the ratio reaches 1.15.
func condSpike(s *model.PriceSeries) (float64, string, *model.Marker, error) {
	n := s.Len()
	if n < 11 {
		return 0, "", nil, errors.New("fewer than 11 sessions")
	}
	best := -1
	maxRatio := 0.0
	for i := n - 10; i < n; i++ {
		prev := s.Bars[i-1].Close
		if prev <= 0 {
			continue
		}
		ratio := s.Bars[i].High / prev
		if ratio > maxRatio {
			maxRatio = ratio
			best = i
		}
	}
	if best == -1 {
		return 0, "", nil, errors.New("no valid session pair")
	}
	detail := fmt.Sprintf("max spike %.1f%%", (maxRatio-1)*100)
	var marker *model.Marker
	if maxRatio >= 1.15 {
		marker = &model.Marker{
			Date:  s.Bars[best].Date,
			Price: s.Bars[best].High,
			Label: fmt.Sprintf("+%.1f%%", (maxRatio-1)*100),
		}
	}
	var score float64
	switch {
	case maxRatio < 1.10:
		score = 0
	case maxRatio >= 1.25:
		score = weightD
	default:
		score = weightD * (maxRatio - 1.10) / 0.15
	}
	return score, detail, marker, nil
}

// condRetention (E) scores how close the current price holds to the
// 10-session high: no credit at 85% or below, full credit at 100%.
func condRetention(s *model.PriceSeries) (float64, string, *model.Marker, error) {
	n := s.Len()
	if n < 10 {
		return 0, "", nil, errors.New("fewer than 10 sessions")
	}
	maxHigh := s.Bars[n-10].High
	for i := n - 10; i < n; i++ {
		if s.Bars[i].High > maxHigh {
			maxHigh = s.Bars[i].High
		}
	}
	if maxHigh <= 0 {
		return 0, "", nil, errors.New("non-positive period high")
	}
	ratio := s.Last().Close / maxHigh
	detail := fmt.Sprintf("retention %.1f%%", ratio*100)
	var score float64
	switch {
	case ratio <= 0.85:
		score = 0
	case ratio >= 1.0:
		score = weightE
	default:
		score = weightE * (ratio - 0.85) / 0.15
	}
	return score, detail, nil, nil
}

// condAlignment (F) awards 10 base points for a full bullish MA stack
// (MA5 > MA20 > MA60), plus up to 5 bonus points equal to the
// percentage rise of MA5 versus its value 3 sessions prior. A falling
// MA5 earns no bonus but no penalty either.
func condAlignment(s *model.PriceSeries) (float64, string, *model.Marker, error) {
	n := s.Len()
	if n < 4 {
		return 0, "", nil, errors.New("fewer than 4 sessions")
	}
	ma5 := s.MA5[n-1]
	ma20 := s.MA20[n-1]
	ma60 := s.MA60[n-1]
	if math.IsNaN(ma5) || math.IsNaN(ma20) || math.IsNaN(ma60) {
		return 0, "", nil, errors.New("moving averages not warmed up")
	}
	var base float64
	if ma5 > ma20 && ma20 > ma60 {
		base = alignBase
	}
	prior := s.MA5[n-4]
	if math.IsNaN(prior) || prior == 0 {
		return 0, "", nil, errors.New("MA5 angle reference unavailable")
	}
	angle := (ma5 - prior) / prior * 100
	bonus := angle
	if bonus < 0 {
		bonus = 0
	}
	if bonus > alignBonusCap {
		bonus = alignBonusCap
	}
	detail := fmt.Sprintf("stack %v, angle %+.2f%%", base > 0, angle)
	return base + bonus, detail, nil, nil
}

// condTightness (G) rewards a close hugging MA5: full credit at zero
// deviation, decaying linearly to zero credit at a 5% deviation.
func condTightness(s *model.PriceSeries) (float64, string, *model.Marker, error) {
	n := s.Len()
	ma5 := s.MA5[n-1]
	if math.IsNaN(ma5) || ma5 == 0 {
		return 0, "", nil, errors.New("MA5 unavailable")
	}
	dev := math.Abs(1 - s.Last().Close/ma5)
	detail := fmt.Sprintf("deviation %.2f%%", dev*100)
	if dev > 0.05 {
		return 0, detail, nil, nil
	}
	score := weightG * (1 - dev/0.05)
	var marker *model.Marker
	if score > 0 {
		marker = &model.Marker{
			Date:  s.Last().Date,
			Price: s.Last().Close,
			Label: "tight to MA5",
		}
	}
	return score, detail, marker, nil
}
