package engine

import (
	"log"
	"math"
	"strings"
	"time"

	"StockScout/internal/calculator"
	"StockScout/internal/model"
	"StockScout/internal/provider"
)

const (
	// lookbackDays is the calendar window requested from the provider;
	// 150 days comfortably yields the 60 sessions MA60 needs.
	lookbackDays = 150
	// minBars is the minimum usable session count for an evaluation.
	minBars = 60
)

// evaluator computes one condition's sub-score from the price series.
type evaluator func(*model.PriceSeries) (score float64, detail string, marker *model.Marker, err error)

var conditions = []struct {
	Key  string
	Eval evaluator
}{
	{"A", condPriceBand},
	{"B", condLiquidity},
	{"C", condBase},
	{"D", condSpike},
	{"E", condRetention},
	{"F", condAlignment},
	{"G", condTightness},
}

// Engine scores single tickers against the seven weighted conditions.
type Engine struct {
	Provider provider.Provider
}

// New creates a scoring engine backed by the given data provider.
func New(p provider.Provider) *Engine {
	return &Engine{Provider: p}
}

// Evaluate produces the score report for one ticker as of the given
// date (zero value means now). A provider fault or insufficient history
// yields a zero report rather than an error: the scan must go on.
func (e *Engine) Evaluate(code string, asOf time.Time) *model.Report {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	from := asOf.AddDate(0, 0, -lookbackDays)

	bars, err := e.Provider.DailyBars(code, from, asOf)
	if err != nil {
		log.Printf("[WARN] %s: fetch daily bars: %v", code, err)
		return zeroReport(code)
	}
	if len(bars) < minBars {
		log.Printf("[WARN] %s: only %d bars, need %d", code, len(bars), minBars)
		return zeroReport(code)
	}

	series := calculator.BuildSeries(code, bars)
	n := series.Len()
	cur := series.Last().Close
	prev := series.Bars[n-2].Close
	chgPct := 0.0
	if prev > 0 {
		chgPct = math.Round((cur-prev)/prev*100*100) / 100
	}

	report := &model.Report{
		Symbol:     code,
		Conditions: make(map[string]model.ConditionResult, len(conditions)),
		Price:      cur,
		ChangePct:  chgPct,
		Daily:      series,
		Weekly:     calculator.ResampleWeekly(bars),
		Monthly:    calculator.ResampleMonthly(bars),
	}

	total := 0.0
	var passed []string
	for _, c := range conditions {
		score, detail, marker, err := c.Eval(series)
		if err != nil {
			log.Printf("[WARN] %s: condition %s: %v", code, c.Key, err)
			report.Conditions[c.Key] = model.ConditionResult{
				Status: model.StatusError,
				Detail: err.Error(),
			}
			continue
		}
		status := model.StatusFail
		if score > 0 {
			status = model.StatusPass
			passed = append(passed, c.Key)
		}
		if marker != nil {
			report.Markers = append(report.Markers, *marker)
		}
		report.Conditions[c.Key] = model.ConditionResult{
			Status: status,
			Score:  score,
			Detail: detail,
		}
		total += score
	}

	report.Score = math.Round(total*10) / 10
	if len(passed) > 0 {
		report.Passed = strings.Join(passed, ",")
	} else {
		report.Passed = "None"
	}
	return report
}

func zeroReport(code string) *model.Report {
	return &model.Report{
		Symbol:     code,
		Conditions: map[string]model.ConditionResult{},
		Passed:     "None",
	}
}
