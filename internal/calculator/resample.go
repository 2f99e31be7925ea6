package calculator

import "StockScout/internal/model"

// ResampleWeekly aggregates daily bars into one bar per ISO week:
// open of the first session, max high, min low, close of the last
// session, summed volume. The bar keeps the date of the week's last
// session (Friday on a full week).
func ResampleWeekly(daily []model.Bar) []model.Bar {
	return resample(daily, func(b model.Bar) int {
		year, week := b.Date.ISOWeek()
		return year*100 + week
	})
}

// ResampleMonthly aggregates daily bars into one bar per calendar month.
func ResampleMonthly(daily []model.Bar) []model.Bar {
	return resample(daily, func(b model.Bar) int {
		return b.Date.Year()*100 + int(b.Date.Month())
	})
}

func resample(daily []model.Bar, bucket func(model.Bar) int) []model.Bar {
	if len(daily) == 0 {
		return nil
	}
	var out []model.Bar
	var cur model.Bar
	curKey := -1

	for _, d := range daily {
		key := bucket(d)
		if key != curKey {
			if curKey != -1 {
				out = append(out, cur)
			}
			cur = d
			curKey = key
			continue
		}
		if d.High > cur.High {
			cur.High = d.High
		}
		if d.Low < cur.Low {
			cur.Low = d.Low
		}
		cur.Close = d.Close
		cur.Volume += d.Volume
		cur.Date = d.Date
	}
	out = append(out, cur)
	return out
}
