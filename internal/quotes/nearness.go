package quotes

import "math"

// Nearness computes a price's position within its 52-week range as a
// percentage: 0 at the low, 100 at the high, rounded to two decimals.
//
// Rules, in order:
//   - any nil input, or price below low → nil (the price being under
//     the recorded low is treated as unreliable data, not clamped).
//   - zero-width range → 0.0 (price equals both bounds).
//   - otherwise ((price-low)/(high-low))*100, clamped to 100 when the
//     price sits above the recorded high so the result always lies in
//     [0,100].
//
// Pure function: no I/O, no side effects.
func Nearness(price, low, high *float64) *float64 {
	if price == nil || low == nil || high == nil || *price < *low {
		return nil
	}

	span := *high - *low
	if span == 0 {
		v := 0.0
		return &v
	}

	v := math.Round(((*price-*low)/span)*100*100) / 100
	if v > 100 {
		v = 100
	}
	return &v
}

// round2 rounds to two decimal places; prices are reported at paise
// precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
