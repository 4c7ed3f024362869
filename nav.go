package fundfolio

import (
	"context"
	"sort"
)

// NAVPoint is a fund's published net asset value per unit on one date.
type NAVPoint struct {
	Date Date
	NAV  Money
}

// NAVSeries is a daily series of published unit values.
type NAVSeries []NAVPoint

// Normalize returns a copy sorted by ascending date with duplicate dates
// collapsed, keeping the last point recorded for each date.
func (s NAVSeries) Normalize() NAVSeries {
	if len(s) == 0 {
		return nil
	}
	sorted := make(NAVSeries, len(s))
	copy(sorted, s)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	out := sorted[:0]
	for _, p := range sorted {
		if len(out) > 0 && out[len(out)-1].Date == p.Date {
			out[len(out)-1] = p
			continue
		}
		out = append(out, p)
	}
	return out
}

// NAVSource provides the published value series for a scheme.
type NAVSource interface {
	Series(ctx context.Context, schemeID string) (NAVSeries, error)
}

// StaticNAVSource serves preloaded series keyed by scheme id.
type StaticNAVSource map[string]NAVSeries

func (s StaticNAVSource) Series(_ context.Context, schemeID string) (NAVSeries, error) {
	return s[schemeID], nil
}
