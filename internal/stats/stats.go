// Package stats computes summary figures over transaction records for
// agent-facing output.
package stats

import (
	"sort"

	"github.com/reinfolib/reinfolib-cli/internal/api"
)

// Summary aggregates one transaction price listing.
type Summary struct {
	Count       int             `json:"count"`
	Priced      int             `json:"priced"` // records carrying a trade price
	MeanPrice   float64         `json:"mean_price"`
	MedianPrice float64         `json:"median_price"`
	MinPrice    int64           `json:"min_price"`
	MaxPrice    int64           `json:"max_price"`
	ByType      []TypeBreakdown `json:"by_type"`
}

// TypeBreakdown summarizes the records of one property type.
type TypeBreakdown struct {
	Type        string  `json:"type"`
	Count       int     `json:"count"`
	MeanPrice   float64 `json:"mean_price"`
	MedianPrice float64 `json:"median_price"`
}

// Summarize computes price figures over the records. Records without a
// trade price still count but are excluded from the price figures.
func Summarize(records []api.TransactionPrice) Summary {
	summary := Summary{Count: len(records)}

	var prices []int64
	byType := map[string][]int64{}
	typeOrder := []string{}
	typeCounts := map[string]int{}

	for _, rec := range records {
		key := rec.Type
		if key == "" {
			key = "unknown"
		}
		if _, seen := typeCounts[key]; !seen {
			typeOrder = append(typeOrder, key)
		}
		typeCounts[key]++

		price := int64(rec.TradePrice)
		if price <= 0 {
			continue
		}
		prices = append(prices, price)
		byType[key] = append(byType[key], price)
	}

	summary.Priced = len(prices)
	if len(prices) > 0 {
		sort.Slice(prices, func(i, j int) bool { return prices[i] < prices[j] })
		summary.MinPrice = prices[0]
		summary.MaxPrice = prices[len(prices)-1]
		summary.MeanPrice = mean(prices)
		summary.MedianPrice = median(prices)
	}

	sort.Slice(typeOrder, func(i, j int) bool {
		if typeCounts[typeOrder[i]] != typeCounts[typeOrder[j]] {
			return typeCounts[typeOrder[i]] > typeCounts[typeOrder[j]]
		}
		return typeOrder[i] < typeOrder[j]
	})

	for _, key := range typeOrder {
		breakdown := TypeBreakdown{Type: key, Count: typeCounts[key]}
		if priced := byType[key]; len(priced) > 0 {
			sort.Slice(priced, func(i, j int) bool { return priced[i] < priced[j] })
			breakdown.MeanPrice = mean(priced)
			breakdown.MedianPrice = median(priced)
		}
		summary.ByType = append(summary.ByType, breakdown)
	}

	return summary
}

// mean expects a non-empty slice.
func mean(sorted []int64) float64 {
	var total int64
	for _, v := range sorted {
		total += v
	}
	return float64(total) / float64(len(sorted))
}

// median expects a sorted non-empty slice.
func median(sorted []int64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}
