// Package classify derives trend and sustainability rankings from a
// catalog snapshot. All rankings are pure functions of the snapshot.
package classify

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/cryptobuddy/advisor/internal/modules/catalog"
	"github.com/cryptobuddy/advisor/pkg/formulas"
)

// RankedAsset pairs an asset with its sustainability score.
type RankedAsset struct {
	Asset catalog.AssetRecord `json:"asset"`
	Score float64             `json:"score"`
}

// Summary aggregates catalog-wide statistics.
type Summary struct {
	Assets                    int            `json:"assets"`
	TotalMarketCap            float64        `json:"total_market_cap"`
	MeanSustainability        float64        `json:"mean_sustainability"`
	SustainabilityStdDev      float64        `json:"sustainability_std_dev"`
	CapWeightedSustainability float64        `json:"cap_weighted_sustainability"`
	TrendCounts               map[string]int `json:"trend_counts"`
}

// Service ranks catalog snapshots
type Service struct {
	log zerolog.Logger
}

// NewService creates a classification service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "classify").Logger(),
	}
}

// Trending returns every asset whose trend is rising or volatile,
// largest market cap first. An empty result is a valid state, not an
// error.
func (s *Service) Trending(c *catalog.Catalog) []catalog.AssetRecord {
	trending := make([]catalog.AssetRecord, 0)
	for _, a := range c.Assets() {
		if a.PriceTrend == catalog.TrendRising || a.PriceTrend == catalog.TrendVolatile {
			trending = append(trending, a)
		}
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].MarketCap > trending[j].MarketCap
	})

	return trending
}

// SustainabilityRanking returns all assets ordered by sustainability
// score descending. Ties keep catalog insertion order.
func (s *Service) SustainabilityRanking(c *catalog.Catalog) []RankedAsset {
	assets := c.Assets()
	ranked := make([]RankedAsset, len(assets))
	for i, a := range assets {
		ranked[i] = RankedAsset{Asset: a, Score: a.SustainabilityScore}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// Summarize computes catalog-wide aggregates for display.
func (s *Service) Summarize(c *catalog.Catalog) Summary {
	assets := c.Assets()

	scores := make([]float64, len(assets))
	caps := make([]float64, len(assets))
	trendCounts := make(map[string]int)
	totalCap := 0.0

	for i, a := range assets {
		scores[i] = a.SustainabilityScore
		caps[i] = a.MarketCap
		totalCap += a.MarketCap
		trendCounts[string(a.PriceTrend)]++
	}

	return Summary{
		Assets:                    len(assets),
		TotalMarketCap:            totalCap,
		MeanSustainability:        formulas.Mean(scores),
		SustainabilityStdDev:      formulas.StdDev(scores),
		CapWeightedSustainability: formulas.WeightedMean(scores, caps),
		TrendCounts:               trendCounts,
	}
}
