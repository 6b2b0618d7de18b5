// Package recommend applies risk-profile policies to a catalog snapshot.
package recommend

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cryptobuddy/advisor/internal/modules/catalog"
)

// RiskProfile names an investment policy.
type RiskProfile string

// Known risk profiles.
const (
	Conservative RiskProfile = "conservative"
	Moderate     RiskProfile = "moderate"
	Aggressive   RiskProfile = "aggressive"
)

// ParseRiskProfile maps free-form input to a profile. Unrecognized
// values fall back to Moderate.
func ParseRiskProfile(s string) RiskProfile {
	switch RiskProfile(strings.ToLower(strings.TrimSpace(s))) {
	case Conservative:
		return Conservative
	case Aggressive:
		return Aggressive
	default:
		return Moderate
	}
}

// Fallback picks the behavior when a policy filter matches nothing.
type Fallback int

const (
	// FallbackAll recommends the whole catalog when the filter is empty.
	FallbackAll Fallback = iota
	// FallbackNone returns the empty result as-is.
	FallbackNone
)

// ParseFallback maps config input to a fallback policy, defaulting to
// FallbackAll.
func ParseFallback(s string) Fallback {
	if strings.ToLower(strings.TrimSpace(s)) == "none" {
		return FallbackNone
	}
	return FallbackAll
}

// Policy thresholds in USD market cap.
const (
	conservativeMinCap        = 100e9
	aggressiveMaxCap          = 50e9
	moderateMinCap            = 10e9
	moderateMinSustainability = 0.5
)

// Service filters catalog snapshots by risk profile
type Service struct {
	fallback Fallback
	log      zerolog.Logger
}

// NewService creates a recommendation service
func NewService(fallback Fallback, log zerolog.Logger) *Service {
	return &Service{
		fallback: fallback,
		log:      log.With().Str("service", "recommend").Logger(),
	}
}

// Recommend returns the assets matching the profile's policy, largest
// market cap first. With FallbackAll an empty match recommends the
// whole catalog instead.
func (s *Service) Recommend(c *catalog.Catalog, profile RiskProfile) []catalog.AssetRecord {
	matched := make([]catalog.AssetRecord, 0)
	for _, a := range c.Assets() {
		if matches(a, profile) {
			matched = append(matched, a)
		}
	}

	if len(matched) == 0 && s.fallback == FallbackAll && c.Len() > 0 {
		s.log.Debug().Str("profile", string(profile)).Msg("Policy matched nothing, recommending whole catalog")
		matched = c.Assets()
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MarketCap > matched[j].MarketCap
	})

	return matched
}

func matches(a catalog.AssetRecord, profile RiskProfile) bool {
	switch profile {
	case Conservative:
		// Large caps only, trend ignored.
		return a.MarketCap > conservativeMinCap
	case Aggressive:
		// Small and mid-cap momentum.
		return a.PriceTrend == catalog.TrendRising && a.MarketCap < aggressiveMaxCap
	default:
		return a.MarketCap > moderateMinCap && a.SustainabilityScore >= moderateMinSustainability
	}
}
