package catalog

// Trend is a categorical price-movement label, not a computed statistic.
type Trend string

// Known price trends.
const (
	TrendRising   Trend = "rising"
	TrendStable   Trend = "stable"
	TrendVolatile Trend = "volatile"
	TrendFalling  Trend = "falling"
)

// Valid reports whether t is one of the known trend labels.
func (t Trend) Valid() bool {
	switch t {
	case TrendRising, TrendStable, TrendVolatile, TrendFalling:
		return true
	}
	return false
}

// EnergyUse is a coarse energy-consumption category.
type EnergyUse string

// Known energy-use categories.
const (
	EnergyLow    EnergyUse = "low"
	EnergyMedium EnergyUse = "medium"
	EnergyHigh   EnergyUse = "high"
)

// Valid reports whether e is one of the known energy-use categories.
func (e EnergyUse) Valid() bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}

// Market-cap tier thresholds in USD.
const (
	largeCapThreshold = 100e9
	midCapThreshold   = 10e9
)

// AssetRecord is one cryptocurrency's attribute bundle.
type AssetRecord struct {
	ID                  string    `json:"id"`     // stable lowercase identifier, oracle lookup key
	Name                string    `json:"name"`
	Symbol              string    `json:"symbol"`
	PriceTrend          Trend     `json:"price_trend"`
	MarketCap           float64   `json:"market_cap"` // USD
	EnergyUse           EnergyUse `json:"energy_use"`
	SustainabilityScore float64   `json:"sustainability_score"` // 0-1, 0 = least sustainable
	CurrentPrice        float64   `json:"current_price"`        // USD, 0 means unknown
	Description         string    `json:"description,omitempty"`
	LaunchYear          int       `json:"launch_year,omitempty"`
}

// MarketCapTier derives the coarse market-cap category from the numeric cap.
func (a AssetRecord) MarketCapTier() string {
	switch {
	case a.MarketCap > largeCapThreshold:
		return "high"
	case a.MarketCap > midCapThreshold:
		return "medium"
	default:
		return "low"
	}
}
