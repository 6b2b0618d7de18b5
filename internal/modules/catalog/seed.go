package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed assets.yaml
var seedData []byte

type seedFile struct {
	Assets []seedAsset `yaml:"assets"`
}

type seedAsset struct {
	ID                  string  `yaml:"id"`
	Name                string  `yaml:"name"`
	Symbol              string  `yaml:"symbol"`
	PriceTrend          string  `yaml:"price_trend"`
	MarketCap           float64 `yaml:"market_cap"`
	EnergyUse           string  `yaml:"energy_use"`
	SustainabilityScore float64 `yaml:"sustainability_score"`
	Description         string  `yaml:"description"`
	LaunchYear          int     `yaml:"launch_year"`
}

// loadSeeds parses and validates the embedded asset attribute table.
// CurrentPrice is left at zero - prices come from the oracle at build time.
func loadSeeds() ([]AssetRecord, error) {
	var file seedFile
	if err := yaml.Unmarshal(seedData, &file); err != nil {
		return nil, fmt.Errorf("failed to parse asset seed table: %w", err)
	}

	if len(file.Assets) == 0 {
		return nil, fmt.Errorf("asset seed table is empty")
	}

	seen := make(map[string]bool, len(file.Assets))
	records := make([]AssetRecord, 0, len(file.Assets))

	for _, a := range file.Assets {
		if a.ID == "" {
			return nil, fmt.Errorf("asset %q has no id", a.Name)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate asset id %q", a.ID)
		}
		seen[a.ID] = true

		record := AssetRecord{
			ID:                  a.ID,
			Name:                a.Name,
			Symbol:              a.Symbol,
			PriceTrend:          Trend(a.PriceTrend),
			MarketCap:           a.MarketCap,
			EnergyUse:           EnergyUse(a.EnergyUse),
			SustainabilityScore: a.SustainabilityScore,
			Description:         a.Description,
			LaunchYear:          a.LaunchYear,
		}

		if !record.PriceTrend.Valid() {
			return nil, fmt.Errorf("asset %q has unknown price trend %q", a.ID, a.PriceTrend)
		}
		if !record.EnergyUse.Valid() {
			return nil, fmt.Errorf("asset %q has unknown energy use %q", a.ID, a.EnergyUse)
		}
		if record.SustainabilityScore < 0 || record.SustainabilityScore > 1 {
			return nil, fmt.Errorf("asset %q sustainability score %.2f out of range [0,1]",
				a.ID, record.SustainabilityScore)
		}
		if record.MarketCap < 0 {
			return nil, fmt.Errorf("asset %q has negative market cap", a.ID)
		}

		records = append(records, record)
	}

	return records, nil
}
