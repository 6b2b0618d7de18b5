package pricing

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// SimplePricer is the slice of the CoinGecko client the live oracle needs.
type SimplePricer interface {
	SimplePrice(ctx context.Context, ids []string) (map[string]float64, error)
}

// LiveOracle prices assets through a market-data provider. Fetch failures
// are absorbed: the failing asset prices at 0 and the error is logged.
type LiveOracle struct {
	client  SimplePricer
	timeout time.Duration
	log     zerolog.Logger
}

// NewLiveOracle creates an oracle backed by the given market-data client.
func NewLiveOracle(client SimplePricer, log zerolog.Logger) *LiveOracle {
	return &LiveOracle{
		client:  client,
		timeout: 10 * time.Second,
		log:     log.With().Str("oracle", "live").Logger(),
	}
}

// PriceOf returns the provider's current USD price for id, or 0 on any
// failure.
func (o *LiveOracle) PriceOf(id string) float64 {
	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	prices, err := o.client.SimplePrice(ctx, []string{id})
	if err != nil {
		o.log.Warn().Err(err).Str("asset", id).Msg("Price fetch failed")
		return 0
	}

	price, ok := prices[id]
	if !ok {
		o.log.Warn().Str("asset", id).Msg("Provider returned no price for asset")
		return 0
	}

	return price
}
