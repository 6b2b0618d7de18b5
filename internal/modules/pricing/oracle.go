// Package pricing answers "current USD price for asset X".
//
// Every oracle honors the same contract: a failed or unknown lookup is
// reported as price 0 and a log warning, never as an error to the caller.
package pricing

// PriceOracle supplies a current USD price for an asset id.
type PriceOracle interface {
	// PriceOf returns the current price for id, or 0 when no data is
	// available.
	PriceOf(id string) float64
}
