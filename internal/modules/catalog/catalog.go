package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrAssetNotFound is returned by Lookup for ids outside the catalog.
// A valid asset whose price is unknown (0) is found, not an error.
var ErrAssetNotFound = errors.New("asset not found")

// PriceSource supplies a current USD price for an asset id.
// Implementations never fail: 0 means "no data for this id".
type PriceSource interface {
	PriceOf(id string) float64
}

// Catalog is an immutable snapshot of the asset universe. Refreshing
// produces a brand-new snapshot; readers holding an old one observe
// stale-but-consistent data, never a torn record.
type Catalog struct {
	records     []AssetRecord
	index       map[string]int
	refreshedAt time.Time
}

// New creates a snapshot from the given records, preserving their order.
// Record ids must be unique.
func New(records []AssetRecord) (*Catalog, error) {
	index := make(map[string]int, len(records))
	for i, r := range records {
		if _, dup := index[r.ID]; dup {
			return nil, fmt.Errorf("duplicate asset id %q", r.ID)
		}
		index[r.ID] = i
	}

	copied := make([]AssetRecord, len(records))
	copy(copied, records)

	return &Catalog{
		records:     copied,
		index:       index,
		refreshedAt: time.Now(),
	}, nil
}

// Assets returns the records in insertion order. The slice is a copy.
func (c *Catalog) Assets() []AssetRecord {
	out := make([]AssetRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Lookup returns the record for the given id, case-insensitive.
func (c *Catalog) Lookup(id string) (AssetRecord, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	i, ok := c.index[key]
	if !ok {
		return AssetRecord{}, fmt.Errorf("%q: %w", id, ErrAssetNotFound)
	}
	return c.records[i], nil
}

// Len returns the number of assets in the snapshot.
func (c *Catalog) Len() int {
	return len(c.records)
}

// RefreshedAt returns the time this snapshot was built.
func (c *Catalog) RefreshedAt() time.Time {
	return c.refreshedAt
}

// Builder constructs catalog snapshots from the seed attribute table,
// pricing every asset through the oracle.
type Builder struct {
	oracle PriceSource
	seeds  []AssetRecord
	now    func() time.Time
	log    zerolog.Logger
}

// NewBuilder creates a catalog builder backed by the embedded seed table.
func NewBuilder(oracle PriceSource, log zerolog.Logger) (*Builder, error) {
	seeds, err := loadSeeds()
	if err != nil {
		return nil, fmt.Errorf("failed to load asset seeds: %w", err)
	}

	return &Builder{
		oracle: oracle,
		seeds:  seeds,
		now:    time.Now,
		log:    log.With().Str("component", "catalog_builder").Logger(),
	}, nil
}

// Build constructs a fresh snapshot. A price fetch failure for one asset
// leaves that asset priced at zero; it never fails the whole catalog.
func (b *Builder) Build() *Catalog {
	records := make([]AssetRecord, len(b.seeds))
	index := make(map[string]int, len(b.seeds))

	for i, seed := range b.seeds {
		record := seed
		record.CurrentPrice = b.oracle.PriceOf(record.ID)
		if record.CurrentPrice == 0 {
			b.log.Warn().Str("asset", record.ID).Msg("No price data, recording zero")
		}
		records[i] = record
		index[record.ID] = i
	}

	c := &Catalog{
		records:     records,
		index:       index,
		refreshedAt: b.now(),
	}

	b.log.Info().
		Int("assets", len(records)).
		Time("refreshed_at", c.refreshedAt).
		Msg("Catalog built")

	return c
}
