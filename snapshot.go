package coinfolio

import (
	"iter"
	"slices"
	"strings"
)

// Snapshot is an immutable view of the book at a single point in time. It is
// the unit handed to persistence and rendering; neither can reach back into
// the live book through it.
type Snapshot struct {
	assets []Asset
	rate   Quantity
}

// NewSnapshot copies the given assets and rate into a snapshot.
func NewSnapshot(assets []Asset, rate Quantity) *Snapshot {
	return &Snapshot{assets: slices.Clone(assets), rate: rate}
}

func (s *Snapshot) Len() int { return len(s.assets) }

// Rate returns the exchange rate from QuoteCurrency to DisplayCurrency.
func (s *Snapshot) Rate() Quantity { return s.rate }

// Assets iterates over the assets in book order.
func (s *Snapshot) Assets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		for _, a := range s.assets {
			if !yield(a) {
				return
			}
		}
	}
}

// Get returns the asset with this symbol (case-insensitive).
func (s *Snapshot) Get(symbol string) (Asset, bool) {
	for _, a := range s.assets {
		if strings.EqualFold(a.Symbol, symbol) {
			return a, true
		}
	}
	return Asset{}, false
}

// TotalValue sums the current worth of all positions.
func (s *Snapshot) TotalValue() Money {
	total := M(0, QuoteCurrency)
	for _, a := range s.assets {
		total = total.Add(a.Value())
	}
	return total
}

// Equal reports whether both snapshots hold the same assets in the same
// order, with the same holdings and the same exchange rate.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if s.Len() != o.Len() || !s.rate.Equal(o.rate) {
		return false
	}
	for i := range s.assets {
		if !s.assets[i].Equal(o.assets[i]) {
			return false
		}
	}
	return true
}
