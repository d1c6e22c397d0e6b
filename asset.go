package coinfolio

import (
	"fmt"
	"strings"
)

// QuoteCurrency is the single currency all asset prices are quoted in.
const QuoteCurrency = "USD"

// DisplayCurrency is the secondary currency the view converts prices into,
// using the book's exchange rate.
const DisplayCurrency = "EUR"

// Asset is one tracked cryptocurrency entry.
type Asset struct {
	Name     string   // human-friendly name (e.g. "Bitcoin")
	Symbol   string   // ticker symbol, case-insensitively unique in a book
	Chain    string   // network/platform label, informational
	Price    Money    // current unit price, quoted in QuoteCurrency
	ATH      Money    // all-time-high unit price, quoted in QuoteCurrency
	Holdings Quantity // quantity owned, never negative
}

// Key returns the case-insensitive identity of the asset.
func (a Asset) Key() string { return strings.ToLower(a.Symbol) }

// Value returns the current worth of the position (price times holdings).
func (a Asset) Value() Money { return a.Price.Mul(a.Holdings) }

func (a Asset) Equal(b Asset) bool {
	return a.Name == b.Name &&
		a.Symbol == b.Symbol &&
		a.Chain == b.Chain &&
		a.Price.Equal(b.Price) &&
		a.ATH.Equal(b.ATH) &&
		a.Holdings.Equal(b.Holdings)
}

// AssetSeed is the metadata an enrichment lookup resolves for one asset.
// It carries everything but the holdings, which always start at zero.
type AssetSeed struct {
	Name   string
	Symbol string
	Chain  string
	Price  Money
	ATH    Money
}

// Validate checks the seed against the data model invariants: no empty
// string field, no negative numeric field.
func (s AssetSeed) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("seed has an empty name")
	}
	if strings.TrimSpace(s.Symbol) == "" {
		return fmt.Errorf("seed %q has an empty symbol", s.Name)
	}
	if strings.TrimSpace(s.Chain) == "" {
		return fmt.Errorf("seed %q has an empty blockchain", s.Name)
	}
	if s.Price.IsNegative() {
		return fmt.Errorf("seed %q has a negative price %s", s.Name, s.Price)
	}
	if s.ATH.IsNegative() {
		return fmt.Errorf("seed %q has a negative all-time-high %s", s.Name, s.ATH)
	}
	return nil
}

// Asset builds the tracked asset for this seed, with zero holdings.
func (s AssetSeed) Asset() Asset {
	return Asset{
		Name:   s.Name,
		Symbol: s.Symbol,
		Chain:  s.Chain,
		Price:  s.Price,
		ATH:    s.ATH,
	}
}
