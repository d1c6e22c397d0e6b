package coinfolio

import "strings"

// Book holds the ordered collection of tracked assets and the quote-currency
// exchange rate. Insertion order is the display order.
type Book struct {
	assets []Asset
	index  map[string]int // position in assets, by lowercase symbol
	rate   Quantity       // QuoteCurrency to DisplayCurrency conversion
}

// NewBook returns a new empty book.
func NewBook() *Book {
	return &Book{
		assets: make([]Asset, 0),
		index:  make(map[string]int),
	}
}

func (b *Book) Len() int { return len(b.assets) }

// Has reports whether an asset with this symbol is tracked (case-insensitive).
func (b *Book) Has(symbol string) bool {
	_, ok := b.index[strings.ToLower(symbol)]
	return ok
}

// HasName reports whether an asset with this display name is tracked
// (case-insensitive).
func (b *Book) HasName(name string) bool {
	for _, a := range b.assets {
		if strings.EqualFold(a.Name, name) {
			return true
		}
	}
	return false
}

// Get returns the tracked asset with this symbol (case-insensitive).
func (b *Book) Get(symbol string) (Asset, bool) {
	i, ok := b.index[strings.ToLower(symbol)]
	if !ok {
		return Asset{}, false
	}
	return b.assets[i], true
}

// Rate returns the exchange rate from QuoteCurrency to DisplayCurrency.
func (b *Book) Rate() Quantity { return b.rate }

// add appends the asset, preserving insertion order. The caller is
// responsible for the uniqueness check.
func (b *Book) add(a Asset) {
	b.index[a.Key()] = len(b.assets)
	b.assets = append(b.assets, a)
}

// set replaces the asset at the given symbol's position.
func (b *Book) set(a Asset) {
	if i, ok := b.index[a.Key()]; ok {
		b.assets[i] = a
	}
}

// Snapshot returns an immutable point-in-time copy of the book.
func (b *Book) Snapshot() *Snapshot {
	return NewSnapshot(b.assets, b.rate)
}
