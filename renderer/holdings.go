// Package renderer projects portfolio snapshots into markdown. It is a pure
// consumer of store state: it derives nothing that is not in the snapshot.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/coinfolio"
)

const holdingsHeader = "| Symbol | Name | Chain | Price | Price (EUR) | Holdings | Value |\n" +
	"|---|---|---|---:|---:|---:|---:|\n"

// AssetRow renders the single table row for an asset, converting the price
// with the given exchange rate.
func AssetRow(a coinfolio.Asset, rate coinfolio.Quantity) string {
	converted := a.Price.Exchange(rate, coinfolio.DisplayCurrency)
	return fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s |\n",
		a.Symbol, a.Name, a.Chain, a.Price, converted, a.Holdings, a.Value())
}

// HoldingsMarkdown renders the full holdings table for a snapshot, one row
// per asset in book order.
func HoldingsMarkdown(s *coinfolio.Snapshot) string {
	var b strings.Builder
	b.WriteString("# Holdings\n\n")
	b.WriteString(holdingsHeader)
	for a := range s.Assets() {
		b.WriteString(AssetRow(a, s.Rate()))
	}
	b.WriteString(fmt.Sprintf("\nTotal value: **%s**\n", s.TotalValue()))
	return b.String()
}
