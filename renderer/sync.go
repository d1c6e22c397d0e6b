package renderer

import (
	"strings"
	"sync"

	"github.com/etnz/coinfolio"
)

// Sync keeps a rendered row list consistent with the store. On a full
// change it rebuilds every row; on an append it adds exactly one row,
// leaving the existing ones untouched; on an update it patches the matching
// row in place. After every applied change the rows match the snapshot
// content, one row per asset, in book order.
type Sync struct {
	mu    sync.Mutex
	keys  []string // asset key per row
	rows  []string
	total string
}

// NewSync creates a view synchronizer subscribed to the store.
func NewSync(store *coinfolio.Store) *Sync {
	v := &Sync{}
	store.Subscribe(v.Apply)
	return v
}

// Apply folds one store change into the rendered rows.
func (v *Sync) Apply(c coinfolio.Change) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch c.Kind {
	case coinfolio.FullChange:
		v.keys = v.keys[:0]
		v.rows = v.rows[:0]
		for a := range c.Snapshot.Assets() {
			v.keys = append(v.keys, a.Key())
			v.rows = append(v.rows, AssetRow(a, c.Snapshot.Rate()))
		}
	case coinfolio.AppendChange:
		v.keys = append(v.keys, c.Asset.Key())
		v.rows = append(v.rows, AssetRow(c.Asset, c.Snapshot.Rate()))
	case coinfolio.UpdateChange:
		for i, key := range v.keys {
			if key == c.Asset.Key() {
				v.rows[i] = AssetRow(c.Asset, c.Snapshot.Rate())
				break
			}
		}
	}
	v.total = c.Snapshot.TotalValue().String()
}

// Rows returns a copy of the current rendered rows, in book order.
func (v *Sync) Rows() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows := make([]string, len(v.rows))
	copy(rows, v.rows)
	return rows
}

// Markdown returns the whole rendered document.
func (v *Sync) Markdown() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	total := v.total
	if total == "" {
		total = coinfolio.M(0, coinfolio.QuoteCurrency).String()
	}
	var b strings.Builder
	b.WriteString("# Holdings\n\n")
	b.WriteString(holdingsHeader)
	for _, row := range v.rows {
		b.WriteString(row)
	}
	b.WriteString("\nTotal value: **" + total + "**\n")
	return b.String()
}
