package coinfolio

// This file contains code to persist the book snapshot as a single JSON
// file, in a way that is still human-readable and git-friendly: fields are
// written in a stable order and amounts keep all their digits.

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// EncodeSnapshot writes the snapshot as a JSON object with a stable field
// order: the asset list first, the exchange rate last.
func EncodeSnapshot(w io.Writer, snap *Snapshot) error {
	assets := make([]json.RawMessage, 0, snap.Len())
	for a := range snap.Assets() {
		var row jsonObjectWriter
		row.Append("name", a.Name)
		row.Append("symbol", a.Symbol)
		row.Append("blockchain", a.Chain)
		row.Append("price_usd", a.Price.value)
		row.Append("ath_usd", a.ATH.value)
		row.Append("holdings", a.Holdings)
		raw, err := row.MarshalJSON()
		if err != nil {
			return fmt.Errorf("could not encode asset %q: %w", a.Symbol, err)
		}
		assets = append(assets, raw)
	}

	var obj jsonObjectWriter
	obj.Append("assets", assets)
	obj.Append("exchange_rate", snap.Rate())
	b, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot parses and validates a snapshot. Any schema violation
// (missing field, wrong type, negative amount, duplicate symbol) is an
// error: the caller treats it as absence.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	// to parse a json, we use a dedicated local struct with tag annotation.
	type jasset struct {
		Name     string          `json:"name"`
		Symbol   string          `json:"symbol"`
		Chain    string          `json:"blockchain"`
		Price    decimal.Decimal `json:"price_usd"`
		ATH      decimal.Decimal `json:"ath_usd"`
		Holdings Quantity        `json:"holdings"`
	}
	type jsnapshot struct {
		Assets []jasset `json:"assets"`
		Rate   Quantity `json:"exchange_rate"`
	}

	var js jsnapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&js); err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}
	if js.Rate.IsNegative() {
		return nil, fmt.Errorf("format error: negative exchange rate %s", js.Rate)
	}

	book := NewBook()
	for _, ja := range js.Assets {
		seed := AssetSeed{
			Name:   ja.Name,
			Symbol: ja.Symbol,
			Chain:  ja.Chain,
			Price:  M(ja.Price, QuoteCurrency),
			ATH:    M(ja.ATH, QuoteCurrency),
		}
		if err := seed.Validate(); err != nil {
			return nil, fmt.Errorf("format error: %w", err)
		}
		if ja.Holdings.IsNegative() {
			return nil, fmt.Errorf("format error: asset %q has negative holdings %s", ja.Symbol, ja.Holdings)
		}
		if book.Has(ja.Symbol) {
			return nil, fmt.Errorf("format error: symbol %q is already defined", ja.Symbol)
		}
		a := seed.Asset()
		a.Holdings = ja.Holdings
		book.add(a)
	}
	book.rate = js.Rate
	return book.Snapshot(), nil
}

// LoadSnapshot reads the snapshot file at path. A missing file and a corrupt
// one are treated identically: there is no prior state, and the caller falls
// back to a fresh seed bootstrap. Corruption is logged, never raised.
func LoadSnapshot(path string) (*Snapshot, bool) {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("cannot read snapshot %q (ignored): %v", path, err)
		}
		return nil, false
	}
	defer f.Close()

	snap, err := DecodeSnapshot(f)
	if err != nil {
		log.Printf("corrupt snapshot %q (ignored): %v", path, err)
		return nil, false
	}
	return snap, true
}

// SaveSnapshot serializes the full snapshot to the file at path, overwriting
// any prior content.
func SaveSnapshot(path string, snap *Snapshot) error {
	// Ensure the directory for the snapshot file exists.
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for snapshot %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening snapshot file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeSnapshot(f, snap)
}
