package coinfolio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testSnapshot() *Snapshot {
	book := NewBook()
	btc := btcSeed.Asset()
	btc.Holdings = Q(0.5)
	book.add(btc)
	book.add(ethSeed.Asset())
	book.add(solSeed.Asset())
	book.rate = Q(0.92)
	return book.Snapshot()
}

func TestSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.json")
	snap := testSnapshot()

	if err := SaveSnapshot(path, snap); err != nil {
		t.Fatalf("SaveSnapshot() = %v, want nil", err)
	}
	loaded, ok := LoadSnapshot(path)
	if !ok {
		t.Fatal("LoadSnapshot() = not ok, want ok")
	}
	if !loaded.Equal(snap) {
		t.Errorf("loaded snapshot differs from the saved one")
	}
}

func TestSnapshot_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := SaveSnapshot(path, testSnapshot()); err != nil {
		t.Fatalf("SaveSnapshot() = %v, want nil", err)
	}

	book := NewBook()
	book.add(btcSeed.Asset())
	book.rate = Q(1)
	smaller := book.Snapshot()
	if err := SaveSnapshot(path, smaller); err != nil {
		t.Fatalf("SaveSnapshot() = %v, want nil", err)
	}

	loaded, ok := LoadSnapshot(path)
	if !ok {
		t.Fatal("LoadSnapshot() = not ok, want ok")
	}
	if !loaded.Equal(smaller) {
		t.Errorf("loaded snapshot is not the last written one")
	}
}

func TestLoadSnapshot_Missing(t *testing.T) {
	if snap, ok := LoadSnapshot(filepath.Join(t.TempDir(), "portfolio.json")); ok || snap != nil {
		t.Errorf("LoadSnapshot(missing file) = %v, %v, want nil, false", snap, ok)
	}
}

// TestLoadSnapshot_Corrupt: any malformed stored content is treated as
// absence, never as a failure.
func TestLoadSnapshot_Corrupt(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "not json", content: "hodl!"},
		{name: "json but not an object", content: "[1,2,3]"},
		{name: "assets is not a list", content: `{"assets": 12, "exchange_rate": "1"}`},
		{name: "negative price", content: `{"assets":[{"name":"Bitcoin","symbol":"BTC","blockchain":"Bitcoin","price_usd":"-1","ath_usd":"0","holdings":"0"}],"exchange_rate":"1"}`},
		{name: "negative holdings", content: `{"assets":[{"name":"Bitcoin","symbol":"BTC","blockchain":"Bitcoin","price_usd":"1","ath_usd":"1","holdings":"-0.5"}],"exchange_rate":"1"}`},
		{name: "missing symbol", content: `{"assets":[{"name":"Bitcoin","blockchain":"Bitcoin","price_usd":"1","ath_usd":"1","holdings":"0"}],"exchange_rate":"1"}`},
		{name: "duplicate symbol", content: `{"assets":[{"name":"Bitcoin","symbol":"BTC","blockchain":"Bitcoin","price_usd":"1","ath_usd":"1","holdings":"0"},{"name":"Bitcoin2","symbol":"btc","blockchain":"Bitcoin","price_usd":"1","ath_usd":"1","holdings":"0"}],"exchange_rate":"1"}`},
		{name: "negative exchange rate", content: `{"assets":[],"exchange_rate":"-1"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "portfolio.json")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}
			if snap, ok := LoadSnapshot(path); ok || snap != nil {
				t.Errorf("LoadSnapshot() = %v, %v, want nil, false", snap, ok)
			}
		})
	}
}

// TestEncodeSnapshot_FieldOrder pins the wire field names and their order.
func TestEncodeSnapshot_FieldOrder(t *testing.T) {
	book := NewBook()
	book.add(btcSeed.Asset())
	book.rate = Q(0.92)

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, book.Snapshot()); err != nil {
		t.Fatalf("EncodeSnapshot() = %v, want nil", err)
	}
	got := buf.String()

	fields := []string{`"assets"`, `"name"`, `"symbol"`, `"blockchain"`, `"price_usd"`, `"ath_usd"`, `"holdings"`, `"exchange_rate"`}
	last := -1
	for _, field := range fields {
		i := strings.Index(got, field)
		if i < 0 {
			t.Fatalf("encoded snapshot misses field %s:\n%s", field, got)
		}
		if i < last {
			t.Errorf("field %s is out of order:\n%s", field, got)
		}
		last = i
	}
	if !strings.Contains(got, `"price_usd":"64000"`) {
		t.Errorf("price is not kept exact:\n%s", got)
	}
}
