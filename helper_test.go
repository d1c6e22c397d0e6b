package coinfolio

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// USD is a helper for tests to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

var (
	btcSeed = AssetSeed{Name: "Bitcoin", Symbol: "BTC", Chain: "Bitcoin", Price: USD(64000), ATH: USD(109000)}
	ethSeed = AssetSeed{Name: "Ethereum", Symbol: "ETH", Chain: "Ethereum", Price: USD(2600), ATH: USD(4890)}
	solSeed = AssetSeed{Name: "Solana", Symbol: "SOL", Chain: "Solana", Price: USD(150), ATH: USD(260)}
)

// fakeEnricher resolves identifiers from a fixed map. When gate is set,
// LookupOne signals entered and then blocks until the gate is closed, to
// simulate a slow lookup.
type fakeEnricher struct {
	mu      sync.Mutex
	seeds   map[string]AssetSeed // by lowercase identifier
	rate    Quantity
	err     error
	gate    chan struct{}
	entered chan struct{}
	calls   int
}

func (f *fakeEnricher) LookupOne(_ context.Context, identifier string) (AssetSeed, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.err != nil {
		return AssetSeed{}, &LookupError{Identifier: identifier, Err: f.err}
	}
	seed, ok := f.seeds[strings.ToLower(identifier)]
	if !ok {
		return AssetSeed{}, &LookupError{Identifier: identifier, Err: errors.New("unknown asset")}
	}
	return seed, nil
}

func (f *fakeEnricher) LookupSeedBatch(ctx context.Context, identifiers []string) ([]AssetSeed, Quantity, error) {
	seeds := make([]AssetSeed, 0, len(identifiers))
	for _, id := range identifiers {
		seed, err := f.LookupOne(ctx, id)
		if err != nil {
			// all-or-nothing
			return nil, Quantity{}, err
		}
		seeds = append(seeds, seed)
	}
	return seeds, f.rate, nil
}

func (f *fakeEnricher) lookups() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
