package coinfolio

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
)

// Enricher resolves a free-text asset identifier (name or symbol) into
// structured metadata. A single attempt per call; retrying is the caller's
// decision.
type Enricher interface {
	LookupOne(ctx context.Context, identifier string) (AssetSeed, error)
	LookupSeedBatch(ctx context.Context, identifiers []string) ([]AssetSeed, Quantity, error)
}

// ChangeKind tells a subscriber which invariant of the book changed, so it
// can pick the minimal re-render.
type ChangeKind int

const (
	// FullChange replaces the whole view: seed, or restore from a snapshot.
	FullChange ChangeKind = iota
	// AppendChange adds exactly one asset at the end of the book.
	AppendChange
	// UpdateChange alters one existing asset in place (holdings top-up).
	UpdateChange
)

// Change describes one committed mutation of the book. The snapshot always
// reflects the state after the mutation, and after the persistence attempt.
type Change struct {
	Kind     ChangeKind
	Snapshot *Snapshot
	Asset    Asset // the touched asset, zero for FullChange
}

// Store is the authoritative owner of the book. All mutations go through it;
// every successful one triggers exactly one save and one change
// notification, in that order.
type Store struct {
	mu      sync.Mutex
	book    *Book
	pending map[string]struct{} // identifiers with an in-flight lookup, lowercase

	enricher    Enricher
	path        string // snapshot file
	subscribers []func(Change)
}

// NewStore creates an empty store persisting to path. The enricher serves
// AddAsset lookups.
func NewStore(path string, enricher Enricher) *Store {
	return &Store{
		book:     NewBook(),
		pending:  make(map[string]struct{}),
		enricher: enricher,
		path:     path,
	}
}

// Subscribe registers a callback invoked synchronously after every committed
// mutation. Subscribers must not mutate the store from the callback.
func (s *Store) Subscribe(fn func(Change)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns an immutable copy of the current book.
func (s *Store) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Snapshot()
}

// Restore replaces an empty book with a previously persisted snapshot. It
// notifies a full change but does not save: the snapshot is already durable.
func (s *Store) Restore(snap *Snapshot) error {
	s.mu.Lock()
	if s.book.Len() > 0 {
		s.mu.Unlock()
		return ErrAlreadySeeded
	}
	for a := range snap.Assets() {
		s.book.add(a)
	}
	s.book.rate = snap.Rate()
	now := s.book.Snapshot()
	s.mu.Unlock()

	s.notify(Change{Kind: FullChange, Snapshot: now})
	return nil
}

// Seed populates an empty book with the given batch, each asset starting
// with zero holdings, and sets the exchange rate. Seeding a non-empty book
// returns ErrAlreadySeeded and changes nothing.
func (s *Store) Seed(seeds []AssetSeed, rate Quantity) error {
	if rate.IsNegative() {
		return ErrInvalidAmount
	}
	for _, seed := range seeds {
		if err := seed.Validate(); err != nil {
			return fmt.Errorf("invalid seed batch: %w", err)
		}
	}

	s.mu.Lock()
	if s.book.Len() > 0 {
		s.mu.Unlock()
		return ErrAlreadySeeded
	}
	for _, seed := range seeds {
		if s.book.Has(seed.Symbol) {
			s.mu.Unlock()
			return fmt.Errorf("invalid seed batch: symbol %q appears twice: %w", seed.Symbol, ErrDuplicateAsset)
		}
		s.book.add(seed.Asset())
	}
	s.book.rate = rate
	now := s.book.Snapshot()
	s.mu.Unlock()

	s.save(now)
	s.notify(Change{Kind: FullChange, Snapshot: now})
	return nil
}

// AddAsset resolves the identifier through the enricher and appends the
// resulting asset with zero holdings. The lookup runs without the lock, but
// a second AddAsset on the same identifier is rejected while one is in
// flight, and uniqueness is re-validated at the moment of insertion.
func (s *Store) AddAsset(ctx context.Context, identifier string) (Asset, error) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return Asset{}, ErrBlankIdentifier
	}
	key := strings.ToLower(id)

	s.mu.Lock()
	if s.book.Has(id) || s.book.HasName(id) {
		s.mu.Unlock()
		return Asset{}, ErrDuplicateAsset
	}
	if _, inflight := s.pending[key]; inflight {
		s.mu.Unlock()
		return Asset{}, ErrLookupInFlight
	}
	s.pending[key] = struct{}{}
	s.mu.Unlock()

	// Suspension point: holdings updates may interleave here freely.
	seed, err := s.enricher.LookupOne(ctx, id)

	s.mu.Lock()
	delete(s.pending, key)
	if err != nil {
		s.mu.Unlock()
		return Asset{}, err
	}
	if err := seed.Validate(); err != nil {
		s.mu.Unlock()
		return Asset{}, &LookupError{Identifier: id, Err: err}
	}
	// The enricher may have resolved the free text to a different symbol or
	// name, so uniqueness is checked again against what it actually found.
	if s.book.Has(seed.Symbol) || s.book.HasName(seed.Name) {
		s.mu.Unlock()
		return Asset{}, ErrDuplicateAsset
	}
	asset := seed.Asset()
	s.book.add(asset)
	now := s.book.Snapshot()
	s.mu.Unlock()

	s.save(now)
	s.notify(Change{Kind: AppendChange, Snapshot: now, Asset: asset})
	return asset, nil
}

// AddHoldings adds a strictly positive amount to the holdings of the asset
// with this symbol (case-insensitive). It never suspends.
func (s *Store) AddHoldings(symbol string, amount Quantity) (Asset, error) {
	if !amount.IsPositive() {
		return Asset{}, ErrInvalidAmount
	}

	s.mu.Lock()
	asset, ok := s.book.Get(symbol)
	if !ok {
		s.mu.Unlock()
		return Asset{}, fmt.Errorf("cannot top up %q: %w", symbol, ErrAssetNotFound)
	}
	asset.Holdings = asset.Holdings.Add(amount)
	s.book.set(asset)
	now := s.book.Snapshot()
	s.mu.Unlock()

	s.save(now)
	s.notify(Change{Kind: UpdateChange, Snapshot: now, Asset: asset})
	return asset, nil
}

// save persists the snapshot. A failed write is logged and otherwise
// ignored: the in-memory state stays authoritative for the session.
func (s *Store) save(snap *Snapshot) {
	if err := SaveSnapshot(s.path, snap); err != nil {
		log.Printf("snapshot write err (ignored): %v", err)
	}
}

func (s *Store) notify(c Change) {
	s.mu.Lock()
	subs := make([]func(Change), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(c)
	}
}
