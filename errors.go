package coinfolio

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the store. They are values, never panics, so
// callers can match on kind with errors.Is.
var (
	// ErrBlankIdentifier rejects an empty or whitespace-only identifier.
	ErrBlankIdentifier = errors.New("identifier is blank")
	// ErrDuplicateAsset rejects adding an asset whose symbol or name is
	// already tracked (case-insensitive).
	ErrDuplicateAsset = errors.New("asset is already tracked")
	// ErrLookupInFlight rejects a second add of an identifier whose lookup
	// has not completed yet.
	ErrLookupInFlight = errors.New("a lookup for this identifier is already in flight")
	// ErrAssetNotFound rejects adding holdings for an unknown symbol.
	ErrAssetNotFound = errors.New("no asset tracked with this symbol")
	// ErrInvalidAmount rejects a holdings amount that is not strictly positive.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrAlreadySeeded rejects seeding a non-empty book. Callers treat it as
	// a no-op at bootstrap.
	ErrAlreadySeeded = errors.New("book is not empty")
)

// LookupError reports a failed or malformed enrichment lookup. No state is
// committed when it is returned; the caller may surface it and let the user
// retry the operation.
type LookupError struct {
	Identifier string // the free-text identifier that failed to resolve
	Err        error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("could not resolve %q: %v", e.Identifier, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }
