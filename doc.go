// Package coinfolio tracks a small personal cryptocurrency portfolio. It is
// designed to be local-first: the whole state lives in memory, owned by a
// single Store, and is persisted as one JSON snapshot file across sessions.
//
// The core functionalities include:
//   - Portfolio State: An insertion-ordered Book of Assets, each with a
//     case-insensitively unique symbol, a current price, an all-time-high,
//     and the quantity held. Assets are append-only and holdings add-only.
//   - Enrichment: Asset metadata (price, all-time-high, chain) is resolved
//     from a free-text identifier by a natural-language lookup service,
//     never entered by hand.
//   - Persistence: The full Book round-trips through an immutable Snapshot;
//     missing or corrupt snapshot files degrade to a fresh bootstrap.
//   - Change Notification: Every committed mutation emits exactly one Change
//     so a rendered view can stay synchronized without re-deriving state.
//
// This package serves as the foundational logic for the `coinfolio`
// command-line tool.
package coinfolio
