// Package atlas tracks a personal network of friends around the world and a
// wishlist of properties, and derives travel and investment reports from them.
//
// The package owns the record types, the two file-backed record stores, and
// every derived view. All views are pure constructors: they take the current
// collections as input and recompute the full report on every call, so there
// is no incremental state to invalidate. Rendering, geocoding and the CLI
// live in the renderer, geo and cmd packages.
package atlas
