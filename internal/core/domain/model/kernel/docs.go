// Package kernel provides core domain primitives shared by the catalog and the
// order lifecycle.
//
// The package includes:
//   - Money: an exact, non-negative monetary amount backed by shopspring/decimal
//   - Clock: the source of "now" for timestamps and staleness cutoffs
//
// These primitives are immutable values and safe for concurrent use.
package kernel
