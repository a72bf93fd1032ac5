// Package product provides the catalog entity of the ordering core.
//
// Products are immutable catalog rows created at provisioning time. They are
// referenced by order items but never owned or mutated by normal operation.
//
// Key business rules:
//   - Names are unique and non-empty
//   - Costs are non-negative
//   - Category is free text used only for display grouping
package product
