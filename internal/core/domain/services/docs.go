// Package services provides domain services for rules that do not belong to a
// single aggregate.
//
// The package includes:
//   - StalenessPolicy: decides when a Pending cart has been abandoned and may be reaped
package services
