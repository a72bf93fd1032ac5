// Package queries contains read-only operations over orders, items and the
// catalog. Handlers read straight from the database with SQL and return flat
// response records; they never load aggregates.
package queries
