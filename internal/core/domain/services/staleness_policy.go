package services

import (
	"errors"
	"time"

	"foodly/internal/pkg/errs"
)

// DefaultStalenessWindow is how long a cart may stay untouched before it is
// considered abandoned.
const DefaultStalenessWindow = time.Hour

// StalenessPolicy decides when a Pending cart has been abandoned and may be
// reaped. Placed orders are never stale, however old they are.
//
// Example usage:
//
//	policy := services.NewDefaultStalenessPolicy()
//	cutoff := policy.Cutoff(clock.Now())
//	removed, err := orders.RemoveStale(ctx, cutoff)
type StalenessPolicy struct {
	window time.Duration
}

// NewStalenessPolicy creates a policy with the given window. The window must be positive.
func NewStalenessPolicy(window time.Duration) (StalenessPolicy, error) {
	if window <= 0 {
		return StalenessPolicy{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"staleness window", window.String(), "1ns", "unbounded",
			errors.New("window must be positive"),
		)
	}
	return StalenessPolicy{window: window}, nil
}

// NewDefaultStalenessPolicy creates a policy using DefaultStalenessWindow.
func NewDefaultStalenessPolicy() StalenessPolicy {
	return StalenessPolicy{window: DefaultStalenessWindow}
}

func (p StalenessPolicy) Window() time.Duration {
	if p.window <= 0 {
		return DefaultStalenessWindow
	}
	return p.window
}

// Cutoff returns the instant before which a Pending cart counts as stale.
func (p StalenessPolicy) Cutoff(now time.Time) time.Time {
	return now.Add(-p.Window())
}
