package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCartIsLocked is the cause attached when an item change targets an order
	// that is no longer a cart.
	ErrCartIsLocked = errors.New("items can only change while the order is pending")

	// ErrPlacementRequiresPlace is the cause attached when Advance is asked to
	// move an order into Placed. Placement records who handles the order and
	// therefore only happens through Place.
	ErrPlacementRequiresPlace = errors.New("orders enter Placed only through Place")
)

// Order is the aggregate root of the ordering core. A Pending order is a
// customer's cart; from Placed on it is a kitchen ticket.
//
// Order follows these invariants:
//   - placedDate is set if and only if status is not Pending
//   - Placement happens exactly once and stamps handledBy and placedDate
//   - Status only moves forward, one step at a time
//   - Only a Pending order accepts item changes (and the refresh of lastModified they cause)
//
// Items are owned by the order: their lifetime is bounded by the order's.
type Order struct {
	// id is zero until the order has been persisted
	id int64

	status Status

	// originalStatus is the status the order had when it was loaded; stores use
	// it to detect concurrent status changes
	originalStatus Status

	// handledBy is the name of the customer who placed the order
	handledBy *string

	lastModified time.Time

	placedDate *time.Time

	items []*Item

	isConstructed bool
}

// NewOrder creates an empty cart in Pending status.
func NewOrder(now time.Time) (*Order, error) {
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("last modified")
	}

	return &Order{
		status:         Pending,
		originalStatus: Pending,
		lastModified:   now,
		items:          make([]*Item, 0),
		isConstructed:  true,
	}, nil
}

// RestoreOrder rebuilds a persisted order and re-checks its invariants.
// Items are optional; pass nil when only the order row was loaded.
func RestoreOrder(
	id int64,
	status Status,
	handledBy *string,
	lastModified time.Time,
	placedDate *time.Time,
	items []*Item,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not a valid id", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if (placedDate != nil) != status.IsPlaced() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"placed date",
			fmt.Errorf("placed date must be set exactly when the order is not pending, status is %s", status),
		)
	}

	restored := make([]*Item, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if !item.BelongsTo(id) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"item",
				fmt.Errorf("item %d belongs to order %d, not %d", item.ID(), item.OrderID(), id),
			)
		}
		restored = append(restored, item)
	}

	return &Order{
		id:             id,
		status:         status,
		originalStatus: status,
		handledBy:      copyString(handledBy),
		lastModified:   lastModified,
		placedDate:     copyTime(placedDate),
		items:          restored,
		isConstructed:  true,
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Status() Status {
	return o.status
}

// OriginalStatus returns the status the order had when it was created or
// restored, before any transition applied in memory.
func (o *Order) OriginalStatus() Status {
	return o.originalStatus
}

// HandledBy returns the name of the placing customer, nil while Pending.
func (o *Order) HandledBy() *string {
	return copyString(o.handledBy)
}

func (o *Order) LastModified() time.Time {
	return o.lastModified
}

// PlacedDate returns when the order was placed, nil while Pending.
func (o *Order) PlacedDate() *time.Time {
	return copyTime(o.placedDate)
}

// Items returns the items loaded with the order.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total sums the cost of every loaded item.
func (o *Order) Total() kernel.Money {
	return Total(o.items)
}

// IsCart reports whether the order is still a modifiable cart.
func (o *Order) IsCart() bool {
	return o.status == Pending
}

// Place turns the cart into a kitchen ticket. It succeeds exactly once:
// placing an order that is already placed fails with InvalidTransitionError.
//
// The caller is responsible for refusing to place an empty cart.
func (o *Order) Place(handledBy string, now time.Time) error {
	if err := o.status.ValidateTransition(Placed); err != nil {
		return err
	}

	handledBy = strings.TrimSpace(handledBy)
	if handledBy == "" {
		return errs.NewValueIsRequiredError("handled by")
	}
	if now.IsZero() {
		return errs.NewValueIsRequiredError("placed date")
	}

	o.status = Placed
	o.handledBy = &handledBy
	o.placedDate = &now
	o.lastModified = now
	return nil
}

// Advance moves a placed order one step forward (Placed -> Cooking -> Done).
// Any other target, including Placed itself, fails with InvalidTransitionError.
func (o *Order) Advance(to Status) error {
	if to == Placed {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), to.String(), ErrPlacementRequiresPlace)
	}
	if err := o.status.ValidateTransition(to); err != nil {
		return err
	}

	o.status = to
	return nil
}

// Touch records an item change on the cart by refreshing lastModified. This is
// what keeps an actively shopped cart alive against the reaper.
func (o *Order) Touch(now time.Time) error {
	if err := o.ValidateCartChange(); err != nil {
		return err
	}
	if now.IsZero() {
		return errs.NewValueIsRequiredError("last modified")
	}

	o.lastModified = now
	return nil
}

// ValidateCartChange checks that items may still be added, removed or edited.
func (o *Order) ValidateCartChange() error {
	if !o.IsCart() {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), Pending.String(), ErrCartIsLocked)
	}
	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
