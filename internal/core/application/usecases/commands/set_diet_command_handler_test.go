package commands_test

import (
	"context"
	"testing"
	"time"

	"foodly/internal/core/application/usecases/commands"
	"foodly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDiet(s *store, orderID, itemID int64, note string) error {
	cmd, err := commands.NewSetDietCommand(orderID, itemID, note)
	if err != nil {
		return err
	}
	h := commands.NewSetDietCommandHandler(s.cartFactory(), s.clock)
	return h.Handle(context.Background(), cmd)
}

func TestSetDietCommandHandler_Handle(t *testing.T) {
	t.Run("should set and clear the note", func(t *testing.T) {
		s := newStore(t)
		id := s.createOrder(t)
		itemID := s.addItem(t, id, "Hamburgaretallrik")

		s.clock.Advance(time.Second)
		require.NoError(t, setDiet(s, id, itemID, "utan lök"))

		o := s.getOrder(t, id)
		require.NotNil(t, o.Items()[0].Diet())
		assert.Equal(t, "utan lök", *o.Items()[0].Diet())
		assert.True(t, s.clock.Now().Equal(o.LastModified()))

		require.NoError(t, setDiet(s, id, itemID, ""))
		assert.Nil(t, s.getOrder(t, id).Items()[0].Diet())
	})

	t.Run("should verify ownership", func(t *testing.T) {
		s := newStore(t)
		mine := s.createOrder(t)
		theirs := s.createOrder(t)
		theirItem := s.addItem(t, theirs, "Glass")

		err := setDiet(s, mine, theirItem, "vegan")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, s.getOrder(t, theirs).Items()[0].Diet())
	})

	t.Run("should refuse placed orders", func(t *testing.T) {
		s := newStore(t)
		id := s.createOrder(t)
		itemID := s.addItem(t, id, "Glass")
		require.NoError(t, s.placeOrder(id, "Anna"))

		err := setDiet(s, id, itemID, "vegan")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}
