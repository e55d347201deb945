package services

import (
	"cart-widget/models"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionTable_AddAndRemove(t *testing.T) {
	table := DefaultInteractions()
	store := NewCartStore()

	add := models.InteractionEvent{Action: models.ActionAddToCart, ID: "a", Name: "Widget", Price: "500"}
	require.NoError(t, table.Dispatch(store, add))
	require.NoError(t, table.Dispatch(store, add))
	assert.Equal(t, 2, store.TotalQuantity())

	remove := models.InteractionEvent{Action: models.ActionRemoveFromCart, ID: "a"}
	require.NoError(t, table.Dispatch(store, remove))
	assert.Equal(t, 1, store.TotalQuantity())
	assert.Equal(t, int64(500), store.TotalPrice())
}

func TestInteractionTable_InvalidPrice(t *testing.T) {
	store := NewCartStore()

	err := DefaultInteractions().Dispatch(store, models.InteractionEvent{
		Action: models.ActionAddToCart, ID: "a", Name: "Widget", Price: "five",
	})

	assert.ErrorIs(t, err, models.ErrInvalidPrice)
	assert.Equal(t, 0, store.Len())
}

func TestInteractionTable_UnknownAction(t *testing.T) {
	store := NewCartStore()

	err := DefaultInteractions().Dispatch(store, models.InteractionEvent{Action: "checkout", ID: "a"})

	assert.ErrorIs(t, err, ErrUnknownInteraction)
	assert.Contains(t, err.Error(), "checkout")
}

func TestInteractionTable_WithDoesNotMutateReceiver(t *testing.T) {
	base := DefaultInteractions()
	clearAll := models.Action("clearAll")
	extended := base.With(clearAll, func(store *CartStore, ev models.InteractionEvent) error {
		for _, item := range store.Items() {
			for i := 0; i < item.Quantity; i++ {
				store.Remove(item.ID)
			}
		}
		return nil
	})

	_, inBase := base[clearAll]
	assert.False(t, inBase)
	assert.Len(t, extended, 3)

	store := NewCartStore()
	require.NoError(t, extended.Dispatch(store, models.InteractionEvent{Action: models.ActionAddToCart, ID: "a", Price: "1"}))
	require.NoError(t, extended.Dispatch(store, models.InteractionEvent{Action: clearAll}))
	assert.Equal(t, 0, store.Len())
}

func TestInteractionTable_HandlerErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	table := InteractionTable{}.With(models.ActionAddToCart, func(*CartStore, models.InteractionEvent) error {
		return boom
	})

	err := table.Dispatch(NewCartStore(), models.InteractionEvent{Action: models.ActionAddToCart})

	assert.ErrorIs(t, err, boom)
}
