package services

import (
	"cart-widget/models"
	"errors"
	"fmt"
)

var ErrUnknownInteraction = errors.New("unknown interaction")

// InteractionHandler applies one interaction to a cart.
type InteractionHandler func(store *CartStore, ev models.InteractionEvent) error

// InteractionTable maps renderer interactions to cart operations.
type InteractionTable map[models.Action]InteractionHandler

func DefaultInteractions() InteractionTable {
	return InteractionTable{
		models.ActionAddToCart:      addToCart,
		models.ActionRemoveFromCart: removeFromCart,
	}
}

func addToCart(store *CartStore, ev models.InteractionEvent) error {
	price, err := models.ParsePrice(ev.Price)
	if err != nil {
		return err
	}
	return store.AddPriced(ev.ID, ev.Name, price)
}

func removeFromCart(store *CartStore, ev models.InteractionEvent) error {
	store.Remove(ev.ID)
	return nil
}

// With returns a copy of the table with action bound to handler.
func (t InteractionTable) With(action models.Action, handler InteractionHandler) InteractionTable {
	out := make(InteractionTable, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[action] = handler
	return out
}

func (t InteractionTable) Dispatch(store *CartStore, ev models.InteractionEvent) error {
	handler, ok := t[ev.Action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInteraction, ev.Action)
	}
	return handler(store, ev)
}
