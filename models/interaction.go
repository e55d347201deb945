package models

// Action names a user interaction forwarded by a renderer.
type Action string

const (
	ActionAddToCart      Action = "add-to-cart"
	ActionRemoveFromCart Action = "remove-from-cart"
)

// InteractionEvent carries the data attached to the element that was used.
// Price stays as text until the interaction table parses it.
type InteractionEvent struct {
	Action Action
	ID     string
	Name   string
	Price  string
}
