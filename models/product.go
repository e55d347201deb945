package models

import "time"

type Category struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Product is one card of the listing the cart widget adds from.
type Product struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	CategoryID  int       `json:"category_id" yaml:"category_id"`
	Price       int64     `json:"price" yaml:"price"`
	ImageURL    string    `json:"image_url,omitempty" yaml:"image_url"`
	IsActive    bool      `json:"is_active" yaml:"is_active"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// AddEvent builds the add interaction a product card would emit.
func (p Product) AddEvent() InteractionEvent {
	return InteractionEvent{
		Action: ActionAddToCart,
		ID:     p.ID,
		Name:   p.Name,
		Price:  Price(p.Price).String(),
	}
}
