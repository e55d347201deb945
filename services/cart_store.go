package services

import (
	"cart-widget/models"
	"fmt"
	"math"
)

// CartStore holds the line items of one cart session in insertion order.
// It is not safe for concurrent use; callers serialize access.
type CartStore struct {
	items []models.LineItem
	index map[string]int
}

func NewCartStore() *CartStore {
	return &CartStore{
		items: []models.LineItem{},
		index: make(map[string]int),
	}
}

// Add parses unitPrice and adds one unit of id. The store is unchanged on error.
func (s *CartStore) Add(id, name, unitPrice string) error {
	price, err := models.ParsePrice(unitPrice)
	if err != nil {
		return err
	}
	return s.AddPriced(id, name, price)
}

// AddPriced adds one unit of id. An existing line keeps its name and price.
// An add that would take the cart total past math.MaxInt64 is refused with
// ErrInvalidPrice and the store is left unchanged.
func (s *CartStore) AddPriced(id, name string, unitPrice models.Price) error {
	if _, err := models.NewPrice(unitPrice.Int64()); err != nil {
		return err
	}

	pos, exists := s.index[id]
	charged := unitPrice
	if exists {
		charged = s.items[pos].UnitPrice
	}
	if charged.Int64() > math.MaxInt64-s.TotalPrice() {
		return fmt.Errorf("%w: cart total would exceed %d", models.ErrInvalidPrice, int64(math.MaxInt64))
	}

	if exists {
		s.items[pos].Quantity++
		return nil
	}

	s.index[id] = len(s.items)
	s.items = append(s.items, models.LineItem{
		ID:        id,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
	return nil
}

// Remove takes one unit of id out of the cart. Unknown ids are ignored.
func (s *CartStore) Remove(id string) {
	pos, ok := s.index[id]
	if !ok {
		return
	}

	if s.items[pos].Quantity > 1 {
		s.items[pos].Quantity--
		return
	}

	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
}

func (s *CartStore) TotalQuantity() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

func (s *CartStore) TotalPrice() int64 {
	var total int64
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

// Items returns a copy of the lines in insertion order.
func (s *CartStore) Items() []models.LineItem {
	out := make([]models.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartStore) Len() int {
	return len(s.items)
}

func (s *CartStore) Snapshot() models.CartSnapshot {
	return models.CartSnapshot{
		Items:         s.Items(),
		TotalQuantity: s.TotalQuantity(),
		TotalPrice:    s.TotalPrice(),
	}
}
