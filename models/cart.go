package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPrice is returned when a unit price is not a non-negative integer.
var ErrInvalidPrice = errors.New("invalid price")

// Price is an amount in the smallest currency unit.
type Price int64

func NewPrice(v int64) (Price, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidPrice, v)
	}
	return Price(v), nil
}

// ParsePrice reads a price coming from markup or a request body.
// Only plain base-10 digits are accepted, optionally prefixed with '+'.
func ParsePrice(raw string) (Price, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidPrice)
	}

	digits := strings.TrimPrefix(s, "+")
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
		}
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidPrice, raw)
	}
	return Price(v), nil
}

func (p Price) Int64() int64 {
	return int64(p)
}

func (p Price) String() string {
	return strconv.FormatInt(int64(p), 10)
}

type LineItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice Price  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

func (i LineItem) LineTotal() int64 {
	return int64(i.UnitPrice) * int64(i.Quantity)
}

// CartSnapshot is everything a renderer needs after a mutation.
type CartSnapshot struct {
	Items         []LineItem `json:"items"`
	TotalQuantity int        `json:"total_quantity"`
	TotalPrice    int64      `json:"total_price"`
}

func (s CartSnapshot) Empty() bool {
	return len(s.Items) == 0
}
