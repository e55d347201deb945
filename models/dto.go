package models

type AddItemRequest struct {
	ID    string `json:"id" form:"id" binding:"required"`
	Name  string `json:"name" form:"name"`
	Price string `json:"price" form:"price"`
}

type InteractionRequest struct {
	Action string `json:"action" form:"action" binding:"required"`
	ID     string `json:"id" form:"id" binding:"required"`
	Name   string `json:"name" form:"name"`
	Price  string `json:"price" form:"price"`
}

func (r InteractionRequest) Event() InteractionEvent {
	return InteractionEvent{
		Action: Action(r.Action),
		ID:     r.ID,
		Name:   r.Name,
		Price:  r.Price,
	}
}

type CartLineView struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	UnitPrice          int64  `json:"unit_price"`
	Quantity           int    `json:"quantity"`
	LineTotal          int64  `json:"line_total"`
	Label              string `json:"label"`
	FormattedLineTotal string `json:"formatted_line_total"`
}

type CartView struct {
	Items          []CartLineView `json:"items"`
	TotalQuantity  int            `json:"total_quantity"`
	TotalPrice     int64          `json:"total_price"`
	FormattedTotal string         `json:"formatted_total"`
	Empty          bool           `json:"empty"`
	EmptyMessage   string         `json:"empty_message,omitempty"`
}

type SessionResponse struct {
	SessionID string   `json:"session_id"`
	Token     string   `json:"token"`
	Cart      CartView `json:"cart"`
}
