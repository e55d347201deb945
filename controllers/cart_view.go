package controllers

import (
	"cart-widget/models"
	"cart-widget/utils"
	"fmt"
)

const EmptyCartMessage = "Your cart is empty."

// CartPresenter turns a cart snapshot into display values.
type CartPresenter struct {
	CurrencySymbol string
	Locale         string
}

func (p CartPresenter) Amount(amount int64) string {
	return utils.FormatAmount(p.CurrencySymbol, p.Locale, amount)
}

func (p CartPresenter) View(snapshot models.CartSnapshot) models.CartView {
	view := models.CartView{
		Items:          make([]models.CartLineView, 0, len(snapshot.Items)),
		TotalQuantity:  snapshot.TotalQuantity,
		TotalPrice:     snapshot.TotalPrice,
		FormattedTotal: p.Amount(snapshot.TotalPrice),
		Empty:          snapshot.Empty(),
	}
	if view.Empty {
		view.EmptyMessage = EmptyCartMessage
	}

	for _, item := range snapshot.Items {
		lineTotal := item.LineTotal()
		view.Items = append(view.Items, models.CartLineView{
			ID:                 item.ID,
			Name:               item.Name,
			UnitPrice:          item.UnitPrice.Int64(),
			Quantity:           item.Quantity,
			LineTotal:          lineTotal,
			Label:              fmt.Sprintf("%s (x%d)", item.Name, item.Quantity),
			FormattedLineTotal: p.Amount(lineTotal),
		})
	}
	return view
}
