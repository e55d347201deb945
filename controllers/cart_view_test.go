package controllers

import (
	"cart-widget/models"
	"cart-widget/repositories"
	"cart-widget/services"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartPresenter_View(t *testing.T) {
	presenter := CartPresenter{CurrencySymbol: "N", Locale: "en"}

	view := presenter.View(models.CartSnapshot{
		Items: []models.LineItem{
			{ID: "a", Name: "Widget", UnitPrice: 500, Quantity: 2},
			{ID: "b", Name: "Gadget", UnitPrice: 1200, Quantity: 1},
		},
		TotalQuantity: 3,
		TotalPrice:    2200,
	})

	assert.False(t, view.Empty)
	assert.Empty(t, view.EmptyMessage)
	assert.Equal(t, "N2,200", view.FormattedTotal)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "Widget (x2)", view.Items[0].Label)
	assert.Equal(t, int64(1000), view.Items[0].LineTotal)
	assert.Equal(t, "N1,000", view.Items[0].FormattedLineTotal)
	assert.Equal(t, "Gadget (x1)", view.Items[1].Label)
}

func TestCartPresenter_EmptyView(t *testing.T) {
	view := CartPresenter{CurrencySymbol: "N", Locale: "en"}.View(models.CartSnapshot{})

	assert.True(t, view.Empty)
	assert.Equal(t, EmptyCartMessage, view.EmptyMessage)
	assert.Equal(t, "N0", view.FormattedTotal)
	assert.NotNil(t, view.Items)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("add: %w", models.ErrInvalidPrice), want: http.StatusUnprocessableEntity},
		{err: fmt.Errorf("%w: %q", services.ErrUnknownInteraction, "x"), want: http.StatusBadRequest},
		{err: services.ErrNoSession, want: http.StatusUnauthorized},
		{err: services.ErrSessionEnded, want: http.StatusConflict},
		{err: fmt.Errorf("%w: x", repositories.ErrProductNotFound), want: http.StatusNotFound},
		{err: errors.New("db down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got, _ := statusFor(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "/", pageURL(false, ""))
	assert.Equal(t, "/?cart=open", pageURL(true, ""))
	assert.Equal(t, "/?cart=open&error=invalid-price", pageURL(true, "invalid-price"))
	assert.Equal(t, "/?error=session-ended", pageURL(false, "session-ended"))
}
