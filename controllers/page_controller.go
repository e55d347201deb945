package controllers

import (
	"cart-widget/models"
	"cart-widget/services"
	"cart-widget/views"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var notices = map[string]string{
	"invalid-price":       "That item has an invalid price and was not added.",
	"unknown-interaction": "That action is not supported.",
	"session-ended":       "Your previous cart session has ended.",
}

type ProductCard struct {
	ID             string
	Name           string
	Description    string
	Price          string
	FormattedPrice string
}

type WidgetPage struct {
	Products []ProductCard
	Cart     models.CartView
	CartOpen bool
	Notice   string
}

// PageController renders the server-side cart widget: product grid, cart
// count, cart list and total.
type PageController struct {
	issuer    *SessionIssuer
	sessions  *services.SessionService
	products  *services.ProductService
	presenter CartPresenter
	logger    *zap.Logger
}

func NewPageController(issuer *SessionIssuer, sessions *services.SessionService, products *services.ProductService, presenter CartPresenter, logger *zap.Logger) *PageController {
	return &PageController{
		issuer:    issuer,
		sessions:  sessions,
		products:  products,
		presenter: presenter,
		logger:    logger,
	}
}

// Show renders the widget. Loading the page without a live session starts
// one with an empty cart.
func (ctrl *PageController) Show(c *gin.Context) {
	snapshot, err := ctrl.cart(c)
	if err != nil {
		ctrl.fail(c, err)
		return
	}

	products, err := ctrl.products.GetAllProducts(c.Request.Context())
	if err != nil {
		ctrl.fail(c, err)
		return
	}

	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCard{
			ID:             p.ID,
			Name:           p.Name,
			Description:    p.Description,
			Price:          models.Price(p.Price).String(),
			FormattedPrice: ctrl.presenter.Amount(p.Price),
		})
	}

	c.HTML(http.StatusOK, views.WidgetTemplate, WidgetPage{
		Products: cards,
		Cart:     ctrl.presenter.View(snapshot),
		CartOpen: c.Query("cart") == "open",
		Notice:   notices[c.Query("error")],
	})
}

// Interact applies a form-posted interaction and redirects back to the page.
func (ctrl *PageController) Interact(c *gin.Context) {
	var req models.InteractionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusSeeOther, pageURL(false, "unknown-interaction"))
		return
	}

	sessionID, ok := ctrl.issuer.Resolve(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, pageURL(false, "session-ended"))
		return
	}

	ev := req.Event()
	cartOpen := ev.Action == models.ActionRemoveFromCart

	_, err := ctrl.sessions.Dispatch(sessionID, ev)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, pageURL(cartOpen, ""))
	case errors.Is(err, models.ErrInvalidPrice):
		c.Redirect(http.StatusSeeOther, pageURL(cartOpen, "invalid-price"))
	case errors.Is(err, services.ErrUnknownInteraction):
		c.Redirect(http.StatusSeeOther, pageURL(cartOpen, "unknown-interaction"))
	case errors.Is(err, services.ErrSessionEnded), errors.Is(err, services.ErrNoSession):
		c.Redirect(http.StatusSeeOther, pageURL(false, "session-ended"))
	default:
		ctrl.fail(c, err)
	}
}

// cart reads the request's cart, issuing a new session when the request has
// none or its session was replaced.
func (ctrl *PageController) cart(c *gin.Context) (models.CartSnapshot, error) {
	if sessionID, ok := ctrl.issuer.Claimed(c); ok {
		snapshot, err := ctrl.sessions.Snapshot(sessionID)
		if err == nil {
			return snapshot, nil
		}
		if !errors.Is(err, services.ErrSessionEnded) && !errors.Is(err, services.ErrNoSession) {
			return models.CartSnapshot{}, err
		}
	}

	// A just-started cart is empty; reading it back could race another Start.
	if _, _, err := ctrl.issuer.Issue(c); err != nil {
		return models.CartSnapshot{}, err
	}
	return models.CartSnapshot{Items: []models.LineItem{}}, nil
}

func (ctrl *PageController) fail(c *gin.Context, err error) {
	ctrl.logger.Error("widget page failed", zap.Error(err))
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "Something went wrong")
}

func pageURL(cartOpen bool, notice string) string {
	q := url.Values{}
	if cartOpen {
		q.Set("cart", "open")
	}
	if notice != "" {
		q.Set("error", notice)
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}
