package controllers

import (
	"cart-widget/middleware"
	"cart-widget/models"
	"cart-widget/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartController is the JSON side of the cart renderer. Every response
// carries the cart as re-read after the interaction.
type CartController struct {
	sessions  *services.SessionService
	products  *services.ProductService
	presenter CartPresenter
	logger    *zap.Logger
}

func NewCartController(sessions *services.SessionService, products *services.ProductService, presenter CartPresenter, logger *zap.Logger) *CartController {
	return &CartController{
		sessions:  sessions,
		products:  products,
		presenter: presenter,
		logger:    logger,
	}
}

// @Summary Get cart
// @Description Items, total quantity and total price of the current session's cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	snapshot, err := ctrl.sessions.Snapshot(c.GetString(middleware.SessionIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondCart(c, "Cart retrieved", snapshot)
}

// @Summary Add item
// @Description Add one unit of an item; the price is sent as text and must be a non-negative integer
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddItemRequest true "Item"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	ctrl.dispatch(c, models.InteractionEvent{
		Action: models.ActionAddToCart,
		ID:     req.ID,
		Name:   req.Name,
		Price:  req.Price,
	}, "Item added")
}

// @Summary Remove item
// @Description Remove one unit of an item; unknown ids leave the cart unchanged
// @Tags Cart
// @Produce json
// @Param id path string true "Item ID"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	ctrl.dispatch(c, models.InteractionEvent{
		Action: models.ActionRemoveFromCart,
		ID:     c.Param("id"),
	}, "Item removed")
}

// @Summary Dispatch interaction
// @Description Forward a renderer interaction (add-to-cart, remove-from-cart) to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.InteractionRequest true "Interaction"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /cart/interactions [post]
func (ctrl *CartController) Interact(c *gin.Context) {
	var req models.InteractionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	ctrl.dispatch(c, req.Event(), "Interaction applied")
}

// @Summary Add product to cart
// @Description Add one unit of a catalog product, as its card's add button would
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/add-to-cart [post]
func (ctrl *CartController) AddProduct(c *gin.Context) {
	product, err := ctrl.products.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	ctrl.dispatch(c, product.AddEvent(), "Product added")
}

func (ctrl *CartController) dispatch(c *gin.Context, ev models.InteractionEvent, message string) {
	sessionID := c.GetString(middleware.SessionIDKey)

	snapshot, err := ctrl.sessions.Dispatch(sessionID, ev)
	if err != nil {
		ctrl.logger.Debug("interaction rejected",
			zap.String("action", string(ev.Action)),
			zap.String("id", ev.ID),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}
	ctrl.respondCart(c, message, snapshot)
}

func (ctrl *CartController) respondCart(c *gin.Context, message string, snapshot models.CartSnapshot) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data:    ctrl.presenter.View(snapshot),
	})
}
