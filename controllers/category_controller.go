package controllers

import (
	"cart-widget/models"
	"cart-widget/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	products *services.ProductService
}

func NewCategoryController(products *services.ProductService) *CategoryController {
	return &CategoryController{products: products}
}

// @Summary Get all categories
// @Description Get list of all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Category}
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.products.GetAllCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    categories,
	})
}
