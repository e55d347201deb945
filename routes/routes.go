package routes

import (
	"cart-widget/controllers"
	_ "cart-widget/docs"
	"cart-widget/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Page     *controllers.PageController
	Session  *controllers.SessionController
	Cart     *controllers.CartController
	Product  *controllers.ProductController
	Category *controllers.CategoryController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers, sessionSecret string) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.GET("/", ctrl.Page.Show)
	router.POST("/widget/interactions", ctrl.Page.Interact)

	router.POST("/session", ctrl.Session.StartSession)
	router.GET("/categories", ctrl.Category.GetCategories)
	router.GET("/products", ctrl.Product.GetAllProducts)
	router.GET("/products/:id", ctrl.Product.GetProductByID)

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware(sessionSecret))
	{
		session.GET("/cart", ctrl.Cart.GetCart)
		session.POST("/cart/items", ctrl.Cart.AddItem)
		session.DELETE("/cart/items/:id", ctrl.Cart.RemoveItem)
		session.POST("/cart/interactions", ctrl.Cart.Interact)
		session.POST("/products/:id/add-to-cart", ctrl.Cart.AddProduct)
	}
}
