package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/MansiS117/api-bookstore/controllers/cart"
	orderControllers "github.com/MansiS117/api-bookstore/controllers/order"
	"github.com/MansiS117/api-bookstore/middleware"
)

// SetupBuyerRoutes registers cart, checkout and order-history endpoints.
func SetupBuyerRoutes(r *gin.Engine, db *gorm.DB) {
	buyer := r.Group("/")
	buyer.Use(middleware.ValidateToken(db), middleware.RequireBuyer())
	{
		cartGroup := buyer.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))
			cartGroup.POST("", cartControllers.AddCartItem(db))
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(db))
		}

		buyer.POST("/checkout", orderControllers.Checkout(db))

		buyer.GET("/orders", orderControllers.GetOrders(db))
		buyer.GET("/orders/feed", orderControllers.OrderFeedHandler)
		buyer.GET("/orders/:order_id", orderControllers.GetOrderByID(db))
	}
}
