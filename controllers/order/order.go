package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MansiS117/api-bookstore/middleware"
	"github.com/MansiS117/api-bookstore/models"
)

func orderResponse(order *models.Order) gin.H {
	return gin.H{
		"order_id":    order.ID,
		"order_ref":   order.OrderRef,
		"buyer":       order.Buyer.Email,
		"total_price": order.TotalPrice.StringFixed(2),
		"ordered_at":  order.OrderedAt,
		"items":       order.Items,
	}
}

// GetOrderByID returns one of the buyer's own orders. Someone else's order
// id and an unknown id are deliberately the same 404.
// GET /orders/:order_id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orderID, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Buyer").
			Preload("Items").
			Where("id = ? AND buyer_id = ?", orderID, buyerID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			}
			return
		}

		c.JSON(http.StatusOK, orderResponse(&order))
	}
}

// GetOrders lists the buyer's order history in creation order.
// GET /orders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Preload("Buyer").
			Preload("Items").
			Where("buyer_id = ?", buyerID).
			Order("id").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
			return
		}

		out := make([]gin.H, 0, len(orders))
		for i := range orders {
			out = append(out, orderResponse(&orders[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}
