package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MansiS117/api-bookstore/middleware"
	"github.com/MansiS117/api-bookstore/models"
)

var (
	ErrNoActiveCart = errors.New("no active cart")
	// Returned when a concurrent checkout consumed the cart between our
	// read and our delete; the whole transaction rolls back.
	ErrCheckoutConflict = errors.New("cart was already checked out")
)

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout materializes the buyer's cart into a permanent order: snapshot
// every item's current book price, write the order, tear the cart down.
// All of it commits or none of it does.
// POST /checkout
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Preload("Items.Book").
				Where("buyer_id = ?", buyerID).
				First(&cart).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNoActiveCart
				}
				return err
			}

			// Fixed-point accumulation; an empty cart is still a valid
			// order with a zero total.
			totalPrice := decimal.Zero
			orderItems := make([]models.OrderItem, 0, len(cart.Items))
			for _, item := range cart.Items {
				lineTotal := item.Book.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
				totalPrice = totalPrice.Add(lineTotal)
				orderItems = append(orderItems, models.OrderItem{
					BookID:    item.BookID,
					Quantity:  item.Quantity,
					UnitPrice: item.Book.Price,
				})
			}

			order = models.Order{
				BuyerID:    buyerID,
				OrderRef:   generateOrderRef(),
				TotalPrice: totalPrice,
				Items:      orderItems,
				OrderedAt:  time.Now(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}

			// The cart row is the serialization point: a racing checkout
			// blocks here until we commit, then matches nothing and rolls
			// its own order back.
			result := tx.Where("cart_id = ?", cart.CartID).Delete(&models.Cart{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrCheckoutConflict
			}

			return nil
		})
		if err != nil {
			if errors.Is(err, ErrNoActiveCart) || errors.Is(err, ErrCheckoutConflict) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No active cart"})
				return
			}
			log.Error().Err(err).Uint("buyer_id", buyerID).Msg("checkout failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{
			"message":     "Checkout successful!",
			"order_id":    order.ID,
			"total_price": order.TotalPrice.StringFixed(2),
		})
	}
}
