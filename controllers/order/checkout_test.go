package orderControllers_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MansiS117/api-bookstore/models"
	"github.com/MansiS117/api-bookstore/testutil"
)

type checkoutResponse struct {
	Message    string          `json:"message"`
	OrderID    uint            `json:"order_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func TestCheckout_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	seller := testutil.CreateUser(t, db, "seller@example.com", models.RoleSeller)
	buyer := testutil.CreateUser(t, db, "buyer@example.com", models.RoleBuyer)
	token := testutil.Login(t, db, buyer)

	book1 := testutil.CreateBook(t, db, seller, "Test Book", "25.00")
	book2 := testutil.CreateBook(t, db, seller, "Another Book", "5.00")
	cart := testutil.AddToCart(t, db, buyer, book1, 2)
	testutil.AddToCart(t, db, buyer, book2, 1)

	w := testutil.DoRequest(t, r, http.MethodPost, "/checkout", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// The wire form is a fixed two-decimal string, never a trimmed number.
	assert.Contains(t, w.Body.String(), `"total_price":"55.00"`)

	var resp checkoutResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, "Checkout successful!", resp.Message)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("55.00")),
		"total_price = %s", resp.TotalPrice)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, resp.OrderID).Error)
	require.Len(t, order.Items, 2)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("55.00")))

	prices := map[uint]string{book1.ID: "25.00", book2.ID: "5.00"}
	for _, item := range order.Items {
		want := decimal.RequireFromString(prices[item.BookID])
		assert.True(t, item.UnitPrice.Equal(want), "unit_price = %s", item.UnitPrice)
	}

	// The cart and every one of its items must be gone.
	var cartCount, itemCount int64
	db.Model(&models.Cart{}).Where("buyer_id = ?", buyer.ID).Count(&cartCount)
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.CartID).Count(&itemCount)
	assert.Zero(t, cartCount)
	assert.Zero(t, itemCount)
}

func TestCheckout_EmptyCart(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	buyer := testutil.CreateUser(t, db, "buyer@example.com", models.RoleBuyer)
	token := testutil.Login(t, db, buyer)
	require.NoError(t, db.Create(&models.Cart{BuyerID: buyer.ID}).Error)

	w := testutil.DoRequest(t, r, http.MethodPost, "/checkout", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp checkoutResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.True(t, resp.TotalPrice.Equal(decimal.Zero), "total_price = %s", resp.TotalPrice)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, resp.OrderID).Error)
	assert.Empty(t, order.Items)

	var cartCount int64
	db.Model(&models.Cart{}).Where("buyer_id = ?", buyer.ID).Count(&cartCount)
	assert.Zero(t, cartCount)
}

func TestCheckout_NoCart(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	buyer := testutil.CreateUser(t, db, "buyer@example.com", models.RoleBuyer)
	token := testutil.Login(t, db, buyer)

	w := testutil.DoRequest(t, r, http.MethodPost, "/checkout", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount)
}

func TestCheckout_DoubleSubmit(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	seller := testutil.CreateUser(t, db, "seller@example.com", models.RoleSeller)
	buyer := testutil.CreateUser(t, db, "buyer@example.com", models.RoleBuyer)
	token := testutil.Login(t, db, buyer)

	book := testutil.CreateBook(t, db, seller, "Test Book", "10.00")
	testutil.AddToCart(t, db, buyer, book, 1)

	first := testutil.DoRequest(t, r, http.MethodPost, "/checkout", token, nil)
	require.Equal(t, http.StatusCreated, first.Code)

	second := testutil.DoRequest(t, r, http.MethodPost, "/checkout", token, nil)
	assert.Equal(t, http.StatusNotFound, second.Code)

	var orderCount int64
	db.Model(&models.Order{}).Where("buyer_id = ?", buyer.ID).Count(&orderCount)
	assert.EqualValues(t, 1, orderCount)
}

func TestCheckout_PriceSnapshot(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	seller := testutil.CreateUser(t, db, "seller@example.com", models.RoleSeller)
	buyer := testutil.CreateUser(t, db, "buyer@example.com", models.RoleBuyer)
	token := testutil.Login(t, db, buyer)

	book := testutil.CreateBook(t, db, seller, "Test Book", "25.00")
	testutil.AddToCart(t, db, buyer, book, 2)

	w := testutil.DoRequest(t, r, http.MethodPost, "/checkout", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp checkoutResponse
	testutil.DecodeJSON(t, w, &resp)

	// Raise the book's price after checkout; the order must not move.
	require.NoError(t, db.Model(&models.Book{}).Where("id = ?", book.ID).
		Update("price", decimal.RequireFromString("99.99")).Error)

	var item models.OrderItem
	require.NoError(t, db.Where("order_id = ?", resp.OrderID).First(&item).Error)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("25.00")),
		"unit_price = %s", item.UnitPrice)

	var order models.Order
	require.NoError(t, db.First(&order, resp.OrderID).Error)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("50.00")))
}

func TestCheckout_RequiresBuyerRole(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	seller := testutil.CreateUser(t, db, "seller@example.com", models.RoleSeller)
	token := testutil.Login(t, db, seller)

	w := testutil.DoRequest(t, r, http.MethodPost, "/checkout", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCheckout_Unauthenticated(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)

	w := testutil.DoRequest(t, r, http.MethodPost, "/checkout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
