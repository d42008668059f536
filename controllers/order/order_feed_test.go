package orderControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MansiS117/api-bookstore/models"
	"github.com/MansiS117/api-bookstore/testutil"
)

func dialOrderFeed(t *testing.T, serverURL, token string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/orders/feed"
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	resp.Body.Close()
	return conn
}

func TestOrderFeed_DeliversOwnOrdersOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)
	srv := httptest.NewServer(r)
	defer srv.Close()

	seller := testutil.CreateUser(t, db, "seller@example.com", models.RoleSeller)
	buyerA := testutil.CreateUser(t, db, "a@example.com", models.RoleBuyer)
	buyerB := testutil.CreateUser(t, db, "b@example.com", models.RoleBuyer)
	tokenA := testutil.Login(t, db, buyerA)
	tokenB := testutil.Login(t, db, buyerB)

	book := testutil.CreateBook(t, db, seller, "Test Book", "10.00")
	testutil.AddToCart(t, db, buyerA, book, 1)

	connA := dialOrderFeed(t, srv.URL, tokenA)
	defer connA.Close()
	connB := dialOrderFeed(t, srv.URL, tokenB)
	defer connB.Close()

	// The handler registers the connection after the handshake returns.
	time.Sleep(100 * time.Millisecond)

	w := testutil.DoRequest(t, r, http.MethodPost, "/checkout", tokenA, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, connA.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := connA.ReadMessage()
	require.NoError(t, err)

	var order models.Order
	require.NoError(t, json.Unmarshal(data, &order))
	assert.Equal(t, buyerA.ID, order.BuyerID)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("10.00")),
		"total_price = %s", order.TotalPrice)

	// The other buyer's connection must stay silent.
	require.NoError(t, connB.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, _, err = connB.ReadMessage()
	assert.Error(t, err)
}

func TestOrderFeed_Unauthenticated(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := testutil.NewRouter(db)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/orders/feed"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	if conn != nil {
		conn.Close()
	}
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
