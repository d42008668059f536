package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/MansiS117/api-bookstore/middleware"
	"github.com/MansiS117/api-bookstore/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	feedMu    sync.Mutex
	feedConns = make(map[*websocket.Conn]uint) // conn -> buyer id
)

// OrderFeedHandler streams the buyer's newly created orders over a
// websocket. Each client only sees its own account's orders.
// GET /orders/feed
func OrderFeedHandler(c *gin.Context) {
	buyerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	feedMu.Lock()
	feedConns[conn] = buyerID
	feedMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			feedMu.Lock()
			delete(feedConns, conn)
			feedMu.Unlock()
			break
		}
	}
}

func broadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	feedMu.Lock()
	defer feedMu.Unlock()
	for conn, buyerID := range feedConns {
		if buyerID != order.BuyerID {
			continue
		}
		_ = conn.WriteMessage(websocket.TextMessage, data)
	}
}
