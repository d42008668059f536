package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the permanent record of a checkout. There is no update or
// delete path: once created, an order and its items are immutable.
type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	BuyerID    uint            `gorm:"index;not null" json:"buyer_id"`
	Buyer      User            `gorm:"foreignKey:BuyerID" json:"-"`
	OrderRef   string          `gorm:"uniqueIndex;not null" json:"order_ref"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	OrderedAt  time.Time       `json:"ordered_at"`
}

type OrderItem struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	OrderID  uint `gorm:"index" json:"order_id"`
	BookID   uint `json:"book_id"`
	Quantity int  `json:"quantity"`
	// UnitPrice is the book's price at the moment of checkout. Later
	// edits to Book.Price never touch it.
	UnitPrice decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"unit_price"`
}
