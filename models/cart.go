package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	BuyerID   uint       `gorm:"uniqueIndex;not null" json:"buyer_id"` // one live cart per buyer
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	CartID   uint      `gorm:"index;uniqueIndex:idx_cart_book" json:"cart_id"`
	BookID   uint      `gorm:"uniqueIndex:idx_cart_book" json:"book_id"`
	Book     Book      `gorm:"foreignKey:BookID" json:"book"`
	Quantity int       `gorm:"not null" json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}
