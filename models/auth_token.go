package models

import "time"

// AuthToken backs logout: every issued JWT carries a jti that must still
// have a row here to be accepted. Deleting the row revokes the token.
type AuthToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	JTI       string    `gorm:"uniqueIndex;not null" json:"jti"`
	CreatedAt time.Time `json:"created_at"`
}
