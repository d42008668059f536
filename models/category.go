package models

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
	// Deleting a category detaches its books, it never deletes them.
	Books []Book `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"books,omitempty"`
}
