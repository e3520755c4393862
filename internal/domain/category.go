package domain

import "time"

// Category Model
type Category struct {
	ID          string    `gorm:"primaryKey;size:50" json:"id"` // Sequential string ID ("1", "2", ...)
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	// Owned features; deleting a category deletes them all
	Features []Feature `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"features"`
}
