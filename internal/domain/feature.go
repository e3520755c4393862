package domain

import "time"

// Feature Model with full PRD metadata.
// JSON field names follow the wire contract (camelCase); columns stay snake_case.
type Feature struct {
	ID                    string     `gorm:"primaryKey;size:50" json:"id"`         // "<category_id>.<n>"
	CategoryID            string     `gorm:"size:50;not null;index" json:"-"`      // Foreign key to Category
	Title                 string     `gorm:"size:500;not null" json:"title"`       // Required
	Priority              Priority   `gorm:"size:10;not null" json:"priority"`     // High, Medium, Low
	Description           string     `gorm:"type:text" json:"description"`
	KPI                   string     `gorm:"column:kpi;type:text" json:"kpi"`
	CustomerName          string     `gorm:"size:200" json:"customerName"`
	EngineeringComment    string     `gorm:"type:text" json:"engineeringComment"`
	EngineeringSignoff    bool       `gorm:"not null;default:false" json:"engineeringSignoff"`
	EngineeringComplexity TShirtSize `gorm:"size:5;not null" json:"engineeringComplexity"` // XS..XL
	ReleaseDate           string     `gorm:"size:7" json:"releaseDate"`                    // YYYY-MM
	CreatedAt             time.Time  `json:"-"`
	UpdatedAt             time.Time  `json:"-"`
}
