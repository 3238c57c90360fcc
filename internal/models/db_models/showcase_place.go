package db_models

import "github.com/lib/pq"

// ShowcasePlace is a curated global entry shown when no live search has
// been performed. Seeded at startup, never written by request handlers.
type ShowcasePlace struct {
	BaseModel
	Slug        string `gorm:"unique;not null"`
	Name        string `gorm:"not null"`
	Category    string
	Tranquility int     // 1..5
	Rating      float64 // 0..10
	Latitude    float64
	Longitude   float64
	Address     string
	Country     string
	Description string
	ImageURL    string
	Types       pq.StringArray `gorm:"type:text[]"`

	Reviews []Review `gorm:"foreignKey:ShowcasePlaceID"`
}
