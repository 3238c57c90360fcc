package db_models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type ShowcaseEmbedding struct {
	PlaceID     string `gorm:"primaryKey;column:place_id"`
	Name        string
	Description string
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}
