package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"sweetspott/internal/models/db_models"
)

type ShowcaseEmbeddingRepository interface {
	Upsert(embedding db_models.ShowcaseEmbedding) error
	FindSimilar(vector pgvector.Vector) ([]SimilarEmbedding, error)
}

type SimilarEmbedding struct {
	db_models.ShowcaseEmbedding
	Similarity float64
}

type showcaseEmbeddingRepository struct {
	db *gorm.DB
}

func NewShowcaseEmbeddingRepository(db *gorm.DB) ShowcaseEmbeddingRepository {
	return &showcaseEmbeddingRepository{db: db}
}

func (r *showcaseEmbeddingRepository) Upsert(embedding db_models.ShowcaseEmbedding) error {
	return r.db.Save(&embedding).Error
}

func (r *showcaseEmbeddingRepository) FindSimilar(vector pgvector.Vector) ([]SimilarEmbedding, error) {
	var results []SimilarEmbedding

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM showcase_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT 15
    `

	if err := r.db.Raw(query, vecStr).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
