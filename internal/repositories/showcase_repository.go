package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"sweetspott/internal/models/db_models"
)

type ShowcaseRepository interface {
	ListAll(ctx context.Context) ([]db_models.ShowcasePlace, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.ShowcasePlace, error)
	Count(ctx context.Context) (int64, error)
	InsertAll(ctx context.Context, places []db_models.ShowcasePlace) error
}

type showcaseRepository struct {
	db *gorm.DB
}

func NewShowcaseRepository(db *gorm.DB) ShowcaseRepository {
	return &showcaseRepository{db: db}
}

func (r *showcaseRepository) ListAll(ctx context.Context) ([]db_models.ShowcasePlace, error) {
	var places []db_models.ShowcasePlace
	err := r.db.WithContext(ctx).
		Preload("Reviews").
		Order("tranquility DESC, rating DESC").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *showcaseRepository) GetBySlug(ctx context.Context, slug string) (*db_models.ShowcasePlace, error) {
	var place db_models.ShowcasePlace
	err := r.db.WithContext(ctx).
		Preload("Reviews").
		First(&place, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *showcaseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.ShowcasePlace{}).Count(&count).Error
	return count, err
}

func (r *showcaseRepository) InsertAll(ctx context.Context, places []db_models.ShowcasePlace) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range places {
			if err := tx.Create(&places[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
