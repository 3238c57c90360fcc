package services

import (
	"context"
	"log"
	"sync"

	"sweetspott/internal/models/db_models"
	"sweetspott/internal/models/response_models"
	"sweetspott/internal/repositories"
	"sweetspott/pkg/utils"
)

type ShowcaseServiceInterface interface {
	ListShowcasePlaces(ctx context.Context, withPhotos bool) ([]response_models.Place, error)
	GetShowcasePlace(ctx context.Context, slug string) (response_models.Place, error)
	FindSimilar(ctx context.Context, query string) ([]response_models.SimilarShowcase, error)
	ReindexEmbeddings(ctx context.Context) error
}

type ShowcaseService struct {
	showcaseRepo  repositories.ShowcaseRepository
	embeddingRepo repositories.ShowcaseEmbeddingRepository
	embedder      utils.EmbeddingClientInterface
	provider      PlaceSearchProvider
}

func NewShowcaseService(
	showcaseRepo repositories.ShowcaseRepository,
	embeddingRepo repositories.ShowcaseEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
	provider PlaceSearchProvider,
) ShowcaseServiceInterface {
	return &ShowcaseService{
		showcaseRepo:  showcaseRepo,
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
		provider:      provider,
	}
}

func (s *ShowcaseService) ListShowcasePlaces(ctx context.Context, withPhotos bool) ([]response_models.Place, error) {
	records, err := s.showcaseRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing showcase places: %v", err)
		return nil, utils.ErrDatabaseError
	}

	places := make([]response_models.Place, len(records))
	for i, rec := range records {
		places[i] = toShowcaseResponse(rec)
	}

	if withPhotos {
		s.attachProviderPhotos(ctx, places)
	}
	return places, nil
}

// attachProviderPhotos fills in missing image URLs by looking each place
// up at the provider. Lookups run concurrently; a failed lookup leaves
// the seeded image URL in place.
func (s *ShowcaseService) attachProviderPhotos(ctx context.Context, places []response_models.Place) {
	var wg sync.WaitGroup
	for i := range places {
		if places[i].ImageURL != "" {
			continue
		}
		wg.Add(1)
		go func(p *response_models.Place) {
			defer wg.Done()
			url, err := s.provider.FindPhoto(ctx, p.Name, p.Latitude, p.Longitude)
			if err != nil {
				log.Printf("Photo lookup for %q failed: %v", p.Name, err)
				return
			}
			if url != "" {
				p.ImageURL = url
			}
		}(&places[i])
	}
	wg.Wait()
}

func (s *ShowcaseService) GetShowcasePlace(ctx context.Context, slug string) (response_models.Place, error) {
	rec, err := s.showcaseRepo.GetBySlug(ctx, slug)
	if err != nil {
		log.Printf("Error fetching showcase place: %v", err)
		return response_models.Place{}, utils.ErrDatabaseError
	}
	if rec == nil {
		return response_models.Place{}, utils.ErrPlaceNotFound
	}
	return toShowcaseResponse(*rec), nil
}

func (s *ShowcaseService) FindSimilar(ctx context.Context, query string) ([]response_models.SimilarShowcase, error) {
	if s.embedder == nil {
		return nil, utils.ErrEmbeddingUnavailable
	}

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		log.Printf("Embedding query failed: %v", err)
		return nil, utils.ErrEmbeddingUnavailable
	}

	matches, err := s.embeddingRepo.FindSimilar(vector)
	if err != nil {
		log.Printf("Similarity search failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.SimilarShowcase, 0, len(matches))
	for _, m := range matches {
		results = append(results, response_models.SimilarShowcase{
			PlaceID:    m.PlaceID,
			Name:       m.Name,
			Similarity: m.Similarity,
		})
	}
	return results, nil
}

// ReindexEmbeddings embeds every showcase description. Called once after
// seeding; a missing embedding backend makes this a no-op.
func (s *ShowcaseService) ReindexEmbeddings(ctx context.Context) error {
	if s.embedder == nil {
		return nil
	}

	records, err := s.showcaseRepo.ListAll(ctx)
	if err != nil {
		return utils.ErrDatabaseError
	}

	for _, rec := range records {
		if rec.Description == "" {
			continue
		}
		vector, err := s.embedder.EmbedText(ctx, rec.Name+". "+rec.Description)
		if err != nil {
			log.Printf("Embedding %q failed: %v", rec.Name, err)
			continue
		}
		err = s.embeddingRepo.Upsert(db_models.ShowcaseEmbedding{
			PlaceID:     rec.Slug,
			Name:        rec.Name,
			Description: rec.Description,
			Embedding:   vector,
		})
		if err != nil {
			log.Printf("Storing embedding for %q failed: %v", rec.Name, err)
		}
	}
	return nil
}

func toShowcaseResponse(rec db_models.ShowcasePlace) response_models.Place {
	reviews := make([]response_models.Review, 0, len(rec.Reviews))
	for _, r := range rec.Reviews {
		reviews = append(reviews, response_models.Review{
			ID:      r.ID.String(),
			Author:  r.Author,
			Comment: r.Comment,
			Rating:  r.Rating,
		})
	}

	return response_models.Place{
		ID:               "global-" + rec.Slug,
		Name:             rec.Name,
		Category:         rec.Category,
		Tranquility:      rec.Tranquility,
		Rating:           rec.Rating,
		Latitude:         rec.Latitude,
		Longitude:        rec.Longitude,
		DistanceMeters:   0,
		Address:          rec.Address,
		ImageURL:         rec.ImageURL,
		Reviews:          reviews,
		IsGlobalShowcase: true,
		Country:          rec.Country,
		Description:      rec.Description,
	}
}
