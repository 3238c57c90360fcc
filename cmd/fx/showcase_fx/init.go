package showcase_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sweetspott/internal/repositories"
	"sweetspott/internal/services"
	"sweetspott/pkg/utils"
)

var Module = fx.Provide(
	provideShowcaseRepo, provideEmbeddingRepo, provideEmbeddingClient, provideShowcaseService)

func provideShowcaseRepo(db *gorm.DB) repositories.ShowcaseRepository {
	return repositories.NewShowcaseRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.ShowcaseEmbeddingRepository {
	return repositories.NewShowcaseEmbeddingRepository(db)
}

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewEmbeddingClientFromEnv()
}

func provideShowcaseService(
	showcaseRepo repositories.ShowcaseRepository,
	embeddingRepo repositories.ShowcaseEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
	provider services.PlaceSearchProvider,
) services.ShowcaseServiceInterface {
	return services.NewShowcaseService(showcaseRepo, embeddingRepo, embedder, provider)
}
