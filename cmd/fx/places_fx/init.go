package places_fx

import (
	"go.uber.org/fx"
	"sweetspott/internal/services"
	mem "sweetspott/pkg/memcache"
)

var Module = fx.Provide(
	provideSearchProvider, provideDiscoveryService)

func provideSearchProvider() services.PlaceSearchProvider {
	return services.NewGooglePlacesClient()
}

func provideDiscoveryService(provider services.PlaceSearchProvider, photos mem.PhotoURLStore) services.DiscoveryServiceInterface {
	return services.NewDiscoveryService(provider, photos)
}
