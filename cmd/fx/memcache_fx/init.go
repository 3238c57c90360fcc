package memcache_fx

import (
	"go.uber.org/fx"
	mem "sweetspott/pkg/memcache"
)

var Module = fx.Provide(providePhotoCache)

func providePhotoCache() mem.PhotoURLStore {
	return mem.NewPhotoURLCache()
}
