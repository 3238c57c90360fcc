package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweetspott/internal/models/response_models"
	"sweetspott/pkg/memcache"
	"sweetspott/pkg/utils"
)

type stubProvider struct {
	mu       sync.Mutex
	calls    []string
	results  map[string][]ProviderPlace
	errTerms map[string]bool
	err      error

	photoURL string
	photoErr error
	details  *ProviderPlace
}

func (s *stubProvider) TextSearch(ctx context.Context, term string, lat, lng float64) ([]ProviderPlace, error) {
	s.mu.Lock()
	s.calls = append(s.calls, term)
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	if s.errTerms[term] {
		return nil, errors.New("provider error for " + term)
	}
	return s.results[term], nil
}

func (s *stubProvider) PlaceDetails(ctx context.Context, placeID string) (*ProviderPlace, error) {
	if s.details == nil {
		return nil, utils.ErrPlaceNotFound
	}
	return s.details, nil
}

func (s *stubProvider) FindPhoto(ctx context.Context, name string, lat, lng float64) (string, error) {
	return s.photoURL, s.photoErr
}

func (s *stubProvider) PhotoURL(photoReference string, maxWidth, maxHeight int) string {
	return "photo://" + photoReference
}

func (s *stubProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func newTestDiscovery(provider *stubProvider) DiscoveryServiceInterface {
	return NewDiscoveryService(provider, memcache.NewPhotoURLCache())
}

func TestFilterAndRank(t *testing.T) {
	t.Run("deduplicates by normalized name and coordinate bucket", func(t *testing.T) {
		input := []response_models.Place{
			{ID: "google-a", Name: "City Park", Category: "Park", Tranquility: 5, Latitude: 19.07601, Longitude: 72.87702, DistanceMeters: 800},
			{ID: "google-b", Name: "City Park!!", Category: "Park", Tranquility: 5, Latitude: 19.07603, Longitude: 72.87704, DistanceMeters: 800},
		}

		out := FilterAndRank(input)
		require.Len(t, out, 1)
		assert.Equal(t, "google-a", out[0].ID)
	})

	t.Run("same name at different locations is kept", func(t *testing.T) {
		input := []response_models.Place{
			{ID: "google-a", Name: "Starbright Cafe", Tranquility: 3, Latitude: 19.07, Longitude: 72.87},
			{ID: "google-b", Name: "Starbright Cafe", Tranquility: 3, Latitude: 19.12, Longitude: 72.90},
		}
		assert.Len(t, FilterAndRank(input), 2)
	})

	t.Run("idempotent", func(t *testing.T) {
		input := []response_models.Place{
			{ID: "1", Name: "Quiet Park", Category: "Park", Tranquility: 5, DistanceMeters: 1200, Latitude: 1, Longitude: 1},
			{ID: "2", Name: "Quiet Park", Category: "Park", Tranquility: 5, DistanceMeters: 1200, Latitude: 1, Longitude: 1},
			{ID: "3", Name: "Busy Museum", Category: "Museum", Tranquility: 4, DistanceMeters: 10, Latitude: 2, Longitude: 2},
			{ID: "4", Name: "Shell Gas Station", Category: "gas_station", Tranquility: 3, DistanceMeters: 5, Latitude: 3, Longitude: 3},
		}

		once := FilterAndRank(input)
		twice := FilterAndRank(once)
		assert.Equal(t, once, twice)
	})

	t.Run("removes noisy candidates", func(t *testing.T) {
		input := []response_models.Place{
			{ID: "1", Name: "Shell Gas Station", Category: "Place", Latitude: 1, Longitude: 1},
			{ID: "2", Name: "Corner ATM", Category: "Place", Latitude: 2, Longitude: 2},
			{ID: "3", Name: "Downtown Parking Garage", Category: "Place", Latitude: 3, Longitude: 3},
			{ID: "4", Name: "Sudsy Car Wash", Category: "Place", Latitude: 4, Longitude: 4},
			{ID: "5", Name: "Joe's Auto Repair", Category: "Place", Latitude: 5, Longitude: 5},
			{ID: "6", Name: "Fuel Stop", Category: "gas_station", Latitude: 6, Longitude: 6},
			{ID: "7", Name: "Rose Garden", Category: "Park", Tranquility: 5, Latitude: 7, Longitude: 7},
		}

		out := FilterAndRank(input)
		require.Len(t, out, 1)
		assert.Equal(t, "Rose Garden", out[0].Name)
	})

	t.Run("ranks tranquility over distance", func(t *testing.T) {
		input := []response_models.Place{
			{ID: "m", Name: "Busy Museum", Tranquility: 4, DistanceMeters: 10, Latitude: 1, Longitude: 1},
			{ID: "p", Name: "Quiet Park", Tranquility: 5, DistanceMeters: 1200, Latitude: 2, Longitude: 2},
		}

		out := FilterAndRank(input)
		require.Len(t, out, 2)
		assert.Equal(t, "Quiet Park", out[0].Name)
		assert.Equal(t, "Busy Museum", out[1].Name)
	})

	t.Run("distance breaks tranquility ties", func(t *testing.T) {
		input := []response_models.Place{
			{ID: "far", Name: "Far Park", Tranquility: 5, DistanceMeters: 900, Latitude: 1, Longitude: 1},
			{ID: "near", Name: "Near Park", Tranquility: 5, DistanceMeters: 100, Latitude: 2, Longitude: 2},
		}

		out := FilterAndRank(input)
		assert.Equal(t, "near", out[0].ID)
	})

	t.Run("full ties preserve input order", func(t *testing.T) {
		input := []response_models.Place{
			{ID: "a", Name: "Alpha Park", Tranquility: 5, DistanceMeters: 500, Latitude: 1, Longitude: 1},
			{ID: "b", Name: "Beta Park", Tranquility: 5, DistanceMeters: 500, Latitude: 2, Longitude: 2},
			{ID: "c", Name: "Gamma Park", Tranquility: 5, DistanceMeters: 500, Latitude: 3, Longitude: 3},
		}

		out := FilterAndRank(input)
		require.Len(t, out, 3)
		assert.Equal(t, "a", out[0].ID)
		assert.Equal(t, "b", out[1].ID)
		assert.Equal(t, "c", out[2].ID)
	})

	t.Run("caps output at twenty", func(t *testing.T) {
		var input []response_models.Place
		for i := 0; i < 35; i++ {
			input = append(input, response_models.Place{
				ID:        fmt.Sprintf("google-%d", i),
				Name:      fmt.Sprintf("Park %d", i),
				Latitude:  float64(i),
				Longitude: float64(i),
			})
		}
		assert.Len(t, FilterAndRank(input), 20)
	})

	t.Run("nil input yields empty output", func(t *testing.T) {
		assert.Empty(t, FilterAndRank(nil))
	})
}

func TestScoreTranquility(t *testing.T) {
	cases := []struct {
		name     string
		category string
		want     int
	}{
		{"Riverside Botanical Garden", "park", 5},
		{"Zen House", "restaurant", 5}, // first rule wins over the food rule
		{"Old Monastery", "", 5},
		{"Central Library", "library", 4},
		{"Quiet Corner", "cafe", 4},
		{"Wellness Hub", "", 4},
		{"Moss & Mint", "cafe", 3},
		{"The Tea House", "", 3},
		{"Corner Bookstore", "store", 4}, // bookstore outranks the retail rule
		{"General Store", "store", 2},
		{"Gift Shop", "", 2},
		{"Unknown Venue", "", 3},
	}

	for _, tc := range cases {
		got := scoreTranquility(tc.name, tc.category)
		assert.Equal(t, tc.want, got, "name=%q category=%q", tc.name, tc.category)
	}
}

func TestDiscover(t *testing.T) {
	t.Run("rejects non-numeric coordinates before any provider call", func(t *testing.T) {
		provider := &stubProvider{}
		svc := newTestDiscovery(provider)

		_, err := svc.Discover(context.Background(), "abc", "72.87", "")
		assert.ErrorIs(t, err, utils.ErrInvalidCoordinates)
		assert.Zero(t, provider.callCount())
	})

	t.Run("rejects missing coordinates", func(t *testing.T) {
		provider := &stubProvider{}
		svc := newTestDiscovery(provider)

		_, err := svc.Discover(context.Background(), "", "", "park")
		assert.ErrorIs(t, err, utils.ErrInvalidCoordinates)
		assert.Zero(t, provider.callCount())
	})

	t.Run("query mode searches at most five expanded terms", func(t *testing.T) {
		provider := &stubProvider{
			results: map[string][]ProviderPlace{
				"coffee": {{PlaceID: "c1", Name: "Moss & Mint Cafe", Types: []string{"cafe"}, Latitude: 19.08, Longitude: 72.88}},
			},
		}
		svc := newTestDiscovery(provider)

		result, err := svc.Discover(context.Background(), "19.076", "72.8777", "coffee")
		require.NoError(t, err)
		assert.Equal(t, 5, provider.callCount())
		require.Len(t, result.Places, 1)
		assert.Equal(t, "google-c1", result.Places[0].ID)
		assert.Equal(t, `Found 1 places for "coffee"`, result.Message)
	})

	t.Run("per-term failures do not abort the aggregation", func(t *testing.T) {
		provider := &stubProvider{
			errTerms: map[string]bool{"coffee": true, "coffee shop": true},
			results: map[string][]ProviderPlace{
				"cafe": {{PlaceID: "ok", Name: "Calm Cafe", Types: []string{"cafe"}, Latitude: 19.08, Longitude: 72.88}},
			},
		}
		svc := newTestDiscovery(provider)

		result, err := svc.Discover(context.Background(), "19.076", "72.8777", "coffee")
		require.NoError(t, err)
		require.Len(t, result.Places, 1)
		assert.Equal(t, "google-ok", result.Places[0].ID)
	})

	t.Run("all failing terms surface as a successful empty result", func(t *testing.T) {
		provider := &stubProvider{err: errors.New("boom")}
		svc := newTestDiscovery(provider)

		result, err := svc.Discover(context.Background(), "19.076", "72.8777", "")
		require.NoError(t, err)
		assert.Empty(t, result.Places)
		assert.Equal(t, "No places found in your area. Try a different search term or location.", result.Message)
		// default terms plus one broad pass
		assert.Equal(t, len(defaultSearchTerms)+len(broadSearchTerms), provider.callCount())
	})

	t.Run("empty primary pass falls back to broad search", func(t *testing.T) {
		provider := &stubProvider{
			results: map[string][]ProviderPlace{
				"spa": {{PlaceID: "s1", Name: "Lotus Day Spa", Types: []string{"spa"}, Latitude: 19.09, Longitude: 72.89}},
			},
		}
		svc := newTestDiscovery(provider)

		// "spa" is only in the broad term list, not the default one
		result, err := svc.Discover(context.Background(), "19.076", "72.8777", "")
		require.NoError(t, err)
		require.Len(t, result.Places, 1)
		assert.Equal(t, "Found 1 places in your area", result.Message)
	})

	t.Run("default mode keeps at most three results per term", func(t *testing.T) {
		var parks []ProviderPlace
		for i := 0; i < 8; i++ {
			parks = append(parks, ProviderPlace{
				PlaceID:   fmt.Sprintf("p%d", i),
				Name:      fmt.Sprintf("Park %d", i),
				Types:     []string{"park"},
				Latitude:  19.0 + float64(i)/100,
				Longitude: 72.8,
			})
		}
		provider := &stubProvider{results: map[string][]ProviderPlace{"park": parks}}
		svc := newTestDiscovery(provider)

		result, err := svc.Discover(context.Background(), "19.076", "72.8777", "")
		require.NoError(t, err)
		assert.Len(t, result.Places, 3)
	})

	t.Run("computes distance, rating, category and image", func(t *testing.T) {
		rating := 4.5
		provider := &stubProvider{
			results: map[string][]ProviderPlace{
				"park": {{
					PlaceID:        "p1",
					Name:           "Rose Garden",
					Types:          []string{"park", "tourist_attraction"},
					Latitude:       19.086,
					Longitude:      72.8777,
					Rating:         rating,
					HasRating:      true,
					PhotoReference: "ref-1",
					Address:        "High Path",
				}},
			},
		}
		svc := newTestDiscovery(provider)

		result, err := svc.Discover(context.Background(), "19.076", "72.8777", "")
		require.NoError(t, err)
		require.Len(t, result.Places, 1)

		place := result.Places[0]
		assert.Equal(t, "google-p1", place.ID)
		assert.Equal(t, "Park", place.Category)
		assert.Equal(t, 5, place.Tranquility)
		assert.Equal(t, 9.0, place.Rating)
		assert.Equal(t, "photo://ref-1", place.ImageURL)
		assert.Equal(t, "High Path", place.Address)
		// 0.01 degrees of latitude is roughly 1.1 km
		assert.InDelta(t, 1112, place.DistanceMeters, 10)
	})
}

func TestGetPlaceByID(t *testing.T) {
	t.Run("rejects ids without the provider prefix", func(t *testing.T) {
		svc := newTestDiscovery(&stubProvider{})
		_, err := svc.GetPlaceByID(context.Background(), "global-kew-gardens")
		assert.ErrorIs(t, err, utils.ErrPlaceNotFound)
	})

	t.Run("maps provider details to a place", func(t *testing.T) {
		provider := &stubProvider{
			details: &ProviderPlace{
				PlaceID:          "abc",
				Name:             "Quiet Leaf Library",
				Types:            []string{"library"},
				Latitude:         19.118,
				Longitude:        72.842,
				FormattedAddress: "42 Stillness Rd",
			},
		}
		svc := newTestDiscovery(provider)

		place, err := svc.GetPlaceByID(context.Background(), "google-abc")
		require.NoError(t, err)
		assert.Equal(t, "google-abc", place.ID)
		assert.Equal(t, "Library", place.Category)
		assert.Equal(t, 4, place.Tranquility)
		assert.Equal(t, 8.0, place.Rating) // unrated fallback
		assert.Zero(t, place.DistanceMeters)
		assert.Equal(t, "42 Stillness Rd", place.Address)
	})
}

func TestFindPhoto(t *testing.T) {
	t.Run("caches provider lookups", func(t *testing.T) {
		provider := &stubProvider{photoURL: "photo://kew"}
		cache := memcache.NewPhotoURLCache()
		svc := NewDiscoveryService(provider, cache)

		url, err := svc.FindPhoto(context.Background(), "Kew Gardens", "51.4879", "-0.2946")
		require.NoError(t, err)
		assert.Equal(t, "photo://kew", url)

		cached, ok := cache.Get("Kew Gardens", 51.4879, -0.2946)
		assert.True(t, ok)
		assert.Equal(t, "photo://kew", cached)
	})

	t.Run("validates coordinates", func(t *testing.T) {
		svc := newTestDiscovery(&stubProvider{})
		_, err := svc.FindPhoto(context.Background(), "Kew Gardens", "not-a-number", "0")
		assert.ErrorIs(t, err, utils.ErrInvalidCoordinates)
	})
}
