package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"sweetspott/internal/models/response_models"
	"sweetspott/pkg/memcache"
	"sweetspott/pkg/utils"
)

const (
	// maxExpandedTerms bounds how many expanded phrases are searched for
	// one user query.
	maxExpandedTerms = 5

	// maxDiscoverResults caps the ranked list returned to the client.
	maxDiscoverResults = 20

	// providerPacing spaces successive provider calls to stay under the
	// provider's rate limits.
	providerPacing = 100 * time.Millisecond

	photoCacheTTL = 24 * time.Hour
)

// broadSearchTerms is used when a query-less request found nothing nearby.
var broadSearchTerms = []string{
	"park", "library", "cafe", "museum", "spa", "garden",
}

// defaultSearchTerms is used for query-less requests.
var defaultSearchTerms = []string{"park", "library", "cafe", "museum"}

type DiscoveryServiceInterface interface {
	Discover(ctx context.Context, lat, lng, query string) (response_models.DiscoverResult, error)
	GetPlaceByID(ctx context.Context, id string) (response_models.Place, error)
	FindPhoto(ctx context.Context, name, lat, lng string) (string, error)
}

type DiscoveryService struct {
	provider PlaceSearchProvider
	photos   memcache.PhotoURLStore
	limiter  *rate.Limiter
}

func NewDiscoveryService(provider PlaceSearchProvider, photos memcache.PhotoURLStore) DiscoveryServiceInterface {
	return &DiscoveryService{
		provider: provider,
		photos:   photos,
		limiter:  rate.NewLimiter(rate.Every(providerPacing), 1),
	}
}

func parseCoordinates(lat, lng string) (float64, float64, error) {
	if lat == "" || lng == "" {
		return 0, 0, utils.ErrInvalidCoordinates
	}
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil || math.IsNaN(latitude) {
		return 0, 0, utils.ErrInvalidCoordinates
	}
	longitude, err := strconv.ParseFloat(lng, 64)
	if err != nil || math.IsNaN(longitude) {
		return 0, 0, utils.ErrInvalidCoordinates
	}
	return latitude, longitude, nil
}

func (s *DiscoveryService) Discover(ctx context.Context, lat, lng, query string) (response_models.DiscoverResult, error) {
	latitude, longitude, err := parseCoordinates(lat, lng)
	if err != nil {
		return response_models.DiscoverResult{}, err
	}

	query = strings.TrimSpace(query)
	places := s.aggregate(ctx, latitude, longitude, query, false)

	if len(places) > 0 {
		msg := fmt.Sprintf("Found %d places near you", len(places))
		if query != "" {
			msg = fmt.Sprintf("Found %d places for %q", len(places), query)
		}
		return response_models.DiscoverResult{Places: places, Message: msg}, nil
	}

	// Nothing matched; widen to the generic tranquil-place terms.
	places = s.aggregate(ctx, latitude, longitude, "", true)
	msg := "No places found in your area. Try a different search term or location."
	if len(places) > 0 {
		msg = fmt.Sprintf("Found %d places in your area", len(places))
	}
	return response_models.DiscoverResult{Places: places, Message: msg}, nil
}

// aggregate fans one logical request out into per-term provider searches
// and funnels the merged candidates through the filter and ranker. A
// failing term contributes zero results; it never aborts the request.
func (s *DiscoveryService) aggregate(ctx context.Context, lat, lng float64, query string, broad bool) []response_models.Place {
	var terms []string
	perTermCap := 0

	switch {
	case query != "":
		terms = ExpandQuery(query)
		if len(terms) > maxExpandedTerms {
			terms = terms[:maxExpandedTerms]
		}
	case broad:
		terms = broadSearchTerms
		perTermCap = 2
	default:
		terms = defaultSearchTerms
		perTermCap = 3
	}

	var candidates []response_models.Place
	for _, term := range terms {
		if err := s.limiter.Wait(ctx); err != nil {
			break
		}

		raw, err := s.provider.TextSearch(ctx, term, lat, lng)
		if err != nil {
			log.Printf("Search for %q failed: %v", term, err)
			continue
		}
		if perTermCap > 0 && len(raw) > perTermCap {
			raw = raw[:perTermCap]
		}
		for _, r := range raw {
			candidates = append(candidates, s.toPlace(r, lat, lng))
		}
	}

	return FilterAndRank(candidates)
}

func (s *DiscoveryService) toPlace(r ProviderPlace, lat, lng float64) response_models.Place {
	distance := utils.HaversineMeters(lat, lng, r.Latitude, r.Longitude)

	address := r.Address
	if address == "" {
		address = r.FormattedAddress
	}
	if address == "" {
		address = "Address not available"
	}

	imageURL := ""
	if r.PhotoReference != "" {
		imageURL = s.provider.PhotoURL(r.PhotoReference, 600, 400)
	}

	typeString := strings.ToLower(strings.Join(r.Types, " "))
	return response_models.Place{
		ID:             "google-" + r.PlaceID,
		Name:           r.Name,
		Category:       categoryFromTypes(r.Types),
		Tranquility:    scoreTranquility(r.Name, typeString),
		Rating:         scaleRating(r.Rating, r.HasRating),
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		DistanceMeters: int(math.Round(distance)),
		Address:        address,
		ImageURL:       imageURL,
	}
}

// scaleRating converts the provider's 5-star rating to the 0..10 scale.
// Unrated places get a fixed 8.0.
func scaleRating(rating float64, hasRating bool) float64 {
	if !hasRating {
		return 8.0
	}
	return rating * 2
}

func (s *DiscoveryService) GetPlaceByID(ctx context.Context, id string) (response_models.Place, error) {
	providerID, ok := strings.CutPrefix(id, "google-")
	if !ok {
		return response_models.Place{}, utils.ErrPlaceNotFound
	}

	r, err := s.provider.PlaceDetails(ctx, providerID)
	if err != nil {
		return response_models.Place{}, err
	}

	imageURL := ""
	if r.PhotoReference != "" {
		imageURL = s.provider.PhotoURL(r.PhotoReference, 800, 600)
	}

	address := r.FormattedAddress
	if address == "" {
		address = r.Address
	}
	if address == "" {
		address = "Address not available"
	}

	typeString := strings.ToLower(strings.Join(r.Types, " "))
	return response_models.Place{
		ID:             id,
		Name:           r.Name,
		Category:       categoryFromTypes(r.Types),
		Tranquility:    scoreTranquility(r.Name, typeString),
		Rating:         scaleRating(r.Rating, r.HasRating),
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		DistanceMeters: 0, // no caller location in this context
		Address:        address,
		ImageURL:       imageURL,
	}, nil
}

func (s *DiscoveryService) FindPhoto(ctx context.Context, name, lat, lng string) (string, error) {
	latitude, longitude, err := parseCoordinates(lat, lng)
	if err != nil {
		return "", err
	}

	if url, ok := s.photos.Get(name, latitude, longitude); ok {
		return url, nil
	}

	url, err := s.provider.FindPhoto(ctx, name, latitude, longitude)
	if err != nil {
		return "", err
	}
	if url != "" {
		s.photos.Set(name, latitude, longitude, url, photoCacheTTL)
	}
	return url, nil
}

// -------------- Quality filter & ranker ---------------

// noiseSubstrings excludes candidates that are clearly not tranquil.
var noiseSubstrings = []string{
	"gas station", "atm", "parking", "car wash", "auto", "gas_station",
}

type tranquilityRule struct {
	keywords []string
	score    int
}

// Ordered; first matching rule wins.
var tranquilityRules = []tranquilityRule{
	{
		keywords: []string{
			"park", "garden", "nature", "spa", "temple", "church",
			"monastery", "zen", "meditation", "botanical", "arboretum",
		},
		score: 5,
	},
	{
		keywords: []string{
			"library", "museum", "gallery", "bookstore", "quiet",
			"peaceful", "wellness",
		},
		score: 4,
	},
	{
		keywords: []string{"cafe", "coffee", "restaurant", "tea house", "bistro"},
		score:    3,
	},
	{
		keywords: []string{"store", "shop"},
		score:    2,
	},
}

const defaultTranquility = 3

func scoreTranquility(name, category string) int {
	haystack := strings.ToLower(name) + " " + strings.ToLower(category)
	for _, rule := range tranquilityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(haystack, kw) {
				return rule.score
			}
		}
	}
	return defaultTranquility
}

func isNoise(p response_models.Place) bool {
	name := strings.ToLower(p.Name)
	category := strings.ToLower(p.Category)
	for _, bad := range noiseSubstrings {
		if strings.Contains(name, bad) || strings.Contains(category, bad) {
			return true
		}
	}
	return false
}

// dedupKey identifies a place by its normalized name plus a coordinate
// bucket of ~11m (4 decimal places).
func dedupKey(p response_models.Place) string {
	var b strings.Builder
	for _, r := range strings.ToLower(p.Name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return fmt.Sprintf("%s-%d-%d",
		b.String(),
		int64(math.Round(p.Latitude*10000)),
		int64(math.Round(p.Longitude*10000)))
}

// FilterAndRank deduplicates, drops noisy candidates, ranks by
// tranquility (desc) then distance (asc), and caps the result. It is a
// pure transform: idempotent, and safe on nil input.
func FilterAndRank(candidates []response_models.Place) []response_models.Place {
	seen := make(map[string]bool, len(candidates))
	ranked := make([]response_models.Place, 0, len(candidates))

	for _, p := range candidates {
		if isNoise(p) {
			continue
		}
		key := dedupKey(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		ranked = append(ranked, p)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Tranquility != ranked[j].Tranquility {
			return ranked[i].Tranquility > ranked[j].Tranquility
		}
		return ranked[i].DistanceMeters < ranked[j].DistanceMeters
	})

	if len(ranked) > maxDiscoverResults {
		ranked = ranked[:maxDiscoverResults]
	}
	return ranked
}

func categoryFromTypes(types []string) string {
	typeString := strings.ToLower(strings.Join(types, " "))

	switch {
	case strings.Contains(typeString, "park"):
		return "Park"
	case strings.Contains(typeString, "library"):
		return "Library"
	case strings.Contains(typeString, "museum"):
		return "Museum"
	case strings.Contains(typeString, "spa"):
		return "Spa"
	case strings.Contains(typeString, "cafe"), strings.Contains(typeString, "coffee"):
		return "Café"
	case strings.Contains(typeString, "restaurant"):
		return "Restaurant"
	case strings.Contains(typeString, "store"), strings.Contains(typeString, "shop"):
		return "Store"
	case strings.Contains(typeString, "church"), strings.Contains(typeString, "temple"):
		return "Place of Worship"
	case strings.Contains(typeString, "hospital"), strings.Contains(typeString, "health"):
		return "Healthcare"
	case strings.Contains(typeString, "school"), strings.Contains(typeString, "university"):
		return "Education"
	case strings.Contains(typeString, "lodging"), strings.Contains(typeString, "hotel"):
		return "Lodging"
	case strings.Contains(typeString, "beauty"), strings.Contains(typeString, "wellness"):
		return "Wellness"
	default:
		return "Place"
	}
}
