package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"sweetspott/pkg/utils"
)

// ProviderPlace is one raw record from the external place search.
type ProviderPlace struct {
	PlaceID          string
	Name             string
	Types            []string
	Latitude         float64
	Longitude        float64
	Rating           float64 // provider 5-star scale, 0 when absent
	HasRating        bool
	PhotoReference   string
	Address          string
	FormattedAddress string
}

// PlaceSearchProvider is the outbound contract of the aggregation
// pipeline. Implementations must tolerate being called with terms the
// provider knows nothing about.
type PlaceSearchProvider interface {
	TextSearch(ctx context.Context, term string, lat, lng float64) ([]ProviderPlace, error)
	PlaceDetails(ctx context.Context, placeID string) (*ProviderPlace, error)
	FindPhoto(ctx context.Context, name string, lat, lng float64) (string, error)
	PhotoURL(photoReference string, maxWidth, maxHeight int) string
}

// -------------- Google Places client ---------------

type GooglePlacesClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string // override in tests
}

const googlePlacesBaseURL = "https://maps.googleapis.com/maps/api/place"

// resultsPerTextSearch caps how many records one text search yields.
const resultsPerTextSearch = 8

func NewGooglePlacesClient() *GooglePlacesClient {
	return &GooglePlacesClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		BaseURL: googlePlacesBaseURL,
	}
}

func (c *GooglePlacesClient) keyAvailable() bool {
	return len(c.APIKey) >= 10
}

type googleLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type googlePhoto struct {
	PhotoReference string `json:"photo_reference"`
}

type googlePlaceResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Types            []string `json:"types"`
	Rating           *float64 `json:"rating"`
	Vicinity         string   `json:"vicinity"`
	FormattedAddress string   `json:"formatted_address"`
	Geometry         struct {
		Location googleLocation `json:"location"`
	} `json:"geometry"`
	Photos []googlePhoto `json:"photos"`
}

func (r googlePlaceResult) toProviderPlace() ProviderPlace {
	p := ProviderPlace{
		PlaceID:          r.PlaceID,
		Name:             r.Name,
		Types:            r.Types,
		Latitude:         r.Geometry.Location.Lat,
		Longitude:        r.Geometry.Location.Lng,
		Address:          r.Vicinity,
		FormattedAddress: r.FormattedAddress,
	}
	if r.Rating != nil {
		p.Rating = *r.Rating
		p.HasRating = true
	}
	if len(r.Photos) > 0 {
		p.PhotoReference = r.Photos[0].PhotoReference
	}
	return p
}

func (c *GooglePlacesClient) TextSearch(ctx context.Context, term string, lat, lng float64) ([]ProviderPlace, error) {
	if !c.keyAvailable() {
		return nil, utils.ErrProviderUnavailable
	}

	q := url.Values{}
	q.Set("query", term+" near me")
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", "5000")
	q.Set("key", c.APIKey)

	var payload struct {
		Status       string              `json:"status"`
		ErrorMessage string              `json:"error_message"`
		Results      []googlePlaceResult `json:"results"`
	}
	if err := c.getJSON(ctx, "/textsearch/json", q, &payload); err != nil {
		return nil, err
	}

	switch payload.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []ProviderPlace{}, nil
	default:
		return nil, fmt.Errorf("places text search status %s: %s", payload.Status, payload.ErrorMessage)
	}

	results := payload.Results
	if len(results) > resultsPerTextSearch {
		results = results[:resultsPerTextSearch]
	}

	places := make([]ProviderPlace, 0, len(results))
	for _, r := range results {
		places = append(places, r.toProviderPlace())
	}
	return places, nil
}

func (c *GooglePlacesClient) PlaceDetails(ctx context.Context, placeID string) (*ProviderPlace, error) {
	if !c.keyAvailable() {
		return nil, utils.ErrProviderUnavailable
	}

	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "place_id,name,formatted_address,geometry,photos,rating,types,vicinity")
	q.Set("key", c.APIKey)

	var payload struct {
		Status string             `json:"status"`
		Result *googlePlaceResult `json:"result"`
	}
	if err := c.getJSON(ctx, "/details/json", q, &payload); err != nil {
		return nil, err
	}

	if payload.Status != "OK" || payload.Result == nil {
		return nil, utils.ErrPlaceNotFound
	}

	place := payload.Result.toProviderPlace()
	return &place, nil
}

// FindPhoto looks a place up by name near the given coordinates and
// returns a photo URL, or "" when the provider has none.
func (c *GooglePlacesClient) FindPhoto(ctx context.Context, name string, lat, lng float64) (string, error) {
	if !c.keyAvailable() {
		return "", utils.ErrProviderUnavailable
	}

	q := url.Values{}
	q.Set("input", name)
	q.Set("inputtype", "textquery")
	q.Set("locationbias", fmt.Sprintf("circle:5000@%f,%f", lat, lng))
	q.Set("fields", "place_id,photos,name")
	q.Set("key", c.APIKey)

	var payload struct {
		Status     string `json:"status"`
		Candidates []struct {
			Photos []googlePhoto `json:"photos"`
		} `json:"candidates"`
	}
	if err := c.getJSON(ctx, "/findplacefromtext/json", q, &payload); err != nil {
		return "", err
	}

	if payload.Status != "OK" || len(payload.Candidates) == 0 {
		return "", nil
	}
	if photos := payload.Candidates[0].Photos; len(photos) > 0 {
		return c.PhotoURL(photos[0].PhotoReference, 600, 400), nil
	}
	return "", nil
}

func (c *GooglePlacesClient) PhotoURL(photoReference string, maxWidth, maxHeight int) string {
	q := url.Values{}
	q.Set("maxwidth", fmt.Sprintf("%d", maxWidth))
	q.Set("maxheight", fmt.Sprintf("%d", maxHeight))
	q.Set("photoreference", photoReference)
	q.Set("key", c.APIKey)
	return c.BaseURL + "/photo?" + q.Encode()
}

func (c *GooglePlacesClient) getJSON(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("places http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("places bad status: %s", resp.Status)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		return fmt.Errorf("places non-json response: %s", ct)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("places decode: %w", err)
	}
	return nil
}
