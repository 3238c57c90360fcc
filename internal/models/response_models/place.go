package response_models

type Place struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Tranquility    int      `json:"tranquility"`
	Rating         float64  `json:"rating"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	DistanceMeters int      `json:"distance_meters"`
	Address        string   `json:"address"`
	ImageURL       string   `json:"image_url,omitempty"`
	Reviews        []Review `json:"reviews,omitempty"`

	IsGlobalShowcase bool   `json:"is_global_showcase,omitempty"`
	Country          string `json:"country,omitempty"`
	Description      string `json:"description,omitempty"`
}

type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// DiscoverResult is the payload of GET /places. Message distinguishes
// "no results, try another term" from an actual failure.
type DiscoverResult struct {
	Places  []Place `json:"places"`
	Message string  `json:"message"`
}

type SimilarShowcase struct {
	PlaceID    string  `json:"place_id"`
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
}
