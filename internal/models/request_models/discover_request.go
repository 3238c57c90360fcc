package request_models

// DiscoverQuery carries the raw query-string parameters of a discovery
// request. Lat/Lng stay strings here; the service validates and parses
// them before any provider call is made.
type DiscoverQuery struct {
	Lat   string `form:"lat"`
	Lng   string `form:"lng"`
	Query string `form:"query"`
}

type PhotoQuery struct {
	Name string `form:"name" binding:"required"`
	Lat  string `form:"lat" binding:"required"`
	Lng  string `form:"lng" binding:"required"`
}

type SimilarShowcaseQuery struct {
	Query string `form:"query" binding:"required,min=2"`
}
