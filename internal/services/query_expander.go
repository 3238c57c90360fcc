package services

import "strings"

// topicCluster pairs trigger substrings with the phrases to add when any
// trigger appears in the user query.
type topicCluster struct {
	triggers []string
	phrases  []string
}

// Evaluated in order; every matching cluster contributes its phrases.
var topicClusters = []topicCluster{
	{
		triggers: []string{"cafe", "coffee"},
		phrases: []string{
			"cafe", "coffee shop", "coffee house", "espresso bar",
			"local cafe", "specialty coffee", "artisan coffee",
		},
	},
	{
		triggers: []string{"spa", "wellness", "massage"},
		phrases: []string{
			"spa", "day spa", "wellness center", "massage", "massage therapy",
			"wellness spa", "relaxation spa", "therapeutic massage",
		},
	},
	{
		triggers: []string{"yoga", "meditation", "zen"},
		phrases: []string{
			"yoga studio", "meditation center", "zen center",
			"mindfulness center", "yoga class", "meditation space",
		},
	},
	{
		triggers: []string{"restaurant", "food", "dining"},
		phrases: []string{
			"restaurant", "quiet restaurant", "bistro", "fine dining",
			"peaceful restaurant", "cozy restaurant",
		},
	},
	{
		triggers: []string{"park", "garden", "nature"},
		phrases: []string{
			"park", "garden", "botanical garden", "public park",
			"nature park", "city park", "community garden", "arboretum",
		},
	},
	{
		triggers: []string{"library", "book", "study"},
		phrases: []string{
			"library", "public library", "bookstore", "reading room",
			"study space", "academic library",
		},
	},
	{
		triggers: []string{"museum", "art", "gallery"},
		phrases: []string{
			"museum", "art gallery", "art museum", "cultural center",
			"exhibition", "gallery space",
		},
	},
	{
		triggers: []string{"temple", "church", "spiritual"},
		phrases: []string{
			"temple", "church", "mosque", "synagogue", "spiritual center",
			"meditation temple", "monastery",
		},
	},
	{
		triggers: []string{"quiet", "peaceful", "calm", "tranquil"},
		phrases: []string{
			"quiet cafe", "peaceful place", "tranquil spot",
			"calm environment", "serene location", "zen space",
		},
	},
	{
		triggers: []string{"shop", "store", "bookstore"},
		phrases: []string{
			"bookstore", "quiet shop", "specialty store", "local shop",
			"artisan shop",
		},
	},
}

// ExpandQuery turns a free-text query into an ordered, duplicate-free
// list of search phrases. The original query always comes first; every
// cluster whose trigger appears as a substring contributes its phrases.
func ExpandQuery(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))

	terms := []string{query}
	for _, cluster := range topicClusters {
		for _, trigger := range cluster.triggers {
			if strings.Contains(query, trigger) {
				terms = append(terms, cluster.phrases...)
				break
			}
		}
	}

	seen := make(map[string]bool, len(terms))
	unique := terms[:0]
	for _, term := range terms {
		if !seen[term] {
			seen[term] = true
			unique = append(unique, term)
		}
	}
	return unique
}
