package infra

import (
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"sweetspott/internal/models/db_models"
)

// SeedShowcasePlaces inserts the curated global showcase catalog on an
// empty database. Running it against a populated table is a no-op.
func SeedShowcasePlaces(db *gorm.DB) {
	var count int64
	if err := db.Model(&db_models.ShowcasePlace{}).Count(&count).Error; err != nil {
		log.Printf("Error counting showcase places: %v", err)
		return
	}
	if count > 0 {
		return
	}

	seed := showcaseSeed()
	if err := db.Create(&seed).Error; err != nil {
		log.Printf("Error seeding showcase places: %v", err)
		return
	}
	log.Printf("Seeded %d showcase places", len(seed))
}

func showcaseSeed() []db_models.ShowcasePlace {
	return []db_models.ShowcasePlace{
		{
			Slug:        "ryoanji-temple-rock-garden",
			Name:        "Ryoan-ji Temple Rock Garden",
			Category:    "Temple",
			Tranquility: 5,
			Rating:      9.4,
			Latitude:    35.0345,
			Longitude:   135.7183,
			Address:     "Kyoto, Japan",
			Country:     "Japan",
			Description: "A masterpiece of Zen Buddhism featuring 15 carefully placed stones in raked white gravel.",
			Types:       pq.StringArray{"temple", "place_of_worship", "tourist_attraction"},
			Reviews: []db_models.Review{
				{Author: "Akiko", Comment: "Pure meditation in stone and sand. Absolute silence.", Rating: 5},
				{Author: "Marcus", Comment: "The most peaceful place I've ever experienced.", Rating: 5},
			},
		},
		{
			Slug:        "central-park-bethesda-fountain",
			Name:        "Central Park Bethesda Fountain",
			Category:    "Park",
			Tranquility: 4,
			Rating:      9.1,
			Latitude:    40.7739,
			Longitude:   -73.9718,
			Address:     "New York City, USA",
			Country:     "USA",
			Description: "An iconic oasis in Manhattan where the Angel of Waters watches over peaceful moments.",
			Types:       pq.StringArray{"park", "tourist_attraction"},
			Reviews: []db_models.Review{
				{Author: "Sarah", Comment: "Magical escape from NYC chaos. The fountain is mesmerizing.", Rating: 4},
				{Author: "Diego", Comment: "Perfect spot for morning meditation before the crowds arrive.", Rating: 4},
			},
		},
		{
			Slug:        "jardin-du-luxembourg",
			Name:        "Jardin du Luxembourg",
			Category:    "Garden",
			Tranquility: 4,
			Rating:      9.3,
			Latitude:    48.8462,
			Longitude:   2.3372,
			Address:     "Paris, France",
			Country:     "France",
			Description: "Elegant French gardens where Parisians find solace among manicured lawns and tree-lined promenades.",
			Types:       pq.StringArray{"park", "garden"},
			Reviews: []db_models.Review{
				{Author: "Amélie", Comment: "Mon jardin préféré. Perfect for reading under the chestnut trees.", Rating: 4},
				{Author: "James", Comment: "Quintessential Parisian tranquility. The palace views are stunning.", Rating: 5},
			},
		},
		{
			Slug:        "ubud-monkey-forest-sanctuary",
			Name:        "Ubud Monkey Forest Sanctuary",
			Category:    "Nature Reserve",
			Tranquility: 4,
			Rating:      8.7,
			Latitude:    -8.5069,
			Longitude:   115.2625,
			Address:     "Ubud, Bali, Indonesia",
			Country:     "Indonesia",
			Description: "Sacred forest sanctuary where ancient temples blend with lush tropical nature.",
			Types:       pq.StringArray{"park", "nature", "tourist_attraction"},
			Reviews: []db_models.Review{
				{Author: "Kadek", Comment: "Spiritual energy flows through these ancient trees. Very peaceful.", Rating: 4},
				{Author: "Emma", Comment: "Magical place where nature and spirituality meet perfectly.", Rating: 4},
			},
		},
		{
			Slug:        "kew-gardens",
			Name:        "Kew Gardens",
			Category:    "Botanical Garden",
			Tranquility: 5,
			Rating:      9.0,
			Latitude:    51.4879,
			Longitude:   -0.2946,
			Address:     "London, United Kingdom",
			Country:     "UK",
			Description: "A serene Japanese-inspired garden featuring traditional architecture and peaceful water features.",
			Types:       pq.StringArray{"park", "garden", "botanical"},
			Reviews: []db_models.Review{
				{Author: "Oliver", Comment: "Hidden gem in London. The bamboo grove is incredibly calming.", Rating: 5},
				{Author: "Yuki", Comment: "Authentic Japanese tranquility in the heart of England.", Rating: 5},
			},
		},
		{
			Slug:        "majorelle-garden",
			Name:        "Majorelle Garden",
			Category:    "Garden",
			Tranquility: 4,
			Rating:      8.9,
			Latitude:    31.6417,
			Longitude:   -8.0033,
			Address:     "Marrakech, Morocco",
			Country:     "Morocco",
			Description: "Vibrant cobalt blue villa surrounded by exotic plants and peaceful fountains in the heart of Marrakech.",
			Types:       pq.StringArray{"garden", "tourist_attraction"},
			Reviews: []db_models.Review{
				{Author: "Fatima", Comment: "The blue is so striking against the desert plants. Very peaceful.", Rating: 4},
				{Author: "Pierre", Comment: "Yves Saint Laurent's favorite retreat. I understand why.", Rating: 4},
			},
		},
		{
			Slug:        "philosophers-path-kyoto",
			Name:        "Philosopher's Path Kyoto",
			Category:    "Walking Path",
			Tranquility: 5,
			Rating:      9.2,
			Latitude:    35.0184,
			Longitude:   135.7946,
			Address:     "Kyoto, Japan",
			Country:     "Japan",
			Description: "A contemplative stone path following a canal, lined with hundreds of cherry trees and small temples.",
			Types:       pq.StringArray{"park", "tourist_attraction"},
			Reviews: []db_models.Review{
				{Author: "Hiroshi", Comment: "Perfect for morning walks and deep thinking. Especially beautiful in spring.", Rating: 5},
				{Author: "Anna", Comment: "The sound of flowing water and rustling leaves is pure meditation.", Rating: 5},
			},
		},
		{
			Slug:        "butchart-gardens",
			Name:        "Butchart Gardens",
			Category:    "Garden",
			Tranquility: 5,
			Rating:      9.1,
			Latitude:    48.5639,
			Longitude:   -123.4675,
			Address:     "Victoria, British Columbia, Canada",
			Country:     "Canada",
			Description: "Meticulously designed Japanese garden with koi ponds, stone lanterns, and peaceful bridges.",
			Types:       pq.StringArray{"garden", "botanical"},
			Reviews: []db_models.Review{
				{Author: "Maple", Comment: "The attention to detail is incredible. Every corner is perfectly balanced.", Rating: 5},
				{Author: "Chen", Comment: "Authentic Japanese design principles in a Canadian setting. Remarkable.", Rating: 5},
			},
		},
	}
}
