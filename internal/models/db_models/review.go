package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	ShowcasePlaceID uuid.UUID
	Author          string
	Comment         string
	Rating          int // 1..5
}
