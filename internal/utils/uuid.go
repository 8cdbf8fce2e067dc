package utils

import "github.com/google/uuid"

// UUIDGenerator produces trace ids. Version 7 ids are preferred because they
// sort by creation time; a random id is used if one cannot be made.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
