package utils

import "github.com/google/uuid"

// UUIDGenerator issues random version 4 UUIDs. Used for session ids and
// trace ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
