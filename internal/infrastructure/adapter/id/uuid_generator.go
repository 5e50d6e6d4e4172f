package id

import (
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/google/uuid"
)

// UUIDGenerator issues random (version 4) UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new generator
func NewUUIDGenerator() core.IDGenerator {
	return UUIDGenerator{}
}

// NewID returns a fresh UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
