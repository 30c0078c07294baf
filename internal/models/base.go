package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel provides shared fields for uuid-keyed records.
type BaseModel struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBase returns a BaseModel with a fresh ID and timestamps.
func NewBase() BaseModel {
	now := time.Now()
	return BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

// Touch bumps the update timestamp.
func (b *BaseModel) Touch() {
	b.UpdatedAt = time.Now()
}
