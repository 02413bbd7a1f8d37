package model

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Run status constants.
const (
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
	StatusFailed    = "failed"
)

// Counting strategy constants.
const (
	StrategyMerge  = "merge"
	StrategyShared = "shared"
)

// Run summarizes one invocation of the frequency engine.
type Run struct {
	ID        string        `json:"id"`
	Strategy  string        `json:"strategy"`
	Workers   int           `json:"workers"`
	Lines     int           `json:"lines"`
	Runes     int           `json:"runes"`
	Distinct  int           `json:"distinct"`
	Duration  time.Duration `json:"duration_ns"`
	StartedAt time.Time     `json:"started_at"`
}

// NewID generates a new ULID string for use as a run identifier.
func NewID() string {
	return ulid.Make().String()
}

// ValidID reports whether id is a well-formed ULID.
func ValidID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
