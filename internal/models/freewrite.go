package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// FreeWriteSession is one timed free-write window, owned by a single
// websocket connection.
type FreeWriteSession struct {
	SessionId uuid.UUID
	StartedAt time.Time
	Deadline  time.Time
	Draft     string
	Score     float64
	Mood      Mood
	Closed    bool
	Mu        sync.Mutex
}

type FreeWriteManager struct {
	Sessions map[uuid.UUID]*FreeWriteSession
	Mu       sync.Mutex
}

// FreeWriteUpdate is pushed to the client after each draft it sends.
type FreeWriteUpdate struct {
	SessionId uuid.UUID `json:"sessionId"`
	Score     float64   `json:"score"`
	Mood      Mood      `json:"mood"`
	Remaining float64   `json:"remaining"` // seconds
	Closed    bool      `json:"closed"`
}
