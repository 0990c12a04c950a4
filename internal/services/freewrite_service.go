package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/latestcomment/mind-mirror/internal/models"
	"go.uber.org/zap"
)

var ErrSessionClosed = errors.New("free-write window is closed")

// FreeWriteService tracks open free-write windows and scores drafts as they
// arrive.
type FreeWriteService struct {
	Manager  *models.FreeWriteManager
	Duration time.Duration
	scorer   SentimentScorer
	logger   *zap.Logger
	now      func() time.Time
}

func NewFreeWriteService(manager *models.FreeWriteManager, duration time.Duration, scorer SentimentScorer, logger *zap.Logger) *FreeWriteService {
	return &FreeWriteService{
		Manager:  manager,
		Duration: duration,
		scorer:   scorer,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *FreeWriteService) Start() *models.FreeWriteSession {
	started := s.now()
	fw := &models.FreeWriteSession{
		SessionId: uuid.New(),
		StartedAt: started,
		Deadline:  started.Add(s.Duration),
		Mood:      models.MoodNeutral,
	}

	s.Manager.Mu.Lock()
	s.Manager.Sessions[fw.SessionId] = fw
	s.Manager.Mu.Unlock()

	s.logger.Info("free-write started",
		zap.String("session", fw.SessionId.String()),
		zap.Duration("duration", s.Duration))
	return fw
}

// Update replaces the draft and rescores it. Once the deadline has passed the
// session closes and later drafts are rejected with ErrSessionClosed.
func (s *FreeWriteService) Update(fw *models.FreeWriteSession, draft string) (models.FreeWriteUpdate, error) {
	now := s.now()

	fw.Mu.Lock()
	defer fw.Mu.Unlock()

	if fw.Closed {
		return s.snapshot(fw, now), ErrSessionClosed
	}
	if !now.Before(fw.Deadline) {
		fw.Closed = true
		return s.snapshot(fw, now), nil
	}

	fw.Draft = draft
	fw.Score = s.scorer.ScorePolarity(draft)
	fw.Mood = ClassifyMood(fw.Score)
	return s.snapshot(fw, now), nil
}

func (s *FreeWriteService) Status(fw *models.FreeWriteSession) models.FreeWriteUpdate {
	now := s.now()

	fw.Mu.Lock()
	defer fw.Mu.Unlock()
	return s.snapshot(fw, now)
}

// Expire closes the session if its deadline has passed and reports whether
// it is closed.
func (s *FreeWriteService) Expire(fw *models.FreeWriteSession) (models.FreeWriteUpdate, bool) {
	now := s.now()

	fw.Mu.Lock()
	defer fw.Mu.Unlock()

	if !now.Before(fw.Deadline) {
		fw.Closed = true
	}
	return s.snapshot(fw, now), fw.Closed
}

// Finish closes the session and drops it from the registry.
func (s *FreeWriteService) Finish(fw *models.FreeWriteSession) {
	fw.Mu.Lock()
	fw.Closed = true
	draft := fw.Draft
	mood := fw.Mood
	fw.Mu.Unlock()

	s.Manager.Mu.Lock()
	delete(s.Manager.Sessions, fw.SessionId)
	s.Manager.Mu.Unlock()

	s.logger.Info("free-write finished",
		zap.String("session", fw.SessionId.String()),
		zap.Int("chars", len(draft)),
		zap.String("mood", string(mood)))
}

func (s *FreeWriteService) snapshot(fw *models.FreeWriteSession, now time.Time) models.FreeWriteUpdate {
	remaining := fw.Deadline.Sub(now).Seconds()
	if remaining < 0 || fw.Closed {
		remaining = 0
	}
	return models.FreeWriteUpdate{
		SessionId: fw.SessionId,
		Score:     fw.Score,
		Mood:      fw.Mood,
		Remaining: remaining,
		Closed:    fw.Closed,
	}
}
