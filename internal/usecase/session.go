package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/proctor-ai/internal/logging"
	"github.com/example/proctor-ai/internal/repository"
)

// ErrUnknownEvidenceType rejects evidence uploads with a type outside the
// scored categories.
var ErrUnknownEvidenceType = errors.New("unknown evidence type")

// SessionStore defines the persistence operations needed by the use case.
type SessionStore interface {
	CreateSession(ctx context.Context, session *repository.StudentSession) error
	FindSession(ctx context.Context, id uint) (*repository.StudentSession, error)
	FindSessionForStudent(ctx context.Context, id uint, studentID string) (*repository.StudentSession, error)
	ListSessionsForStudent(ctx context.Context, studentID string) ([]repository.StudentSession, error)
	ListEvidenceForStudent(ctx context.Context, studentID string) ([]repository.CheatingEvidence, error)
	SaveEvidence(ctx context.Context, evidence *repository.CheatingEvidence) error
	CountEvidenceByType(ctx context.Context, sessionID uint) (map[string]int64, error)
	FinishSession(ctx context.Context, sessionID uint, score int, endTime time.Time) (*repository.StudentSession, error)
	MarkLive(ctx context.Context, sessionID uint) (*repository.StudentSession, error)
	AggregateMetrics(ctx context.Context) (*repository.MetricsAggregation, error)
}

// SessionUseCase encapsulates business logic for the proctoring session flow.
type SessionUseCase struct {
	repo           SessionStore
	cache          Cache
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

type cachedSessionResult struct {
	SessionID  uint      `json:"session_id"`
	StudentID  string    `json:"student_id"`
	TrustScore int       `json:"trust_score"`
	IsLive     bool      `json:"is_live"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

// NewSessionUseCase constructs a new use case instance.
func NewSessionUseCase(repo SessionStore, cache Cache, logger *zap.Logger) *SessionUseCase {
	return &SessionUseCase{
		repo:           repo,
		cache:          cache,
		logger:         logger.Named("session_usecase"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// StartSession opens a new proctoring session for a student. The repository
// rejects a start while another session of the same student is still
// running.
func (uc *SessionUseCase) StartSession(ctx context.Context, studentID, assignmentID string) (*repository.StudentSession, error) {
	opLogger := logging.WithOperation(uc.logger, "usecase.start_session", studentID)

	session := &repository.StudentSession{
		StudentID:    studentID,
		AssignmentID: assignmentID,
		StartTime:    time.Now().UTC(),
	}
	if err := uc.repo.CreateSession(ctx, session); err != nil {
		if errors.Is(err, repository.ErrActiveSessionExists) {
			return nil, err
		}
		wrapped := logging.NewOperationError("usecase.start_session", studentID, err)
		opLogger.Error("failed to create session", zap.Error(wrapped))
		return nil, wrapped
	}

	opLogger.Info("session started",
		zap.Uint("db_session_id", session.ID),
		zap.String("assignment_id", assignmentID))
	return session, nil
}

// EndSession closes the student's session: it aggregates the evidence
// recorded so far, condenses it into a trust score, and stamps the score and
// the end time in one atomic update. A second end of the same session fails
// with ErrSessionEnded. The Redis cache is advisory; a cache failure is
// logged but never blocks the scoring itself.
func (uc *SessionUseCase) EndSession(ctx context.Context, studentID string, sessionID uint) (*repository.StudentSession, error) {
	sid := strconv.FormatUint(uint64(sessionID), 10)
	opLogger := logging.WithOperation(uc.logger, "usecase.end_session", sid)

	session, err := uc.repo.FindSessionForStudent(ctx, sessionID, studentID)
	if err != nil {
		return nil, err
	}
	if !session.Active() {
		return nil, repository.ErrSessionEnded
	}

	cacheKey := fmt.Sprintf("session:%d:result", sessionID)
	if err := uc.withRedisRetry(ctx, sid, "cache.set.processing", func() error {
		return uc.cache.Set(ctx, cacheKey, "processing", time.Minute)
	}); err != nil {
		opLogger.Warn("failed to set processing flag", zap.Error(err))
	}

	counts, err := uc.repo.CountEvidenceByType(ctx, sessionID)
	if err != nil {
		wrapped := logging.NewOperationError("usecase.count_evidence", sid, err)
		opLogger.Error("failed to aggregate evidence", zap.Error(wrapped))
		return nil, wrapped
	}

	score := TrustScore(counts)
	session, err = uc.repo.FinishSession(ctx, sessionID, score, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrSessionEnded) {
			return nil, err
		}
		wrapped := logging.NewOperationError("usecase.finish_session", sid, err)
		opLogger.Error("failed to finish session", zap.Error(wrapped))
		return nil, wrapped
	}

	cached := cachedSessionResult{
		SessionID:  session.ID,
		StudentID:  session.StudentID,
		TrustScore: score,
		IsLive:     session.IsLive,
		StartTime:  session.StartTime,
	}
	if session.EndTime != nil {
		cached.EndTime = *session.EndTime
	}
	if serialized, err := json.Marshal(cached); err != nil {
		opLogger.Warn("failed to serialize session result", zap.Error(err))
	} else if err := uc.withRedisRetry(ctx, sid, "cache.set.result", func() error {
		return uc.cache.Set(ctx, cacheKey, string(serialized), 5*time.Minute)
	}); err != nil {
		opLogger.Warn("failed to cache session result", zap.Error(err))
	}

	opLogger.Info("session ended", zap.Int("trust_score", score), zap.Bool("is_live", session.IsLive))
	return session, nil
}

// SessionResult retrieves an ended session's outcome, preferring the cached
// copy over a database read.
func (uc *SessionUseCase) SessionResult(ctx context.Context, studentID string, sessionID uint) (*repository.StudentSession, error) {
	sid := strconv.FormatUint(uint64(sessionID), 10)
	cacheKey := fmt.Sprintf("session:%d:result", sessionID)
	if cached, err := uc.withRedisGet(ctx, sid, "cache.get.result", cacheKey); err == nil {
		var payload cachedSessionResult
		if err := json.Unmarshal([]byte(cached), &payload); err != nil {
			logging.WithOperation(uc.logger, "usecase.session_result", sid).Warn("failed to decode cached result", zap.Error(err))
		} else if payload.StudentID == studentID {
			score := payload.TrustScore
			endTime := payload.EndTime
			return &repository.StudentSession{
				ID:            payload.SessionID,
				StudentID:     payload.StudentID,
				StartTime:     payload.StartTime,
				EndTime:       &endTime,
				CheatingScore: &score,
				IsLive:        payload.IsLive,
			}, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logging.WithOperation(uc.logger, "usecase.session_result", sid).Warn("failed to read cache", zap.Error(err))
	}

	return uc.repo.FindSessionForStudent(ctx, sessionID, studentID)
}

// Sessions lists the student's sessions, newest first.
func (uc *SessionUseCase) Sessions(ctx context.Context, studentID string) ([]repository.StudentSession, error) {
	return uc.repo.ListSessionsForStudent(ctx, studentID)
}

// Evidence lists every evidence row recorded across the student's sessions.
func (uc *SessionUseCase) Evidence(ctx context.Context, studentID string) ([]repository.CheatingEvidence, error) {
	return uc.repo.ListEvidenceForStudent(ctx, studentID)
}

// RecordEvidence stores one uploaded evidence record against an active
// session.
func (uc *SessionUseCase) RecordEvidence(ctx context.Context, sessionID uint, evidenceType, fileName string, blob []byte) (*repository.CheatingEvidence, error) {
	sid := strconv.FormatUint(uint64(sessionID), 10)
	if !repository.KnownEvidenceType(evidenceType) {
		return nil, ErrUnknownEvidenceType
	}

	session, err := uc.repo.FindSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Active() {
		return nil, repository.ErrSessionEnded
	}

	if fileName == "" {
		fileName = fmt.Sprintf("%s_%s", evidenceType, uuid.NewString())
	}
	evidence := &repository.CheatingEvidence{
		SessionID: sessionID,
		Type:      evidenceType,
		FileName:  fileName,
		Blob:      blob,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.SaveEvidence(ctx, evidence); err != nil {
		wrapped := logging.NewOperationError("usecase.record_evidence", sid, err)
		logging.WithOperation(uc.logger, "usecase.record_evidence", sid).Error("failed to persist evidence", zap.Error(wrapped))
		return nil, wrapped
	}
	return evidence, nil
}

// ConfirmLive flips the liveness flag on an active session.
func (uc *SessionUseCase) ConfirmLive(ctx context.Context, sessionID uint) (*repository.StudentSession, error) {
	return uc.repo.MarkLive(ctx, sessionID)
}

func (uc *SessionUseCase) withRedisRetry(ctx context.Context, sessionID, operation string, fn func() error) error {
	if uc.retryAttempts <= 1 {
		err := fn()
		return logging.NewOperationError(operation, sessionID, err)
	}

	backoff := uc.initialBackoff
	opLogger := logging.WithOperation(uc.logger, operation, sessionID)
	var err error
	for attempt := 0; attempt < uc.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, sessionID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= uc.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("redis operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == uc.retryAttempts-1 {
			opLogger.Error("redis operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, sessionID, err)
		}

		opLogger.Warn("transient redis error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, sessionID, err)
}

func (uc *SessionUseCase) withRedisGet(ctx context.Context, sessionID, operation, cacheKey string) (string, error) {
	var result string
	var miss bool
	err := uc.withRedisRetry(ctx, sessionID, operation, func() error {
		value, err := uc.cache.Get(ctx, cacheKey)
		if errors.Is(err, redis.Nil) {
			// A plain miss is an expected outcome, not a failure to
			// retry or log.
			miss = true
			return nil
		}
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		return "", err
	}
	if miss {
		return "", redis.Nil
	}
	return result, nil
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}
