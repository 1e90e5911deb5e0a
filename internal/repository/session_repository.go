package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/proctor-ai/internal/logging"
)

// ErrNotFound is returned when a session or evidence row does not exist.
var ErrNotFound = errors.New("not found")

// SessionRepository provides persistence APIs for sessions and evidence.
type SessionRepository struct {
	db             *gorm.DB
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewSessionRepository creates a new repository instance.
func NewSessionRepository(db *gorm.DB, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{
		db:             db,
		logger:         logger.Named("session_repository"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// AutoMigrate ensures the schema is available.
func (r *SessionRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&StudentSession{}, &CheatingEvidence{})
}

// CreateSession opens a new session for a student. It fails when the student
// still has an un-ended session; the check and the insert run in one
// transaction so two concurrent starts cannot both succeed.
func (r *SessionRepository) CreateSession(ctx context.Context, session *StudentSession) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&StudentSession{}).
			Where("student_id = ? AND end_time IS NULL", session.StudentID).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrActiveSessionExists
		}
		if session.StartTime.IsZero() {
			session.StartTime = time.Now().UTC()
		}
		return tx.Create(session).Error
	})
}

// ErrActiveSessionExists rejects a session-start while another session of
// the same student is still running.
var ErrActiveSessionExists = errors.New("student already has an active session")

// ErrSessionEnded rejects operations that require an active session.
var ErrSessionEnded = errors.New("session already ended")

// FindSession loads a session by id.
func (r *SessionRepository) FindSession(ctx context.Context, id uint) (*StudentSession, error) {
	var session StudentSession
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// FindSessionForStudent loads a session by id, scoped to its owner.
func (r *SessionRepository) FindSessionForStudent(ctx context.Context, id uint, studentID string) (*StudentSession, error) {
	var session StudentSession
	err := r.db.WithContext(ctx).
		First(&session, "id = ? AND student_id = ?", id, studentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// ListSessionsForStudent returns the student's sessions, newest first.
func (r *SessionRepository) ListSessionsForStudent(ctx context.Context, studentID string) ([]StudentSession, error) {
	var sessions []StudentSession
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("start_time DESC").
		Find(&sessions).Error
	return sessions, err
}

// ListEvidenceForStudent returns every evidence row across the student's
// sessions.
func (r *SessionRepository) ListEvidenceForStudent(ctx context.Context, studentID string) ([]CheatingEvidence, error) {
	var evidence []CheatingEvidence
	err := r.db.WithContext(ctx).
		Joins("JOIN student_sessions ON student_sessions.id = cheating_evidence.session_id").
		Where("student_sessions.student_id = ?", studentID).
		Find(&evidence).Error
	return evidence, err
}

// SaveEvidence persists one evidence row, retrying transient failures.
func (r *SessionRepository) SaveEvidence(ctx context.Context, evidence *CheatingEvidence) error {
	if evidence.CreatedAt.IsZero() {
		evidence.CreatedAt = time.Now().UTC()
	}
	return r.executeWithRetry(ctx, "repository.save_evidence", "", func() error {
		return r.db.WithContext(ctx).Create(evidence).Error
	})
}

// CountEvidenceByType aggregates a session's evidence rows per category.
func (r *SessionRepository) CountEvidenceByType(ctx context.Context, sessionID uint) (map[string]int64, error) {
	type row struct {
		Type  string
		Count int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&CheatingEvidence{}).
		Select("type, COUNT(id) AS count").
		Where("session_id = ?", sessionID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Type] = r.Count
	}
	return counts, nil
}

// FinishSession writes the trust score and end time in one statement so no
// reader can observe one without the other. It fails on an already-ended
// session.
func (r *SessionRepository) FinishSession(ctx context.Context, sessionID uint, score int, endTime time.Time) (*StudentSession, error) {
	var session StudentSession
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&StudentSession{}).
			Where("id = ? AND end_time IS NULL", sessionID).
			Updates(map[string]interface{}{
				"cheating_score": score,
				"end_time":       endTime,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSessionEnded
		}
		return tx.First(&session, sessionID).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// MarkLive flips the liveness flag on an active session.
func (r *SessionRepository) MarkLive(ctx context.Context, sessionID uint) (*StudentSession, error) {
	var session StudentSession
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&StudentSession{}).
			Where("id = ? AND end_time IS NULL", sessionID).
			Update("is_live", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.First(&session, sessionID).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// MetricsAggregation summarises stored proctoring outcomes.
type MetricsAggregation struct {
	TotalSessions   int64
	EndedSessions   int64
	AverageScore    float64
	EvidenceRecords int64
}

// AggregateMetrics computes store-wide proctoring metrics.
func (r *SessionRepository) AggregateMetrics(ctx context.Context) (*MetricsAggregation, error) {
	var agg MetricsAggregation

	db := r.db.WithContext(ctx)
	if err := db.Model(&StudentSession{}).Count(&agg.TotalSessions).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&StudentSession{}).
		Where("end_time IS NOT NULL").
		Count(&agg.EndedSessions).Error; err != nil {
		return nil, err
	}
	if agg.EndedSessions > 0 {
		if err := db.Model(&StudentSession{}).
			Where("cheating_score IS NOT NULL").
			Select("COALESCE(AVG(cheating_score), 0)").
			Scan(&agg.AverageScore).Error; err != nil {
			return nil, err
		}
	}
	if err := db.Model(&CheatingEvidence{}).Count(&agg.EvidenceRecords).Error; err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *SessionRepository) executeWithRetry(ctx context.Context, operation, sessionID string, fn func() error) error {
	if r.retryAttempts <= 1 {
		return logging.NewOperationError(operation, sessionID, fn())
	}

	backoff := r.initialBackoff
	opLogger := logging.WithOperation(r.logger, operation, sessionID)
	var err error
	for attempt := 0; attempt < r.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, sessionID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= r.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("store operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == r.retryAttempts-1 {
			opLogger.Error("store operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, sessionID, err)
		}

		opLogger.Warn("transient store error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, sessionID, err)
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
