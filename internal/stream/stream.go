package stream

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/example/proctor-ai/internal/pipeline"
	"github.com/example/proctor-ai/internal/repository"
)

const (
	readDeadline           = 60 * time.Second
	maxFrameSize           = 16 << 20
	writeBufferLen         = 1024
	sessionRecheckInterval = 5 * time.Second
)

// SessionValidator checks that a streamed session exists.
type SessionValidator interface {
	FindSession(ctx context.Context, id uint) (*repository.StudentSession, error)
}

// FrameProcessor consumes one camera frame and returns the annotated frame.
type FrameProcessor interface {
	ProcessFrame(ctx context.Context, frame []byte) ([]byte, pipeline.Report)
}

// ProcessorFactory builds the per-connection frame processor. Tracker and
// gate state live inside the processor, so a new connection always starts
// clean.
type ProcessorFactory func(session *repository.StudentSession) FrameProcessor

// Metrics carries process-wide stream counters.
type Metrics struct {
	activeConnections int32
	framesProcessed   uint64
	violationFrames   uint64
	writeErrors       uint64
}

// MetricsSnapshot is a point-in-time copy of the stream counters.
type MetricsSnapshot struct {
	ActiveConnections int32  `json:"active_connections"`
	FramesProcessed   uint64 `json:"frames_processed"`
	ViolationFrames   uint64 `json:"violation_frames"`
	WriteErrors       uint64 `json:"write_errors"`
}

// Snapshot reads the counters atomically.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		ActiveConnections: atomic.LoadInt32(&m.activeConnections),
		FramesProcessed:   atomic.LoadUint64(&m.framesProcessed),
		ViolationFrames:   atomic.LoadUint64(&m.violationFrames),
		WriteErrors:       atomic.LoadUint64(&m.writeErrors),
	}
}

// Handler upgrades proctoring connections and runs the frame loop.
type Handler struct {
	sessions     SessionValidator
	newProcessor ProcessorFactory
	logger       *zap.Logger
	metrics      Metrics
	upgrader     websocket.Upgrader
	recheckEvery time.Duration
}

// NewHandler constructs the websocket handler.
func NewHandler(sessions SessionValidator, factory ProcessorFactory, logger *zap.Logger) *Handler {
	return &Handler{
		sessions:     sessions,
		newProcessor: factory,
		logger:       logger.Named("stream"),
		recheckEvery: sessionRecheckInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  writeBufferLen,
			WriteBufferSize: writeBufferLen,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Metrics exposes the handler's counters.
func (h *Handler) Metrics() *Metrics {
	return &h.metrics
}

// Register mounts the websocket route on the router.
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/ws", h.handleWS)
}

func (h *Handler) handleWS(c *gin.Context) {
	sessionID, err := parseSessionID(c.Query("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	session, err := h.sessions.FindSession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}
	if !session.Active() {
		c.JSON(http.StatusConflict, gin.H{"error": "session already ended"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed",
			zap.Uint("db_session_id", sessionID),
			zap.Error(err))
		return
	}

	connLogger := h.logger.With(
		zap.Uint("db_session_id", sessionID),
		zap.String("student_id", session.StudentID))
	connLogger.Info("proctoring stream connected")

	atomic.AddInt32(&h.metrics.activeConnections, 1)
	defer func() {
		atomic.AddInt32(&h.metrics.activeConnections, -1)
		conn.Close()
		connLogger.Info("proctoring stream disconnected")
	}()

	processor := h.newProcessor(session)
	h.frameLoop(c.Request.Context(), conn, processor, sessionID, connLogger)
}

// frameLoop reads binary JPEG frames and answers each with exactly one
// annotated frame. Non-binary messages are ignored; the loop ends when the
// peer closes, a read/write fails, or the session is ended out of band.
func (h *Handler) frameLoop(ctx context.Context, conn *websocket.Conn, processor FrameProcessor, sessionID uint, logger *zap.Logger) {
	conn.SetReadLimit(maxFrameSize)
	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	lastCheck := time.Now()
	for {
		messageType, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(readDeadline))

		if messageType != websocket.BinaryMessage {
			continue
		}

		// An end of session stamped through the HTTP API must stop the
		// frame feed; the handshake check alone cannot see it.
		if time.Since(lastCheck) >= h.recheckEvery {
			lastCheck = time.Now()
			if !h.sessionStillActive(ctx, sessionID, logger) {
				logger.Info("session ended, closing proctoring stream")
				deadline := time.Now().Add(time.Second)
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended"), deadline)
				return
			}
		}

		annotated, report := processor.ProcessFrame(ctx, frame)
		atomic.AddUint64(&h.metrics.framesProcessed, 1)
		if report.Violation {
			atomic.AddUint64(&h.metrics.violationFrames, 1)
		}

		if err := conn.WriteMessage(websocket.BinaryMessage, annotated); err != nil {
			atomic.AddUint64(&h.metrics.writeErrors, 1)
			logger.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}

// sessionStillActive reloads the session; a missing or ended session stops
// the stream, while a transient store failure keeps it alive.
func (h *Handler) sessionStillActive(ctx context.Context, sessionID uint, logger *zap.Logger) bool {
	session, err := h.sessions.FindSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false
		}
		logger.Warn("session recheck failed, keeping stream open", zap.Error(err))
		return true
	}
	return session.Active()
}

func parseSessionID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid session id")
	}
	return uint(id), nil
}
