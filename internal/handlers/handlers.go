package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/proctor-ai/internal/auth"
	"github.com/example/proctor-ai/internal/repository"
	"github.com/example/proctor-ai/internal/usecase"
)

// MaxUploadSize caps evidence uploads at 10 MiB.
const MaxUploadSize = 10 << 20

// HealthCheck probes one dependency of the service.
type HealthCheck func(ctx context.Context) error

// HealthChecks maps a component name to its probe.
type HealthChecks map[string]HealthCheck

// RegisterRoutes wires the HTTP handlers to the Gin router. Student-facing
// routes sit behind the JWT middleware; service-to-service routes behind the
// API key middleware.
func RegisterRoutes(router *gin.Engine, uc *usecase.SessionUseCase, jwtAuth, apiKeyAuth gin.HandlerFunc, checks HealthChecks) {
	router.GET("/health", func(c *gin.Context) {
		components := gin.H{}
		status := http.StatusOK
		for name, check := range checks {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			if err := check(ctx); err != nil {
				components[name] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				components[name] = "ok"
			}
			cancel()
		}
		state := "ok"
		if status != http.StatusOK {
			state = "degraded"
		}
		c.JSON(status, gin.H{"status": state, "components": components})
	})

	api := router.Group("/api", jwtAuth)

	api.POST("/sessions/start", func(c *gin.Context) {
		studentID, ok := auth.GetStudentID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		var req struct {
			AssignmentID string `json:"assignment_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "assignment_id is required"})
			return
		}

		session, err := uc.StartSession(c.Request.Context(), studentID, req.AssignmentID)
		if err != nil {
			if errors.Is(err, repository.ErrActiveSessionExists) {
				c.JSON(http.StatusConflict, gin.H{"error": "student already has an active session"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
			return
		}

		c.JSON(http.StatusCreated, sessionView(session))
	})

	api.PATCH("/sessions/end", func(c *gin.Context) {
		studentID, ok := auth.GetStudentID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		var req struct {
			SessionID uint `json:"session_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}

		session, err := uc.EndSession(c.Request.Context(), studentID, req.SessionID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			case errors.Is(err, repository.ErrSessionEnded):
				c.JSON(http.StatusConflict, gin.H{"error": "session already ended"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to end session"})
			}
			return
		}

		c.JSON(http.StatusOK, sessionView(session))
	})

	api.GET("/sessions", func(c *gin.Context) {
		studentID, ok := auth.GetStudentID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		sessions, err := uc.Sessions(c.Request.Context(), studentID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sessions"})
			return
		}

		views := make([]gin.H, 0, len(sessions))
		for i := range sessions {
			views = append(views, sessionView(&sessions[i]))
		}
		c.JSON(http.StatusOK, gin.H{"sessions": views})
	})

	api.GET("/sessions/result", func(c *gin.Context) {
		studentID, ok := auth.GetStudentID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		sessionID, err := parseSessionID(c.Query("session_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}

		session, err := uc.SessionResult(c.Request.Context(), studentID, sessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}

		c.JSON(http.StatusOK, sessionView(session))
	})

	api.GET("/sessions/evidence", func(c *gin.Context) {
		studentID, ok := auth.GetStudentID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		evidence, err := uc.Evidence(c.Request.Context(), studentID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list evidence"})
			return
		}

		views := make([]gin.H, 0, len(evidence))
		for _, row := range evidence {
			views = append(views, gin.H{
				"id":         row.ID,
				"session_id": row.SessionID,
				"type":       row.Type,
				"file_name":  row.FileName,
				"created_at": row.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{"evidence": views})
	})

	api.GET("/metrics", func(c *gin.Context) {
		summary, err := uc.GetMetricsSummary(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate metrics"})
			return
		}
		c.JSON(http.StatusOK, summary)
	})

	service := router.Group("/api/service", apiKeyAuth)

	service.POST("/evidence", func(c *gin.Context) {
		file, err := c.FormFile("evidence_file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "evidence_file is required"})
			return
		}
		if file.Size > MaxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "evidence file too large"})
			return
		}
		if !allowedContentType(file.Header.Get("Content-Type")) {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "unsupported evidence content type"})
			return
		}

		sessionID, err := parseSessionID(c.PostForm("session_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}
		evidenceType := c.PostForm("type")

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open evidence file"})
			return
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read evidence file"})
			return
		}

		evidence, err := uc.RecordEvidence(c.Request.Context(), sessionID, evidenceType, file.Filename, data)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrUnknownEvidenceType):
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown evidence type"})
			case errors.Is(err, repository.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			case errors.Is(err, repository.ErrSessionEnded):
				c.JSON(http.StatusConflict, gin.H{"error": "session already ended"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store evidence"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":         evidence.ID,
			"session_id": evidence.SessionID,
			"type":       evidence.Type,
			"file_name":  evidence.FileName,
			"created_at": evidence.CreatedAt,
		})
	})

	service.POST("/live-check", func(c *gin.Context) {
		var req struct {
			SessionID uint `json:"session_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}

		session, err := uc.ConfirmLive(c.Request.Context(), req.SessionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "active session not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm liveness"})
			return
		}

		c.JSON(http.StatusOK, sessionView(session))
	})
}

func sessionView(session *repository.StudentSession) gin.H {
	view := gin.H{
		"id":            session.ID,
		"student_id":    session.StudentID,
		"assignment_id": session.AssignmentID,
		"start_time":    session.StartTime,
		"is_live":       session.IsLive,
		"active":        session.Active(),
	}
	if session.EndTime != nil {
		view["end_time"] = *session.EndTime
	}
	if session.CheatingScore != nil {
		view["trust_score"] = *session.CheatingScore
	}
	return view
}

func parseSessionID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid session id")
	}
	return uint(id), nil
}

func allowedContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") ||
		strings.HasPrefix(contentType, "audio/")
}
