package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/example/proctor-ai/internal/auth"
	"github.com/example/proctor-ai/internal/repository"
	"github.com/example/proctor-ai/internal/usecase"
)

const (
	testJWTSecret = "test-secret"
	testAPIKey    = "svc-key"
)

type memoryStore struct {
	sessions map[uint]*repository.StudentSession
	evidence []*repository.CheatingEvidence
	nextID   uint
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: map[uint]*repository.StudentSession{}, nextID: 1}
}

func (m *memoryStore) CreateSession(ctx context.Context, session *repository.StudentSession) error {
	for _, existing := range m.sessions {
		if existing.StudentID == session.StudentID && existing.EndTime == nil {
			return repository.ErrActiveSessionExists
		}
	}
	session.ID = m.nextID
	m.nextID++
	m.sessions[session.ID] = session
	return nil
}

func (m *memoryStore) FindSession(ctx context.Context, id uint) (*repository.StudentSession, error) {
	if session, ok := m.sessions[id]; ok {
		return session, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memoryStore) FindSessionForStudent(ctx context.Context, id uint, studentID string) (*repository.StudentSession, error) {
	if session, ok := m.sessions[id]; ok && session.StudentID == studentID {
		return session, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memoryStore) ListSessionsForStudent(ctx context.Context, studentID string) ([]repository.StudentSession, error) {
	var out []repository.StudentSession
	for _, session := range m.sessions {
		if session.StudentID == studentID {
			out = append(out, *session)
		}
	}
	return out, nil
}

func (m *memoryStore) ListEvidenceForStudent(ctx context.Context, studentID string) ([]repository.CheatingEvidence, error) {
	var out []repository.CheatingEvidence
	for _, row := range m.evidence {
		if session, ok := m.sessions[row.SessionID]; ok && session.StudentID == studentID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (m *memoryStore) SaveEvidence(ctx context.Context, evidence *repository.CheatingEvidence) error {
	evidence.ID = uint(len(m.evidence) + 1)
	m.evidence = append(m.evidence, evidence)
	return nil
}

func (m *memoryStore) CountEvidenceByType(ctx context.Context, sessionID uint) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, row := range m.evidence {
		if row.SessionID == sessionID {
			counts[row.Type]++
		}
	}
	return counts, nil
}

func (m *memoryStore) FinishSession(ctx context.Context, sessionID uint, score int, endTime time.Time) (*repository.StudentSession, error) {
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if session.EndTime != nil {
		return nil, repository.ErrSessionEnded
	}
	session.CheatingScore = &score
	session.EndTime = &endTime
	return session, nil
}

func (m *memoryStore) MarkLive(ctx context.Context, sessionID uint) (*repository.StudentSession, error) {
	session, ok := m.sessions[sessionID]
	if !ok || session.EndTime != nil {
		return nil, repository.ErrNotFound
	}
	session.IsLive = true
	return session, nil
}

func (m *memoryStore) AggregateMetrics(ctx context.Context) (*repository.MetricsAggregation, error) {
	return &repository.MetricsAggregation{
		TotalSessions:   int64(len(m.sessions)),
		EvidenceRecords: int64(len(m.evidence)),
	}, nil
}

type nopCache struct{}

func (nopCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (nopCache) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func newTestRouter(store usecase.SessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.MaxMultipartMemory = MaxUploadSize
	uc := usecase.NewSessionUseCase(store, nopCache{}, zap.NewNop())
	RegisterRoutes(router, uc, auth.JWTMiddleware(testJWTSecret, ""), auth.APIKeyMiddleware(testAPIKey), nil)
	return router
}

func TestSessionsRequireJWT(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, resp.Code)
	}
}

func TestServiceEvidenceRequiresAPIKey(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api/service/evidence", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, resp.Code)
	}
}

func TestEvidenceRejectsLargeUpload(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	body, contentType := buildEvidenceBody(t, "image/png", bytes.Repeat([]byte("a"), MaxUploadSize+1), "1", repository.EvidenceAudio)

	req := httptest.NewRequest(http.MethodPost, "/api/service/evidence", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-API-Key", testAPIKey)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status %d, got %d", http.StatusRequestEntityTooLarge, resp.Code)
	}
}

func TestEvidenceRejectsUnsupportedContentType(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	body, contentType := buildEvidenceBody(t, "text/plain", []byte("hello"), "1", repository.EvidenceAudio)

	req := httptest.NewRequest(http.MethodPost, "/api/service/evidence", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-API-Key", testAPIKey)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected status %d, got %d", http.StatusUnsupportedMediaType, resp.Code)
	}
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	store := newMemoryStore()
	router := newTestRouter(store)
	token := buildTestToken(t, "student-1")

	start := jsonRequest(t, router, http.MethodPost, "/api/sessions/start", `{"assignment_id":"exam-7"}`, token)
	if start.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, start.Code, start.Body.String())
	}

	conflict := jsonRequest(t, router, http.MethodPost, "/api/sessions/start", `{"assignment_id":"exam-8"}`, token)
	if conflict.Code != http.StatusConflict {
		t.Fatalf("expected status %d for second start, got %d", http.StatusConflict, conflict.Code)
	}

	body, contentType := buildEvidenceBody(t, "audio/mpeg", []byte("clip"), "1", repository.EvidenceAudio)
	upload := httptest.NewRequest(http.MethodPost, "/api/service/evidence", body)
	upload.Header.Set("Content-Type", contentType)
	upload.Header.Set("X-API-Key", testAPIKey)
	uploadResp := httptest.NewRecorder()
	router.ServeHTTP(uploadResp, upload)
	if uploadResp.Code != http.StatusCreated {
		t.Fatalf("expected status %d for upload, got %d: %s", http.StatusCreated, uploadResp.Code, uploadResp.Body.String())
	}

	end := jsonRequest(t, router, http.MethodPatch, "/api/sessions/end", `{"session_id":1}`, token)
	if end.Code != http.StatusOK {
		t.Fatalf("expected status %d for end, got %d: %s", http.StatusOK, end.Code, end.Body.String())
	}
	var ended struct {
		TrustScore *int `json:"trust_score"`
	}
	if err := json.Unmarshal(end.Body.Bytes(), &ended); err != nil {
		t.Fatalf("failed to decode end response: %v", err)
	}
	if ended.TrustScore == nil || *ended.TrustScore != 80 {
		t.Fatalf("expected trust score 80 after one audio evidence, got %v", ended.TrustScore)
	}

	again := jsonRequest(t, router, http.MethodPatch, "/api/sessions/end", `{"session_id":1}`, token)
	if again.Code != http.StatusConflict {
		t.Fatalf("expected status %d for double end, got %d", http.StatusConflict, again.Code)
	}
}

func TestLiveCheckMarksActiveSession(t *testing.T) {
	store := newMemoryStore()
	router := newTestRouter(store)
	token := buildTestToken(t, "student-1")

	if resp := jsonRequest(t, router, http.MethodPost, "/api/sessions/start", `{"assignment_id":"exam-7"}`, token); resp.Code != http.StatusCreated {
		t.Fatalf("expected session start to succeed, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/service/live-check", strings.NewReader(`{"session_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, resp.Code, resp.Body.String())
	}
	if !store.sessions[1].IsLive {
		t.Fatal("expected session to be marked live")
	}
}

func buildTestToken(t *testing.T, studentID string) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   studentID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func jsonRequest(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func buildEvidenceBody(t *testing.T, contentType string, payload []byte, sessionID, evidenceType string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("session_id", sessionID); err != nil {
		t.Fatalf("failed to write session_id field: %v", err)
	}
	if err := writer.WriteField("type", evidenceType); err != nil {
		t.Fatalf("failed to write type field: %v", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="evidence_file"; filename="upload"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create multipart part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("failed to write payload: %v", err)
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	return body, writer.FormDataContentType()
}
