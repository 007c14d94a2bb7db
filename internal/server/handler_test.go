package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careerdecide/internal/config"
	"careerdecide/internal/engine"
	careerdecideErrors "careerdecide/internal/errors"
	"careerdecide/internal/observability"
	"careerdecide/internal/store"
	"careerdecide/internal/types"
)

func newTestServer(t *testing.T, apiKeys []string) (*Server, *http.ServeMux) {
	t.Helper()

	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	counter := 0
	eng := engine.New(
		engine.WithIDSource(func() string {
			counter++
			return fmt.Sprintf("id-%03d", counter)
		}),
		engine.WithClock(func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		}),
		engine.WithRandSource(func() float64 { return 0.5 }),
	)

	logger := careerdecideErrors.NewLogger(slog.LevelError)

	srv := NewServer(&config.Config{}, ServerConfig{
		Host:           "127.0.0.1",
		Port:           "0",
		Version:        "test",
		APIKeys:        apiKeys,
		MaxRequestSize: 1 << 20,
	}, eng, st, logger)

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("failed to create observability manager: %v", err)
	}

	return srv, srv.setupRoutes(om)
}

func doJSON(mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(data))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

func TestEvaluateEndpoint(t *testing.T) {
	srv, mux := newTestServer(t, nil)

	w := doJSON(mux, "POST", "/evaluate", map[string]string{
		"resumeText":     "I built a dashboard with React and TypeScript.",
		"jobDescription": "Required: React.",
		"mode":           "student",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result types.EvaluationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result.Decision != types.DecisionApply {
		t.Errorf("expected APPLY, got %s", result.Decision)
	}
	if result.ReadinessScore != 92 {
		t.Errorf("expected score 92, got %d", result.ReadinessScore)
	}
	if len(result.InterviewQuestions) != 4 {
		t.Errorf("expected 4 interview questions, got %d", len(result.InterviewQuestions))
	}

	// The evaluation must be persisted
	stored, err := srv.Store.Evaluations()
	if err != nil {
		t.Fatalf("failed to read store: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != result.ID {
		t.Errorf("expected one stored evaluation with ID %s, got %+v", result.ID, stored)
	}
}

func TestEvaluateEndpointValidation(t *testing.T) {
	_, mux := newTestServer(t, nil)

	tests := []struct {
		name    string
		body    map[string]string
		wantMsg string
	}{
		{
			name:    "missing resume text",
			body:    map[string]string{"jobDescription": "Required: Go.", "mode": "student"},
			wantMsg: "resumeText field is required",
		},
		{
			name:    "missing mode",
			body:    map[string]string{"resumeText": "I know Python well enough."},
			wantMsg: "mode field is required",
		},
		{
			name:    "unknown mode",
			body:    map[string]string{"resumeText": "I know Python well enough.", "mode": "recruiter"},
			wantMsg: "mode must be one of: student hr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(mux, "POST", "/evaluate", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if resp.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, resp.Message)
			}
		})
	}
}

func TestEvaluateEndpointRejectsWrongContentType(t *testing.T) {
	_, mux := newTestServer(t, nil)

	r := httptest.NewRequest("POST", "/evaluate", bytes.NewReader([]byte("resume")))
	r.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for wrong content type, got %d", w.Code)
	}
}

func TestEvaluateEndpointEmptyJobDescription(t *testing.T) {
	// An empty job description is valid input: the engine returns the
	// neutral score rather than an error.
	_, mux := newTestServer(t, nil)

	w := doJSON(mux, "POST", "/evaluate", map[string]string{
		"resumeText": "I built a dashboard with React and TypeScript.",
		"mode":       "student",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result types.EvaluationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.ReadinessScore != 50 {
		t.Errorf("expected neutral score 50, got %d", result.ReadinessScore)
	}
	if result.Decision != types.DecisionDoNotApply {
		t.Errorf("expected DO_NOT_APPLY, got %s", result.Decision)
	}
}

func TestRequestSizeLimit(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	srv.MaxRequestSize = 256

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("failed to create observability manager: %v", err)
	}
	mux := srv.setupRoutes(om)

	big := bytes.Repeat([]byte("a"), 1024)
	w := doJSON(mux, "POST", "/evaluate", map[string]string{
		"resumeText": string(big),
		"mode":       "student",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for oversized body, got %d", w.Code)
	}
}

func TestAnswerEndpoint(t *testing.T) {
	_, mux := newTestServer(t, nil)

	w := doJSON(mux, "POST", "/answer", map[string]string{
		"question": "Tell me about your projects.",
		"answer":   "I built a project because the team needed one. For example it shipped.",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var feedback types.AnswerFeedback
	if err := json.Unmarshal(w.Body.Bytes(), &feedback); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if feedback.Clarity < 30 || feedback.Clarity > 100 {
		t.Errorf("clarity out of range: %d", feedback.Clarity)
	}
	if feedback.OverallScore <= 0 {
		t.Errorf("expected positive overall score, got %d", feedback.OverallScore)
	}

	// Missing question is rejected
	w = doJSON(mux, "POST", "/answer", map[string]string{"answer": "short"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing question, got %d", w.Code)
	}
}

func TestAttemptEndpoint(t *testing.T) {
	srv, mux := newTestServer(t, nil)

	// Unknown evaluation
	w := doJSON(mux, "POST", "/evaluations/nope/answers", map[string]string{
		"questionId": "q-1",
		"question":   "Tell me about React.",
		"answer":     "I used React because it fit. For example, a dashboard.",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown evaluation, got %d", w.Code)
	}

	// Create an evaluation, then record an attempt against it
	w = doJSON(mux, "POST", "/evaluate", map[string]string{
		"resumeText":     "I built a dashboard with React and TypeScript.",
		"jobDescription": "Required: React.",
		"mode":           "student",
	})
	var result types.EvaluationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode evaluation: %v", err)
	}

	w = doJSON(mux, "POST", "/evaluations/"+result.ID+"/answers", map[string]string{
		"questionId": result.InterviewQuestions[0].ID,
		"question":   result.InterviewQuestions[0].Question,
		"answer":     "I used React because it fit. For example, a dashboard.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	attempts, err := srv.Store.AttemptsForEvaluation(result.ID)
	if err != nil {
		t.Fatalf("failed to read attempts: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("expected 1 stored attempt, got %d", len(attempts))
	}
	if attempts[0].Feedback.OverallScore <= 0 {
		t.Errorf("expected scored feedback on the stored attempt")
	}
}

func TestFeedbackEndpoint(t *testing.T) {
	srv, mux := newTestServer(t, nil)

	w := doJSON(mux, "POST", "/evaluate", map[string]string{
		"resumeText":     "I built a dashboard with React and TypeScript.",
		"jobDescription": "Required: React.",
		"mode":           "student",
	})
	var result types.EvaluationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode evaluation: %v", err)
	}

	// Missing trusted field
	w = doJSON(mux, "POST", "/evaluations/"+result.ID+"/feedback", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing trusted field, got %d", w.Code)
	}

	// trusted=false is a valid verdict, not a missing field
	w = doJSON(mux, "POST", "/evaluations/"+result.ID+"/feedback", map[string]any{"trusted": false})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	entries, err := srv.Store.FeedbackEntries()
	if err != nil {
		t.Fatalf("failed to read feedback: %v", err)
	}
	if len(entries) != 1 || entries[0].Trusted {
		t.Errorf("expected one untrusted feedback entry, got %+v", entries)
	}
}

func TestGetAndExportEvaluation(t *testing.T) {
	_, mux := newTestServer(t, nil)

	w := doJSON(mux, "GET", "/evaluations/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown evaluation, got %d", w.Code)
	}

	w = doJSON(mux, "POST", "/evaluate", map[string]string{
		"resumeText":     "I built a dashboard with React and TypeScript.",
		"jobDescription": "Required: React.",
		"mode":           "hr",
		"candidateName":  "Jordan",
	})
	var result types.EvaluationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode evaluation: %v", err)
	}

	w = doJSON(mux, "GET", "/evaluations/"+result.ID+"/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var export types.ATSExport
	if err := json.Unmarshal(w.Body.Bytes(), &export); err != nil {
		t.Fatalf("failed to decode export: %v", err)
	}
	if export.ReadinessScore != result.ReadinessScore {
		t.Errorf("export score %d does not match evaluation %d", export.ReadinessScore, result.ReadinessScore)
	}
	if !export.InterviewRecommendation {
		t.Errorf("APPLY decision should set interview recommendation")
	}
}

func TestAnalyticsEndpoints(t *testing.T) {
	_, mux := newTestServer(t, nil)

	doJSON(mux, "POST", "/evaluate", map[string]string{
		"resumeText":     "I built a dashboard with React and TypeScript.",
		"jobDescription": "Required: React.",
		"mode":           "student",
	})

	w := doJSON(mux, "GET", "/analytics/student", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var student types.StudentAnalytics
	if err := json.Unmarshal(w.Body.Bytes(), &student); err != nil {
		t.Fatalf("failed to decode analytics: %v", err)
	}
	if student.TotalEvaluations != 1 || student.ApplyCount != 1 {
		t.Errorf("unexpected student analytics: %+v", student)
	}

	w = doJSON(mux, "GET", "/analytics/hr", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestJobEndpoints(t *testing.T) {
	_, mux := newTestServer(t, nil)

	// Missing title is rejected
	w := doJSON(mux, "POST", "/jobs", map[string]string{"description": "Required: React."})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing title, got %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Message != "title field is required" {
		t.Errorf("expected title validation message, got %q", resp.Message)
	}

	w = doJSON(mux, "POST", "/jobs", map[string]string{
		"title":       "Frontend Engineer",
		"description": "Required: React.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var role types.JobRole
	if err := json.Unmarshal(w.Body.Bytes(), &role); err != nil {
		t.Fatalf("failed to decode job role: %v", err)
	}
	if role.ID == "" {
		t.Error("expected a generated job role ID")
	}
	if role.Title != "Frontend Engineer" {
		t.Errorf("unexpected title: %q", role.Title)
	}

	w = doJSON(mux, "GET", "/jobs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var roles []types.JobRole
	if err := json.Unmarshal(w.Body.Bytes(), &roles); err != nil {
		t.Fatalf("failed to decode job roles: %v", err)
	}
	if len(roles) != 1 || roles[0].ID != role.ID {
		t.Errorf("expected one stored role with ID %s, got %+v", role.ID, roles)
	}
}

func TestScreenEndpoint(t *testing.T) {
	srv, mux := newTestServer(t, nil)

	batch := map[string]any{
		"candidates": []map[string]string{
			{"name": "Jordan", "resumeText": "I built a dashboard with React and TypeScript."},
			{"name": "Casey", "resumeText": "I wrote reports."},
		},
	}

	// Unknown job role
	w := doJSON(mux, "POST", "/jobs/nope/candidates", batch)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown job role, got %d", w.Code)
	}

	w = doJSON(mux, "POST", "/jobs", map[string]string{
		"title":       "Frontend Engineer",
		"description": "Required: React.",
	})
	var role types.JobRole
	if err := json.Unmarshal(w.Body.Bytes(), &role); err != nil {
		t.Fatalf("failed to decode job role: %v", err)
	}

	// Empty batch is rejected
	w = doJSON(mux, "POST", "/jobs/"+role.ID+"/candidates", map[string]any{"candidates": []any{}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty candidate list, got %d", w.Code)
	}

	w = doJSON(mux, "POST", "/jobs/"+role.ID+"/candidates", batch)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var result types.ScreeningResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode screening result: %v", err)
	}
	if result.JobRoleID != role.ID {
		t.Errorf("expected job role ID %s, got %s", role.ID, result.JobRoleID)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("expected 2 screened candidates, got %d", len(result.Candidates))
	}
	if result.Candidates[0].Decision != types.DecisionApply || result.Candidates[0].ReadinessScore != 92 {
		t.Errorf("unexpected outcome for first candidate: %+v", result.Candidates[0])
	}
	if result.Candidates[1].Decision != types.DecisionDoNotApply {
		t.Errorf("expected DO_NOT_APPLY for second candidate, got %s", result.Candidates[1].Decision)
	}

	// Every screening evaluation is persisted
	evaluations, err := srv.Store.Evaluations()
	if err != nil {
		t.Fatalf("failed to read evaluations: %v", err)
	}
	if len(evaluations) != 2 {
		t.Fatalf("expected 2 stored evaluations, got %d", len(evaluations))
	}
	for _, e := range evaluations {
		if e.Mode != types.ModeHR {
			t.Errorf("expected hr mode evaluation, got %s", e.Mode)
		}
	}

	// The candidate roster links each candidate to their evaluation
	stored, err := srv.Store.CandidatesForJob(role.ID)
	if err != nil {
		t.Fatalf("failed to read candidates: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 stored candidates, got %d", len(stored))
	}
	for i, c := range stored {
		if c.EvaluationID != result.Candidates[i].EvaluationID {
			t.Errorf("candidate %s not linked to evaluation %s", c.Name, result.Candidates[i].EvaluationID)
		}
		if c.JobRoleID != role.ID {
			t.Errorf("candidate %s not linked to job role", c.Name)
		}
	}

	// The roster is readable over HTTP
	w = doJSON(mux, "GET", "/jobs/"+role.ID+"/candidates", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var listed []types.Candidate
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("failed to decode candidates: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("expected 2 listed candidates, got %d", len(listed))
	}

	w = doJSON(mux, "GET", "/jobs/nope/candidates", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown job role, got %d", w.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	_, mux := newTestServer(t, []string{"valid-key-12345"})

	// No key
	w := doJSON(mux, "GET", "/evaluations", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without API key, got %d", w.Code)
	}

	// Wrong key
	r := httptest.NewRequest("GET", "/evaluations", nil)
	r.Header.Set("X-API-Key", "wrong")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with invalid API key, got %d", w.Code)
	}

	// Valid key via header
	r = httptest.NewRequest("GET", "/evaluations", nil)
	r.Header.Set("X-API-Key", "valid-key-12345")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with valid API key, got %d", w.Code)
	}

	// Valid key via bearer token
	r = httptest.NewRequest("GET", "/evaluations", nil)
	r.Header.Set("Authorization", "Bearer valid-key-12345")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with bearer token, got %d", w.Code)
	}

	// Health stays public
	r = httptest.NewRequest("GET", "/health", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("expected public health endpoint, got %d", w.Code)
	}
}

func TestHealthAndStats(t *testing.T) {
	_, mux := newTestServer(t, nil)

	w := doJSON(mux, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var health map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("failed to decode health: %v", err)
	}
	if health["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", health["status"])
	}
	if health["service"] != "careerdecide" {
		t.Errorf("unexpected service name: %v", health["service"])
	}

	w = doJSON(mux, "GET", "/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
