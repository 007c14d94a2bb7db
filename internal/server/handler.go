package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	careerdecideErrors "careerdecide/internal/errors"
	"careerdecide/internal/observability"
	"careerdecide/internal/store"
	"careerdecide/internal/types"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// createEvaluateHandler wraps the evaluate handler with observability
func (s *Server) createEvaluateHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careerdecide.api")
		ctx, span := tracer.Start(ctx, "api.evaluate")
		defer span.End()

		// Parse request
		var req EvaluateRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.validateRequest(req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request", err.Error(), http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.ResumeText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("resumeText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}
		if len(req.JobDescription) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JobDescription))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("jobDescription exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("request.mode", req.Mode),
			attribute.String("operation", "evaluate"),
		)

		metrics := om.GetMetrics()
		var result types.EvaluationResult
		_ = metrics.TrackEvaluation(ctx, "evaluate", func(ctx context.Context) error {
			result = s.Engine.Evaluate(req.ResumeText, req.JobDescription, types.Mode(req.Mode), req.CandidateName)
			return nil
		})

		if err := s.Store.SaveEvaluation(result); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "storage"))
			metrics.RecordBusinessMetric(ctx, "evaluation_completed", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to persist evaluation", err.Error(), http.StatusInternalServerError)
			return
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "evaluation_completed", true, om,
			attribute.String("decision", string(result.Decision)),
			attribute.Int("readiness_score", result.ReadinessScore))
		if result.Mode == types.ModeHR {
			metrics.RecordBusinessMetric(ctx, "candidate_screened", true, om,
				attribute.String("decision", string(result.Decision)))
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("decision", string(result.Decision)),
			attribute.Int("readiness_score", result.ReadinessScore),
			attribute.Int("matched_count", len(result.SkillDiff.Matched)),
			attribute.Int("missing_count", len(result.SkillDiff.Missing)),
		)

		writeJSONResponse(w, http.StatusOK, result)
	}
}

// createAnswerHandler wraps the answer evaluation handler with observability
func (s *Server) createAnswerHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careerdecide.api")
		ctx, span := tracer.Start(ctx, "api.answer")
		defer span.End()

		var req AnswerRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.validateRequest(req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.answer_length", len(req.Answer)),
			attribute.String("operation", "answer"),
		)

		feedback := s.Engine.EvaluateAnswer(req.Question, req.Answer)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "answer_scored", true, om,
			attribute.Int("overall_score", feedback.OverallScore))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("overall_score", feedback.OverallScore),
		)

		writeJSONResponse(w, http.StatusOK, feedback)
	}
}

// createAttemptHandler records a scored interview attempt against an evaluation
func (s *Server) createAttemptHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careerdecide.api")
		ctx, span := tracer.Start(ctx, "api.attempt")
		defer span.End()

		evaluationID := r.PathValue("id")

		var req AttemptRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.validateRequest(req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request", err.Error(), http.StatusBadRequest)
			return
		}

		// The attempt must reference a stored evaluation
		if _, err := s.Store.EvaluationByID(evaluationID); err != nil {
			s.writeStoreError(w, span, err, evaluationID)
			return
		}

		attempt := types.InterviewAttempt{
			EvaluationID: evaluationID,
			QuestionID:   req.QuestionID,
			Question:     req.Question,
			Answer:       req.Answer,
			Feedback:     s.Engine.EvaluateAnswer(req.Question, req.Answer),
			CreatedAt:    time.Now(),
		}

		if err := s.Store.SaveAttempt(attempt); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "storage"))
			writeErrorResponse(w, "Failed to persist attempt", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "answer_scored", true, om,
			attribute.Int("overall_score", attempt.Feedback.OverallScore))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("overall_score", attempt.Feedback.OverallScore),
		)

		writeJSONResponse(w, http.StatusCreated, attempt)
	}
}

// createFeedbackHandler records a trust verdict on an evaluation
func (s *Server) createFeedbackHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careerdecide.api")
		ctx, span := tracer.Start(ctx, "api.feedback")
		defer span.End()

		evaluationID := r.PathValue("id")

		var req FeedbackRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.validateRequest(req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request", err.Error(), http.StatusBadRequest)
			return
		}

		if _, err := s.Store.EvaluationByID(evaluationID); err != nil {
			s.writeStoreError(w, span, err, evaluationID)
			return
		}

		feedback := types.Feedback{
			EvaluationID: evaluationID,
			Trusted:      *req.Trusted,
			Timestamp:    time.Now(),
		}

		if err := s.Store.SaveFeedback(feedback); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "storage"))
			writeErrorResponse(w, "Failed to persist feedback", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "feedback_recorded", true, om,
			attribute.Bool("trusted", feedback.Trusted))

		span.SetAttributes(attribute.Bool("success", true))

		writeJSONResponse(w, http.StatusCreated, feedback)
	}
}

// listEvaluationsHandler returns all stored evaluations
func (s *Server) listEvaluationsHandler(w http.ResponseWriter, r *http.Request) {
	evaluations, err := s.Store.Evaluations()
	if err != nil {
		writeErrorResponse(w, "Failed to read evaluations", err.Error(), http.StatusInternalServerError)
		return
	}
	if evaluations == nil {
		evaluations = []types.EvaluationResult{}
	}
	writeJSONResponse(w, http.StatusOK, evaluations)
}

// getEvaluationHandler returns one stored evaluation by ID
func (s *Server) getEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	evaluation, err := s.Store.EvaluationByID(id)
	if err != nil {
		if isNotFound(err) {
			writeErrorResponse(w, "Evaluation not found", id, http.StatusNotFound)
			return
		}
		writeErrorResponse(w, "Failed to read evaluation", err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, http.StatusOK, evaluation)
}

// exportEvaluationHandler returns the flat ATS record for an evaluation
func (s *Server) exportEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	evaluation, err := s.Store.EvaluationByID(id)
	if err != nil {
		if isNotFound(err) {
			writeErrorResponse(w, "Evaluation not found", id, http.StatusNotFound)
			return
		}
		writeErrorResponse(w, "Failed to read evaluation", err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, http.StatusOK, store.ATSRecord(evaluation, evaluation.ID, ""))
}

// studentAnalyticsHandler returns aggregated student analytics
func (s *Server) studentAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	analytics, err := store.StudentAnalytics(s.Store)
	if err != nil {
		writeErrorResponse(w, "Failed to aggregate analytics", err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, http.StatusOK, analytics)
}

// hrAnalyticsHandler returns aggregated HR screening analytics
func (s *Server) hrAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	analytics, err := store.HRAnalytics(s.Store)
	if err != nil {
		writeErrorResponse(w, "Failed to aggregate analytics", err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, http.StatusOK, analytics)
}

// createJobHandler stores a job role for later batch screening
func (s *Server) createJobHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("careerdecide.api")
		_, span := tracer.Start(r.Context(), "api.create_job")
		defer span.End()

		var req JobRoleRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.validateRequest(req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request", err.Error(), http.StatusBadRequest)
			return
		}

		role := types.JobRole{
			ID:          uuid.NewString(),
			Title:       req.Title,
			Description: req.Description,
			CreatedAt:   time.Now(),
		}

		if err := s.Store.SaveJobRole(role); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "storage"))
			writeErrorResponse(w, "Failed to persist job role", err.Error(), http.StatusInternalServerError)
			return
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("job_role_id", role.ID),
		)

		writeJSONResponse(w, http.StatusCreated, role)
	}
}

// listJobsHandler returns all stored job roles
func (s *Server) listJobsHandler(w http.ResponseWriter, r *http.Request) {
	roles, err := s.Store.JobRoles()
	if err != nil {
		writeErrorResponse(w, "Failed to read job roles", err.Error(), http.StatusInternalServerError)
		return
	}
	if roles == nil {
		roles = []types.JobRole{}
	}
	writeJSONResponse(w, http.StatusOK, roles)
}

// createScreenHandler evaluates a batch of candidate resumes against a
// stored job role in hr mode, persisting each evaluation and the
// candidate roster with its evaluation links
func (s *Server) createScreenHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careerdecide.api")
		ctx, span := tracer.Start(ctx, "api.screen")
		defer span.End()

		jobRoleID := r.PathValue("id")

		var req ScreenRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.validateRequest(req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request", err.Error(), http.StatusBadRequest)
			return
		}

		role, err := s.Store.JobRoleByID(jobRoleID)
		if err != nil {
			s.writeJobRoleError(w, span, err, jobRoleID)
			return
		}

		span.SetAttributes(
			attribute.String("job_role_id", role.ID),
			attribute.Int("request.candidate_count", len(req.Candidates)),
			attribute.String("operation", "screen"),
		)

		metrics := om.GetMetrics()
		candidates := make([]types.Candidate, 0, len(req.Candidates))
		screened := make([]types.ScreenedCandidate, 0, len(req.Candidates))

		for _, c := range req.Candidates {
			var result types.EvaluationResult
			_ = metrics.TrackEvaluation(ctx, "screen", func(ctx context.Context) error {
				result = s.Engine.Evaluate(c.ResumeText, role.Description, types.ModeHR, c.Name)
				return nil
			})

			if err := s.Store.SaveEvaluation(result); err != nil {
				span.RecordError(err)
				span.SetAttributes(attribute.String("error.type", "storage"))
				writeErrorResponse(w, "Failed to persist evaluation", err.Error(), http.StatusInternalServerError)
				return
			}

			metrics.RecordBusinessMetric(ctx, "candidate_screened", true, om,
				attribute.String("decision", string(result.Decision)))

			candidates = append(candidates, types.Candidate{
				ID:           uuid.NewString(),
				JobRoleID:    role.ID,
				Name:         c.Name,
				ResumeText:   c.ResumeText,
				EvaluationID: result.ID,
			})
			screened = append(screened, types.ScreenedCandidate{
				CandidateID:    candidates[len(candidates)-1].ID,
				Name:           c.Name,
				EvaluationID:   result.ID,
				ReadinessScore: result.ReadinessScore,
				Decision:       result.Decision,
			})
		}

		if err := s.Store.SaveCandidates(role.ID, candidates); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "storage"))
			writeErrorResponse(w, "Failed to persist candidates", err.Error(), http.StatusInternalServerError)
			return
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("candidate_count", len(candidates)),
		)

		writeJSONResponse(w, http.StatusCreated, types.ScreeningResult{
			JobRoleID:  role.ID,
			Title:      role.Title,
			Candidates: screened,
		})
	}
}

// listJobCandidatesHandler returns the screened candidates for a job role
func (s *Server) listJobCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.Store.JobRoleByID(id); err != nil {
		if isNotFound(err) {
			writeErrorResponse(w, "Job role not found", id, http.StatusNotFound)
			return
		}
		writeErrorResponse(w, "Failed to read job role", err.Error(), http.StatusInternalServerError)
		return
	}
	candidates, err := s.Store.CandidatesForJob(id)
	if err != nil {
		writeErrorResponse(w, "Failed to read candidates", err.Error(), http.StatusInternalServerError)
		return
	}
	if candidates == nil {
		candidates = []types.Candidate{}
	}
	writeJSONResponse(w, http.StatusOK, candidates)
}

// writeJobRoleError maps a job role lookup failure to the right status code
func (s *Server) writeJobRoleError(w http.ResponseWriter, span oteltrace.Span, err error, id string) {
	span.RecordError(err)
	if isNotFound(err) {
		span.SetAttributes(attribute.String("error.type", "not_found"))
		writeErrorResponse(w, "Job role not found", id, http.StatusNotFound)
		return
	}
	span.SetAttributes(attribute.String("error.type", "storage"))
	writeErrorResponse(w, "Failed to read job role", err.Error(), http.StatusInternalServerError)
}

// writeStoreError maps a store lookup failure to the right status code
func (s *Server) writeStoreError(w http.ResponseWriter, span oteltrace.Span, err error, id string) {
	span.RecordError(err)
	if isNotFound(err) {
		span.SetAttributes(attribute.String("error.type", "not_found"))
		writeErrorResponse(w, "Evaluation not found", id, http.StatusNotFound)
		return
	}
	span.SetAttributes(attribute.String("error.type", "storage"))
	writeErrorResponse(w, "Failed to read evaluation", err.Error(), http.StatusInternalServerError)
}

// isNotFound reports whether err is a record-not-found store error
func isNotFound(err error) bool {
	var appErr *careerdecideErrors.AppError
	return errors.As(err, &appErr) && appErr.Code == careerdecideErrors.ErrCodeRecordNotFound
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
