package server

import (
	"time"

	"careerdecide/internal/config"
	"careerdecide/internal/engine"
	careerdecideErrors "careerdecide/internal/errors"
	"careerdecide/internal/store"

	"github.com/go-playground/validator/v10"
)

// EvaluateRequest represents the request body for the evaluate endpoint.
// An empty job description is accepted; the engine handles it as the
// neutral-score case.
type EvaluateRequest struct {
	ResumeText     string `json:"resumeText" validate:"required"`
	JobDescription string `json:"jobDescription"`
	Mode           string `json:"mode" validate:"required,oneof=student hr"`
	CandidateName  string `json:"candidateName"`
}

// AnswerRequest represents the request body for the answer endpoint
type AnswerRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"`
}

// AttemptRequest represents the request body for recording an interview attempt
type AttemptRequest struct {
	QuestionID string `json:"questionId" validate:"required"`
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer"`
}

// FeedbackRequest represents the request body for trust feedback
type FeedbackRequest struct {
	Trusted *bool `json:"trusted" validate:"required"`
}

// JobRoleRequest represents the request body for creating a job role
type JobRoleRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ScreenCandidate is one resume submitted in a screening batch
type ScreenCandidate struct {
	Name       string `json:"name" validate:"required"`
	ResumeText string `json:"resumeText" validate:"required"`
}

// ScreenRequest represents the request body for batch candidate screening
type ScreenRequest struct {
	Candidates []ScreenCandidate `json:"candidates" validate:"required,min=1,dive"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate hot reload
	CertReloader *CertReloader
	CertWatcher  *CertWatcher

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Domain collaborators
	Engine *engine.Engine
	Store  store.Store

	// Request validation
	validate *validator.Validate

	// Logger
	Logger *careerdecideErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, eng *engine.Engine, st store.Store, logger *careerdecideErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Engine:         eng,
		Store:          st,
		validate:       validator.New(),
		Logger:         logger,
	}
}
