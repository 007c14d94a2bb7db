package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"careerdecide/internal/types"
)

// Engine runs the readiness evaluation pipeline. Every component is a
// pure function of its inputs; the only stateful pieces are the
// injectable identifier, clock, and random sources, which exist so
// callers and tests can pin them down.
type Engine struct {
	newID     func() string
	now       func() time.Time
	randFloat func() float64
}

// Option customizes an Engine.
type Option func(*Engine)

// WithIDSource replaces the identifier generator.
func WithIDSource(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRandSource replaces the random source used by the answer
// evaluator. Supply a seeded or fixed source for reproducible scores.
func WithRandSource(randFloat func() float64) Option {
	return func(e *Engine) { e.randFloat = randFloat }
}

// New creates an Engine with UUID identifiers, the wall clock, and the
// shared math/rand source.
func New(opts ...Option) *Engine {
	e := &Engine{
		newID:     uuid.NewString,
		now:       time.Now,
		randFloat: rand.Float64,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs the full pipeline over resume and job-description text
// and returns one immutable result record. It is total over string
// inputs: empty or pattern-free text produces empty extractions, not
// errors.
func (e *Engine) Evaluate(resumeText, jobDescription string, mode types.Mode, candidateName string) types.EvaluationResult {
	resumeSkills := ExtractResumeSkills(resumeText)
	jobSkills := ExtractJobSkills(jobDescription)

	diff := Diff(resumeSkills, jobSkills)
	score := Score(diff, jobSkills)
	decision := Decide(score)

	var questions []types.InterviewQuestion
	if decision == types.DecisionApply {
		questions = e.buildQuestions(diff.Matched, diff.Missing)
	}

	requiredCount := 0
	for _, s := range jobSkills {
		if s.Required {
			requiredCount++
		}
	}

	return types.EvaluationResult{
		ID:                    e.newID(),
		Mode:                  mode,
		CandidateName:         candidateName,
		Decision:              decision,
		ReadinessScore:        score,
		ExtractedResumeSkills: resumeSkills,
		JobRequiredSkills:     jobSkills,
		SkillDiff:             diff,
		Reasoning:             buildReasoning(decision, score, diff),
		SkillGaps:             buildSkillGaps(diff.Missing),
		InterviewQuestions:    questions,
		CVSummary:             fmt.Sprintf("Profile with %d verified skills", len(resumeSkills)),
		JobSummary:            fmt.Sprintf("Role requiring %d required and %d preferred skills", requiredCount, len(jobSkills)-requiredCount),
		CreatedAt:             e.now(),
	}
}
