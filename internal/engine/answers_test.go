package engine

import (
	"reflect"
	"strings"
	"testing"
)

func zeroRandEngine() *Engine {
	return New(WithRandSource(func() float64 { return 0 }))
}

func TestEvaluateAnswerShortUnstructured(t *testing.T) {
	feedback := zeroRandEngine().EvaluateAnswer("Explain your approach.", "I know stuff.")

	// wordCount 3: clarity 40+1.5=41.5, depth 35+0.9=35.9, relevance 50
	if feedback.Clarity != 42 {
		t.Errorf("Expected clarity 42, got %d", feedback.Clarity)
	}
	if feedback.TechnicalDepth != 36 {
		t.Errorf("Expected technical depth 36, got %d", feedback.TechnicalDepth)
	}
	if feedback.Relevance != 50 {
		t.Errorf("Expected relevance 50, got %d", feedback.Relevance)
	}
	if feedback.OverallScore != 42 {
		t.Errorf("Expected overall 42, got %d", feedback.OverallScore)
	}

	expected := []string{
		"Provide more detail and specific examples",
		"Structure your answer with clear beginning, middle, and end",
		"Include a concrete example from your experience",
		"Practice STAR method (Situation, Task, Action, Result)",
	}
	if !reflect.DeepEqual(feedback.Suggestions, expected) {
		t.Errorf("Expected all four suggestions in order, got %v", feedback.Suggestions)
	}
}

func TestEvaluateAnswerStructuredWithExample(t *testing.T) {
	answer := "first I profiled the service because latency was high. " +
		"For example, in one project I traced the slow path, measured each stage, " +
		"cached the hot lookups, and verified the fix with load tests. " +
		strings.Repeat("Then I documented the findings for the team. ", 3)

	feedback := zeroRandEngine().EvaluateAnswer("Tell me about a problem you solved.", answer)

	for _, s := range feedback.Suggestions {
		if s == "Structure your answer with clear beginning, middle, and end" {
			t.Error("Structured answer must not get the structure suggestion")
		}
		if s == "Include a concrete example from your experience" {
			t.Error("Answer with an example must not get the example suggestion")
		}
	}

	if feedback.Clarity < 60 {
		t.Errorf("Expected structure and length to lift clarity, got %d", feedback.Clarity)
	}
}

func TestEvaluateAnswerBounds(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{"empty answer", ""},
		{"single word", "yes"},
		{"very long answer", strings.Repeat("word ", 500)},
	}

	maxRandEngine := New(WithRandSource(func() float64 { return 0.999999 }))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, e := range []*Engine{zeroRandEngine(), maxRandEngine} {
				feedback := e.EvaluateAnswer("q", tt.answer)

				checkRange := func(name string, v, low int) {
					if v < low || v > 100 {
						t.Errorf("%s out of range [%d,100]: %d", name, low, v)
					}
				}
				checkRange("clarity", feedback.Clarity, 30)
				checkRange("technicalDepth", feedback.TechnicalDepth, 25)
				checkRange("relevance", feedback.Relevance, 40)
				checkRange("overall", feedback.OverallScore, 0)
			}
		})
	}
}

func TestEvaluateAnswerDeterministicUnderFixedSource(t *testing.T) {
	answer := "I solved it because the project needed it, for example by testing first."

	first := zeroRandEngine().EvaluateAnswer("q", answer)
	second := zeroRandEngine().EvaluateAnswer("q", answer)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Fixed random source must give identical feedback:\n%+v\n%+v", first, second)
	}
}

func BenchmarkEvaluateAnswer(b *testing.B) {
	e := New()
	answer := strings.Repeat("I solved the problem because the project required careful testing. ", 5)
	for b.Loop() {
		e.EvaluateAnswer("q", answer)
	}
}
