package engine

import (
	"strings"

	"careerdecide/internal/types"
)

// Context window around a keyword's first occurrence used to decide
// required vs preferred.
const (
	contextBefore = 100
	contextAfter  = 50
)

var preferredMarkers = []string{"preferred", "nice to have", "bonus"}

// ExtractJobSkills scans a job description against the flat keyword list
// and classifies each present skill as required or preferred from its
// local textual context. A requirement is required unless the window
// around its first occurrence carries a preferred marker. Output order
// follows the keyword list.
//
// Whole-description required/preferred section flags are deliberately
// not computed; nothing downstream consumes them.
func ExtractJobSkills(jobDescription string) []types.JobSkill {
	lower := strings.ToLower(jobDescription)

	var skills []types.JobSkill
	seen := make(map[string]bool)

	for _, keyword := range jobKeywords {
		idx := strings.Index(lower, strings.ToLower(keyword))
		if idx < 0 || seen[keyword] {
			continue
		}
		seen[keyword] = true
		skills = append(skills, types.JobSkill{
			Skill:    keyword,
			Required: !isPreferred(lower, idx),
		})
	}

	return skills
}

// isPreferred reports whether the context window around idx carries a
// preferred marker.
func isPreferred(lowerText string, idx int) bool {
	start := idx - contextBefore
	if start < 0 {
		start = 0
	}
	end := idx + contextAfter
	if end > len(lowerText) {
		end = len(lowerText)
	}
	window := lowerText[start:end]

	for _, marker := range preferredMarkers {
		if strings.Contains(window, marker) {
			return true
		}
	}
	return false
}
