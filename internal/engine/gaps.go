package engine

import (
	"fmt"

	"careerdecide/internal/types"
)

const maxSkillGaps = 5

// guidance holds the learning-path fields attached to a skill gap.
type guidance struct {
	whyMissing     string
	whatToLearn    string
	howToPractice  string
	resumeAddition string
}

const defaultWhyMissing = "Not found in resume skills, projects, or experience"

// learningPaths carries curated guidance for common skills. Skills
// absent from the table fall back to a templated default record, so the
// lookup is a total function.
var learningPaths = map[string]guidance{
	"Python": {
		whyMissing:     defaultWhyMissing,
		whatToLearn:    "Python fundamentals, data structures, and common libraries (pandas, numpy)",
		howToPractice:  "Build automation scripts, data analysis projects, or REST APIs",
		resumeAddition: "Add Python projects with clear descriptions of what you built",
	},
	"JavaScript": {
		whyMissing:     defaultWhyMissing,
		whatToLearn:    "ES6+ syntax, async programming, DOM manipulation",
		howToPractice:  "Build interactive web applications, use frameworks like React or Vue",
		resumeAddition: "Include JavaScript projects with live demos or GitHub links",
	},
	"React": {
		whyMissing:     defaultWhyMissing,
		whatToLearn:    "Component architecture, hooks, state management, React Router",
		howToPractice:  "Build a full-stack app with React frontend and API integration",
		resumeAddition: "Add React projects with deployed URLs and feature descriptions",
	},
	"AWS": {
		whyMissing:     "No AWS or cloud experience mentioned in resume",
		whatToLearn:    "EC2, S3, Lambda, RDS, IAM basics",
		howToPractice:  "Get AWS Cloud Practitioner certification, deploy a project on AWS",
		resumeAddition: "List AWS certifications and projects deployed on AWS infrastructure",
	},
	"Docker": {
		whyMissing:     "No containerization experience mentioned in resume",
		whatToLearn:    "Dockerfile creation, container orchestration basics, Docker Compose",
		howToPractice:  "Containerize an existing application, document the process",
		resumeAddition: "Mention dockerized applications and container deployment experience",
	},
}

// buildSkillGaps converts the first five missing skills into gap
// records with learning-path guidance. Importance is high for the first
// two required gaps, medium for later required gaps, low for preferred.
func buildSkillGaps(missing []types.JobSkill) []types.SkillGap {
	if len(missing) > maxSkillGaps {
		missing = missing[:maxSkillGaps]
	}

	gaps := make([]types.SkillGap, 0, len(missing))
	for i, jobSkill := range missing {
		importance := types.ImportanceLow
		if jobSkill.Required {
			if i < 2 {
				importance = types.ImportanceHigh
			} else {
				importance = types.ImportanceMedium
			}
		}

		path := guidanceFor(jobSkill.Skill)
		gaps = append(gaps, types.SkillGap{
			Skill:          jobSkill.Skill,
			Importance:     importance,
			WhyMissing:     path.whyMissing,
			WhatToLearn:    path.whatToLearn,
			HowToPractice:  path.howToPractice,
			ResumeAddition: path.resumeAddition,
		})
	}
	return gaps
}

// guidanceFor returns the curated guidance for a skill, or the default
// record with the skill name substituted in.
func guidanceFor(skill string) guidance {
	if path, ok := learningPaths[skill]; ok {
		return path
	}
	return guidance{
		whyMissing:     defaultWhyMissing,
		whatToLearn:    fmt.Sprintf("Core %s concepts, best practices, and common use cases", skill),
		howToPractice:  fmt.Sprintf("Complete online courses, build personal projects using %s", skill),
		resumeAddition: fmt.Sprintf("Add %s projects with clear descriptions and measurable outcomes", skill),
	}
}
