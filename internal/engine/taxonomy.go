package engine

import "regexp"

// skillEntry maps a canonical skill name to the surface-form patterns
// that count as literal evidence for it. Adding a skill means appending
// a row here; no other component changes.
type skillEntry struct {
	name     string
	patterns []*regexp.Regexp
}

func mustPatterns(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile("(?i)"+expr))
	}
	return patterns
}

// resumeTaxonomy is the ordered table driving resume skill extraction.
// Output order of extracted skills follows this table, not the input text.
var resumeTaxonomy = []skillEntry{
	{"Python", mustPatterns(`python`, `django`, `flask`, `fastapi`)},
	{"JavaScript", mustPatterns(`javascript`, `\bjs\b`)},
	{"TypeScript", mustPatterns(`typescript`, `\bts\b`)},
	{"React", mustPatterns(`react`, `react\.js`, `reactjs`)},
	{"Node.js", mustPatterns(`node\.js`, `nodejs`, `node`)},
	{"Java", mustPatterns(`\bjava\b`)},
	{"C++", mustPatterns(`c\+\+`, `cpp`)},
	{"SQL", mustPatterns(`\bsql\b`, `mysql`, `postgresql`, `postgres`)},
	{"MongoDB", mustPatterns(`mongodb`, `mongo`)},
	{"AWS", mustPatterns(`\baws\b`, `amazon web services`)},
	{"Docker", mustPatterns(`docker`)},
	{"Kubernetes", mustPatterns(`kubernetes`, `k8s`)},
	{"Git", mustPatterns(`\bgit\b`, `github`, `gitlab`)},
	{"REST API", mustPatterns(`rest api`, `restful`, `rest`)},
	{"GraphQL", mustPatterns(`graphql`)},
	{"Machine Learning", mustPatterns(`machine learning`, `\bml\b`)},
	{"Data Analysis", mustPatterns(`data analysis`, `data analyst`)},
	{"Agile", mustPatterns(`agile`, `scrum`)},
	{"CI/CD", mustPatterns(`ci/cd`, `continuous integration`)},
	{"HTML/CSS", mustPatterns(`html`, `css`)},
	{"Vue.js", mustPatterns(`vue`, `vuejs`)},
	{"Angular", mustPatterns(`angular`)},
	{"FastAPI", mustPatterns(`fastapi`)},
	{"Django", mustPatterns(`django`)},
	{"Flask", mustPatterns(`flask`)},
	{"TensorFlow", mustPatterns(`tensorflow`)},
	{"PyTorch", mustPatterns(`pytorch`)},
}

// jobKeywords is the flat keyword list driving job-description scanning.
// It is a superset of the resume taxonomy names, so every matched skill
// is representable on both sides of the diff.
var jobKeywords = []string{
	"Python", "JavaScript", "TypeScript", "React", "Node.js", "Java", "C++",
	"SQL", "MongoDB", "AWS", "Docker", "Kubernetes", "Git", "REST API",
	"GraphQL", "Machine Learning", "Data Analysis", "Agile", "CI/CD",
	"HTML/CSS", "Vue.js", "Angular", "FastAPI", "Django", "Flask",
	"TensorFlow", "PyTorch", "Go", "Rust", "Ruby", "PHP", "Swift",
}
