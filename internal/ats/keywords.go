package ats

import "regexp"

// canonicalKeywords is the fixed vocabulary of recognized professional
// keywords and phrases scanned for in job description text.
var canonicalKeywords = []string{
	"JavaScript",
	"TypeScript",
	"Python",
	"Java",
	"React",
	"Node.js",
	"SQL",
	"AWS",
	"Azure",
	"Docker",
	"Kubernetes",
	"Machine Learning",
	"Data Analysis",
	"Project Management",
	"Agile",
	"Scrum",
	"Leadership",
	"Communication",
	"Git",
	"DevOps",
}

// keywordPatterns holds a precompiled whole-word pattern per canonical
// keyword, in canonical order. Word-boundary matching avoids false positives
// like "java" inside "javascript".
var keywordPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(canonicalKeywords))
	for i, kw := range canonicalKeywords {
		patterns[i] = wordBoundaryPattern(kw)
	}
	return patterns
}()

// ExtractKeywords returns the subset of the canonical keyword vocabulary
// present in text, in canonical order. Matching is case-insensitive and
// whole-word; multi-word keywords must appear as a contiguous phrase.
// Empty input yields an empty result.
func ExtractKeywords(text string) []string {
	found := []string{}
	if text == "" {
		return found
	}
	for i, kw := range canonicalKeywords {
		if keywordPatterns[i].MatchString(text) {
			found = append(found, kw)
		}
	}
	return found
}
