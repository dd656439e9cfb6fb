// Package ats implements the ATS scoring engine: a pure, deterministic
// pipeline that computes a 0-100 match score between a resume and an
// optional job description, with keyword extraction, skill clustering and
// role inference as its building blocks. The engine performs no I/O and
// holds no mutable state; concurrent calls are safe without locking.
package ats

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// ToSearchableText flattens a resume into a single lowercase text blob used
// for all containment checks. Treating the resume as unstructured text is a
// deliberate simplification; keeping it behind this one function lets the
// heuristic be swapped without touching callers.
func ToSearchableText(resume *types.ResumeRecord) string {
	var sb strings.Builder

	writePart := func(s string) {
		if s == "" {
			return
		}
		sb.WriteString(s)
		sb.WriteByte(' ')
	}

	writePart(resume.Name)
	writePart(resume.Summary)
	writePart(resume.Location)

	for _, exp := range resume.Experience {
		writePart(exp.Title)
		writePart(exp.Company)
		writePart(exp.Location)
		for _, line := range exp.Description {
			writePart(line)
		}
	}
	for _, edu := range resume.Education {
		writePart(edu.Degree)
		writePart(edu.Field)
		writePart(edu.Institution)
	}
	for _, skill := range resume.Skills {
		writePart(skill)
	}
	for _, proj := range resume.Projects {
		writePart(proj.Name)
		writePart(proj.Description)
		for _, tech := range proj.Technologies {
			writePart(tech)
		}
	}
	for _, a := range resume.Achievements {
		writePart(a)
	}

	return strings.ToLower(sb.String())
}

// wordBoundaryPattern builds a case-insensitive whole-word/phrase pattern
// for a term. A plain \b does not work for terms ending in symbols ("c++",
// "c#"), so boundaries are expressed as letter/digit transitions.
func wordBoundaryPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|[^\pL\pN])` + regexp.QuoteMeta(term) + `([^\pL\pN]|$)`)
}

// containsWholeWord reports whether term occurs in text as a whole
// word/phrase, case-insensitively. Multi-word terms must match as a
// contiguous phrase with boundaries on both ends.
func containsWholeWord(text, term string) bool {
	if text == "" || term == "" {
		return false
	}
	return wordBoundaryPattern(term).MatchString(text)
}

// tokenizeSkill splits a skill term on whitespace, hyphens and underscores.
func tokenizeSkill(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '-' || r == '_'
	})
}
