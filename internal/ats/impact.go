package ats

import "regexp"

// quantifiedImpactRe detects measurable outcomes in free text: percentages,
// dollar amounts, multipliers, or large counts next to a result noun.
var quantifiedImpactRe = regexp.MustCompile(`(?i)(\d+(\.\d+)?\s*%|\$\s*\d[\d,.]*|\b\d+(\.\d+)?x\b|\b\d[\d,]*\+?\s*(users|customers|clients|requests|downloads|transactions|records)\b)`)

// leadershipLanguageRe detects leadership verbs in free text.
var leadershipLanguageRe = regexp.MustCompile(`(?i)\b(led|leading|managed|managing|mentored|coached|supervised|directed|coordinated|spearheaded|drove|owned)\b`)

// HasQuantifiedImpact reports whether text contains a quantified-results
// pattern. Pattern matching over prose is inherently fuzzy; the predicate is
// kept separate from the scorer so its heuristics can be tuned and tested
// on their own.
func HasQuantifiedImpact(text string) bool {
	return quantifiedImpactRe.MatchString(text)
}

// HasLeadershipLanguage reports whether text contains leadership language.
func HasLeadershipLanguage(text string) bool {
	return leadershipLanguageRe.MatchString(text)
}
