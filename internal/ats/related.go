package ats

import (
	"sort"
	"strings"
)

// minOverlapTokenLen is the minimum token length considered for the
// token-overlap rule; shorter tokens ("js", "ui") produce too many false
// positives as substrings.
const minOverlapTokenLen = 4

// FindRelatedSkills returns the union of all members of every cluster that
// matches the given skill term. A cluster matches when any member equals the
// skill case-insensitively, contains it as a substring (or vice versa), or
// shares a token with it where one token of length >= 4 is a substring of
// the other.
//
// This is a cheap fuzzy proxy for semantic similarity, not real NLP; related
// terms are plausible, not guaranteed relevant. Unknown skills return an
// empty set. The result is deduplicated and sorted.
func FindRelatedSkills(skill string) []string {
	related := map[string]bool{}
	needle := strings.ToLower(strings.TrimSpace(skill))
	if needle == "" {
		return []string{}
	}

	for _, name := range clusterNames {
		members := skillClusters[name]
		if clusterMatchesSkill(needle, members) {
			for _, m := range members {
				related[m] = true
			}
		}
	}

	out := make([]string, 0, len(related))
	for s := range related {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// clusterMatchesSkill reports whether any cluster member matches the
// lowercased skill by equality, substring containment, or token overlap.
func clusterMatchesSkill(skill string, members []string) bool {
	skillTokens := tokenizeSkill(skill)
	for _, member := range members {
		if member == skill {
			return true
		}
		if strings.Contains(member, skill) || strings.Contains(skill, member) {
			return true
		}
		if tokensOverlap(skillTokens, tokenizeSkill(member)) {
			return true
		}
	}
	return false
}

// tokensOverlap reports whether any token pair across the two sets has one
// token (length >= minOverlapTokenLen) contained in the other.
func tokensOverlap(a, b []string) bool {
	for _, ta := range a {
		for _, tb := range b {
			if len(ta) >= minOverlapTokenLen && strings.Contains(tb, ta) {
				return true
			}
			if len(tb) >= minOverlapTokenLen && strings.Contains(ta, tb) {
				return true
			}
		}
	}
	return false
}
