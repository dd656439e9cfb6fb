package ats

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// RoleGeneralProfessional is the fallback role when no cluster term is found
// in the resume.
const RoleGeneralProfessional = "general_professional"

// roleConfidenceDivisor normalizes the winning cluster-hit count into a
// [0,1] confidence. The constant is calibrated, not derived; it reproduces
// the scoring behavior this engine is specified against.
const roleConfidenceDivisor = 10.0

// roleClusters maps each known role to the skill clusters that signal it.
// Every referenced cluster name must exist in skillClusters (enforced by a
// package test).
var roleClusters = map[string][]string{
	"software_engineer":    {"programming", "web_backend", "databases", "devops"},
	"full_stack_developer": {"programming", "web_frontend", "web_backend", "databases"},
	"data_scientist":       {"data_science", "programming", "databases", "analytics"},
	"data_engineer":        {"databases", "data_science", "cloud_aws", "programming", "devops"},
	"devops_engineer":      {"devops", "cloud_aws", "cloud_azure", "cloud_gcp", "programming"},
	"cloud_architect":      {"cloud_aws", "cloud_azure", "cloud_gcp", "devops"},
	"mobile_developer":     {"mobile", "programming", "web_backend"},
	"product_manager":      {"project_management", "analytics", "leadership", "communication"},
	"business_analyst":     {"analytics", "project_management", "communication", "problem_solving"},
	"marketing_specialist": {"marketing", "analytics", "communication", "collaboration"},
}

// fallbackClusters is the generic keyword source for roles without a cluster
// mapping (currently only general_professional).
var fallbackClusters = []string{"leadership", "communication", "problem_solving", "collaboration"}

// InferRole scores the resume against every skill cluster and maps cluster
// hits to candidate roles. The role with the highest accumulated hit count
// wins; ties break alphabetically by role name so inference is
// deterministic. Confidence is min(topScore/10, 1). A resume with no
// cluster hits infers general_professional with confidence 0.
//
// The returned profile also carries every cluster term found in the resume,
// which the scorer reuses as the keyword universe when no job description
// is supplied.
func InferRole(resume *types.ResumeRecord) types.RoleProfile {
	haystack := ToSearchableText(resume)

	clusterHits := map[string]int{}
	matchedSkills := map[string]bool{}
	for _, name := range clusterNames {
		hits := 0
		for _, term := range skillClusters[name] {
			if strings.Contains(haystack, term) {
				hits++
				matchedSkills[term] = true
			}
		}
		clusterHits[name] = hits
	}

	bestRole := RoleGeneralProfessional
	bestScore := 0
	for _, role := range roleNames {
		score := 0
		for _, cluster := range roleClusters[role] {
			score += clusterHits[cluster]
		}
		// Strict > with alphabetical iteration keeps the tie-break stable.
		if score > bestScore {
			bestRole, bestScore = role, score
		}
	}

	skills := make([]string, 0, len(matchedSkills))
	for s := range matchedSkills {
		skills = append(skills, s)
	}
	sort.Strings(skills)

	confidence := float64(bestScore) / roleConfidenceDivisor
	if confidence > 1 {
		confidence = 1
	}

	return types.RoleProfile{
		Role:       bestRole,
		Confidence: confidence,
		Skills:     skills,
	}
}

// roleKeywordUniverse flattens the cluster terms mapped to a role into a
// deduplicated, sorted keyword set. Roles without a mapping fall back to the
// soft-skill clusters.
func roleKeywordUniverse(role string) []string {
	clusters, ok := roleClusters[role]
	if !ok || len(clusters) == 0 {
		clusters = fallbackClusters
	}

	seen := map[string]bool{}
	terms := []string{}
	for _, cluster := range clusters {
		for _, term := range skillClusters[cluster] {
			if !seen[term] {
				seen[term] = true
				terms = append(terms, term)
			}
		}
	}
	sort.Strings(terms)
	return terms
}

// roleNames holds the known roles sorted alphabetically for deterministic
// iteration.
var roleNames = func() []string {
	names := make([]string, 0, len(roleClusters))
	for name := range roleClusters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()
