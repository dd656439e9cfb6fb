package types

// RoleProfile is the output of role inference: the best-guess role for a
// resume, a heuristic confidence in [0,1], and the skill terms that matched.
// Recomputed per call, never persisted.
type RoleProfile struct {
	Role       string   `json:"role"`
	Confidence float64  `json:"confidence"`
	Skills     []string `json:"skills"`
}

// ScoreResult is the outcome of a single scoring call. MatchedKeywords and
// MissingKeywords partition the keyword universe exactly: no overlap, and
// their union covers the universe.
type ScoreResult struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	Feedback        string   `json:"feedback"`
}
