package match

import (
	"math"

	"jobtrack-backend/internal/llm"
)

// Analysis is the bounded result of scoring a resume against a job
// description. It lives only for one request; nothing here is persisted.
type Analysis struct {
	Score       int      `json:"score"`
	Strengths   []string `json:"strengths"`
	Gaps        []string `json:"gaps"`
	Suggestions []string `json:"suggestions"`
	Verdict     string   `json:"verdict"`
}

// Normalize decodes the raw model response into an Analysis. The upstream
// model's score is not contractually bounded, so it is clamped to [0,100];
// a non-numeric score fails the decode. The list fields are never nil.
func Normalize(raw string) (Analysis, error) {
	var decoded struct {
		Score       float64  `json:"score"`
		Strengths   []string `json:"strengths"`
		Gaps        []string `json:"gaps"`
		Suggestions []string `json:"suggestions"`
		Verdict     string   `json:"verdict"`
	}
	if err := llm.DecodeObject(raw, &decoded); err != nil {
		return Analysis{}, err
	}

	return Analysis{
		Score:       clampScore(decoded.Score),
		Strengths:   ensureStringSlice(decoded.Strengths),
		Gaps:        ensureStringSlice(decoded.Gaps),
		Suggestions: ensureStringSlice(decoded.Suggestions),
		Verdict:     decoded.Verdict,
	}, nil
}

func clampScore(value float64) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return int(math.Round(value))
}

func ensureStringSlice(value []string) []string {
	if value == nil {
		return []string{}
	}
	return value
}
