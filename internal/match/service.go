package match

import (
	"context"
	"errors"
	"strings"

	"jobtrack-backend/internal/llm"
)

// ErrMissingInput is returned when the resume or job description is empty.
var ErrMissingInput = errors.New("resume and job description required")

// Service scores a resume against a job description through the
// text-completion collaborator. The semantic comparison is entirely the
// model's; this layer only guarantees the shape of what comes back.
type Service struct {
	LLM llm.Client
}

// Score returns a bounded match analysis for the given resume and job description.
func (s *Service) Score(ctx context.Context, resume, jobDescription string) (Analysis, error) {
	if strings.TrimSpace(resume) == "" || strings.TrimSpace(jobDescription) == "" {
		return Analysis{}, ErrMissingInput
	}

	raw, err := s.LLM.Complete(ctx, llm.MatchResumePrompt(resume, jobDescription))
	if err != nil {
		return Analysis{}, err
	}
	return Normalize(raw)
}
