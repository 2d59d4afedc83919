package extraction

import (
	"context"
	"errors"
	"strings"

	"jobtrack-backend/internal/llm"
)

// ErrEmptyText is returned when there is no posting text to extract from.
var ErrEmptyText = errors.New("no text provided")

// Service turns raw posting text into a normalized Posting via the
// text-completion collaborator. The collaborator call blocks; the request
// context carries any timeout the caller imposes.
type Service struct {
	LLM llm.Client
}

// ParsePosting extracts structured fields from pasted job-posting text.
func (s *Service) ParsePosting(ctx context.Context, text string) (Posting, error) {
	if strings.TrimSpace(text) == "" {
		return Posting{}, ErrEmptyText
	}

	raw, err := s.LLM.Complete(ctx, llm.ParsePostingPrompt(text))
	if err != nil {
		return Posting{}, err
	}
	return Normalize(raw)
}
