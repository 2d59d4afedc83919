package llm

import (
	_ "embed"
	"fmt"
)

var (
	//go:embed prompts/parse_posting.txt
	parsePostingTemplate string
	//go:embed prompts/match_resume.txt
	matchResumeTemplate string
)

// ParsePostingPrompt builds the posting-extraction prompt for the given text.
func ParsePostingPrompt(postingText string) string {
	return fmt.Sprintf(parsePostingTemplate, postingText)
}

// MatchResumePrompt builds the resume-scoring prompt for the given inputs.
func MatchResumePrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(matchResumeTemplate, resumeText, jobDescription)
}
