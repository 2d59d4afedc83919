package extraction

import (
	"context"
	"errors"
	"testing"

	"jobtrack-backend/internal/llm"
)

type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) Complete(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestNormalizeFencedOutput(t *testing.T) {
	raw := "```json\n{\"company\":\"Acme\"}\n```"
	posting, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posting.Company != "Acme" {
		t.Fatalf("expected Acme, got %q", posting.Company)
	}
	if posting.Role != "" || posting.Salary != "" || posting.URL != "" {
		t.Fatalf("expected remaining fields empty, got %+v", posting)
	}
}

func TestNormalizeAllFields(t *testing.T) {
	raw := `{"company":"Acme","role":"SRE","salary":"$150k","url":"https://acme.io/jobs/1","notes":"remote","experienceYears":"5","field":"Infrastructure"}`
	posting, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posting.Role != "SRE" || posting.ExperienceYears != "5" || posting.Field != "Infrastructure" {
		t.Fatalf("fields not mapped: %+v", posting)
	}
}

func TestNormalizeMalformed(t *testing.T) {
	if _, err := Normalize("the posting looks great"); !errors.Is(err, llm.ErrMalformedOutput) {
		t.Fatalf("expected ErrMalformedOutput, got %v", err)
	}
}

func TestMergeNeverOverwritesExistingValues(t *testing.T) {
	current := Posting{Company: "Acme", Notes: "referral from Dana"}
	extracted := Posting{Company: "ACME Corp", Role: "Backend Engineer", Notes: "generic notes", Salary: "$120k"}

	merged := Merge(extracted, current)

	if merged.Company != "Acme" {
		t.Fatalf("company overwritten: %q", merged.Company)
	}
	if merged.Notes != "referral from Dana" {
		t.Fatalf("notes overwritten: %q", merged.Notes)
	}
	if merged.Role != "Backend Engineer" || merged.Salary != "$120k" {
		t.Fatalf("empty fields not filled: %+v", merged)
	}
}

func TestServiceParsePosting(t *testing.T) {
	svc := &Service{LLM: &fakeClient{response: `{"company":"Acme","role":"Engineer"}`}}

	posting, err := svc.ParsePosting(context.Background(), "We are hiring an Engineer at Acme...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posting.Company != "Acme" || posting.Role != "Engineer" {
		t.Fatalf("unexpected posting: %+v", posting)
	}
}

func TestServiceParsePostingEmptyText(t *testing.T) {
	svc := &Service{LLM: &fakeClient{}}
	if _, err := svc.ParsePosting(context.Background(), "   \n\t"); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}

func TestServiceParsePostingNotConfigured(t *testing.T) {
	svc := &Service{LLM: llm.PlaceholderClient{}}
	if _, err := svc.ParsePosting(context.Background(), "some posting"); !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
