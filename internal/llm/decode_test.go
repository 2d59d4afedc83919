package llm

import (
	"errors"
	"testing"
)

func TestDecodeObjectPlainJSON(t *testing.T) {
	var out struct {
		Company string `json:"company"`
	}
	if err := DecodeObject(`{"company":"Acme"}`, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Company != "Acme" {
		t.Fatalf("expected Acme, got %q", out.Company)
	}
}

func TestDecodeObjectStripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"company\":\"Acme\"}\n```"
	var out struct {
		Company string `json:"company"`
	}
	if err := DecodeObject(raw, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Company != "Acme" {
		t.Fatalf("expected Acme, got %q", out.Company)
	}
}

func TestDecodeObjectRecoversObjectFromProse(t *testing.T) {
	raw := "Here is the result you asked for:\n{\"score\": 80}\nLet me know if you need anything else."
	var out struct {
		Score float64 `json:"score"`
	}
	if err := DecodeObject(raw, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Score != 80 {
		t.Fatalf("expected 80, got %v", out.Score)
	}
}

func TestDecodeObjectMalformed(t *testing.T) {
	cases := []string{
		"",
		"no object here",
		"{\"company\": }",
		"```json\nnot json\n```",
	}
	for _, raw := range cases {
		var out map[string]any
		err := DecodeObject(raw, &out)
		if !errors.Is(err, ErrMalformedOutput) {
			t.Fatalf("raw %q: expected ErrMalformedOutput, got %v", raw, err)
		}
	}
}
