package review

import (
	"errors"
	"strings"
	"testing"

	"github.com/birmacher/empathetic-code-reviewer/common"
	"github.com/birmacher/empathetic-code-reviewer/llm"
)

// stubLLM returns a canned response and records the request it received
type stubLLM struct {
	response llm.Response
	lastReq  llm.Request
}

func (s *stubLLM) Prompt(req llm.Request) llm.Response {
	s.lastReq = req
	return s.response
}

func TestProcessMissingCodeSnippet(t *testing.T) {
	comments := []string{"This is bad code"}
	req := Request{ReviewComments: &comments}

	reviewer := NewReviewer(&stubLLM{}, common.WithDefaultSettings())

	_, err := reviewer.Process(req)
	if !errors.Is(err, ErrMissingFields) {
		t.Errorf("Expected ErrMissingFields, got %v", err)
	}
}

func TestProcessMissingReviewComments(t *testing.T) {
	code := "def f(): pass"
	req := Request{CodeSnippet: &code}

	reviewer := NewReviewer(&stubLLM{}, common.WithDefaultSettings())

	_, err := reviewer.Process(req)
	if !errors.Is(err, ErrMissingFields) {
		t.Errorf("Expected ErrMissingFields, got %v", err)
	}
}

func TestProcessReturnsModelContentVerbatim(t *testing.T) {
	stub := &stubLLM{response: llm.Response{Content: "OK"}}
	reviewer := NewReviewer(stub, common.WithDefaultSettings())

	result, err := reviewer.Process(NewRequest("def f(): pass", []string{"This is bad code"}))
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}
	if result != "OK" {
		t.Errorf("Process = %q, want %q", result, "OK")
	}
}

func TestProcessBuildsPromptsFromRequest(t *testing.T) {
	stub := &stubLLM{response: llm.Response{Content: "OK"}}
	reviewer := NewReviewer(stub, common.WithDefaultSettings())

	_, err := reviewer.Process(NewRequest("def f(): pass", []string{"This is bad code"}))
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if stub.lastReq.SystemPrompt == "" {
		t.Error("System prompt should be set")
	}
	for _, want := range []string{"Python", "harsh", "This is bad code"} {
		if !strings.Contains(stub.lastReq.UserPrompt, want) {
			t.Errorf("User prompt should contain %q", want)
		}
	}
}

func TestProcessCompletionFailureDegradesToErrorString(t *testing.T) {
	stub := &stubLLM{response: llm.Response{Error: errors.New("connection refused")}}
	reviewer := NewReviewer(stub, common.WithDefaultSettings())

	result, err := reviewer.Process(NewRequest("def f(): pass", []string{"This is bad code"}))
	if err != nil {
		t.Fatalf("Completion failures must not surface as errors, got %v", err)
	}
	if !strings.HasPrefix(result, ErrorPrefix) {
		t.Errorf("Result should start with %q, got %q", ErrorPrefix, result)
	}
	if !strings.Contains(result, "connection refused") {
		t.Errorf("Result should carry the failure description, got %q", result)
	}
}

func TestProcessEmptyCommentsAccepted(t *testing.T) {
	stub := &stubLLM{response: llm.Response{Content: "OK"}}
	reviewer := NewReviewer(stub, common.WithDefaultSettings())

	result, err := reviewer.Process(NewRequest("def f(): pass", []string{}))
	if err != nil {
		t.Fatalf("Empty comment list should be accepted, got %v", err)
	}
	if result != "OK" {
		t.Errorf("Process = %q, want %q", result, "OK")
	}
}
