package review

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRequestExampleInput(t *testing.T) {
	req, err := LoadRequest(filepath.Join("testdata", "example_input.json"))
	if err != nil {
		t.Fatalf("Failed to load example input: %v", err)
	}

	if err := req.Validate(); err != nil {
		t.Fatalf("Example input should validate: %v", err)
	}

	if *req.CodeSnippet != "def f(): pass" {
		t.Errorf("Unexpected code snippet: %q", *req.CodeSnippet)
	}
	comments := *req.ReviewComments
	if len(comments) != 1 || comments[0] != "This is bad code" {
		t.Errorf("Unexpected comments: %v", comments)
	}
}

func TestLoadRequestMissingFile(t *testing.T) {
	_, err := LoadRequest(filepath.Join(t.TempDir(), "nope.json"))
	if !os.IsNotExist(err) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestLoadRequestInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := LoadRequest(path)
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Errorf("Expected a JSON syntax error, got %v", err)
	}
}

func TestLoadRequestIgnoresExtraKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.json")
	content := `{"code_snippet": "x = 1", "review_comments": [], "reviewer": "alice"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	req, err := LoadRequest(path)
	if err != nil {
		t.Fatalf("Extra keys should be ignored: %v", err)
	}
	if err := req.Validate(); err != nil {
		t.Errorf("Request with extra keys should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	code := "def f(): pass"
	comments := []string{"This is bad code"}

	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"both present", Request{CodeSnippet: &code, ReviewComments: &comments}, false},
		{"missing code", Request{ReviewComments: &comments}, true},
		{"missing comments", Request{CodeSnippet: &code}, true},
		{"both missing", Request{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr && !errors.Is(err, ErrMissingFields) {
				t.Errorf("Expected ErrMissingFields, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
