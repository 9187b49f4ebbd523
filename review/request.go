package review

import (
	"encoding/json"
	"errors"
	"os"
)

// ErrMissingFields is returned when the input JSON lacks a required key
var ErrMissingFields = errors.New("missing code_snippet or review_comments")

// Request is the parsed input: the code under review and the raw reviewer
// comments to transform. Pointer fields distinguish an absent key from an
// empty value; extra keys in the JSON are ignored.
type Request struct {
	CodeSnippet    *string   `json:"code_snippet"`
	ReviewComments *[]string `json:"review_comments"`
}

// NewRequest builds a Request from plain values, mainly for tests and
// programmatic callers.
func NewRequest(code string, comments []string) Request {
	return Request{
		CodeSnippet:    &code,
		ReviewComments: &comments,
	}
}

// Validate checks that both required keys were present in the input.
// An empty comment list is accepted; the prompt then simply enumerates
// zero comments.
func (r Request) Validate() error {
	if r.CodeSnippet == nil || r.ReviewComments == nil {
		return ErrMissingFields
	}
	return nil
}

// LoadRequest reads and parses a JSON input file. File and JSON errors are
// returned unwrapped so the caller can map them to user-facing messages
// with os.IsNotExist and errors.As.
func LoadRequest(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, err
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, err
	}
	return req, nil
}
