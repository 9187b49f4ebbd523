package review

import (
	"github.com/birmacher/empathetic-code-reviewer/common"
	"github.com/birmacher/empathetic-code-reviewer/llm"
	"github.com/birmacher/empathetic-code-reviewer/logger"
	"github.com/birmacher/empathetic-code-reviewer/prompt"
)

// ErrorPrefix marks an in-band failure in the returned review text
const ErrorPrefix = "Error generating empathetic review: "

// Reviewer turns raw review comments into an empathetic, educational review
// by prompting a language model.
type Reviewer struct {
	client   llm.LLM
	settings common.Settings
}

// NewReviewer creates a Reviewer with an injected LLM client and settings
func NewReviewer(client llm.LLM, settings common.Settings) *Reviewer {
	return &Reviewer{
		client:   client,
		settings: settings,
	}
}

// Process validates the request, builds the prompts and asks the model for
// the rewritten review. Validation failures are returned as an error; every
// failure past validation degrades to an in-band result string prefixed with
// ErrorPrefix, so a completion failure never surfaces as an error to the
// caller.
func (r *Reviewer) Process(req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	comments := *req.ReviewComments
	logger.Debugf("Processing review request with %d comments", len(comments))

	promptReq := llm.Request{
		SystemPrompt: prompt.GetSystemPrompt(r.settings),
		UserPrompt:   prompt.GetReviewPrompt(*req.CodeSnippet, comments),
	}

	resp := r.client.Prompt(promptReq)
	if resp.Error != nil {
		logger.Errorf("Completion failed: %v", resp.Error)
		return ErrorPrefix + resp.Error.Error(), nil
	}

	return resp.Content, nil
}
