package llm

import (
	"fmt"

	"github.com/birmacher/empathetic-code-reviewer/logger"
)

// Supported providers
const (
	ProviderOpenAI    = "openai"
	ProviderGroq      = "groq"
	ProviderAnthropic = "anthropic"
)

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption  OptionType = "model"
	MaxTokensOption  OptionType = "max_tokens"
	APITimeoutOption OptionType = "api_timeout"
	BaseURLOption    OptionType = "base_url"
)

// Option represents a generic configuration option for any LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithMaxTokens creates an option to set the max tokens
func WithMaxTokens(maxTokens int) Option {
	return Option{
		Type:  MaxTokensOption,
		Value: maxTokens,
	}
}

// WithAPITimeout creates an option to set the API timeout in seconds
func WithAPITimeout(timeout int) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// WithBaseURL creates an option to point an OpenAI-compatible client at a
// different endpoint
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// Request represents the data needed to prompt the LLM
type Request struct {
	SystemPrompt string
	UserPrompt   string
}

// Response represents the response from the LLM
type Response struct {
	Content string // Markdown formatted content
	Error   error
}

// LLM defines the interface for language model prompting
type LLM interface {
	// Prompt sends a request to the language model and returns its response
	Prompt(req Request) Response
}

// NewLLM creates a client for the named provider. The API key is resolved
// by the caller and injected; an empty key is accepted here and surfaces as
// an authentication failure when a prompt is sent.
func NewLLM(providerName, modelName, apiKey string, opts ...Option) (LLM, error) {
	options := []Option{
		WithModel(modelName),
		WithMaxTokens(4000),
		WithAPITimeout(60),
	}
	options = append(options, opts...)

	var llmClient LLM
	var err error
	switch providerName {
	case ProviderOpenAI:
		llmClient, err = NewOpenAI(apiKey, options...)
	case ProviderGroq:
		llmClient, err = NewGroq(apiKey, options...)
	case ProviderAnthropic:
		llmClient, err = NewAnthropic(apiKey, options...)
	default:
		err = fmt.Errorf("unsupported provider: %s", providerName)
	}

	if err == nil {
		logger.Infof("Using LLM provider %s with model %s", providerName, modelName)
	}

	return llmClient, err
}
