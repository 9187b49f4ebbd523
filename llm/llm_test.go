package llm

import (
	"strings"
	"testing"
)

func TestNewLLMUnsupportedProvider(t *testing.T) {
	_, err := NewLLM("carrier-pigeon", "any-model", "key")
	if err == nil {
		t.Fatal("Expected an error for an unsupported provider")
	}
	if !strings.Contains(err.Error(), "unsupported provider") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestNewLLMOpenAIAppliesOptions(t *testing.T) {
	client, err := NewLLM(ProviderOpenAI, "gpt-4o", "key",
		WithMaxTokens(1234),
		WithAPITimeout(7),
	)
	if err != nil {
		t.Fatalf("Failed to create OpenAI client: %v", err)
	}

	model, ok := client.(*OpenAIModel)
	if !ok {
		t.Fatalf("Expected *OpenAIModel, got %T", client)
	}
	if model.modelName != "gpt-4o" {
		t.Errorf("Expected model gpt-4o, got %s", model.modelName)
	}
	if model.maxTokens != 1234 {
		t.Errorf("Expected max tokens 1234, got %d", model.maxTokens)
	}
	if model.apiTimeout != 7 {
		t.Errorf("Expected timeout 7, got %d", model.apiTimeout)
	}
}

func TestNewLLMGroqIsOpenAICompatible(t *testing.T) {
	client, err := NewLLM(ProviderGroq, "openai/gpt-oss-20b", "key")
	if err != nil {
		t.Fatalf("Failed to create Groq client: %v", err)
	}

	model, ok := client.(*OpenAIModel)
	if !ok {
		t.Fatalf("Expected Groq to reuse *OpenAIModel, got %T", client)
	}
	if model.modelName != "openai/gpt-oss-20b" {
		t.Errorf("Expected model openai/gpt-oss-20b, got %s", model.modelName)
	}
}

func TestNewLLMAnthropic(t *testing.T) {
	client, err := NewLLM(ProviderAnthropic, "claude-3.5-haiku", "key")
	if err != nil {
		t.Fatalf("Failed to create Anthropic client: %v", err)
	}

	model, ok := client.(*AnthropicModel)
	if !ok {
		t.Fatalf("Expected *AnthropicModel, got %T", client)
	}
	if model.modelName != "claude-3.5-haiku" {
		t.Errorf("Expected model claude-3.5-haiku, got %s", model.modelName)
	}
}

func TestNewLLMAcceptsEmptyAPIKey(t *testing.T) {
	// A missing credential must not fail construction; it surfaces when
	// the prompt is sent
	if _, err := NewLLM(ProviderGroq, "openai/gpt-oss-20b", ""); err != nil {
		t.Errorf("Empty API key should not fail client construction: %v", err)
	}
}

func TestOptionConstructors(t *testing.T) {
	if opt := WithModel("m"); opt.Type != ModelNameOption || opt.Value != "m" {
		t.Error("WithModel should set the model option")
	}
	if opt := WithMaxTokens(5); opt.Type != MaxTokensOption || opt.Value != 5 {
		t.Error("WithMaxTokens should set the max tokens option")
	}
	if opt := WithAPITimeout(9); opt.Type != APITimeoutOption || opt.Value != 9 {
		t.Error("WithAPITimeout should set the timeout option")
	}
	if opt := WithBaseURL("http://x"); opt.Type != BaseURLOption || opt.Value != "http://x" {
		t.Error("WithBaseURL should set the base URL option")
	}
}
