package llm

// Groq exposes an OpenAI-compatible chat API, so the client is the OpenAI
// one pointed at Groq's endpoint.

const groqBaseURL = "https://api.groq.com/openai/v1"

// NewGroq creates a new Groq client
func NewGroq(apiKey string, opts ...Option) (*OpenAIModel, error) {
	options := []Option{WithBaseURL(groqBaseURL)}
	options = append(options, opts...)
	return NewOpenAI(apiKey, options...)
}
