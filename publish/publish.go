package publish

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	// ProviderGitHub represents the GitHub provider
	ProviderGitHub = "github"
)

// OptionType defines the type of option for publish providers
type OptionType string

// Available option types
const (
	APITokenOption OptionType = "api_token"
	TimeoutOption  OptionType = "timeout"
	BaseURLOption  OptionType = "base_url"
)

// Option represents a generic configuration option for any publish provider
type Option struct {
	Type  OptionType
	Value any
}

// WithAPIToken creates an option to set the API token
func WithAPIToken(token string) Option {
	return Option{
		Type:  APITokenOption,
		Value: token,
	}
}

// WithTimeout creates an option to set the API timeout in seconds
func WithTimeout(timeout int) Option {
	return Option{
		Type:  TimeoutOption,
		Value: timeout,
	}
}

// WithBaseURL creates an option to set the base URL for GitHub Enterprise
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// Publisher posts a generated review to a code hosting provider
type Publisher interface {
	// PostReview publishes the review text as a comment on the pull
	// request, replacing a previously published one if present
	PostReview(repoOwner, repoName string, pr int, review string) error
}

// NewPublisher creates a Publisher for the named provider
func NewPublisher(providerName string, opts ...Option) (Publisher, error) {
	switch providerName {
	case ProviderGitHub:
		return NewGitHub(opts...)
	}
	return nil, fmt.Errorf("unsupported provider: %s", providerName)
}

var prRefPattern = regexp.MustCompile(`^([^/#]+)/([^/#]+)#([0-9]+)$`)

// ParsePullRequest splits an "owner/repo#number" reference
func ParsePullRequest(ref string) (owner, repo string, pr int, err error) {
	matches := prRefPattern.FindStringSubmatch(ref)
	if matches == nil {
		return "", "", 0, fmt.Errorf("invalid pull request reference %q (expected owner/repo#number)", ref)
	}

	pr, err = strconv.Atoi(matches[3])
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid pull request number in %q: %w", ref, err)
	}
	return matches[1], matches[2], pr, nil
}
