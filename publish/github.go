package publish

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v48/github"
	"golang.org/x/oauth2"
)

// reviewHeader marks comments posted by this tool so reruns update the
// existing comment instead of stacking new ones
const reviewHeader = "<!-- empathetic-code-reviewer: review -->"

// GitHub implements the Publisher interface for GitHub PRs
type GitHub struct {
	client   *github.Client
	apiToken string
	timeout  int
}

// NewGitHub creates a new GitHub publisher client
func NewGitHub(opts ...Option) (Publisher, error) {
	gh := &GitHub{
		timeout: 60, // Default timeout
	}

	baseURL := ""

	// Apply options
	for _, opt := range opts {
		switch opt.Type {
		case APITokenOption:
			if token, ok := opt.Value.(string); ok {
				gh.apiToken = token
			}
		case TimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				gh.timeout = timeout
			}
		case BaseURLOption:
			if url, ok := opt.Value.(string); ok {
				baseURL = url
			}
		}
	}

	// Validate required options
	if gh.apiToken == "" {
		return nil, fmt.Errorf("API token is required for GitHub")
	}

	// Create GitHub client
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: gh.apiToken})
	tc := oauth2.NewClient(context.Background(), ts)

	if baseURL != "" {
		client, err := github.NewEnterpriseClient(baseURL, baseURL, tc)
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub Enterprise client: %w", err)
		}
		gh.client = client
	} else {
		gh.client = github.NewClient(tc)
	}

	return gh, nil
}

func (gh *GitHub) getComments(ctx context.Context, repoOwner, repoName string, pr int) ([]*github.IssueComment, error) {
	comments, _, err := gh.client.Issues.ListComments(
		ctx,
		repoOwner,
		repoName,
		pr,
		nil,
	)
	return comments, err
}

func (gh *GitHub) getComment(comments []*github.IssueComment, header string) int64 {
	// Check if a review comment already exists
	for _, c := range comments {
		if c.Body != nil && strings.HasPrefix(*c.Body, header) {
			return *c.ID
		}
	}
	return 0
}

// PostReview publishes the review as a PR comment, editing the previous one
// when the marker header is found
func (gh *GitHub) PostReview(repoOwner, repoName string, pr int, review string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(gh.timeout)*time.Second)
	defer cancel()

	comments, err := gh.getComments(ctx, repoOwner, repoName, pr)
	if err != nil {
		return fmt.Errorf("failed to list existing comments: %w", err)
	}

	commentID := gh.getComment(comments, reviewHeader)

	commentBody := reviewHeader + "\n" + review
	comment := &github.IssueComment{
		Body: &commentBody,
	}

	if commentID > 0 {
		_, _, err = gh.client.Issues.EditComment(
			ctx,
			repoOwner,
			repoName,
			commentID,
			comment,
		)

		if err != nil {
			return fmt.Errorf("failed to update existing review comment: %w", err)
		}
	} else {
		_, _, err = gh.client.Issues.CreateComment(
			ctx,
			repoOwner,
			repoName,
			pr,
			comment,
		)

		if err != nil {
			return fmt.Errorf("failed to post review comment: %w", err)
		}
	}

	return nil
}
