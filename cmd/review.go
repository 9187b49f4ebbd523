package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/birmacher/empathetic-code-reviewer/common"
	"github.com/birmacher/empathetic-code-reviewer/llm"
	"github.com/birmacher/empathetic-code-reviewer/logger"
	"github.com/birmacher/empathetic-code-reviewer/publish"
	"github.com/birmacher/empathetic-code-reviewer/review"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <input-file>",
	Short: "Transform code review comments into empathetic feedback",
	Long: `Read a JSON file containing a code snippet and raw review comments,
and rewrite every comment as encouraging, educational guidance with an
explanation of the underlying engineering principle and a corrected example.

The input file must contain a "code_snippet" string and a "review_comments"
array of strings. The LLM credential is read from the LLM_API_KEY
environment variable.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runReview,
}

func runReview(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	req, err := review.LoadRequest(inputPath)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return fmt.Errorf("Input file '%s' not found", inputPath)
		case isJSONError(err):
			return fmt.Errorf("Invalid JSON in '%s'", inputPath)
		default:
			return err
		}
	}

	provider, _ := cmd.Flags().GetString("provider")
	model, _ := cmd.Flags().GetString("model")
	maxTokens, _ := cmd.Flags().GetInt("max-tokens")
	apiTimeout, _ := cmd.Flags().GetInt("api-timeout")

	// Credential resolution happens here, once; the client only receives
	// the value. A missing key fails at prompt time and degrades to the
	// in-band error text, not a crash.
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		logger.Warnf("LLM_API_KEY environment variable is not set")
	}

	llmClient, err := llm.NewLLM(provider, model, apiKey,
		llm.WithMaxTokens(maxTokens),
		llm.WithAPITimeout(apiTimeout),
	)
	if err != nil {
		return err
	}

	reviewer := review.NewReviewer(llmClient, common.WithYamlFile())

	result, err := reviewer.Process(req)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		if err := os.WriteFile(output, []byte(result), 0644); err != nil {
			return fmt.Errorf("failed to write review to %s: %v", output, err)
		}
		fmt.Printf("Empathetic review written to %s\n", output)
	} else {
		fmt.Println(result)
	}

	if cmd.Flags().Changed("github-pr") {
		ref, _ := cmd.Flags().GetString("github-pr")
		if err := postToGitHub(ref, result); err != nil {
			return err
		}
	}

	return nil
}

func postToGitHub(ref, result string) error {
	owner, repo, pr, err := publish.ParsePullRequest(ref)
	if err != nil {
		return err
	}

	publisher, err := publish.NewPublisher(publish.ProviderGitHub,
		publish.WithAPIToken(os.Getenv("GITHUB_TOKEN")),
	)
	if err != nil {
		return err
	}

	if err := publisher.PostReview(owner, repo, pr, result); err != nil {
		return fmt.Errorf("failed to post review to GitHub: %v", err)
	}

	fmt.Printf("Empathetic review posted to %s/%s#%d\n", owner, repo, pr)
	return nil
}

func isJSONError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	// Add flags specific to review command
	reviewCmd.Flags().StringP("output", "o", "", "Output file for the empathetic review (default: stdout)")
	reviewCmd.Flags().StringP("provider", "p", llm.ProviderGroq, "LLM provider to use (openai, groq, anthropic)")
	reviewCmd.Flags().StringP("model", "m", "openai/gpt-oss-20b", "LLM model to use")
	reviewCmd.Flags().Int("max-tokens", 4000, "Maximum tokens for the LLM response")
	reviewCmd.Flags().Int("api-timeout", 60, "LLM API timeout in seconds")
	reviewCmd.Flags().String("github-pr", "", "Also post the review to a GitHub pull request (owner/repo#number, token from GITHUB_TOKEN)")
}
