package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/birmacher/empathetic-code-reviewer/common"
)

const codeFence = "```"

// GetReviewPrompt assembles the instruction prompt for rewriting the given
// review comments empathetically. The template wording is a contract with
// the model: the output sections it names are what downstream readers
// expect, so changes here must be deliberate and versioned. Output is
// deterministic for identical input.
func GetReviewPrompt(code string, comments []string) string {
	language := common.ClassifyLanguage(code)
	languageLower := strings.ToLower(string(language))

	severities := make([]string, 0, len(comments))
	for _, comment := range comments {
		severities = append(severities, string(common.ClassifySeverity(comment)))
	}

	var numbered strings.Builder
	for i, comment := range comments {
		if i > 0 {
			numbered.WriteString("\n")
		}
		fmt.Fprintf(&numbered, "%d. %s", i+1, comment)
	}

	return `You are an exceptional senior software engineer and mentor known for your ability to provide constructive, empathetic feedback that helps developers grow. Your mission is to transform direct, potentially harsh code review comments into supportive, educational guidance.

**Context:**
- Programming Language: ` + string(language) + `
- Number of comments to transform: ` + strconv.Itoa(len(comments)) + `
- Comment severity levels detected: ` + strings.Join(distinct(severities), ", ") + `

**Code Under Review:**
` + codeFence + languageLower + `
` + code + `
` + codeFence + `

**Original Review Comments:**
` + numbered.String() + `

**Your Task:**
Transform each comment into a well-structured analysis following this exact format for each comment:

---
### Analysis of Comment: "[Original Comment]"

**Positive Rephrasing:** [Rewrite the feedback to be encouraging and supportive while maintaining technical accuracy. Start with something positive about the code, then gently introduce the improvement opportunity.]

**The 'Why':** [Explain the underlying software engineering principle, performance consideration, or best practice. Make it educational and help the developer understand the deeper reasoning.]

**Suggested Improvement:**
` + codeFence + languageLower + `
[Provide a concrete, working code example that demonstrates the recommended fix. Ensure the code is syntactically correct and represents a meaningful improvement.]
` + codeFence + `

**Learn More:** [Provide a relevant link to official documentation, style guides, or authoritative resources that support this recommendation.]

---

**Instructions for tone adaptation:**
- For harsh comments: Be extra gentle and encouraging, acknowledge what's working first
- For neutral comments: Maintain supportive tone while being direct about improvements
- For constructive comments: Enhance the existing positive tone with more detail

**After analyzing all comments, add:**

## Overall Assessment

[Provide a holistic, encouraging summary that:
1. Acknowledges the developer's effort and what they did well
2. Frames the suggestions as growth opportunities
3. Encourages continued learning and improvement
4. Maintains an optimistic, supportive tone]

**Quality Standards:**
- Be specific and actionable, not generic
- Ensure all code examples are syntactically correct and runnable
- Provide genuine technical insights, not just politeness
- Make explanations clear for developers at different skill levels
- Include relevant links to authoritative sources when possible`
}

// distinct keeps first-seen order so the prompt is stable across runs
func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
