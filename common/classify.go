package common

import "strings"

// Severity is the coarse tone classification of a single review comment
type Severity string

const (
	SeverityHarsh        Severity = "harsh"
	SeverityNeutral      Severity = "neutral"
	SeverityConstructive Severity = "constructive"
)

// Language is the detected programming language of a code snippet
type Language string

const (
	LanguagePython     Language = "Python"
	LanguageJavaScript Language = "JavaScript"
	LanguageJava       Language = "Java"
)

var (
	harshIndicators   = []string{"bad", "wrong", "terrible", "awful", "stupid", "inefficient", "don't"}
	neutralIndicators = []string{"could", "might", "consider", "suggest"}
)

// ClassifySeverity labels the tone of a review comment by keyword presence.
// Harsh indicators take precedence over neutral ones; anything without an
// indicator counts as constructive.
func ClassifySeverity(comment string) Severity {
	lower := strings.ToLower(comment)

	for _, indicator := range harshIndicators {
		if strings.Contains(lower, indicator) {
			return SeverityHarsh
		}
	}
	for _, indicator := range neutralIndicators {
		if strings.Contains(lower, indicator) {
			return SeverityNeutral
		}
	}
	return SeverityConstructive
}

// ClassifyLanguage guesses the programming language of a snippet. This is a
// crude substring check, not a parser; the check order matters and Python is
// the default when nothing matches.
func ClassifyLanguage(code string) Language {
	switch {
	case strings.Contains(code, "def ") && strings.Contains(code, ":"):
		return LanguagePython
	case strings.Contains(code, "function") && strings.Contains(code, "{"):
		return LanguageJavaScript
	case strings.Contains(code, "public class") || strings.Contains(code, "private "):
		return LanguageJava
	default:
		return LanguagePython
	}
}
