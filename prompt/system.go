package prompt

import (
	"fmt"

	"github.com/birmacher/empathetic-code-reviewer/common"
)

// GetSystemPrompt builds the persona instruction for the model, shaped by
// the user's settings.
func GetSystemPrompt(settings common.Settings) string {
	basePrompt := getTone(settings) + `
` + getProfile(settings)
	if settings.Language != "" && settings.Language != "en-US" {
		basePrompt += fmt.Sprintf("\n- Use %s language.", settings.Language)
	}

	return basePrompt
}

func getProfile(settings common.Settings) string {
	switch settings.Profile {
	case common.ProfileGentle:
		return "- Lead with what the code does well before suggesting any change."
	case common.ProfileDirect:
		return "- Stay supportive, but state each improvement plainly and without padding."
	}

	return ""
}

func getTone(settings common.Settings) string {
	tone := "You are a senior software engineer and mentor specializing in empathetic, educational code reviews."
	if settings.Tone != "" {
		tone = settings.Tone
	}

	return tone + `
You excel at transforming harsh feedback into constructive guidance while maintaining technical accuracy.`
}
