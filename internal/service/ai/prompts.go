package ai

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageName returns the English name of a BCP 47 code, e.g. "pt-BR" becomes
// "Brazilian Portuguese". Unknown codes are returned as given.
func LanguageName(code string) string {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}

// GetTranslateTextPrompt returns the system prompt for plain text translation.
func GetTranslateTextPrompt(textType, sourceLanguage, targetLanguage string) string {
	return fmt.Sprintf(`You are an expert translator of museum catalogue text. Translate the %s into the target language.

<context>
<content_type>%s</content_type>
<source_language>%s</source_language>
<target_language>%s</target_language>
</context>

<instructions>
1. You MUST translate into the language specified in <target_language>. Responses in other languages are invalid
2. Output ONLY the translated text, nothing else
3. Preserve the original meaning and tone
4. Keep artist names, proper nouns and inventory numbers unchanged
5. Use the established art-history term for techniques and materials
6. NO explanations, NO notes, NO markdown formatting
7. NO leading or trailing newlines
</instructions>`, textType, textType, LanguageName(sourceLanguage), LanguageName(targetLanguage))
}

// WrapInputSimple wraps content in input tags.
func WrapInputSimple(content string) string {
	return "<input>\n" + content + "\n</input>"
}

// CleanCompletion strips wrappers models sometimes add around a plain answer.
func CleanCompletion(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "<input>")
	s = strings.TrimSuffix(s, "</input>")
	return strings.TrimSpace(s)
}
