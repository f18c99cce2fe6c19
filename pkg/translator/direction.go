package translator

import (
	"fmt"
	"strings"
)

// Direction identifies the language of the input text. The model was trained
// on prompts prefixed with the source-language code and answers with the
// target-language code, so the direction fixes both ends of a request.
type Direction string

const (
	EnglishToVietnamese Direction = "en"
	VietnameseToEnglish Direction = "vi"
)

// ParseDirection accepts exactly the two short codes "en" and "vi".
func ParseDirection(code string) (Direction, error) {
	switch code {
	case "en":
		return EnglishToVietnamese, nil
	case "vi":
		return VietnameseToEnglish, nil
	}
	return "", &ValidationError{
		Field:   "source_lang",
		Message: fmt.Sprintf("invalid language code %q, must be one of: en, vi", code),
	}
}

// Prompt builds the model input, e.g. "vi: Xin chào".
func (d Direction) Prompt(text string) string {
	return string(d) + ": " + text
}

// StripPrefix removes a leading "en:" or "vi:" marker from model output,
// case-sensitive, along with the whitespace that follows it. Output without
// a recognized marker is only trimmed.
func StripPrefix(output string) string {
	for _, prefix := range []string{"en:", "vi:"} {
		if strings.HasPrefix(output, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(output, prefix))
		}
	}
	return strings.TrimSpace(output)
}
