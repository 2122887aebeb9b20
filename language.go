package pagemark

import (
	"regexp"
	"strings"
)

// languageSampleSize is how many characters of text participate in
// language detection.
const languageSampleSize = 1000

var (
	hangulRe    = regexp.MustCompile(`\p{Hangul}`)
	cjkRe       = regexp.MustCompile(`\p{Han}`)
	kanaRe      = regexp.MustCompile(`[\p{Hiragana}\p{Katakana}]`)
	latinOnlyRe = regexp.MustCompile(`^[\p{Latin}\p{N}\p{P}\s]+$`)
)

// DetectLanguage detects the dominant language of text from its first
// 1000 characters using ordered pattern precedence: Hangul wins over CJK
// ideographs, which win over kana, and text made of Latin letters,
// digits, and punctuation only is reported as English. Anything else,
// including empty or symbol-only text, is "unknown".
func DetectLanguage(text string) string {
	sample := text
	if runes := []rune(text); len(runes) > languageSampleSize {
		sample = string(runes[:languageSampleSize])
	}

	switch {
	case strings.TrimSpace(sample) == "":
		return "unknown"
	case hangulRe.MatchString(sample):
		return "ko"
	case cjkRe.MatchString(sample):
		return "zh"
	case kanaRe.MatchString(sample):
		return "ja"
	case latinOnlyRe.MatchString(sample):
		return "en"
	default:
		return "unknown"
	}
}
