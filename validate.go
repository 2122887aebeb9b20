package pagemark

// minValidWordCount is the word count below which content is considered
// insufficient for summarization.
const minValidWordCount = 50

// minQuality is the floor for quality scores. A floor value signals
// total failure without a degenerate zero.
const minQuality = 0.1

// ValidateContent checks processed content against minimum thresholds.
// Quality starts at 1.0 and each failed rule scales it down
// independently; issues mark the content unfit for summarization while
// warnings merely lower confidence. The returned quality never drops
// below 0.1.
func ValidateContent(content *ProcessedContent, cfg ExtractConfig) *ValidationResult {
	cfg = cfg.WithDefaults()

	quality := 1.0
	var issues, warnings []string

	if len(content.Text) < cfg.MinContentLength {
		issues = append(issues, "too short")
		quality *= 0.3
	}
	if content.WordCount < minValidWordCount {
		issues = append(issues, "insufficient word count")
		quality *= 0.4
	}
	if content.Structure.ParagraphCount < 2 {
		warnings = append(warnings, "limited structure")
		quality *= 0.8
	}
	if content.Language == "unknown" {
		warnings = append(warnings, "language undetected")
		quality *= 0.9
	}
	if Truncated(content.Text) {
		warnings = append(warnings, "truncated")
		quality *= 0.9
	}

	if quality < minQuality {
		quality = minQuality
	}

	return &ValidationResult{
		IsValid:  len(issues) == 0,
		Issues:   issues,
		Warnings: warnings,
		Quality:  quality,
	}
}
