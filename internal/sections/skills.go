package sections

import (
	"strings"

	"resume-composer/pkg/models"
)

// splitSkillLine splits on every ':' and '|', keeping empty fields
func splitSkillLine(line string) []string {
	return strings.Split(strings.ReplaceAll(line, "|", ":"), ":")
}

// TokenizeSkills turns the lines of a skills section into table rows.
//
// A line produces an entry only when it contains ':' or '|' and both the text before
// the first delimiter and the text up to the next one are non-empty after trimming.
// Anything past the second field is ignored. Lines without a delimiter are skipped.
func TokenizeSkills(text string) []models.SkillEntry {
	var entries []models.SkillEntry

	for _, line := range strings.Split(text, "\n") {
		if !strings.ContainsAny(line, ":|") {
			continue
		}

		parts := splitSkillLine(line)
		category := strings.TrimSpace(parts[0])
		items := strings.TrimSpace(parts[1])
		if category == "" || items == "" {
			continue
		}

		entries = append(entries, models.SkillEntry{Category: category, Items: items})
	}

	return entries
}
