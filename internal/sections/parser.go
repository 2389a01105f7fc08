package sections

import (
	"strings"

	"resume-composer/pkg/models"
)

// cursor tracks which section the scanner is currently filling
type cursor int

const (
	cursorNone cursor = iota
	cursorSummary
	cursorSkills
	cursorProjects
	cursorEducation
	cursorAdditional
)

var cursorKeys = map[cursor]models.SectionKey{
	cursorSummary:    models.SectionSummary,
	cursorSkills:     models.SectionSkills,
	cursorProjects:   models.SectionProjects,
	cursorEducation:  models.SectionEducation,
	cursorAdditional: models.SectionAdditional,
}

// headingRule maps a set of case-sensitive markers to the section they open
type headingRule struct {
	markers []string
	target  cursor
}

// Rules are checked in order and the first match wins, so a line mentioning both
// SKILLS and EXPERIENCE opens the skills section.
var headingRules = []headingRule{
	{markers: []string{"PROFESSIONAL SUMMARY"}, target: cursorSummary},
	{markers: []string{"CORE TECHNICAL SKILLS", "SKILLS"}, target: cursorSkills},
	{markers: []string{"PROJECT EXPERIENCE", "EXPERIENCE"}, target: cursorProjects},
	{markers: []string{"EDUCATION"}, target: cursorEducation},
	{markers: []string{"ADDITIONAL INFORMATION"}, target: cursorAdditional},
}

// matchHeading returns the section opened by line, or cursorNone when line is content
func matchHeading(line string) cursor {
	for _, rule := range headingRules {
		for _, marker := range rule.markers {
			if strings.Contains(line, marker) {
				return rule.target
			}
		}
	}
	return cursorNone
}

// IsHeading reports whether line would open a section
func IsHeading(line string) bool {
	return matchHeading(strings.TrimSpace(line)) != cursorNone
}

// Parse splits freeform resume text into the fixed set of sections.
//
// Heading lines are consumed, blank lines are dropped and every other line is
// trimmed and appended to the currently open section. Content before the first
// recognised heading is discarded. A heading that appears again keeps appending
// to the section it opened the first time.
func Parse(text string) models.ParsedSections {
	var (
		active       = cursorNone
		accumulators = make(map[cursor][]string, len(cursorKeys))
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if next := matchHeading(line); next != cursorNone {
			active = next
			continue
		}
		if active == cursorNone || line == "" {
			continue
		}
		accumulators[active] = append(accumulators[active], line)
	}

	var parsed models.ParsedSections
	for c, key := range cursorKeys {
		parsed.Set(key, strings.Join(accumulators[c], "\n"))
	}
	return parsed
}
