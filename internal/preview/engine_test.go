package preview

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-composer/pkg/models"
)

func renderDoc(t *testing.T, parsed models.ParsedSections, profile models.CandidateProfile) (string, *goquery.Document) {
	t.Helper()

	page, err := MustNewEngine().RenderSections(parsed, profile)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return page, doc
}

func sectionTitles(doc *goquery.Document) []string {
	var titles []string
	doc.Find(".section-title").Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, s.Text())
	})
	return titles
}

func TestRenderFullPreview(t *testing.T) {
	raw := `PROFESSIONAL SUMMARY
Line one
Line two
SKILLS
Languages: Go
Cloud | AWS
PROJECT EXPERIENCE
Project A
Project B
EDUCATION
BSc
ADDITIONAL INFORMATION
Hidden in preview`

	page, err := MustNewEngine().Render(raw, models.CandidateProfile{Name: "Jane Doe", Email: "jane@example.com"})
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Equal(t, "Resume Preview - Jane Doe", doc.Find("title").Text())
	assert.Equal(t, "Jane Doe", doc.Find(".header .name").Text())
	assert.Equal(t, "jane@example.com", doc.Find(".header .contact-info").Text())

	assert.Equal(t, []string{"PROFESSIONAL SUMMARY", "CORE TECHNICAL SKILLS", "PROJECT EXPERIENCE", "EDUCATION"}, sectionTitles(doc))

	summaryHTML, err := doc.Find(".summary-text").Html()
	require.NoError(t, err)
	assert.Equal(t, "Line one<br/>Line two", summaryHTML)

	rows := doc.Find(".skills-table tbody tr")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "Languages", rows.Eq(0).Find("td strong").Text())
	assert.Equal(t, "AWS", rows.Eq(1).Find("td").Eq(1).Text())

	assert.Equal(t, 2, doc.Find(".project-item").Length())
	assert.Equal(t, 1, doc.Find(".education-item").Length())
	assert.NotContains(t, page, "Hidden in preview")
	assert.NotContains(t, page, "ADDITIONAL INFORMATION")
	assert.Contains(t, page, "@media print")
}

func TestRenderOmitsEmptyEducation(t *testing.T) {
	_, doc := renderDoc(t, models.ParsedSections{Summary: "Summary", Projects: "P"}, models.CandidateProfile{Name: "A"})

	assert.NotContains(t, sectionTitles(doc), "EDUCATION")
	assert.Equal(t, 0, doc.Find(".education-item").Length())
}

func TestRenderOmitsSkillsWithoutEntries(t *testing.T) {
	page, doc := renderDoc(t, models.ParsedSections{Skills: "Go, Python\nteamwork"}, models.CandidateProfile{Name: "A"})

	assert.Equal(t, 0, doc.Find(".skills-table").Length())
	assert.NotContains(t, page, "CORE TECHNICAL SKILLS")
}

func TestRenderHeaderFallbacks(t *testing.T) {
	_, doc := renderDoc(t, models.ParsedSections{}, models.CandidateProfile{})

	assert.Equal(t, "Resume Preview - Generated", doc.Find("title").Text())
	assert.Equal(t, "Generated Resume", doc.Find(".header .name").Text())
	assert.Equal(t, 0, doc.Find(".contact-info").Length())
	assert.Empty(t, sectionTitles(doc))
}

func TestRenderEscapesText(t *testing.T) {
	page, doc := renderDoc(t,
		models.ParsedSections{Projects: `<script>alert("x")</script>`},
		models.CandidateProfile{Name: "<b>Mallory</b>"},
	)

	assert.NotContains(t, page, "<script>")
	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Equal(t, `<script>alert("x")</script>`, doc.Find(".project-item").Text())
	assert.Equal(t, "<b>Mallory</b>", doc.Find(".header .name").Text())
}
