package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

func TestExtractInfo_ContactAndSkills(t *testing.T) {
	text := "John Smith\njohn.smith@email.com\n555-123-4567\nEXPERIENCE\nEDUCATION\nSKILLS\nPython, SQL"

	info := ExtractInfo(text)

	assert.Equal(t, types.Some("John Smith"), info.Name)
	assert.Equal(t, types.Some("john.smith@email.com"), info.Email)
	assert.Equal(t, types.Some("5551234567"), info.Phone)
	assert.Equal(t, types.Some([]string{"Python", "SQL"}), info.Skills)
	assert.False(t, info.LinkedIn.IsPresent())
	assert.False(t, info.Portfolio.IsPresent())
	assert.False(t, info.Education.IsPresent())
	assert.False(t, info.Certifications.IsPresent())
	assert.False(t, info.Projects.IsPresent())
}

func TestExtractInfo_EmptyText(t *testing.T) {
	info := ExtractInfo("")

	for _, o := range []types.Optional[string]{info.Name, info.Email, info.Phone, info.LinkedIn, info.GitHub, info.Portfolio} {
		assert.False(t, o.IsPresent())
		assert.Equal(t, types.AbsenceMarker, types.Display(o))
	}
	for _, o := range []types.Optional[[]string]{info.Education, info.Skills, info.Certifications, info.Projects} {
		assert.False(t, o.IsPresent())
		assert.Equal(t, []string{types.AbsenceMarker}, types.DisplayList(o))
	}
}

func TestExtractInfo_CanonicalEducation(t *testing.T) {
	text := "EDUCATION\nB.Tech Computer Science XYZ University 2020\nIntermediate ABC Junior College 2016"

	info := ExtractInfo(text)

	assert.Equal(t, types.Some([]string{
		"B.Tech - Computer Science XYZ University",
		"Intermediate - ABC Junior College",
	}), info.Education)
}

func TestExtractInfo_RawEducationWhenNoTier(t *testing.T) {
	text := "Education\nMaster of Science, Stanford University 2019"

	info := ExtractInfo(text)

	assert.Equal(t, types.Some([]string{"Master of Science, Stanford University 2019"}), info.Education)
}

func TestExtractInfo_InlineSkillsKeepOrder(t *testing.T) {
	text := "Skills: Python, Java, AWS\nExperience with python and aws"

	info := ExtractInfo(text)

	assert.Equal(t, types.Some([]string{"Python", "Java", "AWS"}), info.Skills)
}

func TestExtractInfo_SkillFilters(t *testing.T) {
	text := "Skills: Python, XYZ University, 2019, ml, go, Leadership"

	info := ExtractInfo(text)

	assert.Equal(t, types.Some([]string{"Python", "Machine Learning", "Leadership"}), info.Skills)
}

func TestExtractInfo_SectionCertifications(t *testing.T) {
	text := "CERTIFICATIONS\nAWS Certified Solutions Architect - Associate\n" +
		"Google Data Analytics Professional Certificate\nB.Tech degree from XYZ University"

	info := ExtractInfo(text)

	assert.Equal(t, types.Some([]string{
		"AWS Certified Solutions Architect - Associate",
		"Google Data Analytics Professional Certificate",
	}), info.Certifications)
}

func TestExtractInfo_CertificationFallback(t *testing.T) {
	text := "Completed AZ-900 exam\nSoftware Engineer at Google\nCoursera course on Machine Learning"

	info := ExtractInfo(text)

	assert.Equal(t, types.Some([]string{
		"Completed AZ-900 exam",
		"Coursera course on Machine Learning",
	}), info.Certifications)
}

func TestExtractInfo_ProjectsSection(t *testing.T) {
	text := "PROJECTS\nScholarHunt - scholarship finder built with React\n" +
		"Weather Dashboard (Flask, OpenWeather API)\nInternship at Acme Corp\nEDUCATION\nXYZ University"

	info := ExtractInfo(text)

	assert.Equal(t, types.Some([]string{"ScholarHunt", "Weather Dashboard"}), info.Projects)
}

func TestExtractInfo_ProjectCues(t *testing.T) {
	text := "Developed a chat application\nRealtime Chat App using sockets"

	info := ExtractInfo(text)

	assert.Equal(t, types.Some([]string{"Realtime Chat App"}), info.Projects)
}

func TestExtractInfo_Links(t *testing.T) {
	text := "Jane Doe\nLinkedIn: linkedin.com/in/jdoe\nGitHub:\nwww.github.com/jdoe\nPortfolio: https://jdoe.dev"

	info := ExtractInfo(text)

	assert.Equal(t, types.Some("https://www.linkedin.com/in/jdoe"), info.LinkedIn)
	assert.Equal(t, types.Some("https://www.github.com/jdoe"), info.GitHub)
	assert.Equal(t, types.Some("https://jdoe.dev"), info.Portfolio)
}

func TestExtractInfo_PortfolioSkipsProfileLinks(t *testing.T) {
	text := "Find me at https://www.linkedin.com/in/js and https://jsmith.dev/work"

	info := ExtractInfo(text)

	assert.Equal(t, types.Some("https://jsmith.dev/work"), info.Portfolio)
	assert.Equal(t, types.Some("https://www.linkedin.com/in/js"), info.LinkedIn)
}

func TestExtractInfo_Hyperlinks(t *testing.T) {
	info := ExtractInfo("Jane Doe", "https://github.com/jdoe", "mailto:jane@doe.io", "https://github.com/jdoe")

	assert.Equal(t, types.Some("https://github.com/jdoe"), info.GitHub)
	assert.False(t, info.Email.IsPresent())
}

func TestWithHyperlinks(t *testing.T) {
	got := WithHyperlinks("body", []string{"https://b.io", "ftp://x", " https://a.io ", "https://b.io"})
	assert.Equal(t, "body\n\nhttps://a.io\nhttps://b.io", got)
	assert.Equal(t, "body", WithHyperlinks("body", nil))
}

func TestExtractInfo_RoleSuffixName(t *testing.T) {
	info := ExtractInfo("John Smith - Data Scientist\njohn@example.com")
	assert.Equal(t, types.Some("John Smith"), info.Name)
}

func TestExtractInfo_SkipsUpperCaseHeading(t *testing.T) {
	info := ExtractInfo("JOHN SMITH\nJane Doe\n")
	assert.Equal(t, types.Some("Jane Doe"), info.Name)
}

func TestExtractInfo_ObjectiveIsNotAName(t *testing.T) {
	info := ExtractInfo("CURRICULUM VITAE\nOBJECTIVE\nSeeking a position applying Machine Learning to real problems.\nSKILLS\nPython")

	assert.False(t, info.Name.IsPresent(), "got name %v", info.Name)
}

func TestExtractInfo_Idempotent(t *testing.T) {
	text := sampleResume()
	assert.Equal(t, ExtractInfo(text), ExtractInfo(text))
}

func TestExtractInfo_ListsAreNonEmptyAndDistinct(t *testing.T) {
	info := ExtractInfo(sampleResume())

	for _, o := range []types.Optional[[]string]{info.Education, info.Skills, info.Certifications, info.Projects} {
		items, ok := o.Get()
		if !ok {
			continue
		}
		require.NotEmpty(t, items)
		seen := make(map[string]bool)
		for _, it := range items {
			key := strings.ToLower(it)
			assert.False(t, seen[key], "duplicate entry %q", it)
			seen[key] = true
		}
	}
}

func TestExtractInfo_AddingEmailIsMonotonic(t *testing.T) {
	text := "Jane Doe\nSKILLS\nPython"
	assert.False(t, ExtractInfo(text).Email.IsPresent())

	info := ExtractInfo(text + "\nContact: jane.doe@mail.io")
	assert.Equal(t, types.Some("jane.doe@mail.io"), info.Email)
}

func sampleResume() string {
	return strings.Join([]string{
		"Priya Sharma",
		"priya.sharma@mail.com | +91 98765 43210",
		"linkedin.com/in/priyasharma",
		"SUMMARY",
		"Data scientist with experience in machine learning.",
		"SKILLS",
		"Python, Pandas, NumPy, SQL, Tableau, python, Communication",
		"PROJECTS",
		"• Customer Churn Prediction - built with scikit-learn",
		"• Movie Recommender (Flask, React)",
		"EDUCATION",
		"B.Tech Computer Science XYZ University 2022",
		"Intermediate ABC Junior College 2018",
		"CERTIFICATIONS",
		"IBM Data Science Professional Certificate",
		"Google Data Analytics",
	}, "\n")
}
