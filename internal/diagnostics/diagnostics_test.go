package diagnostics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

func TestStrengthsWeaknesses_Empty(t *testing.T) {
	strengths, weaknesses := StrengthsWeaknesses("", types.ExtractedInfo{})

	assert.Empty(t, strengths)
	assert.Equal(t, []string{
		"Missing email address - essential for contact",
		"Missing phone number - limits communication options",
		"No LinkedIn profile - missing professional networking opportunity",
		"No projects section - missing practical experience demonstration",
		"No professional summary/objective - unclear career direction",
	}, weaknesses)
}

func TestStrengthsWeaknesses_ContactStrengths(t *testing.T) {
	info := types.ExtractedInfo{
		Email:    types.Some("a@b.co"),
		Phone:    types.Some("5551234567"),
		LinkedIn: types.Some("https://linkedin.com/in/a"),
	}

	strengths, weaknesses := StrengthsWeaknesses("PROJECTS\n• Built a thing", info)

	assert.Equal(t, []string{
		"Complete contact information provided",
		"LinkedIn profile linked for professional networking",
		"Projects section demonstrates practical experience",
		"Professional bullet-point formatting",
	}, strengths)
	assert.NotContains(t, weaknesses, "Missing email address - essential for contact")
	assert.LessOrEqual(t, len(weaknesses), 5)
}

func TestStrengthsWeaknesses_EmailOnly(t *testing.T) {
	strengths, _ := StrengthsWeaknesses("", types.ExtractedInfo{Email: types.Some("a@b.co")})

	assert.Equal(t, []string{"Email address included"}, strengths)
}

func TestStrengthsWeaknesses_Capped(t *testing.T) {
	text := strings.Repeat("Led, developed, designed and improved results by 20 percent. ", 10) +
		"projects summary certifications"
	info := types.ExtractedInfo{
		Email:    types.Some("a@b.co"),
		Phone:    types.Some("5551234567"),
		LinkedIn: types.Some("https://linkedin.com/in/a"),
		Skills:   types.Some([]string{"Go", "Python", "SQL", "Docker", "Kubernetes", "AWS", "React", "Linux"}),
	}

	strengths, _ := StrengthsWeaknesses(text, info)

	assert.Len(t, strengths, 5)
	assert.Equal(t, "Complete contact information provided", strengths[0])
}

func TestTips(t *testing.T) {
	tips := Tips("", types.ExtractedInfo{})

	assert.Len(t, tips, 6)
	assert.Equal(t, "Add LinkedIn Profile: Include your LinkedIn URL to enhance professional credibility and networking opportunities.", tips[0])
	assert.Equal(t, "Add Certifications: Include relevant certifications to demonstrate continuous learning and expertise.", tips[5])
}

func TestTips_NoneDuplicated(t *testing.T) {
	tips := Tips("experience", types.ExtractedInfo{Email: types.Some("a@b.co")})

	seen := map[string]bool{}
	for _, tip := range tips {
		assert.False(t, seen[tip], tip)
		seen[tip] = true
	}
	assert.NotContains(t, tips, "Add Email Address: Include a professional email address for direct communication.")
}
