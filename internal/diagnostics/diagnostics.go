// Package diagnostics turns scoring signals into strengths, weaknesses and tips.
package diagnostics

import (
	"github.com/Tharuni-2310/ProFile-Analyser/internal/scoring"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

const (
	maxStrengths  = 5
	maxWeaknesses = 5
	maxTips       = 6
)

// rule emits text when holds is true for a document.
type rule struct {
	holds func(scoring.Signals) bool
	text  string
}

var strengthRules = []rule{
	{func(s scoring.Signals) bool { return s.HasEmail && s.HasPhone }, "Complete contact information provided"},
	{func(s scoring.Signals) bool { return s.HasEmail && !s.HasPhone }, "Email address included"},
	{func(s scoring.Signals) bool { return s.HasLinkedIn }, "LinkedIn profile linked for professional networking"},
	{func(s scoring.Signals) bool { return s.Mentions("projects") }, "Projects section demonstrates practical experience"},
	{func(s scoring.Signals) bool { return s.MentionsAny("summary", "objective") }, "Professional summary/objective provides clear direction"},
	{func(s scoring.Signals) bool { return s.Mentions("certifications") }, "Certifications section shows continuous learning"},
	{func(s scoring.Signals) bool { return s.SkillsCount >= 8 }, "Comprehensive skill set with 8+ technical skills"},
	{func(s scoring.Signals) bool { return s.SkillsCount >= 5 && s.SkillsCount < 8 }, "Good range of technical skills (5+ skills listed)"},
	{func(s scoring.Signals) bool { return s.ActionVerbs >= 5 }, "Strong use of action verbs demonstrates leadership"},
	{func(s scoring.Signals) bool { return s.ActionVerbs >= 3 && s.ActionVerbs < 5 }, "Good use of action verbs shows initiative"},
	{func(s scoring.Signals) bool { return s.Metrics >= 3 }, "Quantifiable achievements with measurable impact"},
	{func(s scoring.Signals) bool { return s.Metrics >= 1 && s.Metrics < 3 }, "Some quantifiable results included"},
	{func(s scoring.Signals) bool { return s.HasBullets }, "Professional bullet-point formatting"},
	{func(s scoring.Signals) bool { return s.ConciseSentences > 5 }, "Concise, readable writing style"},
}

var weaknessRules = []rule{
	{func(s scoring.Signals) bool { return !s.HasEmail }, "Missing email address - essential for contact"},
	{func(s scoring.Signals) bool { return !s.HasPhone }, "Missing phone number - limits communication options"},
	{func(s scoring.Signals) bool { return !s.HasLinkedIn }, "No LinkedIn profile - missing professional networking opportunity"},
	{func(s scoring.Signals) bool { return !s.Mentions("projects") }, "No projects section - missing practical experience demonstration"},
	{func(s scoring.Signals) bool { return !s.MentionsAny("summary", "objective") }, "No professional summary/objective - unclear career direction"},
	{func(s scoring.Signals) bool { return !s.Mentions("certifications") }, "No certifications section - missing credential validation"},
	{func(s scoring.Signals) bool { return s.SkillsCount < 3 }, "Limited technical skills (less than 3 skills listed)"},
	{func(s scoring.Signals) bool { return s.SkillsCount >= 3 && s.SkillsCount < 5 }, "Moderate skill set - consider adding more relevant skills"},
	{func(s scoring.Signals) bool { return s.ActionVerbs < 2 }, "Limited use of action verbs - weakens impact statements"},
	{func(s scoring.Signals) bool { return s.Metrics == 0 }, "No quantifiable results - missing measurable achievements"},
	{func(s scoring.Signals) bool { return !s.HasBullets }, "No bullet points - reduces readability and scannability"},
	{func(s scoring.Signals) bool { return s.LongSentences > 3 }, "Some sentences too long - affects readability"},
	{func(s scoring.Signals) bool { return s.Length < 500 }, "Resume too brief - may lack sufficient detail"},
	{func(s scoring.Signals) bool { return s.Length > 3000 }, "Resume too lengthy - may lose reader attention"},
	{func(s scoring.Signals) bool { return s.CertsCount == 0 }, "No certifications - missing professional development evidence"},
	{func(s scoring.Signals) bool { return !s.RecentYear }, "No recent experience mentioned - may appear outdated"},
}

var tipRules = []rule{
	{func(s scoring.Signals) bool { return !s.HasLinkedIn },
		"Add LinkedIn Profile: Include your LinkedIn URL to enhance professional credibility and networking opportunities."},
	{func(s scoring.Signals) bool { return !s.HasEmail },
		"Add Email Address: Include a professional email address for direct communication."},
	{func(s scoring.Signals) bool { return !s.HasPhone },
		"Add Phone Number: Include your phone number for immediate contact options."},
	{func(s scoring.Signals) bool { return !s.Mentions("projects") },
		"Add Projects Section: Include 2-3 relevant projects with technologies used and outcomes achieved."},
	{func(s scoring.Signals) bool { return !s.MentionsAny("summary", "objective") },
		"Add Professional Summary: Include a 2-3 sentence summary highlighting your key strengths and career goals."},
	{func(s scoring.Signals) bool { return !s.Mentions("certifications") },
		"Add Certifications: Include relevant certifications to demonstrate continuous learning and expertise."},
	{func(s scoring.Signals) bool { return s.SkillsCount < 5 },
		"Expand Skills Section: List at least 5-8 relevant technical skills for your target role."},
	{func(s scoring.Signals) bool { return s.ActionVerbs < 3 },
		"Use Action Verbs: Start bullet points with strong action verbs like 'Developed', 'Implemented', 'Led'."},
	{func(s scoring.Signals) bool { return s.Metrics < 2 },
		"Add Quantifiable Results: Include specific metrics like 'Increased efficiency by 25%' or 'Reduced costs by $10K'."},
	{func(s scoring.Signals) bool { return !s.HasBullets },
		"Use Bullet Points: Format experience and skills with bullet points for better readability."},
	{func(s scoring.Signals) bool { return s.Length < 800 },
		"Expand Content: Add more detail to experience descriptions and achievements."},
	{func(s scoring.Signals) bool { return s.Length > 2500 },
		"Condense Content: Keep resume concise and focused on most relevant information."},
	{func(s scoring.Signals) bool { return s.CertsCount == 0 },
		"Pursue Certifications: Consider industry-relevant certifications to strengthen your profile."},
	{func(s scoring.Signals) bool { return !s.RecentYear },
		"Update Recent Experience: Ensure your most recent work experience is prominently featured."},
	{func(s scoring.Signals) bool { return !s.MentionsAny("experience", "education", "skills") },
		"Use Standard Headers: Include standard section headers like 'Experience', 'Education', 'Skills' for ATS compatibility."},
}

// StrengthsWeaknesses evaluates the strength and weakness rules in order and
// returns at most five entries of each.
func StrengthsWeaknesses(text string, info types.ExtractedInfo) (strengths, weaknesses []string) {
	sig := scoring.NewSignals(text, info)
	return evaluate(strengthRules, sig, maxStrengths), evaluate(weaknessRules, sig, maxWeaknesses)
}

// Tips returns up to six actionable suggestions.
func Tips(text string, info types.ExtractedInfo) []string {
	return evaluate(tipRules, scoring.NewSignals(text, info), maxTips)
}

func evaluate(rules []rule, sig scoring.Signals, limit int) []string {
	out := []string{}
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if len(out) == limit {
			break
		}
		if !r.holds(sig) || seen[r.text] {
			continue
		}
		seen[r.text] = true
		out = append(out, r.text)
	}
	return out
}
