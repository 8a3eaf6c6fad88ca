package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandSkill(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"ml", "Machine Learning", true},
		{"SEO", "Search Engine Optimization", true},
		{"SQL", "SQL", true},
		{"css", "", false},
		{"go", "", false},
		{"n/a", "", false},
		{"Spring  Boot", "Spring Boot", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := expandSkill(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLooksLikeOrganization(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Python", false},
		{"Acme Pvt. Ltd.", true},
		{"XYZ University", true},
		{"Intern 2021", true},
		{"jane@x.io", true},
		{"A1234", true},
		{"C++", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeOrganization(tt.in))
		})
	}
}

func TestSkillKey(t *testing.T) {
	assert.Equal(t, "c++", skillKey(" C++ "))
	assert.Equal(t, "node.js", skillKey("Node.js!"))
	assert.Equal(t, "c#", skillKey("C#"))
}
