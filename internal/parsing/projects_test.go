package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ScholarHunt - scholarship finder", "ScholarHunt"},
		{"Weather Dashboard (Flask)", "Weather Dashboard"},
		{"Expense Tracker: personal finance app", "Expense Tracker"},
		{"• Online Voting System using blockchain and smart contracts", "Online Voting System"},
		{"a tool that scrapes job boards every single night", "a tool that scrapes job boards"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, projectTitle(tt.in))
		})
	}
}

func TestValidProjectTitle(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ScholarHunt", true},
		{"Weather Dashboard", true},
		{"Developed", false},
		{"Summer internship project", false},
		{"Chat", false},
		{"ab", false},
		{"one two three four five six seven", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validProjectTitle(tt.in))
		})
	}
}
