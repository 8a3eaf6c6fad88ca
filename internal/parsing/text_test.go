package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseRepeatedWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Intermediate Intermediate ABC College", "Intermediate ABC College"},
		{"the theory", "the theory"},
		{"AWS aws Certified", "AWS Certified"},
		{"B.Tech B.Tech", "B.Tech B.Tech"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, collapseRepeatedWords(tt.in))
		})
	}
}

func TestNormalizeList(t *testing.T) {
	got := normalizeList([]string{"  Data   Science. ", "data science", "", "Go Go Lang"})
	assert.Equal(t, []string{"Data Science", "Go Lang"}, got)
}

func TestIsUpper(t *testing.T) {
	assert.True(t, isUpper("AWS"))
	assert.True(t, isUpper("C++"))
	assert.False(t, isUpper("Aws"))
	assert.False(t, isUpper("123"))
}

func TestFirstSuccess(t *testing.T) {
	fail := func(string) (int, bool) { return 0, false }
	one := func(string) (int, bool) { return 1, true }
	two := func(string) (int, bool) { return 2, true }

	got, ok := firstSuccess([]strategy[string, int]{fail, one, two}, "x")
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = firstSuccess([]strategy[string, int]{fail}, "x")
	assert.False(t, ok)
}
