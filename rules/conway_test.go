package rules

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"live cell with one neighbor dies", 1, true, false},
		{"live cell with two neighbors survives", 2, true, true},
		{"live cell with three neighbors survives", 3, true, true},
		{"live cell with four neighbors dies", 4, true, false},
		{"live cell with eight neighbors dies", 8, true, false},
		{"dead cell with two neighbors stays dead", 2, false, false},
		{"dead cell with three neighbors is born", 3, false, true},
		{"dead cell with six neighbors stays dead", 6, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyConwayRules(tt.neighbors, tt.alive))
		})
	}
}

func TestNextGeneration(t *testing.T) {
	alive := map[string]bool{"a": true, "b": true, "c": true}
	counts := map[string]int{
		"a": 1, // dies: underpopulated
		"b": 2, // survives
		"c": 4, // dies: overcrowded
		"d": 3, // born
		"e": 2, // stays dead
	}

	got := NextGeneration(counts, func(k string) bool { return alive[k] })
	sort.Strings(got)

	assert.Equal(t, []string{"b", "d"}, got)
}

func TestNextGenerationEmpty(t *testing.T) {
	got := NextGeneration(map[int]int{}, func(int) bool { return true })
	assert.Empty(t, got)
}
