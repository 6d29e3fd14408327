package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"drops empty entries", []string{"math", "", "  ", "exam"}, []string{"math", "exam"}},
		{"keeps duplicates", []string{"math", "math"}, []string{"math", "math"}},
		{"all empty", []string{"", " "}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTags(tt.in))
		})
	}
}
