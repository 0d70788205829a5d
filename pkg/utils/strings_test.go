package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanStrings(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"all blank", []string{"", "  "}, nil},
		{"trims", []string{" http://a ", "", "http://b"}, []string{"http://a", "http://b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanStrings(tt.in))
		})
	}
}
