package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissing(t *testing.T) {
	tests := []struct {
		name     string
		fields   []Field
		expected []string
	}{
		{
			name:     "All present",
			fields:   []Field{{"username", "alice"}, {"email", "a@example.com"}},
			expected: nil,
		},
		{
			name:     "Empty and blank",
			fields:   []Field{{"username", ""}, {"email", "a@example.com"}, {"password", "   "}},
			expected: []string{"username", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Missing(tt.fields...))
		})
	}
}

func TestPresent(t *testing.T) {
	assert.True(t, Present("a", "b"))
	assert.False(t, Present("a", ""))
	assert.False(t, Present(" \t"))
	assert.True(t, Present())
}
