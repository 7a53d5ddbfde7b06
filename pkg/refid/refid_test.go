package refid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSatisfiesConstraint(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := New()
		assert.True(t, Valid(id), "generated id %q violates constraint", id)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already valid", "20240101-abcdef12", "20240101-abcdef12"},
		{"too short padded", "abc", "abc00000"},
		{"too long clamped", strings.Repeat("a", 30), strings.Repeat("a", 20)},
		{"illegal chars stripped", "my order!#42", "myorder42"},
		{"excess hyphens removed", "a-b-c-d-e-f-g-h", "a-b-cdefgh"},
		{"underscores stripped", "ref_id_0001", "refid0001"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Sanitize(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.True(t, Valid(got), "sanitized id %q violates constraint", got)
		})
	}
}

func TestSanitizeEmptySynthesizes(t *testing.T) {
	t.Parallel()

	id := Sanitize("")
	require.True(t, Valid(id))
	assert.GreaterOrEqual(t, len(id), MinLen)
}

func TestSanitizeAlwaysValid(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"x",
		"--------",
		"!!!@@@###",
		"a-b-c-d-e-f",
		strings.Repeat("-x", 40),
		"ORD/2024/01/0001",
	}
	for _, raw := range inputs {
		assert.True(t, Valid(Sanitize(raw)), "Sanitize(%q) not valid", raw)
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want bool
	}{
		{"abcd1234", true},
		{"20240101-abcdef12", true},
		{"a-b-cdefgh", true},
		{"short", false},
		{strings.Repeat("a", 21), false},
		{"a-b-c-defg", false},
		{"has space", false},
		{"under_score99", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Valid(tt.id), "Valid(%q)", tt.id)
	}
}
