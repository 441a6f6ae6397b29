package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrontmatter(t *testing.T) {
	meta, body, ok := SplitFrontmatter([]byte("---\ntitle: Notes\ntags: [a, b]\n---\n# Body\n"))
	require.True(t, ok)
	assert.Equal(t, "Notes", meta["title"])
	assert.Equal(t, []interface{}{"a", "b"}, meta["tags"])
	assert.Equal(t, "# Body\n", body)
}

func TestSplitFrontmatter_NotPresent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no delimiter", "# Just markdown\n"},
		{"unclosed", "---\ntitle: Notes\n# Body\n"},
		{"invalid yaml", "---\ntitle: [unclosed\n---\nbody\n"},
		{"rule not at start", "intro\n---\ntitle: x\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := SplitFrontmatter([]byte(tt.content))
			assert.False(t, ok)
		})
	}
}
