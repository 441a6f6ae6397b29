package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "mdworkspace/internal/domain/models/markdown"
)

const outlineDoc = "# A\n\ntext\n\n## B\n```\n# not a heading\n```\nSetext *title*\n===\n\n> # quoted\n"

func TestOutline_Headings(t *testing.T) {
	svc := NewOutlineService()

	out, err := svc.Outline(context.Background(), outlineDoc, 0)
	require.NoError(t, err)

	assert.Equal(t, []models.OutlineItem{
		{Key: "md:0", Level: 1, Text: "A", Line: 1, Offset: 0},
		{Key: "md:11", Level: 2, Text: "B", Line: 5, Offset: 11},
		{Key: "md:40", Level: 1, Text: "Setext *title*", Line: 9, Offset: 40},
	}, out.Items)
	assert.Nil(t, out.ActiveKey)
}

func TestOutline_ActiveHeading(t *testing.T) {
	svc := NewOutlineService()

	tests := []struct {
		name   string
		cursor int
		want   *string
	}{
		{"unset", 0, nil},
		{"on first heading", 1, strPtr("md:0")},
		{"between headings", 4, strPtr("md:0")},
		{"inside code under B", 7, strPtr("md:11")},
		{"past last heading", 100, strPtr("md:40")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.Outline(context.Background(), outlineDoc, tt.cursor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.ActiveKey)
		})
	}
}

func TestOutline_NoHeadings(t *testing.T) {
	out, err := NewOutlineService().Outline(context.Background(), "just text\n", 3)
	require.NoError(t, err)

	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
	assert.Nil(t, out.ActiveKey)
}

func TestActiveHeading_CursorBeforeFirst(t *testing.T) {
	items := []models.OutlineItem{{Key: "md:20", Line: 3}}
	assert.Nil(t, ActiveHeading(items, 2))
	assert.Equal(t, strPtr("md:20"), ActiveHeading(items, 3))
}

func strPtr(s string) *string {
	return &s
}
