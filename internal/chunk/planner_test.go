package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		limit   int
		wantLen []int
	}{
		{"empty", "", 10, nil},
		{"shorter than limit", "abc", 10, []int{3}},
		{"exactly limit", strings.Repeat("a", 10), 10, []int{10}},
		{"one over", strings.Repeat("a", 11), 10, []int{10, 1}},
		{"exact multiple", strings.Repeat("a", 30), 10, []int{10, 10, 10}},
		{"twenty thousand over fifteen", strings.Repeat("x", 20000), 15000, []int{15000, 5000}},
		{"multibyte", strings.Repeat("é", 25), 10, []int{10, 10, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Plan(tt.text, tt.limit)
			require.Len(t, chunks, len(tt.wantLen))

			var joined strings.Builder
			for i, c := range chunks {
				assert.Equal(t, i, c.Index)
				assert.Equal(t, tt.wantLen[i], c.Len())
				joined.WriteString(c.Text)
			}
			assert.Equal(t, tt.text, joined.String())
		})
	}
}

func TestPlanBoundsEveryChunk(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 97)
	for _, limit := range []int{1, 7, 64, 1000, 5000} {
		chunks := Plan(text, limit)

		var joined strings.Builder
		for i, c := range chunks {
			assert.LessOrEqual(t, c.Len(), limit)
			if i < len(chunks)-1 {
				assert.Equal(t, limit, c.Len(), "only the last chunk may be short")
			}
			joined.WriteString(c.Text)
		}
		assert.Equal(t, text, joined.String())
	}
}

func TestPlanDefaultLimit(t *testing.T) {
	chunks := Plan(strings.Repeat("a", DefaultLimit+1), 0)
	require.Len(t, chunks, 2)
	assert.Equal(t, DefaultLimit, chunks[0].Len())
}

func TestPlanSplitsMidWord(t *testing.T) {
	chunks := Plan("hello world", 4)
	require.Len(t, chunks, 3)
	assert.Equal(t, "hell", chunks[0].Text)
	assert.Equal(t, "o wo", chunks[1].Text)
	assert.Equal(t, "rld", chunks[2].Text)
}
