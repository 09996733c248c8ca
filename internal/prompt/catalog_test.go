package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 3, c.Len())

	tmpl, err := c.Template(Partial)
	require.NoError(t, err)
	assert.True(t, strings.Contains(tmpl, "partial input"))

	idx, err := c.Lookup("Detailed")
	require.NoError(t, err)
	assert.Equal(t, Detailed, idx)
}

func TestTemplateOutOfRange(t *testing.T) {
	c := Default()
	for _, sel := range []int{-1, 3, 100} {
		_, err := c.Template(sel)

		var upe *UnknownPromptError
		require.True(t, errors.As(err, &upe), "selector %d: got %v", sel, err)
		assert.Equal(t, 3, upe.Size)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("haiku")

	var upe *UnknownPromptError
	assert.True(t, errors.As(err, &upe))
}

func TestNewCopiesTemplates(t *testing.T) {
	src := []string{"a", "b"}
	c := New(src...)
	src[0] = "changed"

	got, err := c.Template(0)
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestFromConfig(t *testing.T) {
	assert.Equal(t, 3, FromConfig(nil).Len())

	c := FromConfig([]string{"Summarize:"})
	require.Equal(t, 1, c.Len())
	_, err := c.Lookup("outline")
	assert.Error(t, err)
}
