package clipboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tidesel/internal/clipboard"
)

func TestManager_Internal(t *testing.T) {
	t.Parallel()

	m := clipboard.NewManager(false)
	assert.False(t, m.UsesSystem())
	assert.Empty(t, m.Text())

	require.NoError(t, m.Copy("<p>\n<a href=\"x\">"))
	assert.Equal(t, "<p>\n<a href=\"x\">", m.Text())
}
