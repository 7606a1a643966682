package statusbar

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusBar_Text(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	sb := New(cfg)
	now := time.Unix(1000, 0)
	sb.now = func() time.Time { return now }

	left, right, style := sb.Text()
	assert.Equal(t, "Ready", left)
	assert.Equal(t, "[No Document]", right)
	assert.Equal(t, cfg.StyleDefault, style)

	sb.SetOrigin("index.html")
	sb.SetStatus("Matches: 3", false)
	sb.SetMatchPosition(2, 3)
	left, right, _ = sb.Text()
	assert.Equal(t, "Matches: 3", left)
	assert.Equal(t, "2/3  index.html", right)

	sb.SetStatus("Error: bad", true)
	_, _, style = sb.Text()
	assert.Equal(t, cfg.StyleError, style)

	sb.SetTemporaryMessage("Copied %d labels", 3)
	left, _, style = sb.Text()
	assert.Equal(t, "Copied 3 labels", left)
	assert.Equal(t, cfg.StyleMessage, style)

	assert.True(t, sb.HasTemporaryMessage())

	now = now.Add(cfg.MessageTimeout + time.Second)
	left, _, _ = sb.Text()
	assert.Equal(t, "Error: bad", left)
	assert.False(t, sb.HasTemporaryMessage())
}

func TestStatusBar_Draw(t *testing.T) {
	t.Parallel()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(30, 2)

	sb := New(DefaultConfig())
	sb.SetOrigin("a.html")
	sb.Draw(screen, 30, 1)
	screen.Show()

	cells, width, _ := screen.GetContents()
	row := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		c := cells[width+x]
		if len(c.Runes) > 0 {
			row = append(row, c.Runes[0])
		} else {
			row = append(row, ' ')
		}
	}
	assert.Equal(t, " Ready                 a.html ", string(row))
}
