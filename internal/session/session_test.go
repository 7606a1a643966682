package session_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tidesel/internal/describe"
	"github.com/bethropolis/tidesel/internal/event"
	"github.com/bethropolis/tidesel/internal/highlight"
	"github.com/bethropolis/tidesel/internal/markup"
	"github.com/bethropolis/tidesel/internal/selector"
	"github.com/bethropolis/tidesel/internal/session"
	"github.com/bethropolis/tidesel/internal/types"
)

const sample = "<div><p>x</p></div>"

func newLoaded(t *testing.T, text string, opts ...session.Option) *session.Session {
	t.Helper()
	s := session.New(markup.TokenizerParser{}, opts...)
	s.Load(context.Background(), text, "test.html")
	return s
}

func TestSession_InitialFrame(t *testing.T) {
	t.Parallel()

	s := session.New(markup.TokenizerParser{})
	f := s.Frame()
	assert.Equal(t, session.Idle, f.State)
	assert.Equal(t, "Ready", f.Status)
	assert.Empty(t, s.Snapshot().Text())
}

func TestSession_Match(t *testing.T) {
	t.Parallel()

	s := newLoaded(t, sample)
	f := s.SetSelector("p")

	assert.Equal(t, session.Matched, f.State)
	assert.Equal(t, "Matches: 1", f.Status)
	assert.Equal(t, "Take all <p> elements and select them.", f.Description)
	assert.False(t, f.Flagged)
	assert.Equal(t, []string{"<p>"}, f.Labels)
	assert.Equal(t, []types.Range{{Start: 5, Length: 3}}, f.Ranges())
	assert.Empty(t, f.Plan.ToUnhighlight)
	assert.Equal(t, []types.Range{{Start: 5, Length: 3}}, f.Plan.ToHighlight)
	assert.Empty(t, f.Structure, "structure is only sent on load")
}

func TestSession_ClearSelector(t *testing.T) {
	t.Parallel()

	s := newLoaded(t, sample)
	s.SetSelector("p")
	f := s.SetSelector("   ")

	assert.Equal(t, session.Idle, f.State)
	assert.Equal(t, "Ready", f.Status)
	assert.Empty(t, f.Description)
	assert.Equal(t, []types.Range{{Start: 5, Length: 3}}, f.Plan.ToUnhighlight)
	assert.Empty(t, f.Plan.ToHighlight)
	assert.Empty(t, f.Labels)
}

func TestSession_InvalidSelector(t *testing.T) {
	t.Parallel()

	s := newLoaded(t, sample)
	s.SetSelector("p")
	f := s.SetSelector("p[")

	assert.Equal(t, session.Error, f.State)
	assert.Equal(t, session.Error, s.State())
	assert.True(t, f.Flagged)
	assert.True(t, strings.HasPrefix(f.Status, "Error: "), f.Status)
	assert.True(t, strings.HasPrefix(f.Description, "Oops! "), f.Description)
	assert.Equal(t, strings.TrimPrefix(f.Status, "Error: "), strings.TrimPrefix(f.Description, "Oops! "))
	assert.ErrorIs(t, f.Err, selector.ErrSyntax)
	assert.Equal(t, []types.Range{{Start: 5, Length: 3}}, f.Plan.ToUnhighlight)
	assert.Empty(t, f.Plan.ToHighlight)
	assert.Empty(t, f.Matches)

	// Recovering from the error paints again without clearing anything.
	f = s.SetSelector("div")
	assert.Empty(t, f.Plan.ToUnhighlight)
	assert.Equal(t, []types.Range{{Start: 0, Length: 5}}, f.Plan.ToHighlight)
}

func TestSession_ZeroMatches(t *testing.T) {
	t.Parallel()

	s := newLoaded(t, sample)
	f := s.SetSelector("table")

	assert.Equal(t, session.Matched, f.State)
	assert.Equal(t, "Matches: 0", f.Status)
	assert.Empty(t, f.Plan.ToHighlight)
	assert.Empty(t, f.Labels)
}

func TestSession_CountIsGrouped(t *testing.T) {
	t.Parallel()

	s := newLoaded(t, strings.Repeat("<i>", 1234))
	f := s.SetSelector("i")
	assert.Equal(t, "Matches: 1,234", f.Status)
	assert.Len(t, f.Matches, 1234)
}

func TestSession_LoadResetsAndReevaluates(t *testing.T) {
	t.Parallel()

	s := newLoaded(t, sample)
	s.SetSelector("p")

	f := s.Load(context.Background(), "<p>a</p>\n<p>b</p>", "other.html")
	assert.Equal(t, session.Matched, f.State)
	assert.Empty(t, f.Plan.ToUnhighlight, "old ranges are not cleared on a new text")
	assert.Equal(t, []types.Range{{Start: 0, Length: 3}, {Start: 9, Length: 3}}, f.Plan.ToHighlight)
	require.NotEmpty(t, f.Structure)

	ins := f.Instructions()
	assert.Equal(t, f.Structure, ins[:len(f.Structure)])
	for _, in := range ins[len(f.Structure):] {
		assert.Equal(t, highlight.LayerMatch, in.Layer)
	}
	assert.Equal(t, "other.html", s.Snapshot().Origin())
}

type failingParser struct{}

func (failingParser) Name() string { return "failing" }

func (failingParser) Parse(context.Context, string) (*markup.Document, error) {
	return nil, errors.New("boom")
}

func TestSession_ParserFailureYieldsNoNodes(t *testing.T) {
	t.Parallel()

	s := session.New(failingParser{})
	f := s.Load(context.Background(), sample, "")
	assert.Nil(t, s.Document())
	assert.NotEmpty(t, f.Structure, "tags are still colored")

	f = s.SetSelector("p")
	assert.Equal(t, session.Matched, f.State)
	assert.Equal(t, "Matches: 0", f.Status)
}

func TestSession_Events(t *testing.T) {
	t.Parallel()

	bus := event.NewManager()
	var seen []event.Type
	var evaluated event.SelectorEvaluatedData
	var loaded event.DocumentLoadedData
	record := func(e event.Event) bool {
		seen = append(seen, e.Type)
		switch d := e.Data.(type) {
		case event.SelectorEvaluatedData:
			evaluated = d
		case event.DocumentLoadedData:
			loaded = d
		}
		return false
	}
	for _, typ := range []event.Type{event.TypeDocumentLoaded, event.TypeSelectorEvaluated, event.TypeSelectorFailed, event.TypeSelectorCleared} {
		bus.Subscribe(typ, record)
	}

	s := newLoaded(t, sample, session.WithEvents(bus))
	s.SetSelector("p, div")
	s.SetSelector("[")

	assert.Equal(t, []event.Type{
		event.TypeDocumentLoaded,
		event.TypeSelectorCleared,
		event.TypeSelectorEvaluated,
		event.TypeSelectorFailed,
	}, seen)
	assert.Equal(t, event.SelectorEvaluatedData{Selector: "p, div", Nodes: 2, Resolved: 2}, evaluated)
	assert.Equal(t, event.DocumentLoadedData{Origin: "test.html", Bytes: len(sample), Tags: 4, Backend: "tokenizer", Parsed: true}, loaded)
}

func TestSession_LoadAnnouncesDocumentFirst(t *testing.T) {
	t.Parallel()

	bus := event.NewManager()
	var seen []event.Type
	record := func(e event.Event) bool {
		seen = append(seen, e.Type)
		return false
	}
	for _, typ := range []event.Type{event.TypeDocumentLoaded, event.TypeSelectorEvaluated, event.TypeSelectorCleared} {
		bus.Subscribe(typ, record)
	}

	s := session.New(markup.TokenizerParser{}, session.WithEvents(bus))
	s.SetSelector("p")
	seen = nil
	s.Load(context.Background(), sample, "a.html")
	assert.Equal(t, []event.Type{event.TypeDocumentLoaded, event.TypeSelectorEvaluated}, seen)
}

func TestSession_WithSink(t *testing.T) {
	t.Parallel()

	var extra describe.Describer
	s := newLoaded(t, sample, session.WithSink(&extra))

	f := s.SetSelector("div > p")
	assert.Equal(t, f.Description, extra.Text())
	assert.NotEmpty(t, extra.Text())

	s.SetSelector("p")
	assert.Equal(t, "Take all <p> elements and select them.", extra.Text())
}
