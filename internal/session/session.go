// Package session runs the selector evaluation cycle: every document load
// or selector edit produces a Frame describing what to show and recolor.
package session

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bethropolis/tidesel/internal/buffer"
	"github.com/bethropolis/tidesel/internal/describe"
	"github.com/bethropolis/tidesel/internal/event"
	"github.com/bethropolis/tidesel/internal/highlight"
	"github.com/bethropolis/tidesel/internal/locate"
	"github.com/bethropolis/tidesel/internal/logger"
	"github.com/bethropolis/tidesel/internal/markup"
	"github.com/bethropolis/tidesel/internal/selector"
)

// Session owns one document and the current selector. It is not safe for
// concurrent use; the UI drives it from a single goroutine.
type Session struct {
	parser   markup.Parser
	events   *event.Manager
	printer  *message.Printer
	observer selector.Sink // Receives selector events alongside the describer

	snap *buffer.Snapshot
	doc  *markup.Document // nil when the parser failed

	selector   string
	state      State
	reconciler highlight.Reconciler
	last       Frame
}

// Option configures a Session.
type Option func(*Session)

// WithEvents attaches an event bus.
func WithEvents(m *event.Manager) Option {
	return func(s *Session) { s.events = m }
}

// WithSink attaches a sink that receives the structural events of every
// selector parsed, next to the describer.
func WithSink(sink selector.Sink) Option {
	return func(s *Session) { s.observer = sink }
}

// WithLanguage sets the locale used to format match counts.
func WithLanguage(tag language.Tag) Option {
	return func(s *Session) { s.printer = message.NewPrinter(tag) }
}

// New creates a session with an empty document.
func New(parser markup.Parser, opts ...Option) *Session {
	s := &Session{
		parser:  parser,
		printer: message.NewPrinter(language.English),
		snap:    buffer.New("", ""),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.last = Frame{State: Idle, Status: statusReady}
	return s
}

const statusReady = "Ready"

// Snapshot returns the loaded text.
func (s *Session) Snapshot() *buffer.Snapshot { return s.snap }

// Document returns the parsed tree, or nil when parsing failed.
func (s *Session) Document() *markup.Document { return s.doc }

// Selector returns the current selector text.
func (s *Session) Selector() string { return s.selector }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Frame returns the frame produced by the last input.
func (s *Session) Frame() Frame { return s.last }

// Load replaces the document with text and re-evaluates the current
// selector against it. Ranges painted for the old text are forgotten
// rather than cleared, since the surface is reloaded with the new text.
func (s *Session) Load(ctx context.Context, text, origin string) Frame {
	s.snap = buffer.New(text, origin)

	doc, err := s.parser.Parse(ctx, text)
	if err != nil {
		logger.Warnf("session: %s parser failed on %q: %v", s.parser.Name(), origin, err)
		doc = nil
	}
	s.doc = doc
	s.reconciler.Reset()

	s.events.Dispatch(event.TypeDocumentLoaded, event.DocumentLoadedData{
		Origin:  origin,
		Bytes:   s.snap.Len(),
		Tags:    len(s.snap.Tags()),
		Backend: s.parser.Name(),
		Parsed:  doc != nil,
	})

	structure := highlight.Structure(s.snap.Tags())
	frame := s.evaluate()
	frame.Structure = structure
	s.last = frame
	return frame
}

// SetSelector replaces the selector text and runs one evaluation cycle.
func (s *Session) SetSelector(text string) Frame {
	s.selector = text
	s.last = s.evaluate()
	return s.last
}

// evaluate runs one cycle for the current selector and document.
func (s *Session) evaluate() Frame {
	trimmed := strings.TrimSpace(s.selector)
	if trimmed == "" {
		s.state = Idle
		s.events.Dispatch(event.TypeSelectorCleared, nil)
		return Frame{
			State:    Idle,
			Selector: s.selector,
			Status:   statusReady,
			Plan:     s.reconciler.Apply(nil),
		}
	}

	s.state = Evaluating
	var describer describe.Describer
	sel, err := selector.Parse(trimmed, selector.Tee(&describer, s.observer))
	if err != nil {
		return s.fail(err)
	}

	els := sel.Evaluate(s.doc)
	labels := make([]string, len(els))
	for i, el := range els {
		labels[i] = el.BeginTag()
	}
	matches := locate.LocateAll(els, s.snap.Lines(), s.snap.Tags())

	s.state = Matched
	frame := Frame{
		State:       Matched,
		Selector:    s.selector,
		Status:      s.printer.Sprintf("Matches: %d", len(els)),
		Description: describer.Text(),
		Labels:      labels,
		Matches:     matches,
		Plan:        s.reconciler.Apply(locate.Ranges(matches)),
	}
	s.events.Dispatch(event.TypeSelectorEvaluated, event.SelectorEvaluatedData{
		Selector: trimmed,
		Nodes:    len(els),
		Resolved: len(matches),
	})
	return frame
}

// fail moves to Error. The previous matches are cleared and nothing is painted.
func (s *Session) fail(err error) Frame {
	msg := err.Error()
	var syn *selector.SyntaxError
	if errors.As(err, &syn) {
		msg = syn.Msg
	}
	logger.DebugTagf("session", "selector %q rejected: %s", s.selector, msg)

	s.state = Error
	s.events.Dispatch(event.TypeSelectorFailed, event.SelectorFailedData{Selector: s.selector, Err: err})
	return Frame{
		State:       Error,
		Selector:    s.selector,
		Status:      "Error: " + msg,
		Description: "Oops! " + msg,
		Flagged:     true,
		Err:         err,
		Plan:        s.reconciler.Apply(nil),
	}
}
