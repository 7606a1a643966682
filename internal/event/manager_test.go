package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/tidesel/internal/event"
)

func TestManager_DispatchOrderAndConsume(t *testing.T) {
	t.Parallel()

	m := event.NewManager()
	var got []string
	m.Subscribe(event.TypeSelectorEvaluated, func(e event.Event) bool {
		got = append(got, "first:"+e.Data.(event.SelectorEvaluatedData).Selector)
		return false
	})
	m.Subscribe(event.TypeSelectorEvaluated, func(e event.Event) bool {
		got = append(got, "second")
		return true
	})
	m.Subscribe(event.TypeSelectorEvaluated, func(e event.Event) bool {
		got = append(got, "third")
		return false
	})

	m.Dispatch(event.TypeSelectorEvaluated, event.SelectorEvaluatedData{Selector: "p"})
	m.Dispatch(event.TypeSelectorFailed, nil)
	assert.Equal(t, []string{"first:p", "second"}, got)
}

func TestManager_Unsubscribe(t *testing.T) {
	t.Parallel()

	m := event.NewManager()
	calls := 0
	sub := m.Subscribe(event.TypeDocumentLoaded, func(event.Event) bool {
		calls++
		return false
	})
	m.Dispatch(event.TypeDocumentLoaded, nil)
	m.Unsubscribe(sub)
	m.Unsubscribe(sub)
	m.Dispatch(event.TypeDocumentLoaded, nil)
	assert.Equal(t, 1, calls)
}

func TestManager_NilIsSilent(t *testing.T) {
	t.Parallel()

	var m *event.Manager
	assert.NotPanics(t, func() { m.Dispatch(event.TypeAppQuit, nil) })
	assert.Equal(t, "SelectorFailed", event.TypeSelectorFailed.String())
	assert.Equal(t, "Type(99)", event.Type(99).String())
}
