package utils_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/tidesel/internal/utils"
)

func TestDebouncer_CoalescesCalls(t *testing.T) {
	t.Parallel()

	var d utils.Debouncer
	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Debounce(20*time.Millisecond, func() { calls.Add(1) })
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_Stop(t *testing.T) {
	t.Parallel()

	var d utils.Debouncer
	var calls atomic.Int32
	d.Debounce(20*time.Millisecond, func() { calls.Add(1) })
	d.Stop()
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}
