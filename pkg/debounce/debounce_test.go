package debounce_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zafahi/tralashop/pkg/debounce"
)

func TestDebouncer_OnlyLastCallFires(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)

	var fired atomic.Int32
	for i := 0; i < 5; i++ {
		d.Do(func() { fired.Add(1) })
	}

	assert.Eventually(t, func() bool {
		return fired.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// no straggler fires afterwards
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)

	var fired atomic.Int32
	d.Do(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestDebouncer_ReusableAfterStop(t *testing.T) {
	d := debounce.New(10 * time.Millisecond)

	var fired atomic.Int32
	d.Do(func() { fired.Add(1) })
	d.Stop()
	d.Do(func() { fired.Add(1) })

	assert.Eventually(t, func() bool {
		return fired.Load() == 1
	}, time.Second, 5*time.Millisecond)
}
