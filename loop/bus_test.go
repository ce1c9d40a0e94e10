package loop

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type scored struct{ points int }
type ended struct{ score int }

func TestBusDeliversAfterSwap(t *testing.T) {
	b := NewBus()
	var got []int
	Subscribe(b, func(e scored) { got = append(got, e.points) })

	Emit(b, scored{10})
	b.DispatchAll()
	assert.Empty(t, got, "events are not visible before a swap")
	assert.Equal(t, 1, b.Pending())

	b.SwapBuffers()
	b.DispatchAll()
	assert.Equal(t, []int{10}, got)
	assert.Zero(t, b.Pending())

	b.SwapBuffers()
	b.DispatchAll()
	assert.Equal(t, []int{10}, got, "events are delivered once")
}

func TestBusKeepsOrderAcrossTypes(t *testing.T) {
	b := NewBus()
	var log []string
	Subscribe(b, func(e scored) { log = append(log, "scored") })
	Subscribe(b, func(e ended) { log = append(log, "ended") })
	Subscribe(b, func(e scored) { log = append(log, "scored-2") })

	Emit(b, scored{1})
	Emit(b, ended{1})
	Emit(b, scored{2})
	Emit(b, "unhandled")

	b.SwapBuffers()
	b.DispatchAll()

	assert.Equal(t, []string{"scored", "scored-2", "ended", "scored", "scored-2"}, log)
}

func TestBusHandlerEmitsIntoNextFrame(t *testing.T) {
	b := NewBus()
	var ends []int
	Subscribe(b, func(e scored) { Emit(b, ended{e.points}) })
	Subscribe(b, func(e ended) { ends = append(ends, e.score) })

	Emit(b, scored{5})
	b.SwapBuffers()
	b.DispatchAll()
	assert.Empty(t, ends)

	b.SwapBuffers()
	b.DispatchAll()
	assert.Equal(t, []int{5}, ends)
}

func TestBusHandlerCanSubscribe(t *testing.T) {
	b := NewBus()
	var late []int
	var once sync.Once
	Subscribe(b, func(e scored) {
		once.Do(func() {
			Subscribe(b, func(e scored) { late = append(late, e.points) })
		})
	})

	Emit(b, scored{1})
	b.SwapBuffers()
	b.DispatchAll()
	assert.Empty(t, late, "a new handler sees events from the next dispatch")

	Emit(b, scored{2})
	b.SwapBuffers()
	b.DispatchAll()
	assert.Equal(t, []int{2}, late)
}

func TestBusSubscribeWhileDispatching(t *testing.T) {
	b := NewBus()
	var delivered int
	Subscribe(b, func(e scored) { delivered++ })

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 100 {
			Subscribe(b, func(e ended) {})
		}
	}()

	for i := range 100 {
		Emit(b, scored{i})
		b.SwapBuffers()
		b.DispatchAll()
	}
	wg.Wait()

	assert.Equal(t, 100, delivered)
}
