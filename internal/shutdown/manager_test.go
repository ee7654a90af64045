package shutdown

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"sticky-note/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ReverseOrder(t *testing.T) {
	m := NewManager(logger.Nop())
	var order []string
	m.Register(Func(func() { order = append(order, "first") }))
	m.Register(Func(func() { order = append(order, "second") }))
	m.Register(Func(func() { order = append(order, "third") }))

	m.Shutdown()

	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestManager_ShutdownOnce(t *testing.T) {
	m := NewManager(logger.Nop())
	calls := 0
	m.Register(Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestManager_DoneClosedAfterShutdown(t *testing.T) {
	m := NewManager(logger.Nop())
	select {
	case <-m.Done():
		t.Fatal("Done channel closed before shutdown")
	default:
	}

	m.Shutdown()

	select {
	case <-m.Done():
	default:
		t.Fatal("Done channel should be closed")
	}
}

func TestManager_SlowComponentTimesOut(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(logger.NewZerolog(&buf, logger.DebugLevel))
	m.timeout = 20 * time.Millisecond
	release := make(chan struct{})
	defer close(release)
	reached := false
	m.Register(Func(func() { reached = true }))
	m.Register(Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.True(t, reached)

	var timeouts []map[string]interface{}
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var entry map[string]interface{}
		require.NoError(t, dec.Decode(&entry))
		if entry["message"] == "component shutdown timeout" {
			timeouts = append(timeouts, entry)
		}
	}
	require.Len(t, timeouts, 1)
	assert.Equal(t, "ShutdownManager", timeouts[0]["component"])
	assert.Equal(t, float64(1), timeouts[0]["component_index"])
}

func TestManager_ListenStopsAfterShutdown(t *testing.T) {
	m := NewManager(logger.Nop())
	m.Listen()

	m.Shutdown()

	select {
	case <-m.Done():
	case <-time.After(time.Second):
		t.Fatal("manager did not finish")
	}
}
