package cases

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReevaluatesOnWrite(t *testing.T) {
	path := writeFile(t, "watch.yaml", "cases:\n  - type: lll\n    voltage_kv: 11\n    z1: 1\n")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan []Outcome, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(_ *Set, o []Outcome) { got <- o })
	}()

	// Give the watcher time to register before writing
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("cases:\n  - type: lll\n    voltage_kv: 0\n    z1: 1\n"), 0o644))

	select {
	case outcomes := <-got:
		require.Len(t, outcomes, 1)
		assert.Error(t, outcomes[0].Err)
	case <-ctx.Done():
		t.Fatal("no re-evaluation after write")
	}

	cancel()
	assert.NoError(t, <-done)
}
