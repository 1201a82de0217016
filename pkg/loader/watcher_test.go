package loader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laufblocks/laufblocks/pkg/category"
	"github.com/laufblocks/laufblocks/pkg/registry"
	"github.com/laufblocks/laufblocks/pkg/util"
)

func TestWatcher_StartStop(t *testing.T) {
	l := New(t.TempDir())
	reg := registry.New()

	w, err := NewWatcher(l, reg, util.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, w.Start())

	// Stop is idempotent.
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestWatcher_InvalidatesCacheOnChange(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(8, nil)
	defer c.Close()

	l := New(dir, WithCache(c))
	block := testBlock("hero-a", category.Hero)
	reg := registry.New(block)

	path := l.BlockPath(block.Category, block.Slug)
	writeFile(t, path, "v1")

	w, err := NewWatcher(l, reg, util.NewNopLogger())
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond
	require.NoError(t, w.Start())
	defer w.Stop()

	src, ok := l.Source(block)
	require.True(t, ok)
	assert.Equal(t, "v1", src)

	writeFile(t, path, "v2")

	// The watcher debounces, then drops the stale mapping.
	assert.Eventually(t, func() bool {
		src, ok := l.Source(block)
		return ok && src == "v2"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatcher_MissingRootFailsToStart(t *testing.T) {
	l := New("/nonexistent/blocks")
	w, err := NewWatcher(l, registry.New(), util.NewNopLogger())
	require.NoError(t, err)
	assert.Error(t, w.Start())
	_ = w.Stop()
}
