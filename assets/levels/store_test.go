package levels

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/automoto/greenie/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevels(t *testing.T) {
	lib := MustLoadEmbedded()

	assert.Equal(t, progression.LevelID("hub"), lib.Hub)
	assert.Equal(t, []progression.LevelID{"hub", "candy", "industry", "snow"}, lib.IDs())
	assert.Empty(t, lib.DanglingDoors())

	rules := progression.DefaultRules()
	for _, id := range lib.IDs() {
		t.Run(string(id), func(t *testing.T) {
			level, ok := lib.Level(id)
			require.True(t, ok)
			assert.NotEmpty(t, level.Solids)

			session := progression.NewSession(level.Definition(), "", progression.NewSaveStore(), rules)
			_, source := session.Spawn()
			assert.Equal(t, progression.SpawnDefault, source)
			assert.False(t, session.Report().Has(progression.IssueMalformedDoor))
		})
	}
}

func TestEmbeddedProgressionIsCompletable(t *testing.T) {
	lib := MustLoadEmbedded()
	rules := progression.DefaultRules()

	keys := 0
	for _, id := range lib.IDs() {
		level, _ := lib.Level(id)
		session := progression.NewSession(level.Definition(), "", progression.NewSaveStore(), rules)
		if _, ok := session.Collectibles().Key(); ok {
			keys++
		}
	}

	snow, ok := lib.Level("snow")
	require.True(t, ok)
	assert.Equal(t, 2, snow.LockThreshold)
	assert.GreaterOrEqual(t, keys, snow.LockThreshold, "enough keys exist to open every lock")
}

func TestStoreTitle(t *testing.T) {
	s := NewEmbeddedStore()
	defer s.Close()

	assert.Equal(t, "Snowy Peaks", s.Title("snow"))
	assert.Equal(t, "nowhere", s.Title("nowhere"))
	assert.False(t, s.Poll(), "embedded stores never reload")
}

func copyEmbedded(t *testing.T, dir string) {
	t.Helper()
	entries, err := levelFS.ReadDir(".")
	require.NoError(t, err)
	for _, e := range entries {
		data, err := levelFS.ReadFile(e.Name())
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, e.Name()), data, 0o644))
	}
}

func TestDiskStoreReloads(t *testing.T) {
	dir := t.TempDir()
	copyEmbedded(t, dir)

	s, err := NewDiskStore(dir)
	require.NoError(t, err)
	defer s.Close()
	if s.watcher == nil {
		t.Skip("file watching unavailable")
	}
	require.Equal(t, "Snowy Peaks", s.Title("snow"))

	manifest, err := os.ReadFile(filepath.Join(dir, "levels.yaml"))
	require.NoError(t, err)
	edited := []byte(strings.Replace(string(manifest), "Snowy Peaks", "Frozen Peaks", 1))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "levels.yaml"), edited, 0o644))

	assert.Eventually(t, func() bool {
		s.Poll()
		return s.Title("snow") == "Frozen Peaks"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestDiskStoreKeepsLibraryOnBadReload(t *testing.T) {
	dir := t.TempDir()
	copyEmbedded(t, dir)

	s, err := NewDiskStore(dir)
	require.NoError(t, err)
	defer s.Close()
	if s.watcher == nil {
		t.Skip("file watching unavailable")
	}
	before := s.Library()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "levels.yaml"), []byte("hub: [\n"), 0o644))

	// Give the watcher time to deliver the event, then confirm nothing changed.
	time.Sleep(300 * time.Millisecond)
	assert.False(t, s.Poll())
	assert.Same(t, before, s.Library())
}

func TestDiskStoreReloadsFinalWriteOfBurst(t *testing.T) {
	dir := t.TempDir()
	copyEmbedded(t, dir)

	s, err := NewDiskStore(dir)
	require.NoError(t, err)
	defer s.Close()
	if s.watcher == nil {
		t.Skip("file watching unavailable")
	}

	path := filepath.Join(dir, "levels.yaml")
	manifest, err := os.ReadFile(path)
	require.NoError(t, err)
	edited := []byte(strings.Replace(string(manifest), "Snowy Peaks", "Frozen Peaks", 1))

	// Editors often truncate before writing the new contents.
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, edited, 0o644))

	assert.Eventually(t, func() bool {
		s.Poll()
		return s.Title("snow") == "Frozen Peaks"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatcherReportsOnceAfterWritesSettle(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("file watching unavailable: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "hub.tmx")
	var lastWrite time.Time
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", i+1)), 0o644))
		lastWrite = time.Now()
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case name := <-w.Events:
		assert.Equal(t, path, name)
		assert.GreaterOrEqual(t, time.Since(lastWrite), debounce)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for hub.tmx")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("unexpected second event for %s", name)
	case <-time.After(3 * debounce):
	}
}

func TestPollClosesWatcherWhenEventsEnd(t *testing.T) {
	dir := t.TempDir()
	copyEmbedded(t, dir)

	s, err := NewDiskStore(dir)
	require.NoError(t, err)
	if s.watcher == nil {
		t.Skip("file watching unavailable")
	}
	w := s.watcher

	// Stopping fsnotify underneath ends the event stream.
	require.NoError(t, w.watcher.Close())

	assert.Eventually(t, func() bool {
		s.Poll()
		return s.watcher == nil
	}, 2*time.Second, 20*time.Millisecond)

	select {
	case <-w.closeCh:
	default:
		t.Fatal("watcher was dropped without being closed")
	}
	assert.NoError(t, s.Close())
}

func TestNewDiskStoreMissingDir(t *testing.T) {
	_, err := NewDiskStore(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestIsLevelFile(t *testing.T) {
	assert.True(t, isLevelFile("levels/hub.tmx"))
	assert.True(t, isLevelFile("levels.YAML"))
	assert.False(t, isLevelFile("notes.txt"))
	assert.False(t, isLevelFile("hub.tmx~"))
}
