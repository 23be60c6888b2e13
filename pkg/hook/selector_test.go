package hook

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/glorpus-work/gogalaxy/pkg/errors"
	"github.com/glorpus-work/gogalaxy/pkg/galaxy"
	"github.com/glorpus-work/gogalaxy/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installer(id, path, size string) galaxy.GameFile {
	return galaxy.GameFile{
		Game:     "game",
		Type:     galaxy.TypeInstaller,
		ID:       id,
		Name:     "Game",
		Path:     path,
		Size:     size,
		Platform: platform.Windows,
		Language: platform.LanguageMask("en"),
	}
}

func TestNewSelector_Blank(t *testing.T) {
	s, err := NewSelector("  \n")
	require.NoError(t, err)
	assert.Nil(t, s)

	ok, err := s.KeepFile(context.Background(), installer("a", "/game/a.exe", "1"))
	require.NoError(t, err)
	assert.True(t, ok, "nil selector keeps everything")
}

func TestNewSelector_CompileError(t *testing.T) {
	_, err := NewSelector(`keep = (`)
	assert.ErrorIs(t, err, errors.ErrHookCompile)

	_, err = NewSelector(`keep = unknown_variable`)
	assert.ErrorIs(t, err, errors.ErrHookCompile)
}

func TestSelector_KeepFile(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		file     galaxy.GameFile
		expected bool
	}{
		{name: "default keeps", script: `x := 1`, file: installer("a", "/game/a.exe", "1"), expected: true},
		{name: "reject by extension", script: `text := import("text"); keep = !text.has_suffix(path, ".bin")`, file: installer("a", "/game/a.bin", "1"), expected: false},
		{name: "size threshold", script: `keep = size < 1000`, file: installer("a", "/game/a.exe", "5000"), expected: false},
		{name: "unparsable size reads as zero", script: `keep = size == 0`, file: installer("a", "/game/a.exe", "huge"), expected: true},
		{name: "kind is file", script: `keep = kind == "file" && game == "game"`, file: installer("a", "/game/a.exe", "1"), expected: true},
		{name: "platform bitmask", script: `keep = (platform & 4) != 0`, file: installer("a", "/game/a.exe", "1"), expected: false},
		{name: "drop dlc", script: `keep = !dlc`, file: func() galaxy.GameFile {
			f := installer("a", "/dlc/a.exe", "1")
			f.Type |= galaxy.TypeDLC
			return f
		}(), expected: false},
		{name: "type bits", script: `keep = type == 1`, file: installer("a", "/game/a.exe", "1"), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSelector(tt.script)
			require.NoError(t, err)
			ok, err := s.KeepFile(context.Background(), tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestSelector_KeepItem(t *testing.T) {
	s, err := NewSelector(`keep = kind == "item" && !dependency && chunks > 1 && name == "game.exe" && product_id == "1"`)
	require.NoError(t, err)

	item := galaxy.DepotItem{
		Path:      "bin/game.exe",
		Chunks:    make([]galaxy.Chunk, 2),
		Size:      10,
		ProductID: "1",
	}
	ok, err := s.KeepItem(context.Background(), item)
	require.NoError(t, err)
	assert.True(t, ok)

	item.IsDependency = true
	ok, err = s.KeepItem(context.Background(), item)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSelector_StateDoesNotLeakBetweenRuns(t *testing.T) {
	s, err := NewSelector(`if path == "/game/a.exe" { keep = false }`)
	require.NoError(t, err)

	ok, err := s.KeepFile(context.Background(), installer("a", "/game/a.exe", "1"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.KeepFile(context.Background(), installer("b", "/game/b.exe", "1"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSelector_Errors(t *testing.T) {
	s, err := NewSelector(`err = "refusing " + path`)
	require.NoError(t, err)
	_, err = s.KeepFile(context.Background(), installer("a", "/game/a.exe", "1"))
	assert.ErrorIs(t, err, errors.ErrHookScript)
	assert.Contains(t, err.Error(), "refusing /game/a.exe")

	s, err = NewSelector(`x := [1, 2][5] + 1`)
	require.NoError(t, err)
	_, err = s.KeepFile(context.Background(), installer("a", "/game/a.exe", "1"))
	assert.ErrorIs(t, err, errors.ErrHookExecution)
}

func TestSelector_Concurrent(t *testing.T) {
	s, err := NewSelector(`keep = id != "odd"`)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := "even"
			if i%2 == 1 {
				id = "odd"
			}
			ok, err := s.KeepFile(context.Background(), installer(id, "/game/x.exe", "1"))
			assert.NoError(t, err)
			assert.Equal(t, id == "even", ok)
		}(i)
	}
	wg.Wait()
}

func TestFilterDetails(t *testing.T) {
	dlcFile := installer("dlc", "/dlc/dlc_setup.exe", "1")
	dlcFile.Type |= galaxy.TypeDLC
	dlcExtra := galaxy.GameFile{Type: galaxy.TypeExtra | galaxy.TypeDLC, ID: "art", Path: "/dlc/art.zip", Size: "1"}

	details := galaxy.GameDetails{
		Slug:       "game",
		Installers: []galaxy.GameFile{installer("a", "/game/a.exe", "1"), installer("b", "/game/b.bin", "1")},
		Extras:     []galaxy.GameFile{{Type: galaxy.TypeExtra, ID: "manual", Path: "/game/manual.zip", Size: "1"}},
		DLCs: []galaxy.GameDetails{
			{Slug: "dlc", Installers: []galaxy.GameFile{dlcFile}},
			{Slug: "dlc_art", Extras: []galaxy.GameFile{dlcExtra}},
		},
	}

	s, err := NewSelector(`text := import("text"); keep = !text.has_suffix(path, ".bin") && !text.has_suffix(path, ".zip")`)
	require.NoError(t, err)

	filtered, err := s.FilterDetails(context.Background(), details)
	require.NoError(t, err)

	require.Len(t, filtered.Installers, 1)
	assert.Equal(t, "a", filtered.Installers[0].ID)
	assert.Empty(t, filtered.Extras)
	require.Len(t, filtered.DLCs, 1, "DLC left without files is dropped")
	assert.Equal(t, "dlc", filtered.DLCs[0].Slug)

	assert.Len(t, details.Installers, 2, "input is not modified")
	assert.Len(t, details.DLCs, 2)

	var nilSelector *Selector
	same, err := nilSelector.FilterDetails(context.Background(), details)
	require.NoError(t, err)
	assert.Equal(t, details, same)
}

func TestFilterItems(t *testing.T) {
	s, err := NewSelector(`keep = size > 5`)
	require.NoError(t, err)

	items, err := s.FilterItems(context.Background(), []galaxy.DepotItem{
		{Path: "a", Size: 10}, {Path: "b", Size: 1}, {Path: "c", Size: 6},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Path)
	assert.Equal(t, "c", items[1].Path)
}

func TestLoadSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "select.tengo")
	require.NoError(t, os.WriteFile(file, []byte(`keep = !dlc`), 0o644))

	src, err := LoadSource("@" + file)
	require.NoError(t, err)
	assert.Equal(t, `keep = !dlc`, src)

	src, err = LoadSource(file)
	require.NoError(t, err)
	assert.Equal(t, `keep = !dlc`, src)

	src, err = LoadSource(`keep = size > 0`)
	require.NoError(t, err)
	assert.Equal(t, `keep = size > 0`, src)

	_, err = LoadSource("@" + filepath.Join(dir, "missing.tengo"))
	assert.Error(t, err)

	s, err := Load("@" + file)
	require.NoError(t, err)
	assert.NotNil(t, s)
}
