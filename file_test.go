// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package conf_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confkit/conf"
)

func TestStore_ReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.conf")
	require.NoError(t, os.WriteFile(path, []byte("[web]\nport = 8080\n"), 0o600))

	store := conf.New()
	require.NoError(t, store.ReadFile(path))
	assert.Equal(t, 8080, store.GetInt("web.port", 0))
}

func TestStore_ReadFile_missing(t *testing.T) {
	t.Parallel()

	store := conf.New()
	store.SetString("k", "v")

	err := store.ReadFile(filepath.Join(t.TempDir(), "missing.conf"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "read file: ")
	assert.Equal(t, 1, store.Len())
}

func TestStore_ReadFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"etc/app.conf": {Data: []byte("[web]\nport = 8080\n")},
	}

	store := conf.New()
	require.NoError(t, store.ReadFS(fsys, "etc/app.conf"))
	assert.Equal(t, 8080, store.GetInt("web.port", 0))

	err := store.ReadFS(fsys, "etc/missing.conf")
	assert.ErrorContains(t, err, "read file: ")
}

func TestStore_WriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.conf")
	store := conf.New()
	store.SetString("web.port", "8080")
	require.NoError(t, store.WriteFile(path))

	text, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[web]\nport = 8080\n", string(text))
}

func TestLoad(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("user layer comes from APPDATA on windows")
	}

	home := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".appconf"),
		[]byte("[web]\nport = 80\nhost = user\n"),
		0o600,
	))

	local := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(local, ".appconf"),
		[]byte("[web]\nport = 8080\n"),
		0o600,
	))
	chdir(t, local)

	lookup := func(name string) string {
		if name == "HOME" {
			return home
		}

		return ""
	}
	store := conf.Load("app", conf.WithLookup(lookup))

	// The local layer overrides the user layer, which fills the rest.
	assert.Equal(t, "8080", store.GetString("web.port", ""))
	assert.Equal(t, "user", store.GetString("web.host", ""))
}

func TestLoad_missingLayers(t *testing.T) {
	chdir(t, t.TempDir())

	store := conf.Load("app", conf.WithLookup(func(string) string { return "" }))
	assert.Equal(t, 0, store.Len())
}

func TestLoad_xdgTakesPrecedenceOverHome(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME is only honored on unix-like systems")
	}

	xdg := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "app"), 0o700))
	require.NoError(t, os.WriteFile(
		filepath.Join(xdg, "app", "app.conf"),
		[]byte("k = xdg\n"),
		0o600,
	))

	home := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".appconf"),
		[]byte("k = home\n"),
		0o600,
	))
	chdir(t, t.TempDir())

	lookup := func(name string) string {
		switch name {
		case "XDG_CONFIG_HOME":
			return xdg
		case "HOME":
			return home
		default:
			return ""
		}
	}
	store := conf.Load("app", conf.WithLookup(lookup))
	assert.Equal(t, "xdg", store.GetString("k", ""))
}

func TestLoad_panicsOnEmptyName(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		conf.Load("")
	})
}

// chdir changes the working directory for the test and restores it on
// cleanup, like testing.T.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
