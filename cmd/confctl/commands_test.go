// Copyright (c) 2025 The conf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommand(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\n")

	output, err := executeCommand("--file", path, "get", "web.host")
	require.NoError(t, err)
	assert.Equal(t, "example.com\n", output)
}

func TestGetCommand_missingKey(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\n")

	_, err := executeCommand("--file", path, "get", "web.port")
	assert.EqualError(t, err, fmt.Sprintf("key %q not found in %s", "web.port", path))
}

func TestGetCommand_default(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\n")

	output, err := executeCommand("--file", path, "get", "web.port", "--default", "8080")
	require.NoError(t, err)
	assert.Equal(t, "8080\n", output)
}

func TestSetCommand_createsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.conf")

	_, err := executeCommand("--file", path, "set", "web.host", "example.com")
	require.NoError(t, err)
	assert.Equal(t, "[web]\nhost = example.com\n", readConfig(t, path))
}

func TestSetCommand_overridesValue(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\nport = 80\n")

	_, err := executeCommand("--file", path, "set", "web.port", "8080")
	require.NoError(t, err)
	assert.Equal(t, "[web]\nhost = example.com\nport = 8080\n", readConfig(t, path))
}

func TestSetCommand_comment(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\n")

	_, err := executeCommand("--file", path, "--comments", "set", "web.port", "8080", "--comment", "listen here")
	require.NoError(t, err)
	assert.Equal(t, "[web]\nhost = example.com\n; listen here\nport = 8080\n", readConfig(t, path))
}

func TestUnsetCommand(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\nport = 80\n")

	_, err := executeCommand("--file", path, "unset", "web.host")
	require.NoError(t, err)
	assert.Equal(t, "[web]\nport = 80\n", readConfig(t, path))
}

func TestUnsetCommand_missingKey(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\n")

	_, err := executeCommand("--file", path, "unset", "db.dsn")
	assert.EqualError(t, err, fmt.Sprintf("key %q not found in %s", "db.dsn", path))
}

func TestListCommand_groups(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\nport = 80\n[db]\ndsn = postgres://localhost\n")

	output, err := executeCommand("--file", path, "list")
	require.NoError(t, err)
	assert.Equal(t, "web\nweb.host\nweb.port\ndb\ndb.dsn\n", output)
}

func TestListCommand_subkeys(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\nport = 80\n[db]\ndsn = postgres://localhost\n")

	output, err := executeCommand("--file", path, "list", "web")
	require.NoError(t, err)
	assert.Equal(t, "host\nport\n", output)
}

func TestMergeCommand(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\nport = 80\n")
	overlay := filepath.Join(t.TempDir(), "overlay.conf")
	require.NoError(t, os.WriteFile(overlay, []byte("[web]\nhost = override.com\n[db]\ndsn = x\n"), 0o600))

	_, err := executeCommand("--file", path, "merge", overlay)
	require.NoError(t, err)
	assert.Equal(t, "[web]\nhost = override.com\nport = 80\n\n[db]\ndsn = x\n", readConfig(t, path))
}

func TestMergeCommand_missingOverlay(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\n")

	_, err := executeCommand("--file", path, "merge", filepath.Join(t.TempDir(), "absent.conf"))
	assert.ErrorContains(t, err, "read file: ")
}

func TestExportCommand_json(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\nport = 80\n")

	output, err := executeCommand("--file", path, "export")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"web\": {\n    \"host\": \"example.com\",\n    \"port\": \"80\"\n  }\n}\n", output)
}

func TestExportCommand_yaml(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\nport = 80\n")

	output, err := executeCommand("--file", path, "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "web:\n    host: example.com\n    port: \"80\"\n", output)
}

func TestExportCommand_unknownFormat(t *testing.T) {
	path := writeConfig(t, "[web]\nhost = example.com\n")

	_, err := executeCommand("--file", path, "export", "--format", "toml")
	assert.EqualError(t, err, `unknown format "toml" (expected json or yaml)`)
}

func TestFmtCommand(t *testing.T) {
	path := writeConfig(t, "  host=example.com  \n[web]\nport=   8080\n")

	_, err := executeCommand("--file", path, "fmt")
	require.NoError(t, err)
	assert.Equal(t, "host = example.com\n\n[web]\nport = 8080\n", readConfig(t, path))
}

func TestFmtCommand_git(t *testing.T) {
	path := writeConfig(t, "[core]\nbare=   false\n")

	_, err := executeCommand("--file", path, "--style", "git", "fmt")
	require.NoError(t, err)
	assert.Equal(t, "[core]\n\tbare = false\n", readConfig(t, path))
}
