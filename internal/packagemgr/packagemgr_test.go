package packagemgr

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDescriptor_CreatesDefaultOnce(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "scripts")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	created, err := EnsureDescriptor(dir)
	require.NoError(t, err)
	require.True(t, created)

	raw, err := os.ReadFile(filepath.Join(dir, DescriptorName))
	require.NoError(t, err)
	var pkg map[string]any
	require.NoError(t, json.Unmarshal(raw, &pkg))
	assert.Equal(t, "scripts", pkg["name"])
	assert.Equal(t, "1.0.0", pkg["version"])

	// A second call must not touch the existing file.
	require.NoError(t, os.WriteFile(filepath.Join(dir, DescriptorName), []byte(`{"name":"custom"}`), 0o644))
	created, err = EnsureDescriptor(dir)
	require.NoError(t, err)
	require.False(t, created)

	raw, err = os.ReadFile(filepath.Join(dir, DescriptorName))
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"custom"}`, string(raw))
}

func TestSetModuleType_PreservesFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DescriptorName)
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"scripts","dependencies":{"pako":"^2.1.0"},"type":"commonjs"}`), 0o644))

	require.NoError(t, SetModuleType(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"scripts","dependencies":{"pako":"^2.1.0"},"type":"module"}`, string(raw))
	require.Contains(t, string(raw), "\n  \"name\"")
}

func TestEnsureDescriptor_MatchesNpmInit(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "scripts")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	_, err := EnsureDescriptor(dir)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, DescriptorName))
	require.NoError(t, err)
	want := `{
  "name": "scripts",
  "version": "1.0.0",
  "description": "",
  "main": "index.js",
  "scripts": {
    "test": "echo \"Error: no test specified\" && exit 1"
  },
  "keywords": [],
  "author": "",
  "license": "ISC"
}`
	require.Equal(t, want, string(raw))
}

func TestSetModuleType_KeepsKeyOrder(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "scripts")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	_, err := EnsureDescriptor(dir)
	require.NoError(t, err)
	path := filepath.Join(dir, DescriptorName)

	require.NoError(t, SetModuleType(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, `&& exit 1`)
	assert.NotContains(t, text, `\u0026`)
	assert.True(t, strings.HasSuffix(text, "  \"license\": \"ISC\",\n  \"type\": \"module\"\n}"))

	// An existing "type" is replaced where it stands.
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"commonjs","name":"scripts"}`), 0o644))
	require.NoError(t, SetModuleType(path))
	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"type\": \"module\",\n  \"name\": \"scripts\"\n}", string(raw))
}

func TestSetModuleType_MalformedIsFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for name, content := range map[string]string{
		"broken.json": `{"name":`,
		"null.json":   `null`,
		"array.json":  `["a"]`,
		"extra.json":  `{"name":"a"} {}`,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		err := SetModuleType(path)
		require.ErrorContains(t, err, "malformed package descriptor", name)

		raw, rerr := os.ReadFile(path)
		require.NoError(t, rerr)
		require.Equal(t, content, string(raw), name)
	}

	require.Error(t, SetModuleType(filepath.Join(dir, "missing.json")))
}

func TestNPM_Install(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX echo/false binaries")
	}
	t.Parallel()

	var out bytes.Buffer
	n := &NPM{Binary: "echo", Stdout: &out, Stderr: &out}
	require.NoError(t, n.Install(context.Background(), t.TempDir(), []string{"pako", "js-base64"}))
	require.Equal(t, "install pako js-base64\n", out.String())

	failing := &NPM{Binary: "false", Stdout: &out, Stderr: &out}
	require.Error(t, failing.Install(context.Background(), t.TempDir(), []string{"pako"}))

	missing := &NPM{Binary: filepath.Join(t.TempDir(), "no-such-npm")}
	require.Error(t, missing.Install(context.Background(), t.TempDir(), []string{"pako"}))
}

func TestNPM_InstallNothingIsNoop(t *testing.T) {
	t.Parallel()

	n := NewNPM(filepath.Join(t.TempDir(), "no-such-npm"))
	require.NoError(t, n.Install(context.Background(), t.TempDir(), nil))
}
