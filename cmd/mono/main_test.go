package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/mono"
	"github.com/iw2rmb/mono/export"
	"github.com/iw2rmb/mono/internal/config"
	"github.com/iw2rmb/mono/prefs"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, k := range []string{"MONO_DATA", "MONO_EXPORT_DIR", "MONO_HEALTH_ADDR", "MONO_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOptionsApply(t *testing.T) {
	cfg := config.DefaultConfig()
	options{dataPath: "/x/mono.db", exportDir: "/out", healthAddr: "127.0.0.1:9000"}.apply(cfg)
	assert.Equal(t, "/x/mono.db", cfg.DataPath)
	assert.Equal(t, "/out", cfg.ExportDir)
	assert.Equal(t, "127.0.0.1:9000", cfg.HealthAddr)

	cfg = config.DefaultConfig()
	want := *cfg
	options{}.apply(cfg)
	assert.Equal(t, want, *cfg)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "mono "+mono.VersionTag()))
}

func TestExportCommand(t *testing.T) {
	dir := isolate(t)
	dbPath := filepath.Join(dir, "mono.db")
	outDir := filepath.Join(dir, "out")

	db, err := prefs.OpenSQLite(dbPath)
	require.NoError(t, err)
	require.NoError(t, prefs.NewStore(db, nil).SaveText("hello world"))
	require.NoError(t, db.Close())

	out, err := execute(t, "export", "--data", dbPath, "--export-dir", outDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, export.TextFileName), strings.TrimSpace(out))

	data, err := os.ReadFile(filepath.Join(outDir, export.TextFileName))
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	_, err = execute(t, "export", "--html", "--data", dbPath, "--export-dir", outDir)
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(outDir, export.HTMLFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<strong>hel</strong>lo <strong>wor</strong>ld")
}

func TestExportCommandEphemeralWritesEmptyFile(t *testing.T) {
	dir := isolate(t)
	outDir := filepath.Join(dir, "out")

	_, err := execute(t, "export", "--ephemeral", "--export-dir", outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, export.TextFileName))
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.NoFileExists(t, filepath.Join(dir, "data", "mono", "mono.db"))
}

func TestInvalidConfigIsRejected(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("health_addr = \"nonsense\"\n"), 0o644))

	_, err := execute(t, "export", "--ephemeral", "--config", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestUnexpectedArgs(t *testing.T) {
	isolate(t)
	_, err := execute(t, "export", "extra")
	require.Error(t, err)
}
