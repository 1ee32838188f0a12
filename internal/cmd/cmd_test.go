package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/setupver/internal/cmd"
	"github.com/dendrascience/setupver/internal/log"
	"github.com/dendrascience/setupver/updater"
)

const setupPy = `from setuptools import setup

setup(
    name="claims",
    version='0.1.11',
    zip_safe=False,
)
`

func writeSetupPy(t *testing.T, contents string, perm os.FileMode) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "setup.py")
	require.NoError(t, os.WriteFile(path, []byte(contents), perm))
	require.NoError(t, os.Chmod(path, perm))

	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	tc := cmd.NewRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetIn(strings.NewReader(stdin))
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

func TestReadCmd(t *testing.T) {
	t.Parallel()

	path := writeSetupPy(t, setupPy, 0o644)

	stdout, stderr, err := execute(t, "", "read", path)
	require.NoError(t, err)
	assert.Equal(t, "0.1.11\n", stdout)
	assert.Empty(t, stderr)
}

func TestReadCmdStdin(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "a\n    version='0.1.0',\nb", "read", "-")
	require.NoError(t, err)
	assert.Equal(t, "0.1.0\n", stdout)
}

func TestReadCmdNotFound(t *testing.T) {
	t.Parallel()

	path := writeSetupPy(t, "x\ny", 0o644)

	stdout, _, err := execute(t, "", "read", path)
	require.ErrorIs(t, err, updater.ErrNotFound)
	assert.Contains(t, err.Error(), path)
	assert.Empty(t, stdout)
}

func TestReadCmdMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "read", filepath.Join(t.TempDir(), "missing.py"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadCmdDefaultFile(t *testing.T) {
	path := writeSetupPy(t, setupPy, 0o644)
	t.Setenv("SETUPVER_FILE", path)

	stdout, _, err := execute(t, "", "read")
	require.NoError(t, err)
	assert.Equal(t, "0.1.11\n", stdout)
}

func TestWriteCmd(t *testing.T) {
	t.Parallel()

	path := writeSetupPy(t, setupPy, 0o640)

	stdout, stderr, err := execute(t, "", "write", "0.2.0", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Replace(setupPy, "'0.1.11'", "'0.2.0'", 1), string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteCmdFollowsSymlink(t *testing.T) {
	t.Parallel()

	path := writeSetupPy(t, setupPy, 0o644)
	link := filepath.Join(t.TempDir(), "link.py")
	require.NoError(t, os.Symlink(path, link))

	_, _, err := execute(t, "", "write", "1.0.0", link)
	require.NoError(t, err)

	fi, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, fi.Mode()&os.ModeSymlink)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	v, err := updater.ReadVersion(string(got))
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v)
}

func TestWriteCmdDryRun(t *testing.T) {
	t.Parallel()

	path := writeSetupPy(t, setupPy, 0o644)

	stdout, _, err := execute(t, "", "write", "--dry-run", "0.3.0", path)
	require.NoError(t, err)
	assert.Equal(t, updater.WriteVersion(setupPy, "0.3.0"), stdout)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, setupPy, string(got))
}

func TestWriteCmdStdin(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "a\n    version='0.1.0',\nb", "write", "0.2.0", "-")
	require.NoError(t, err)
	assert.Equal(t, "a\n    version='0.2.0',\nb", stdout)
}

func TestWriteCmdNoVersionLine(t *testing.T) {
	t.Parallel()

	path := writeSetupPy(t, "x\ny", 0o644)

	_, _, err := execute(t, "", "write", "1.0.0", path)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x\ny", string(got))

	_, _, err = execute(t, "", "write", "--check", "1.0.0", path)
	require.ErrorIs(t, err, updater.ErrNotFound)
}

func TestWriteCmdMissingVersion(t *testing.T) {
	t.Setenv("SETUPVER_VERSION", "")

	_, _, err := execute(t, "", "write")
	require.ErrorIs(t, err, cmd.ErrMissingVersion)
}

func TestWriteCmdEnvironment(t *testing.T) {
	path := writeSetupPy(t, setupPy, 0o644)
	t.Setenv("SETUPVER_FILE", path)
	t.Setenv("SETUPVER_VERSION", "5.0.0")

	_, _, err := execute(t, "", "write", "--log-level", "info", "--log-format", "logfmt")
	require.NoError(t, err)

	stdout, _, err := execute(t, "", "read")
	require.NoError(t, err)
	assert.Equal(t, "5.0.0\n", stdout)
}

func TestWriteCmdLogs(t *testing.T) {
	t.Parallel()

	path := writeSetupPy(t, setupPy, 0o644)

	_, stderr, err := execute(t, "", "--log-level", "info", "write", "0.2.0", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "updated version")

	_, stderr, err = execute(t, "", "--log-level", "info", "write", "0.2.0", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "version unchanged")
}

func TestInvalidLogFlags(t *testing.T) {
	t.Parallel()

	path := writeSetupPy(t, setupPy, 0o644)

	_, _, err := execute(t, "", "--log-format", "xml", "read", path)
	require.Error(t, err)

	_, _, err = execute(t, "", "--log-level", "loud", "read", path)
	require.Error(t, err)
}

func TestInvalidLogFlagsReportsAll(t *testing.T) {
	t.Parallel()

	path := writeSetupPy(t, setupPy, 0o644)

	stdout, _, err := execute(t, "", "--log-level", "loud", "--log-format", "xml", "read", path)
	require.ErrorIs(t, err, log.ErrUnknownLevel)
	require.ErrorIs(t, err, log.ErrUnknownFormat)
	assert.Empty(t, stdout)
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "setupver version "), stdout)
	assert.Empty(t, stderr)
}
