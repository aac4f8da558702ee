package aoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", "/home/gopher")
	for _, k := range []string{"AOC_SESSION", "AOC_SESSION_FILE", "AOC_INPUT_DIR", "AOC_BASE_URL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{
		SessionFile: "/home/gopher/keys/aoc.session",
		InputDir:    ".",
		BaseURL:     "https://adventofcode.com",
	}, c)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(".env", []byte("AOC_INPUT_DIR=inputs\nAOC_SESSION_FILE=session.txt\n"), 0600))
	require.NoError(t, os.WriteFile("session.txt", []byte("cookie\n"), 0600))
	t.Setenv("AOC_BASE_URL", "http://localhost:8080/")
	for _, k := range []string{"AOC_SESSION", "AOC_INPUT_DIR", "AOC_SESSION_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "inputs", c.InputDir)
	assert.Equal(t, "http://localhost:8080", c.BaseURL)

	s, err := c.session()
	require.NoError(t, err)
	assert.Equal(t, "cookie", s)

	c.Session = "explicit"
	s, err = c.session()
	require.NoError(t, err)
	assert.Equal(t, "explicit", s)
}

func TestFileOrFetchCached(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2023"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2023", "1.input"), []byte("cached"), 0600))
	c := Config{InputDir: dir, BaseURL: "http://127.0.0.1:0"}
	assert.Equal(t, "cached", string(c.fileOrFetch("2023/1.input", "/2023/day/1/input")))
}
