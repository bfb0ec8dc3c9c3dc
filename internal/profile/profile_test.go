package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"exam prep":      "exam_prep",
		"Fall 2026!":     "Fall_2026",
		"  spaced  ":     "spaced",
		"a/b\\c":         "a_b_c",
		"ok-name_1":      "ok-name_1",
		"":               "default",
		"!!!":            "default",
	}
	for in, want := range cases {
		assert.Equal(t, want, Sanitize(in), "input %q", in)
	}
}

func TestManagerPath(t *testing.T) {
	m := NewManager("/tmp/data")
	assert.Equal(t, filepath.Join("/tmp/data", "plan__exam_prep.db"), m.Path("exam prep"))
}

func TestManagerList(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	names, err := m.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"default"}, names)

	require.NoError(t, os.WriteFile(m.Path("zeta"), nil, 0o644))
	require.NoError(t, os.WriteFile(m.Path("alpha"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), nil, 0o644))

	names, err = m.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "default", "zeta"}, names)
}

func TestManagerListMissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "nope"))
	names, err := m.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"default"}, names)
}

func TestManagerDelete(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	require.NoError(t, os.WriteFile(m.Path("old"), nil, 0o644))
	require.NoError(t, os.WriteFile(m.Path("old")+"-wal", nil, 0o644))
	require.True(t, m.Exists("old"))

	require.NoError(t, m.Delete("old"))
	assert.False(t, m.Exists("old"))
	_, err := os.Stat(m.Path("old") + "-wal")
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, m.Delete("default"))
	assert.Error(t, m.Delete("never-existed"))
}
