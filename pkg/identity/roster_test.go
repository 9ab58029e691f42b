package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoster(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadRoster(t *testing.T) {
	path := writeRoster(t, `
users:
  - id: "1"
    name: Daniel Smith
    email: daniel@example.com
  - id: "2"
    name: Dana White
`)

	users, err := LoadRoster(path)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "1", users[0].ID)
	assert.Equal(t, "Daniel Smith", users[0].Name)
	assert.Equal(t, "daniel@example.com", users[0].Email)
	assert.Empty(t, users[1].Email)
}

func TestLoadRosterMissingFile(t *testing.T) {
	_, err := LoadRoster(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRosterInvalidYAML(t *testing.T) {
	path := writeRoster(t, "users: [unclosed\n")
	_, err := LoadRoster(path)
	require.Error(t, err)
}

func TestLoadRosterUnnamedUser(t *testing.T) {
	path := writeRoster(t, `
users:
  - id: "1"
    email: ghost@example.com
`)

	_, err := LoadRoster(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no name")
}
